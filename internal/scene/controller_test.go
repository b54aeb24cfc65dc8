package scene

import (
	"math/rand"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/sevenlucas7/christmas-memory-tree/internal/layout"
)

// fakeHandle stands in for an asset photo; Texture stays nil as for a
// photo that never finished loading.
type fakeHandle struct {
	released bool
}

func (f *fakeHandle) Texture() *rl.Texture2D { return nil }
func (f *fakeHandle) Release()               { f.released = true }

func testControllerConfig() ControllerConfig {
	return ControllerConfig{
		TreeRadius:    5.5,
		TreeHeight:    11,
		ScatterRadius: 9,
		MinSpeed:      0.15,
		MaxSpeed:      0.5,
	}
}

func newTestController() *Controller {
	return NewController(testControllerConfig(), rand.New(rand.NewSource(42)))
}

func TestToggleMode(t *testing.T) {
	c := newTestController()
	if c.Mode() != ModeScattered {
		t.Fatalf("initial mode = %v, want scattered", c.Mode())
	}

	c.ToggleMode()
	if c.Mode() != ModeFormation {
		t.Errorf("after one toggle mode = %v, want formation", c.Mode())
	}

	c.ToggleMode()
	if c.Mode() != ModeScattered {
		t.Errorf("after two toggles mode = %v, want scattered", c.Mode())
	}
}

func TestModeNormalized(t *testing.T) {
	tests := []struct {
		name string
		mode Mode
		want Mode
	}{
		{"Scattered", ModeScattered, ModeScattered},
		{"Formation", ModeFormation, ModeFormation},
		{"Corrupt positive", Mode(99), ModeScattered},
		{"Corrupt negative", Mode(-1), ModeScattered},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.mode.normalized(); got != tt.want {
				t.Errorf("normalized() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAddItems_GrowsAndRetargets(t *testing.T) {
	c := newTestController()
	c.AddItems(&fakeHandle{}, &fakeHandle{}, &fakeHandle{})
	if len(c.Pictures()) != 3 {
		t.Fatalf("collection size = %d, want 3", len(c.Pictures()))
	}

	before := make([]layout.Vec, 3)
	for i, p := range c.Pictures() {
		before[i] = p.treeTarget
	}

	c.AddItems(&fakeHandle{}, &fakeHandle{})
	if len(c.Pictures()) != 5 {
		t.Fatalf("collection size = %d, want 5", len(c.Pictures()))
	}

	// Ordinal 0 is the exception: angle 0 and normalized height 0 hold
	// for any total, so with its frozen jitter the target is identical.
	if c.Pictures()[0].treeTarget != before[0] {
		t.Errorf("picture 0 tree target moved, but it does not depend on the total")
	}

	// Every other prior tree target depends on the total and must move.
	for i := 1; i < 3; i++ {
		if c.Pictures()[i].treeTarget == before[i] {
			t.Errorf("picture %d tree target unchanged after total changed", i)
		}
	}
}

func TestAddItems_ResetsToScattered(t *testing.T) {
	c := newTestController()
	c.AddItems(&fakeHandle{})
	c.ToggleMode()
	if c.Mode() != ModeFormation {
		t.Fatal("setup failed")
	}

	c.AddItems(&fakeHandle{})
	if c.Mode() != ModeScattered {
		t.Errorf("mode after add = %v, want scattered", c.Mode())
	}
}

func TestAddItems_Empty(t *testing.T) {
	c := newTestController()
	c.ToggleMode()
	c.AddItems()
	if len(c.Pictures()) != 0 {
		t.Errorf("empty add grew the collection to %d", len(c.Pictures()))
	}
	if c.Mode() != ModeFormation {
		t.Errorf("empty add reset the mode")
	}
}

func TestAddItems_Ordinals(t *testing.T) {
	c := newTestController()
	c.AddItems(&fakeHandle{}, &fakeHandle{})
	c.AddItems(&fakeHandle{})
	for i, p := range c.Pictures() {
		if p.Ordinal != i {
			t.Errorf("picture %d has ordinal %d", i, p.Ordinal)
		}
	}
}

func TestAddItems_SingleItemAtConeBase(t *testing.T) {
	c := newTestController()
	c.AddItems(&fakeHandle{})

	p := c.Pictures()[0]
	wantY := -testControllerConfig().TreeHeight / 2
	if p.treeTarget.Y != wantY {
		t.Errorf("single picture tree Y = %v, want %v", p.treeTarget.Y, wantY)
	}
}

func TestRemove(t *testing.T) {
	c := newTestController()
	h0, h1, h2 := &fakeHandle{}, &fakeHandle{}, &fakeHandle{}
	c.AddItems(h0, h1, h2)

	c.Remove(h1)

	if len(c.Pictures()) != 2 {
		t.Fatalf("collection size = %d, want 2", len(c.Pictures()))
	}
	if !h1.released {
		t.Error("removed handle was not released")
	}
	if h0.released || h2.released {
		t.Error("remaining handles were released")
	}
	for i, p := range c.Pictures() {
		if p.Ordinal != i {
			t.Errorf("ordinal %d at position %d after removal", p.Ordinal, i)
		}
	}
}

func TestRemove_UnknownHandle(t *testing.T) {
	c := newTestController()
	c.AddItems(&fakeHandle{})
	c.Remove(&fakeHandle{}) // not in the collection; must be a no-op
	if len(c.Pictures()) != 1 {
		t.Errorf("collection size = %d, want 1", len(c.Pictures()))
	}
}

func TestShutdown_ReleasesAll(t *testing.T) {
	c := newTestController()
	handles := []*fakeHandle{{}, {}, {}}
	for _, h := range handles {
		c.AddItems(h)
	}
	c.Shutdown()

	for i, h := range handles {
		if !h.released {
			t.Errorf("handle %d not released on shutdown", i)
		}
	}
	if len(c.Pictures()) != 0 {
		t.Errorf("collection not cleared on shutdown")
	}
}
