package scene

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/sevenlucas7/christmas-memory-tree/internal/utils"
)

// Minimal GLSL 330 instancing pair: the per-instance model matrix arrives
// as a vertex attribute, the fragment side is a flat tint so the whole
// field shares one material.
const (
	instancingVS = `
#version 330
in vec3 vertexPosition;
in mat4 instanceTransform;
uniform mat4 mvp;
void main() {
    gl_Position = mvp*instanceTransform*vec4(vertexPosition, 1.0);
}
`
	instancingFS = `
#version 330
uniform vec4 colDiffuse;
out vec4 finalColor;
void main() {
    finalColor = colDiffuse;
}
`
)

// Batch is the single shared draw batch for the particle field: one slot
// per particle, one geometry, one material, one submission per frame.
// The CPU side (the transform slots) exists from construction; the GPU
// side is loaded separately once the GL context is available.
type Batch struct {
	transforms []rl.Matrix
	dirty      bool

	mesh     rl.Mesh
	material rl.Material
	shader   rl.Shader
	gpuReady bool
}

// NewBatch allocates the transform slots for capacity instances.
func NewBatch(capacity int) *Batch {
	b := &Batch{transforms: make([]rl.Matrix, capacity)}
	for i := range b.transforms {
		b.transforms[i] = rl.MatrixIdentity()
	}
	return b
}

// LoadGPU creates the shared mesh, instancing shader and material. Must be
// called on the render thread after the window is initialized.
func (b *Batch) LoadGPU(tint color.RGBA) {
	if b.gpuReady {
		return
	}

	b.mesh = rl.GenMeshCube(1, 1, 1)

	b.shader = rl.LoadShaderFromMemory(instancingVS, instancingFS)
	b.shader.UpdateLocation(rl.ShaderLocMatrixMvp, rl.GetShaderLocation(b.shader, "mvp"))
	b.shader.UpdateLocation(rl.ShaderLocMatrixModel, rl.GetShaderLocationAttrib(b.shader, "instanceTransform"))

	b.material = rl.LoadMaterialDefault()
	b.material.Shader = b.shader
	b.material.GetMap(rl.MapDiffuse).Color = tint

	b.gpuReady = true
	utils.Debug("Particle batch ready: %d slots", len(b.transforms))
}

// Submit issues the single instanced draw for the first count slots. The
// dirty flag guards against submitting a batch whose transforms were never
// written this session.
func (b *Batch) Submit(count int) {
	if !b.gpuReady || !b.dirty || count == 0 || count > len(b.transforms) {
		return
	}
	rl.DrawMeshInstanced(b.mesh, b.material, b.transforms[:count], count)
}

// Unload frees the GPU resources. The transform slots stay valid so a
// batch can in principle be reloaded, though the app never needs to.
func (b *Batch) Unload() {
	if !b.gpuReady {
		return
	}
	rl.UnloadMesh(&b.mesh)
	rl.UnloadShader(b.shader)
	b.gpuReady = false
}
