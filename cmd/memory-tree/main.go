package main

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/sevenlucas7/christmas-memory-tree/internal/assets"
	"github.com/sevenlucas7/christmas-memory-tree/internal/config"
	"github.com/sevenlucas7/christmas-memory-tree/internal/utils"
)

func main() {
	configPath := flag.String("config", "memory-tree.yaml", "Path to the YAML config file")
	picturesDir := flag.String("pictures", "", "Directory of photos to load at startup (overrides config)")
	musicPath := flag.String("music", "", "Background music file (overrides config)")
	debugFlag := flag.Bool("debug", false, "Enable verbose debug logging")
	silentFlag := flag.Bool("silent", false, "Disable audio entirely")
	parallaxFlag := flag.Bool("parallax", false, "Enable X11 desktop-pointer parallax (overrides config)")
	noCache := flag.Bool("no-cache", false, "Disable the decoded-photo disk cache")
	flag.Parse()

	if *debugFlag {
		utils.CurrentLevel = utils.LevelDebug
	}
	utils.SilentMode = *silentFlag

	cfg, err := config.Load(*configPath)
	if err != nil {
		utils.Error("Failed to load config: %v", err)
		os.Exit(1)
	}
	if *picturesDir != "" {
		cfg.Pictures.Dir = *picturesDir
	}
	if *musicPath != "" {
		cfg.Audio.Music = *musicPath
	}
	if *parallaxFlag {
		cfg.Camera.Parallax = true
	}

	var cache *assets.Cache
	if !*noCache {
		if dir, err := os.UserCacheDir(); err == nil {
			cache = assets.NewCache(filepath.Join(dir, "memory-tree", "textures"))
		}
	}

	utils.Info("--- Christmas Memory Tree ---")
	window := NewWindow(cfg, assets.NewLoader(cache))
	window.Run()
}

// scanPictures lists the decodable images directly under dir, sorted by
// name so the initial tree order is stable across runs.
func scanPictures(dir string) []string {
	if dir == "" {
		return nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		utils.Warn("Cannot read pictures directory %s: %v", dir, err)
		return nil
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		p := filepath.Join(dir, e.Name())
		if assets.SupportedExt(p) {
			paths = append(paths, p)
		}
	}
	return paths
}
