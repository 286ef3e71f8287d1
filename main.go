package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/glint-render/glint/pkg/renderer"
	"github.com/glint-render/glint/pkg/scene"
)

func main() {
	sceneType := flag.String("scene", "default", "Scene type: 'default', 'csg' or 'mesh'")
	meshPath := flag.String("mesh", "", "Path to a glTF/GLB model (required for -scene mesh)")
	width := flag.Int("width", 800, "Image width in pixels")
	height := flag.Int("height", 600, "Image height in pixels")
	depth := flag.Int("depth", 5, "Maximum reflection/refraction recursion depth")
	workers := flag.Int("workers", 0, "Parallel workers (0 = one per CPU)")
	outDir := flag.String("out", "output", "Output directory")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Glint Raytracer")
		fmt.Println("Usage: glint [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  default - Patterned floor with matte, mirrored and glass spheres")
		fmt.Println("  csg     - Constructive solid geometry demo (carved cube, cylinder+cone tower)")
		fmt.Println("  mesh    - A glTF/GLB model on a checkered floor (needs -mesh)")
		fmt.Println()
		fmt.Println("Output is saved to <out>/<scene>/render_<timestamp>.png")
		return
	}

	selected, err := buildScene(*sceneType, *meshPath, *width, *height)
	if err != nil {
		log.Fatalf("Error building scene: %v", err)
	}

	outputDir := filepath.Join(*outDir, *sceneType)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		log.Fatalf("Error creating output directory: %v", err)
	}

	r := renderer.NewRenderer(selected.World, selected.Camera)
	r.SetConfig(renderer.Config{
		MaxDepth: *depth,
		Workers:  *workers,
		Logger:   log.New(os.Stderr, "", log.LstdFlags),
	})

	fmt.Printf("Rendering %q at %dx%d...\n", *sceneType, *width, *height)
	canvas, stats := r.Render()
	fmt.Printf("Render completed in %v (%d pixels, %d workers)\n",
		stats.Duration.Round(time.Millisecond), stats.Pixels, stats.Workers)

	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(outputDir, fmt.Sprintf("render_%s.png", timestamp))

	file, err := os.Create(filename)
	if err != nil {
		log.Fatalf("Error creating file: %v", err)
	}
	defer file.Close()

	if err := png.Encode(file, canvas.ToImage()); err != nil {
		log.Fatalf("Error saving PNG: %v", err)
	}

	fmt.Printf("Render saved as %s\n", filename)
}

// buildScene selects a scene builder by name
func buildScene(name, meshPath string, width, height int) (*scene.Scene, error) {
	switch name {
	case "default":
		return scene.NewDefaultScene(width, height)
	case "csg":
		return scene.NewCSGScene(width, height)
	case "mesh":
		if meshPath == "" {
			return nil, fmt.Errorf("scene %q requires -mesh <path>", name)
		}
		return scene.NewMeshScene(meshPath, width, height)
	default:
		return nil, fmt.Errorf("unknown scene type: %q", name)
	}
}
