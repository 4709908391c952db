package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"

	"github.com/pkoziol/go-phong-raytracer/pkg/renderer"
	"github.com/pkoziol/go-phong-raytracer/pkg/scene"
)

func main() {
	sceneName := flag.String("scene", "default", "Scene name: 'default', 'two-spheres' or 'head-on'")
	modeName := flag.String("mode", "par", "Render mode: 'seq' (sequential) or 'par' (parallel)")
	width := flag.Int("width", 800, "Image width in pixels")
	height := flag.Int("height", 600, "Image height in pixels")
	output := flag.String("output", "", "Output file path (.png, .bmp, .jpg); default output/render_<timestamp>.png")
	thumbnail := flag.Int("thumbnail", 0, "Also write a thumbnail of this width next to the output (0 disables)")
	workers := flag.Int("workers", 0, "Worker count for parallel mode (0 = number of CPUs)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Phong Sphere Raytracer")
		fmt.Println("Usage: phongtracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Printf("Available scenes: %v\n", scene.Names())
		return
	}

	mode, err := renderer.ParseRenderMode(*modeName)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	selectedScene, err := scene.ByName(*sceneName)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	outputPath := *output
	if outputPath == "" {
		timestamp := time.Now().Format("20060102_150405")
		outputPath = filepath.Join("output", fmt.Sprintf("render_%s.png", timestamp))
	}
	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		fmt.Printf("Error creating output directory: %v\n", err)
		return
	}

	raytracer := selectedScene.NewRaytracer()
	raytracer.SetNumWorkers(*workers)

	fmt.Printf("Rendering scene %q at %dx%d (%s)...\n", *sceneName, *width, *height, mode)
	img, stats, err := raytracer.RenderImage(mode, *width, *height)
	if err != nil {
		fmt.Printf("Render failed: %v\n", err)
		return
	}
	if err := img.Save(outputPath); err != nil {
		fmt.Printf("Error saving image: %v\n", err)
		return
	}

	fmt.Printf("Render completed in %v (%d workers, %.0f pixels/s)\n",
		stats.Elapsed, stats.Workers, stats.PixelsPerSecond())
	fmt.Printf("Render saved as %s\n", outputPath)

	if *thumbnail > 0 {
		thumb := resize.Resize(uint(*thumbnail), 0, img.ToRGBA(), resize.Bilinear)
		if err := imaging.Save(thumb, thumbnailPath(outputPath)); err != nil {
			fmt.Printf("Thumbnail failed: %v\n", err)
			return
		}
		fmt.Printf("Thumbnail saved as %s\n", thumbnailPath(outputPath))
	}
}

// thumbnailPath inserts a _thumb suffix before the file extension
func thumbnailPath(outputPath string) string {
	ext := filepath.Ext(outputPath)
	return strings.TrimSuffix(outputPath, ext) + "_thumb" + ext
}
