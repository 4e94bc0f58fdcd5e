// Command sphview renders a spherical-harmonic coefficient set as a 3D
// view (interactive HTML) and/or a 2D field map (PNG).
//
// Usage:
//
//	go run ./cmd/sphview -in coeffs.json -html view.html [flags]
//
// Flags:
//
//	-in        Coefficient set JSON file (required)
//	-order     Spherical-harmonic truncation order (default: 3)
//	-kr        Frequency bin index (default: 1)
//	-style     Projection style: sphere, shape, scatter or flat (default: sphere)
//	-colorize  Map field intensity through the colormap (default: true)
//	-offset    Radial offset for the shape style (default: 0)
//	-scale     Radial scale for the shape style (default: 1)
//	-html      Output path for the interactive 3D view
//	-map       Output path for the 2D field map PNG
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/acousticlab/soundfield.view/internal/coeffio"
	"github.com/acousticlab/soundfield.view/internal/field"
	"github.com/acousticlab/soundfield.view/internal/render"
	"github.com/acousticlab/soundfield.view/internal/spharm"
)

func main() {
	in := flag.String("in", "", "Coefficient set JSON file (required)")
	order := flag.Int("order", 3, "Spherical-harmonic truncation order")
	kr := flag.Int("kr", 1, "Frequency bin index")
	style := flag.String("style", "sphere", "Projection style: sphere, shape, scatter or flat")
	colorize := flag.Bool("colorize", true, "Map field intensity through the colormap")
	offset := flag.Float64("offset", 0, "Radial offset for the shape style")
	scale := flag.Float64("scale", 1, "Radial scale for the shape style")
	htmlOut := flag.String("html", "", "Output path for the interactive 3D view")
	mapOut := flag.String("map", "", "Output path for the 2D field map PNG")
	flag.Parse()

	if *in == "" {
		flag.Usage()
		os.Exit(2)
	}
	if *htmlOut == "" && *mapOut == "" {
		log.Fatal("nothing to do: pass -html and/or -map")
	}

	set, err := coeffio.LoadFile(*in)
	if err != nil {
		log.Fatalf("Failed to load coefficient set: %v", err)
	}
	coeffs, filters, err := set.Matrices()
	if err != nil {
		log.Fatalf("Invalid coefficient set: %v", err)
	}

	opts := field.DefaultOptions()
	opts.Order = *order
	opts.KRIndex = *kr

	log.Printf("Evaluating plane-wave decomposition (order=%d, kr=%d)", opts.Order, opts.KRIndex)
	f, err := field.MakeMTX(spharm.PWD{}, coeffs, filters, opts)
	if err != nil {
		log.Fatalf("Field evaluation failed: %v", err)
	}

	if *htmlOut != "" {
		if err := writeHTML(f, *htmlOut, *style, *colorize, *offset, *scale); err != nil {
			log.Fatalf("3D view failed: %v", err)
		}
		log.Printf("Wrote 3D view to %s", *htmlOut)
	}

	if *mapOut != "" {
		normalized, err := field.Normalize(f)
		if err != nil {
			log.Fatalf("Field map failed: %v", err)
		}
		title := fmt.Sprintf("%s (order %d, kr %d)", filepath.Base(*in), opts.Order, opts.KRIndex)
		if err := render.SaveFieldMap(normalized, nil, title, *mapOut); err != nil {
			log.Fatalf("Field map failed: %v", err)
		}
		log.Printf("Wrote field map to %s", *mapOut)
	}
}

func writeHTML(f *field.ScalarField, path, style string, colorize bool, offset, scale float64) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()

	canvas := render.NewEChartsCanvas(out, fmt.Sprintf("soundfield %s view", style))
	view, err := render.Visualize3D(canvas, f, render.VisualOptions{
		Style:    style,
		Colorize: colorize,
		Offset:   offset,
		Scale:    scale,
	})
	if err != nil {
		return err
	}
	log.Printf("View %s rendered (%s)", view.ID, view.Style)
	return view.Close()
}
