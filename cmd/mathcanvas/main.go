// Command mathcanvas renders a demonstration scene and writes it to a
// file: PNG through the raster backend, SVG through the vector
// backend.
//
// Usage:
//
//	mathcanvas -backend svg -out scene.svg -size 1024x768
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math"
	"os"
	"strings"

	"github.com/mathud/mathcanvas"
	"github.com/mathud/mathcanvas/backend"
	"github.com/mathud/mathcanvas/backend/canvas"
	"github.com/mathud/mathcanvas/backend/svg"
	_ "github.com/mathud/mathcanvas/backend/wgpu"
	"github.com/mathud/mathcanvas/drawable"
	"github.com/mathud/mathcanvas/render"
)

func main() {
	backendName := flag.String("backend", "", "preferred backend (canvas, svg, wgpu)")
	out := flag.String("out", "scene.png", "output file")
	size := flag.String("size", "800x600", "surface size as WIDTHxHEIGHT")
	verbose := flag.Bool("v", false, "log backend selection and skipped elements")
	flag.Parse()

	if *verbose {
		mathcanvas.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	width, height, err := parseSize(*size)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	r, err := backend.CreateRenderer(*backendName, backend.WithSize(width, height))
	if err != nil {
		fmt.Fprintf(os.Stderr, "no rendering backend available: %v\n", err)
		os.Exit(1)
	}

	m := mathcanvas.NewMapper(float64(width), float64(height))
	m.ApplyZoom(40) // 40 px per math unit

	r.BeginFrame()
	r.RenderCartesian(drawable.NewCartesian(), m)
	for _, d := range demoScene() {
		if !r.Render(d, m) {
			fmt.Fprintf(os.Stderr, "skipped %s (%s)\n", d.Name(), d.Kind())
		}
	}
	r.EndFrame()

	classifyDemoPolygon()

	if err := writeOutput(*out, r); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println("wrote", *out)
}

// demoScene builds one of each drawable the renderer handles.
func demoScene() []drawable.Drawable {
	a := drawable.NewPoint("A", -4, 1, mathcanvas.Red)
	b := drawable.NewPoint("B", -1, 3, mathcanvas.Red)
	c := drawable.NewPoint("C", -3, 4, mathcanvas.Red)

	center := drawable.NewPoint("M", 3, 2, mathcanvas.Blue)
	circle, _ := drawable.NewCircle("k", center, 1.5, mathcanvas.Blue)
	ellipse, _ := drawable.NewEllipse("e", drawable.NewPoint("E", 3, -2, mathcanvas.Green),
		2, 1, math.Pi/6, mathcanvas.Green)

	sin := drawable.NewFunction("f", math.Sin, nil, mathcanvas.Blue)
	cos := drawable.NewFunction("g", math.Cos, nil, mathcanvas.Green)

	seg := drawable.NewSegment(a, b, mathcanvas.Black)
	seg.ShowLabel = true
	arc, _ := drawable.NewArc("arc", center, 2.5, 0, math.Pi/2, mathcanvas.Grey)

	return []drawable.Drawable{
		a, b, c,
		seg, arc,
		drawable.NewVector("v", b, c, mathcanvas.Black),
		drawable.NewAngle("alpha", a, b, c, mathcanvas.Grey),
		circle, ellipse,
		sin, cos,
		drawable.NewFunctionsArea("fg", sin, cos, mathcanvas.RGBA{}, 0),
		drawable.NewClosedShapeArea("kfill", circle, mathcanvas.Blue.WithAlpha(1), 0.2),
	}
}

// classifyDemoPolygon builds a regular pentagon from segments and
// reports its classification. Polygons are math models; they are
// classified, not drawn.
func classifyDemoPolygon() {
	n := 5
	pts := make([]*drawable.Point, n)
	for i := range pts {
		theta := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = drawable.NewPoint(fmt.Sprintf("P%d", i),
			2*math.Cos(theta), 2*math.Sin(theta), mathcanvas.Black)
	}
	segs := make([]*drawable.Segment, n)
	for i := range segs {
		segs[i] = drawable.NewSegment(pts[i], pts[(i+1)%n], mathcanvas.Black)
	}
	p, err := drawable.NewPentagon(segs, mathcanvas.Black)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	flags, err := p.Classify()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	fmt.Printf("pentagon %s: regular=%v irregular=%v\n", p.Name(), flags.Regular, flags.Irregular)
}

func parseSize(s string) (int, int, error) {
	var w, h int
	if _, err := fmt.Sscanf(strings.ToLower(s), "%dx%d", &w, &h); err != nil || w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("invalid -size %q, want WIDTHxHEIGHT", s)
	}
	return w, h, nil
}

// writeOutput serializes the frame in the format of whichever backend
// the factory selected.
func writeOutput(path string, r *render.Renderer) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	switch r.Primitives().(type) {
	case *svg.Surface:
		return svg.WriteDocument(f, r.Primitives())
	default:
		if err := canvas.WritePNG(f, r.Primitives()); err != nil {
			return fmt.Errorf("cannot serialize frame for this backend: %w", err)
		}
		return nil
	}
}
