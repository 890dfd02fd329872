// Command rayplot renders 2D cross-section plots of optical systems
// described by Lisp prescription files.
//
// Usage:
//
//	rayplot [flags] prescription.lisp
//
// The prescription is evaluated in a sandbox, validated, and plotted as
// stacked x-z and y-z elevation views (SVG) or a single view (DXF).
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/mkrell/rayplot/pkg/engine"
	"github.com/mkrell/rayplot/pkg/geometry"
	"github.com/mkrell/rayplot/pkg/plot"
	"github.com/mkrell/rayplot/pkg/render"
	"github.com/mkrell/rayplot/pkg/system"
)

func main() {
	var (
		outPath = flag.String("o", "out.svg", "output file path")
		view    = flag.String("view", "both", "view to render: xz, yz, or both (SVG only)")
		format  = flag.String("format", "svg", "output format: svg or dxf")
		width   = flag.Float64("width", 800, "figure width in SVG units")
		height  = flag.Float64("height", 800, "figure height in SVG units")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] prescription.lisp\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	srcPath := flag.Arg(0)

	source, err := os.ReadFile(srcPath)
	if err != nil {
		log.Fatalf("read prescription: %v", err)
	}

	eng := engine.NewEngine()
	pres, evalErrs, err := eng.Evaluate(string(source))
	if err != nil {
		log.Fatalf("evaluate %s: %v", srcPath, err)
	}
	if len(evalErrs) > 0 {
		for _, e := range evalErrs {
			fmt.Fprintf(os.Stderr, "%s: %s\n", srcPath, e.Error())
		}
		os.Exit(1)
	}

	result := system.ValidateAll(pres.System)
	for _, w := range result.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w.Message)
	}
	if len(result.Errors) > 0 {
		for _, e := range result.Errors {
			fmt.Fprintf(os.Stderr, "%s\n", e.Error())
		}
		os.Exit(1)
	}

	p := plot.New(pres.System, geometry.NewModel(), geometry.LabFrame, pres.RayStyle)

	switch *format {
	case "svg":
		if err := writeSVG(p, *outPath, *view, *width, *height); err != nil {
			log.Fatalf("write %s: %v", *outPath, err)
		}
	case "dxf":
		if err := writeDXF(p, *outPath, *view); err != nil {
			log.Fatalf("write %s: %v", *outPath, err)
		}
	default:
		log.Fatalf("unknown format %q, expected svg or dxf", *format)
	}
}

func writeSVG(p *plot.Plotter, path, view string, width, height float64) error {
	fig := render.NewFigure(width, height)

	switch view {
	case "xz":
		p.PlotXZ(fig.AddView())
	case "yz":
		p.PlotYZ(fig.AddView())
	case "both":
		p.Plot2D(fig)
	default:
		return fmt.Errorf("unknown view %q, expected xz, yz, or both", view)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := fig.WriteSVG(f); err != nil {
		return err
	}
	return f.Close()
}

// writeDXF renders a single view; DXF output has no stacked-view layout.
func writeDXF(p *plot.Plotter, path, view string) error {
	d := render.NewDrawing()

	switch view {
	case "xz":
		p.PlotXZ(d)
	case "yz", "both":
		// "both" falls back to the y-z elevation for DXF.
		p.PlotYZ(d)
	default:
		return fmt.Errorf("unknown view %q, expected xz, yz, or both", view)
	}

	return d.SaveAs(path)
}
