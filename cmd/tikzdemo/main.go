// Command tikzdemo demonstrates the tikz figure-to-markup converter.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/tikzgo/tikz"
)

func main() {
	var (
		floatFormat = flag.String("float-format", "", "printf verb for coordinates, e.g. %.3g")
		optionsFile = flag.String("options", "", "YAML options file")
		output      = flag.String("output", "", "output file (default stdout)")
	)
	flag.Parse()

	var runOpts []tikz.RunOption
	if *optionsFile != "" {
		o, err := tikz.LoadOptions(*optionsFile)
		if err != nil {
			log.Fatalf("Failed to load options: %v", err)
		}
		runOpts = o.RunOptions()
	}
	if *floatFormat != "" {
		runOpts = append(runOpts, tikz.WithFloatFormat(*floatFormat))
	}

	rc, err := tikz.NewRunContext(runOpts...)
	if err != nil {
		log.Fatalf("Failed to create run context: %v", err)
	}

	code, err := demoFigure(rc)
	if err != nil {
		log.Fatalf("Failed to convert: %v", err)
	}

	if *output == "" {
		fmt.Print(code)
		return
	}
	if err := os.WriteFile(*output, []byte(code), 0o644); err != nil {
		log.Fatalf("Failed to write %s: %v", *output, err)
	}
	log.Printf("Demo written to %s", *output)
}

// demoFigure builds a small figure with one of every shape kind and
// converts it.
func demoFigure(rc *tikz.RunContext) (string, error) {
	ax := tikz.NewAxes()
	ax.SetLegend("measured", "model")

	// Two-bar histogram sharing one series label.
	bar1 := tikz.NewRectangle(ax, 0, 0, 0.8, 3)
	bar2 := tikz.NewRectangle(ax, 1, 0, 0.8, 5)
	fill := tikz.Hex("#3b528b")
	for _, b := range []*tikz.Rectangle{bar1, bar2} {
		b.Style.FaceColor = &fill
		b.Style.EdgeColor = &tikz.Black
	}
	ax.AddHandle("measured", bar1, bar2)

	ellipse := tikz.NewEllipse(ax, tikz.Pt(3, 4), 2, 1)
	ellipse.Angle = 30
	ellipse.Style.EdgeColor = &tikz.Red
	ellipse.Label = "model"

	circle := tikz.NewCircle(ax, tikz.Pt(5, 5), 0.75)
	circle.Style.EdgeColor = &tikz.Blue

	arrow := tikz.NewArrow(ax, tikz.Pt(1, 1), tikz.Pt(2.5, 3.5), tikz.TipForward)
	arrow.Style.EdgeColor = &tikz.Black

	var blocks []string
	for _, s := range []tikz.Shape{bar1, bar2, ellipse, circle, arrow} {
		out, err := tikz.DrawPatch(rc, s)
		if err != nil {
			return "", err
		}
		blocks = append(blocks, out)
	}

	// A value-colored collection of unit squares.
	coll := tikz.NewCollection(ax)
	for i := 0; i < 4; i++ {
		p := tikz.NewPath()
		p.Rectangle(float64(i), -2, 0.9, 0.9)
		coll.Paths = append(coll.Paths, p)
	}
	coll.Values = []float64{0, 1, 2, 3}
	coll.Colormap = tikz.Viridis
	parts, err := tikz.DrawCollection(rc, coll)
	if err != nil {
		return "", err
	}
	blocks = append(blocks, parts...)

	var b strings.Builder
	for _, def := range rc.ColorDefinitions() {
		b.WriteString(def)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	for _, block := range blocks {
		b.WriteString(block)
	}
	return b.String(), nil
}
