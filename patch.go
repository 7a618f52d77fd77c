package tikz

import (
	"fmt"
	"strings"
)

// DrawPatch returns the drawing commands for a single shape.
//
// Arrows are special-cased before the uniform style resolution because
// their fill color refers to the arrowhead, not the shaft path, and must
// not become a fill directive. All other shapes resolve their style
// uniformly and then branch by geometric specialization; anything
// without one goes through the generic path emitter.
//
// DrawPatch mutates only the run-scoped legend sets in rc.
func DrawPatch(rc *RunContext, s Shape) (string, error) {
	rc.logger.Debug("emitting patch", "kind", s.Kind(), "label", s.base().Label)

	if arrow, ok := s.(*Arrow); ok {
		st := arrow.base().Style
		st.FaceColor = nil // fill refers to the head, not the shaft path
		return drawFancyArrow(rc, arrow, DrawStyle(rc, st))
	}

	// Gather the draw options.
	opts := DrawStyle(rc, s.base().Style)

	switch obj := s.(type) {
	case *Rectangle:
		// rectangle specialization
		return drawRectangle(rc, obj, opts)
	case *Ellipse:
		// ellipse specialization
		return drawEllipse(rc, obj, opts)
	case *Circle:
		// circle specialization
		return drawCircle(rc, obj, opts)
	case *Polygon:
		// regular patch
		return drawPolygon(rc, obj, opts)
	}
	return "", fmt.Errorf("tikz: unsupported shape kind %v", s.Kind())
}

// inLegend reports whether the axes' active legend registers the label.
func inLegend(ax *Axes, label string) bool {
	if ax == nil {
		return false
	}
	leg := ax.Legend()
	if leg == nil {
		return false
	}
	return leg.contains(label)
}

// patchLegend emits the legend image/entry pair for a patch, or nothing
// if the patch is not in the legend or its label was already emitted
// during this run. legendType is "area legend" or "line legend"
// depending on the underlying path classification.
func patchLegend(rc *RunContext, ax *Axes, label string, opts []string, legendType string) string {
	if !inLegend(ax, label) {
		return ""
	}
	if _, seen := rc.legendLabels[label]; seen {
		return ""
	}
	rc.legendLabels[label] = struct{}{}

	// Patch legend entries need \addlegendimage in the target markup.
	do := ""
	if len(opts) > 0 {
		do = strings.Join(append([]string{legendType}, opts...), ", ")
	}
	return fmt.Sprintf("\\addlegendimage{%s}\n\\addlegendentry{%s}\n\n", do, EscapeTeX(label))
}

// drawRectangle emits the two-corner rectangle form.
//
// Rectangles with labels are plot objects (bar charts etc.); even those
// without explicit labels carry the NoLegend placeholder. Rectangles
// with an empty label correspond to axis or legend decoration that the
// target markup draws itself, and are skipped entirely.
func drawRectangle(rc *RunContext, r *Rectangle, opts []string) (string, error) {
	label := r.Label
	if label == "" {
		return "", nil
	}

	// Recover the actual label: bar charts give their rectangles only
	// the placeholder, while the real label lives on the legend handle
	// grouping them.
	if r.axes != nil {
		var found []string
		for _, h := range r.axes.HandlesLabels() {
			if h.Contains(r) {
				found = append(found, h.Label)
			}
		}
		if len(found) == 1 {
			label = found[0]
		}
	}

	do := strings.Join(opts, ",")
	cont := fmt.Sprintf(
		"\\draw[%s] (axis cs:%s,%s) rectangle (axis cs:%s,%s);\n",
		do,
		rc.ff(r.X), rc.ff(r.Y),
		rc.ff(r.X+r.Width), rc.ff(r.Y+r.Height),
	)

	if label != NoLegend {
		if _, seen := rc.rectangleLegends[label]; !seen {
			rc.rectangleLegends[label] = struct{}{}
			rc.legendLabels[label] = struct{}{}
			cont += fmt.Sprintf("\\addlegendimage{ybar,ybar legend,%s}\n", do)
			cont += fmt.Sprintf("\\addlegendentry{%s}\n\n", EscapeTeX(label))
		}
	}
	return cont, nil
}

// drawEllipse emits the center-and-radii ellipse form. A nonzero
// rotation angle appends a rotate-around directive so the legend image
// picks it up as well.
func drawEllipse(rc *RunContext, e *Ellipse, opts []string) (string, error) {
	x, y := e.Center.X, e.Center.Y

	if e.Angle != 0 {
		opts = append(opts, fmt.Sprintf(
			"rotate around={%s:(axis cs:%s,%s)}", rc.ff(e.Angle), rc.ff(x), rc.ff(y)))
	}

	content := fmt.Sprintf(
		"\\draw[%s] (axis cs:%s,%s) ellipse (%s and %s);\n",
		strings.Join(opts, ","),
		rc.ff(x), rc.ff(y),
		rc.ff(0.5*e.Width), rc.ff(0.5*e.Height),
	)
	content += patchLegend(rc, e.axes, e.Label, opts, "area legend")
	return content, nil
}

// drawCircle emits the single-radius circle form.
func drawCircle(rc *RunContext, c *Circle, opts []string) (string, error) {
	content := fmt.Sprintf(
		"\\draw[%s] (axis cs:%s,%s) circle (%s);\n",
		strings.Join(opts, ","),
		rc.ff(c.Center.X), rc.ff(c.Center.Y),
		rc.ff(c.Radius),
	)
	content += patchLegend(rc, c.axes, c.Label, opts, "area legend")
	return content, nil
}

// drawPolygon emits a generic patch through the path emitter.
func drawPolygon(rc *RunContext, p *Polygon, opts []string) (string, error) {
	content, _, isArea, err := DrawPath(rc, p.Path, opts)
	if err != nil {
		return "", err
	}
	legendType := "line legend"
	if isArea {
		legendType = "area legend"
	}
	content += patchLegend(rc, p.axes, p.Label, opts, legendType)
	return content, nil
}
