package tikz

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyPath is returned when a path with no elements (or one that
// does not begin with a move) reaches the path emitter.
var ErrEmptyPath = errors.New("tikz: path must start with a move")

// DrawPath converts a vector path into one \path drawing command.
//
// It returns the emitted text, the draw options actually written (the
// effective options, which callers reuse for the legend image), and the
// area classification: a path counts as an area when it ends closed or
// when its options fill it. Quadratic curve segments are elevated to the
// cubic form, the only curve form the markup accepts.
func DrawPath(rc *RunContext, p *Path, opts []string) (string, []string, bool, error) {
	elems := p.Elements()
	if len(elems) == 0 {
		return "", nil, false, ErrEmptyPath
	}
	if _, ok := elems[0].(MoveTo); !ok {
		return "", nil, false, ErrEmptyPath
	}

	coord := func(pt Point) string {
		return fmt.Sprintf("(axis cs:%s,%s)", rc.ff(pt.X), rc.ff(pt.Y))
	}

	segments := make([]string, 0, len(elems))
	var current Point
	for _, elem := range elems {
		switch e := elem.(type) {
		case MoveTo:
			segments = append(segments, coord(e.Point))
			current = e.Point
		case LineTo:
			segments = append(segments, "--"+coord(e.Point))
			current = e.Point
		case QuadTo:
			// Elevate to cubic: c1 = p0 + 2/3 (q - p0), c2 = p1 + 2/3 (q - p1).
			c1 := current.Lerp(e.Control, 2.0/3.0)
			c2 := e.Point.Lerp(e.Control, 2.0/3.0)
			segments = append(segments, fmt.Sprintf(
				"..controls %s and %s..%s", coord(c1), coord(c2), coord(e.Point)))
			current = e.Point
		case CubicTo:
			segments = append(segments, fmt.Sprintf(
				"..controls %s and %s..%s",
				coord(e.Control1), coord(e.Control2), coord(e.Point)))
			current = e.Point
		case Close:
			segments = append(segments, "--cycle")
		}
	}

	var b strings.Builder
	b.WriteString("\\path [")
	b.WriteString(strings.Join(opts, ", "))
	b.WriteString("]\n")
	b.WriteString(strings.Join(segments, "\n"))
	b.WriteString(";\n\n")

	isArea := p.IsClosed() || hasFill(opts)
	return b.String(), opts, isArea, nil
}

// hasFill reports whether the options fill the path.
func hasFill(opts []string) bool {
	for _, o := range opts {
		if strings.HasPrefix(o, "fill=") {
			return true
		}
	}
	return false
}
