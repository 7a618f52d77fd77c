package tikz

import (
	"fmt"
	"strings"
)

// drawFancyArrow emits a directed line or curved arrow.
//
// With a direct endpoint pair the arrow is a straight connector drawn
// with the arrow-style directives alone; otherwise the original path is
// emitted generically with the base draw options plus the arrow style.
// The legend entry is always attempted with the line classification:
// arrows never count as areas.
func drawFancyArrow(rc *RunContext, a *Arrow, opts []string) (string, error) {
	style, err := ArrowStyle(rc, a)
	if err != nil {
		return "", err
	}

	var content string
	if posA, posB, ok := a.Endpoints(); ok {
		content = fmt.Sprintf(
			"\\draw[%s] (axis cs:%s,%s) -- (axis cs:%s,%s);\n",
			strings.Join(style, ","),
			rc.ff(posA.X), rc.ff(posA.Y),
			rc.ff(posB.X), rc.ff(posB.Y),
		)
	} else {
		if a.OriginalPath == nil {
			return "", fmt.Errorf("tikz: arrow has neither endpoints nor a path")
		}
		content, _, _, err = DrawPath(rc, a.OriginalPath, append(opts, style...))
		if err != nil {
			return "", err
		}
	}

	content += patchLegend(rc, a.axes, a.Label, opts, "line legend")
	return content, nil
}
