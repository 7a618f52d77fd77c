package tikz

import "fmt"

// DrawStyle resolves a shape style into the ordered list of draw
// options consumed by the markup's \draw[...] construct. The order is
// fixed for deterministic output: edge color, face color, opacities,
// line width, dash pattern, hatch pattern.
//
// Unset colors (nil pointers) produce no directive. A fully transparent
// edge color produces "draw=none". Line width 1 is the markup default
// and produces no directive; other widths are scaled by the usual
// 0.4pt-per-unit plot convention.
func DrawStyle(rc *RunContext, s Style) []string {
	var opts []string

	if s.EdgeColor != nil {
		if s.EdgeColor.A == 0 {
			opts = append(opts, "draw=none")
		} else {
			opts = append(opts, "draw="+rc.colorName(*s.EdgeColor))
			if s.EdgeColor.A < 1 {
				opts = append(opts, "draw opacity="+rc.ff(s.EdgeColor.A))
			}
		}
	}

	if s.FaceColor != nil && s.FaceColor.A > 0 {
		opts = append(opts, "fill="+rc.colorName(*s.FaceColor))
		if s.FaceColor.A < 1 {
			opts = append(opts, "fill opacity="+rc.ff(s.FaceColor.A))
		}
	}

	if s.LineWidth > 0 && s.LineWidth != 1 {
		opts = append(opts, fmt.Sprintf("line width=%spt", rc.ff(0.4*s.LineWidth)))
	}

	if d, ok := dashOption(s.LineStyle); !ok {
		rc.logger.Warn("unknown line style, keeping solid", "style", string(s.LineStyle))
	} else if d != "" {
		opts = append(opts, d)
	}

	if s.Hatch != HatchNone {
		if p, ok := hatchPattern(s.Hatch); ok {
			opts = append(opts, p)
			if s.EdgeColor != nil && s.EdgeColor.A > 0 {
				opts = append(opts, "pattern color="+rc.colorName(*s.EdgeColor))
			}
		} else {
			rc.logger.Warn("unknown hatch pattern, skipping", "hatch", string(s.Hatch))
		}
	}

	return opts
}

// dashOption maps a line style to its markup dash directive. Solid (and
// the zero value) map to no directive. The second return is false only
// for unrecognized styles.
func dashOption(ls LineStyle) (string, bool) {
	switch ls {
	case "", Solid:
		return "", true
	case Dashed:
		return "dashed", true
	case Dotted:
		return "dotted", true
	case DashDot:
		return "dashdotted", true
	}
	return "", false
}

// hatchPattern maps a hatch shorthand to the markup's pattern library.
func hatchPattern(h Hatch) (string, bool) {
	switch h {
	case HatchDiagonal:
		return "pattern=north east lines", true
	case HatchBackDiag:
		return "pattern=north west lines", true
	case HatchVertical:
		return "pattern=vertical lines", true
	case HatchHorizontal:
		return "pattern=horizontal lines", true
	case HatchCross:
		return "pattern=grid", true
	case HatchX:
		return "pattern=crosshatch", true
	case HatchDots:
		return "pattern=dots", true
	case HatchStars:
		return "pattern=fivepointed stars", true
	}
	return "", false
}

// ArrowStyle resolves an arrow's tip specification into the directives
// for its connector line: the arrowhead marker plus the shaft's dash and
// width options. An unrecognized tip is a contract violation from the
// figure model and reported as an error.
func ArrowStyle(rc *RunContext, a *Arrow) ([]string, error) {
	var tip string
	switch a.Tip {
	case TipNone:
		tip = ""
	case "", TipForward:
		tip = "->"
	case TipBack:
		tip = "<-"
	case TipBoth:
		tip = "<->"
	default:
		return nil, fmt.Errorf("tikz: unknown arrow tip %q", string(a.Tip))
	}

	var opts []string
	if tip != "" {
		opts = append(opts, tip)
	}
	st := a.base().Style
	if st.EdgeColor != nil && st.EdgeColor.A > 0 {
		opts = append(opts, "draw="+rc.colorName(*st.EdgeColor))
	}
	if st.LineWidth > 0 && st.LineWidth != 1 {
		opts = append(opts, fmt.Sprintf("line width=%spt", rc.ff(0.4*st.LineWidth)))
	}
	if d, ok := dashOption(st.LineStyle); ok && d != "" {
		opts = append(opts, d)
	}
	return opts, nil
}
