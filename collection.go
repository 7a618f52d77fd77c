package tikz

import (
	"errors"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrNoPaths is returned when a collection's style arrays require more
// members than its (empty) path list can supply.
var ErrNoPaths = errors.New("tikz: collection has no paths")

// Collection is a group of shapes sharing parallel per-member style
// arrays. Array lengths may differ from each other and from the path
// count: members are paired positionally with wraparound, and an empty
// array means "unset" for every member.
type Collection struct {
	axes *Axes

	// Label is the legend label for the whole collection.
	Label string

	Paths      []*Path
	EdgeColors []RGBA
	FaceColors []RGBA
	LineStyles []LineStyle
	LineWidths []float64
	Transforms []Matrix
	Offsets    []Point

	// Values and Colormap drive the scalar-mappable face colors. When
	// both are set, UpdateScalarMappable recomputes FaceColors from
	// them, overriding any explicit face colors.
	Values   []float64
	Colormap *Colormap
}

// NewCollection creates an empty collection attached to ax.
func NewCollection(ax *Axes) *Collection {
	return &Collection{axes: ax, Label: NoLegend}
}

// Axes returns the owning axes, or nil.
func (c *Collection) Axes() *Axes { return c.axes }

// UpdateScalarMappable recomputes the face colors from the current
// value-to-color mapping. It must run before the face colors are read,
// or stale colors result. Collections without values or a colormap are
// left untouched.
func (c *Collection) UpdateScalarMappable() {
	if len(c.Values) == 0 || c.Colormap == nil {
		return
	}
	lo, hi := c.Values[0], c.Values[0]
	for _, v := range c.Values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	colors := make([]RGBA, len(c.Values))
	for i, v := range c.Values {
		t := 0.0
		if hi > lo {
			t = (v - lo) / (hi - lo)
		}
		colors[i] = c.Colormap.At(t)
	}
	c.FaceColors = colors
}

// cyclic indexes s with wraparound. An empty slice yields nil, the
// "unset" placeholder, rather than a zero-length iteration.
func cyclic[T any](s []T, i int) *T {
	if len(s) == 0 {
		return nil
	}
	return &s[i%len(s)]
}

// maxLen returns the longest of the given lengths.
func maxLen(ns ...int) int {
	m := 0
	for _, n := range ns {
		if n > m {
			m = n
		}
	}
	return m
}

// DrawCollection returns the drawing commands for a collection: one
// block per paired member, followed by exactly one legend block for the
// whole collection.
//
// The iteration length is the longest of all the parallel arrays; every
// shorter array wraps around. A member with a transform gets its path
// transformed by the affine transform composed with a translation by the
// member's offset; without a transform the raw path is used and the
// offset is not applied. The collection's legend is classified area or
// line by whichever path classification the loop computed last.
func DrawCollection(rc *RunContext, c *Collection) ([]string, error) {
	// recompute the face colors
	c.UpdateScalarMappable()

	rc.logger.Debug("emitting collection",
		"paths", len(c.Paths), "label", c.Label)

	n := maxLen(
		len(c.Paths),
		len(c.EdgeColors), len(c.FaceColors),
		len(c.LineStyles), len(c.LineWidths),
		len(c.Transforms), len(c.Offsets),
	)

	var content []string
	var lastOpts []string
	lastArea := false
	for i := 0; i < n; i++ {
		pp := cyclic(c.Paths, i)
		if pp == nil {
			return nil, ErrNoPaths
		}

		st := Style{
			EdgeColor: cyclic(c.EdgeColors, i),
			FaceColor: cyclic(c.FaceColors, i),
		}
		if ls := cyclic(c.LineStyles, i); ls != nil {
			st.LineStyle = *ls
		}
		if lw := cyclic(c.LineWidths, i); lw != nil {
			st.LineWidth = *lw
		}
		opts := DrawStyle(rc, st)

		path := *pp
		if t := cyclic(c.Transforms, i); t != nil {
			var off Point
			if o := cyclic(c.Offsets, i); o != nil {
				off = *o
			}
			path = path.Transform(Translate(off.X, off.Y).Multiply(*t))
		}

		cont, eff, isArea, err := DrawPath(rc, path, opts)
		if err != nil {
			return nil, err
		}
		lastOpts, lastArea = eff, isArea
		content = append(content, cont)
	}

	legendType := "line legend"
	if lastArea {
		legendType = "area legend"
	}
	legend := patchLegend(rc, c.axes, c.Label, lastOpts, legendType)
	if legend == "" {
		legend = "\n"
	}
	content = append(content, legend)

	return content, nil
}

// Colormap interpolates between a fixed sequence of color stops spread
// evenly over [0, 1].
type Colormap struct {
	stops []colorful.Color
}

// NewColormap creates a colormap from at least two stops.
func NewColormap(stops ...RGBA) *Colormap {
	if len(stops) < 2 {
		panic("tikz: colormap needs at least two stops")
	}
	cs := make([]colorful.Color, len(stops))
	for i, s := range stops {
		cs[i] = colorfulOf(s)
	}
	return &Colormap{stops: cs}
}

// At returns the color at position t in [0, 1]. Out-of-range values
// clamp to the end stops.
func (cm *Colormap) At(t float64) RGBA {
	if t <= 0 {
		c := cm.stops[0]
		return RGB(c.R, c.G, c.B)
	}
	if t >= 1 {
		c := cm.stops[len(cm.stops)-1]
		return RGB(c.R, c.G, c.B)
	}
	scaled := t * float64(len(cm.stops)-1)
	i := int(scaled)
	c := cm.stops[i].BlendRgb(cm.stops[i+1], scaled-float64(i))
	return RGB(c.R, c.G, c.B)
}

// Viridis is the perceptually uniform default colormap, sampled at five
// anchor stops.
var Viridis = NewColormap(
	Hex("#440154"),
	Hex("#3b528b"),
	Hex("#21918c"),
	Hex("#5ec962"),
	Hex("#fde725"),
)
