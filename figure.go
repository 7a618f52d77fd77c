package tikz

// Axes models the part of a plot's axes that legend binding needs to
// see: the active legend (if any) and the registered (handle, label)
// pairs. Shapes hold a back-reference to their axes for lookup only;
// the axes never own the shapes.
type Axes struct {
	legend  *Legend
	handles []LegendHandle
}

// NewAxes creates an empty axes.
func NewAxes() *Axes {
	return &Axes{}
}

// Legend returns the active legend, or nil if none exists.
func (a *Axes) Legend() *Legend {
	return a.legend
}

// SetLegend installs a legend with the given entry texts and returns it.
// Passing no texts installs an empty legend (present but entry-less).
func (a *Axes) SetLegend(texts ...string) *Legend {
	a.legend = &Legend{texts: texts}
	return a.legend
}

// AddHandle registers a (handle, label) pair for legend reconciliation.
// The children are the shapes the handle groups, e.g. the rectangles of
// one bar-chart series.
func (a *Axes) AddHandle(label string, children ...Shape) {
	a.handles = append(a.handles, LegendHandle{Label: label, Children: children})
}

// HandlesLabels returns the registered (handle, label) pairs.
func (a *Axes) HandlesLabels() []LegendHandle {
	return a.handles
}

// Legend is the set of entry texts registered in an axes' legend.
type Legend struct {
	texts []string
}

// Texts returns the registered entry texts.
func (l *Legend) Texts() []string {
	return l.texts
}

// contains reports whether label is among the registered entry texts.
func (l *Legend) contains(label string) bool {
	for _, t := range l.texts {
		if t == label {
			return true
		}
	}
	return false
}

// LegendHandle is one (handle, label) pair of an axes' legend: a label
// plus the shapes grouped under it.
type LegendHandle struct {
	Label    string
	Children []Shape
}

// Contains reports whether s is one of the handle's children, compared
// by identity.
func (h LegendHandle) Contains(s Shape) bool {
	for _, c := range h.Children {
		if c == s {
			return true
		}
	}
	return false
}
