package tikz

// NoLegend is the placeholder label carried by shapes that were never
// given an explicit legend label. Shapes labeled NoLegend draw normally
// but contribute no legend entry.
const NoLegend = "_nolegend_"

// ShapeKind identifies the concrete variant of a Shape.
type ShapeKind int

const (
	KindRectangle ShapeKind = iota
	KindEllipse
	KindCircle
	KindPolygon
	KindArrow
)

// String returns the kind name for logging.
func (k ShapeKind) String() string {
	switch k {
	case KindRectangle:
		return "rectangle"
	case KindEllipse:
		return "ellipse"
	case KindCircle:
		return "circle"
	case KindPolygon:
		return "polygon"
	case KindArrow:
		return "arrow"
	}
	return "unknown"
}

// Style carries the resolved visual attributes of a shape. Nil color
// pointers mean "unset": the style resolver emits no directive for them.
type Style struct {
	EdgeColor *RGBA
	FaceColor *RGBA
	LineStyle LineStyle
	LineWidth float64 // stroke width in points; 0 means default
	Hatch     Hatch
}

// LineStyle selects the dash pattern of a stroke.
type LineStyle string

// Line styles matching the usual plotting-library shorthand.
const (
	Solid   LineStyle = "solid"
	Dashed  LineStyle = "dashed"
	Dotted  LineStyle = "dotted"
	DashDot LineStyle = "dashdot"
)

// Hatch selects a fill pattern drawn over the face color.
type Hatch string

// Hatch patterns matching the usual plotting-library shorthand.
const (
	HatchNone       Hatch = ""
	HatchDiagonal   Hatch = "/"
	HatchBackDiag   Hatch = "\\"
	HatchVertical   Hatch = "|"
	HatchHorizontal Hatch = "-"
	HatchCross      Hatch = "+"
	HatchX          Hatch = "x"
	HatchDots       Hatch = "."
	HatchStars      Hatch = "*"
)

// Shape is the closed set of drawable figure objects: rectangle,
// ellipse, circle, generic polygon, and arrow. DrawPatch dispatches on
// the concrete variant.
type Shape interface {
	Kind() ShapeKind

	// base returns the shared shape fields (unexported: keeps the
	// variant set closed to this package).
	base() *shapeBase
}

// shapeBase carries the fields shared by all shape variants.
type shapeBase struct {
	axes *Axes // owning axes, lookup only; may be nil

	// Label is the legend label. Empty means "structural decoration"
	// for rectangles; NoLegend means "data without a legend entry".
	Label string

	// Style holds the shape's resolved visual attributes.
	Style Style
}

func (b *shapeBase) base() *shapeBase { return b }

// Axes returns the owning axes, or nil for a free-standing shape.
func (b *shapeBase) Axes() *Axes { return b.axes }

// Rectangle is an axis-aligned box anchored at its lower-left corner.
type Rectangle struct {
	shapeBase
	X, Y          float64
	Width, Height float64
}

// NewRectangle creates a rectangle attached to ax. The label defaults to
// the NoLegend placeholder, matching how bar-chart members are labeled.
func NewRectangle(ax *Axes, x, y, w, h float64) *Rectangle {
	return &Rectangle{
		shapeBase: shapeBase{axes: ax, Label: NoLegend},
		X:         x, Y: y,
		Width: w, Height: h,
	}
}

// Kind returns KindRectangle.
func (*Rectangle) Kind() ShapeKind { return KindRectangle }

// Ellipse is a center-anchored ellipse. Width and Height are the full
// axis lengths; Angle is the rotation around the center in degrees.
type Ellipse struct {
	shapeBase
	Center        Point
	Width, Height float64
	Angle         float64
}

// NewEllipse creates an ellipse attached to ax.
func NewEllipse(ax *Axes, center Point, width, height float64) *Ellipse {
	return &Ellipse{
		shapeBase: shapeBase{axes: ax, Label: NoLegend},
		Center:    center,
		Width:     width, Height: height,
	}
}

// Kind returns KindEllipse.
func (*Ellipse) Kind() ShapeKind { return KindEllipse }

// Circle is a center-anchored circle. It is drawn with the single-radius
// form, never through the ellipse width/height formula.
type Circle struct {
	shapeBase
	Center Point
	Radius float64
}

// NewCircle creates a circle attached to ax.
func NewCircle(ax *Axes, center Point, radius float64) *Circle {
	return &Circle{
		shapeBase: shapeBase{axes: ax, Label: NoLegend},
		Center:    center,
		Radius:    radius,
	}
}

// Kind returns KindCircle.
func (*Circle) Kind() ShapeKind { return KindCircle }

// Polygon is a generic patch drawn from an arbitrary vector path.
type Polygon struct {
	shapeBase
	Path *Path
}

// NewPolygon creates a generic patch attached to ax.
func NewPolygon(ax *Axes, path *Path) *Polygon {
	return &Polygon{
		shapeBase: shapeBase{axes: ax, Label: NoLegend},
		Path:      path,
	}
}

// Kind returns KindPolygon.
func (*Polygon) Kind() ShapeKind { return KindPolygon }

// Arrow is a directed line or curved arrow. When PosA and PosB are both
// set, the arrow is a straight connector between them; otherwise
// OriginalPath (the pre-rendering path) is emitted as a generic path.
//
// A fill color set on an arrow refers to the arrowhead, not the shaft
// path, and is ignored during style resolution.
type Arrow struct {
	shapeBase
	Tip          TipSpec
	PosA, PosB   *Point
	OriginalPath *Path
}

// TipSpec selects the arrowhead placement.
type TipSpec string

// Arrowhead placements.
const (
	TipNone    TipSpec = "-"
	TipForward TipSpec = "->"
	TipBack    TipSpec = "<-"
	TipBoth    TipSpec = "<->"
)

// NewArrow creates a straight arrow between two endpoints.
func NewArrow(ax *Axes, a, b Point, tip TipSpec) *Arrow {
	return &Arrow{
		shapeBase: shapeBase{axes: ax, Label: NoLegend},
		Tip:       tip,
		PosA:      &a,
		PosB:      &b,
	}
}

// NewArrowPath creates a curved arrow following path.
func NewArrowPath(ax *Axes, path *Path, tip TipSpec) *Arrow {
	return &Arrow{
		shapeBase:    shapeBase{axes: ax, Label: NoLegend},
		Tip:          tip,
		OriginalPath: path,
	}
}

// Kind returns KindArrow.
func (*Arrow) Kind() ShapeKind { return KindArrow }

// Endpoints returns the direct endpoint pair, if the arrow has one.
func (a *Arrow) Endpoints() (Point, Point, bool) {
	if a.PosA == nil || a.PosB == nil {
		return Point{}, Point{}, false
	}
	return *a.PosA, *a.PosB, true
}
