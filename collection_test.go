package tikz

import (
	"strings"
	"testing"
)

func unitSquares(n int) []*Path {
	paths := make([]*Path, n)
	for i := range paths {
		p := NewPath()
		p.Rectangle(float64(i), 0, 1, 1)
		paths[i] = p
	}
	return paths
}

func TestDrawCollectionEdgeColorWraparound(t *testing.T) {
	rc := newRun(t)
	c := NewCollection(nil)
	c.Paths = unitSquares(5)
	c.EdgeColors = []RGBA{Red}

	parts, err := DrawCollection(rc, c)
	if err != nil {
		t.Fatalf("DrawCollection() = %v", err)
	}
	// 5 member blocks plus the trailing legend separator.
	if len(parts) != 6 {
		t.Fatalf("DrawCollection() returned %d parts, want 6", len(parts))
	}
	for i, part := range parts[:5] {
		if !strings.Contains(part, "draw=red") {
			t.Errorf("member %d missing wrapped edge color:\n%s", i, part)
		}
	}
	if parts[5] != "\n" {
		t.Errorf("collection outside any legend must end with a bare separator, got %q", parts[5])
	}
}

func TestDrawCollectionEmptyTransformsSkipOffsets(t *testing.T) {
	rc := newRun(t)
	c := NewCollection(nil)
	c.Paths = unitSquares(2)
	c.Offsets = []Point{Pt(10, 20), Pt(30, 40)} // no transforms: must be ignored

	parts, err := DrawCollection(rc, c)
	if err != nil {
		t.Fatalf("DrawCollection() = %v", err)
	}
	if !strings.Contains(parts[0], "(axis cs:0,0)") {
		t.Errorf("member 0 path must be unmodified without a transform:\n%s", parts[0])
	}
	if strings.Contains(parts[0], "10") || strings.Contains(parts[1], "31") {
		t.Errorf("offsets must not be applied without a transform:\n%s%s", parts[0], parts[1])
	}
}

func TestDrawCollectionTransformComposesOffset(t *testing.T) {
	rc := newRun(t)
	c := NewCollection(nil)
	c.Paths = unitSquares(1)
	c.Transforms = []Matrix{Scale(2, 2)}
	c.Offsets = []Point{Pt(10, 20)}

	parts, err := DrawCollection(rc, c)
	if err != nil {
		t.Fatalf("DrawCollection() = %v", err)
	}
	// (0,0) scaled then translated: (10,20); (1,1) becomes (12,22).
	if !strings.Contains(parts[0], "(axis cs:10,20)") {
		t.Errorf("transform+offset composition wrong:\n%s", parts[0])
	}
	if !strings.Contains(parts[0], "(axis cs:12,22)") {
		t.Errorf("transform+offset composition wrong:\n%s", parts[0])
	}
}

func TestDrawCollectionIterationLength(t *testing.T) {
	rc := newRun(t)
	c := NewCollection(nil)
	c.Paths = unitSquares(2)
	c.EdgeColors = []RGBA{Red, Blue, Black} // longest array wins

	parts, err := DrawCollection(rc, c)
	if err != nil {
		t.Fatalf("DrawCollection() = %v", err)
	}
	if len(parts) != 4 { // 3 members + legend separator
		t.Fatalf("DrawCollection() returned %d parts, want 4", len(parts))
	}
	// Third member wraps back to the first path.
	if !strings.Contains(parts[2], "(axis cs:0,0)") {
		t.Errorf("member 2 must reuse path 0 by wraparound:\n%s", parts[2])
	}
	if !strings.Contains(parts[2], "draw=black") {
		t.Errorf("member 2 must use edge color 2:\n%s", parts[2])
	}
}

func TestDrawCollectionLegendUsesLastClassification(t *testing.T) {
	rc := newRun(t)
	ax := NewAxes()
	ax.SetLegend("mixed")

	closed := NewPath()
	closed.Rectangle(0, 0, 1, 1)
	open := NewPath()
	open.MoveTo(0, 0)
	open.LineTo(1, 1)

	c := NewCollection(ax)
	c.Label = "mixed"
	c.Paths = []*Path{closed, open}
	c.EdgeColors = []RGBA{Black}

	parts, err := DrawCollection(rc, c)
	if err != nil {
		t.Fatalf("DrawCollection() = %v", err)
	}
	legend := parts[len(parts)-1]
	if !strings.Contains(legend, "line legend") {
		t.Errorf("legend type must follow the last member's classification:\n%s", legend)
	}

	// Reversed order: last member closed, so the whole collection
	// classifies as an area.
	rc2 := newRun(t)
	c2 := NewCollection(ax)
	c2.Label = "mixed"
	c2.Paths = []*Path{open.Clone(), closed.Clone()}
	c2.EdgeColors = []RGBA{Black}

	parts, err = DrawCollection(rc2, c2)
	if err != nil {
		t.Fatalf("DrawCollection() = %v", err)
	}
	legend = parts[len(parts)-1]
	if !strings.Contains(legend, "area legend") {
		t.Errorf("legend type must follow the last member's classification:\n%s", legend)
	}
}

func TestDrawCollectionScalarMappable(t *testing.T) {
	rc := newRun(t)
	c := NewCollection(nil)
	c.Paths = unitSquares(3)
	c.Values = []float64{0, 5, 10}
	c.Colormap = Viridis

	parts, err := DrawCollection(rc, c)
	if err != nil {
		t.Fatalf("DrawCollection() = %v", err)
	}
	if len(c.FaceColors) != 3 {
		t.Fatalf("UpdateScalarMappable produced %d face colors, want 3", len(c.FaceColors))
	}
	for i, part := range parts[:3] {
		if !strings.Contains(part, "fill=") {
			t.Errorf("member %d missing mapped fill:\n%s", i, part)
		}
	}
	// Extremes map to the end stops.
	if !colorsClose(c.FaceColors[0], Hex("#440154")) {
		t.Errorf("low value mapped to %+v, want first stop", c.FaceColors[0])
	}
	if !colorsClose(c.FaceColors[2], Hex("#fde725")) {
		t.Errorf("high value mapped to %+v, want last stop", c.FaceColors[2])
	}
}

func TestDrawCollectionNoPaths(t *testing.T) {
	rc := newRun(t)
	c := NewCollection(nil)
	c.EdgeColors = []RGBA{Red} // forces a nonzero iteration length

	if _, err := DrawCollection(rc, c); err == nil {
		t.Error("DrawCollection() with styles but no paths must fail")
	}
}

func TestCyclic(t *testing.T) {
	s := []int{10, 20}
	if v := cyclic(s, 3); v == nil || *v != 20 {
		t.Errorf("cyclic([10 20], 3) = %v, want 20", v)
	}
	if v := cyclic[int](nil, 0); v != nil {
		t.Errorf("cyclic(nil, 0) = %v, want nil placeholder", v)
	}
}

func TestColormapAt(t *testing.T) {
	cm := NewColormap(Black, White)
	if got := cm.At(-1); !colorsClose(got, Black) {
		t.Errorf("At(-1) = %+v, want black", got)
	}
	if got := cm.At(2); !colorsClose(got, White) {
		t.Errorf("At(2) = %+v, want white", got)
	}
	mid := cm.At(0.5)
	if mid.R < 0.49 || mid.R > 0.51 {
		t.Errorf("At(0.5).R = %v, want ~0.5", mid.R)
	}
}
