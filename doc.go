// Package tikz converts in-memory figure objects into PGFPlots/TikZ
// drawing commands.
//
// # Overview
//
// tikz takes already-computed shape geometry (rectangles, ellipses,
// circles, polygons, arrows) together with resolved visual attributes
// (colors, line styles, hatches, legend labels) and emits the equivalent
// vector-drawing instructions in PGFPlots markup. It performs no
// rendering and no layout computation: the input model is expected to
// carry final, post-transform geometry.
//
// # Quick Start
//
//	import "github.com/tikzgo/tikz"
//
//	ax := tikz.NewAxes()
//	r := tikz.NewRectangle(ax, 0, 0, 2, 1)
//	r.Style.FaceColor = &tikz.RGBA{R: 0.3, G: 0.5, B: 0.8, A: 1}
//
//	rc, _ := tikz.NewRunContext()
//	out, _ := tikz.DrawPatch(rc, r)
//	fmt.Print(out)
//
// # Architecture
//
// The library is organized around three layers:
//   - Figure model: Shape variants, Collection, Axes/Legend introspection
//   - Resolvers: draw-option resolution (colors, dashes, hatches) and
//     path emission
//   - Dispatch: DrawPatch and DrawCollection, which route each shape to
//     its specialized emitter and bind legend entries
//
// # Conversion runs
//
// All per-run state (float formatting, color definitions, legend
// deduplication) lives in a RunContext. Runs are independent: concurrent
// conversions of different figures are safe as long as each run has its
// own RunContext.
//
// # Coordinate System
//
// All coordinates are emitted in the target markup's axis coordinate
// space ("axis cs:"), tying points to plot-data coordinates rather than
// canvas coordinates. Rotation angles are in degrees, matching the
// markup's "rotate around" directive.
package tikz

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
