package tikz

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// ErrNoFloatFormat is returned when a RunContext is created with an
// empty or malformed float format. A missing float format is a fatal
// configuration error: every coordinate the run emits depends on it.
var ErrNoFloatFormat = errors.New("tikz: float format must be a printf verb like %.8g")

// DefaultFloatFormat is the coordinate format used when none is
// configured.
const DefaultFloatFormat = "%.8g"

// RunContext carries the state of one conversion run: the coordinate
// format, the logger, the color definitions accumulated so far, and the
// legend-deduplication sets.
//
// A RunContext must not be shared between concurrent runs; create one
// per figure conversion. Within a run it is mutated freely by the draw
// functions.
type RunContext struct {
	floatFormat string
	colorPrefix string
	logger      *slog.Logger

	// Legend labels emitted during this run. Guarantees each label
	// yields at most one legend entry per run.
	legendLabels map[string]struct{}

	// Rectangle labels whose legend pair has been emitted. Separate from
	// legendLabels because rectangle legends use the ybar image form.
	rectangleLegends map[string]struct{}

	// Custom colors registered during this run, in registration order.
	colorDefs  []string
	colorNames map[RGBA]string
}

// RunOption configures a RunContext during creation.
//
// Example:
//
//	rc, err := tikz.NewRunContext(tikz.WithFloatFormat("%.3g"))
type RunOption func(*RunContext)

// WithFloatFormat sets the printf-style verb used for every emitted
// coordinate, e.g. "%.3f". The default is DefaultFloatFormat.
func WithFloatFormat(format string) RunOption {
	return func(rc *RunContext) {
		rc.floatFormat = format
	}
}

// WithColorPrefix sets the name prefix for generated color definitions.
// The default is "color", yielding names color0, color1, ...
func WithColorPrefix(prefix string) RunOption {
	return func(rc *RunContext) {
		rc.colorPrefix = prefix
	}
}

// WithRunLogger sets the logger for this run only, overriding the
// package logger configured with SetLogger.
func WithRunLogger(l *slog.Logger) RunOption {
	return func(rc *RunContext) {
		rc.logger = l
	}
}

// NewRunContext creates the state for one conversion run.
func NewRunContext(opts ...RunOption) (*RunContext, error) {
	rc := &RunContext{
		floatFormat:      DefaultFloatFormat,
		colorPrefix:      "color",
		logger:           Logger(),
		legendLabels:     make(map[string]struct{}),
		rectangleLegends: make(map[string]struct{}),
		colorNames:       make(map[RGBA]string),
	}
	for _, opt := range opts {
		opt(rc)
	}
	if !validFloatFormat(rc.floatFormat) {
		return nil, fmt.Errorf("%w (got %q)", ErrNoFloatFormat, rc.floatFormat)
	}
	if rc.logger == nil {
		rc.logger = newNopLogger()
	}
	return rc, nil
}

// validFloatFormat accepts printf verbs that format a single float64.
func validFloatFormat(format string) bool {
	if format == "" || !strings.HasPrefix(format, "%") {
		return false
	}
	switch format[len(format)-1] {
	case 'e', 'E', 'f', 'F', 'g', 'G':
		return true
	}
	return false
}

// FloatFormat returns the run's coordinate format verb.
func (rc *RunContext) FloatFormat() string {
	return rc.floatFormat
}

// ff formats a coordinate with the run's float format.
func (rc *RunContext) ff(v float64) string {
	return fmt.Sprintf(rc.floatFormat, v)
}

// colorName returns the markup name for c, registering a \definecolor
// the first time an unnamed color is seen. Registered names are reused
// for repeated colors within the run.
func (rc *RunContext) colorName(c RGBA) string {
	key := RGBA{R: c.R, G: c.G, B: c.B, A: 1} // alpha handled via opacity directives
	if name, ok := matchNamedColor(key); ok {
		return name
	}
	if name, ok := rc.colorNames[key]; ok {
		return name
	}
	name := fmt.Sprintf("%s%d", rc.colorPrefix, len(rc.colorNames))
	rc.colorNames[key] = name
	rc.colorDefs = append(rc.colorDefs, fmt.Sprintf(
		"\\definecolor{%s}{rgb}{%s,%s,%s}", name, rc.ff(c.R), rc.ff(c.G), rc.ff(c.B)))
	return name
}

// ColorDefinitions returns the \definecolor lines registered during the
// run, in first-use order. Emit them in the document preamble ahead of
// the drawing commands.
func (rc *RunContext) ColorDefinitions() []string {
	return rc.colorDefs
}
