package tikz

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Options mirrors the YAML options file understood by LoadOptions.
// Zero-valued fields keep their defaults.
type Options struct {
	// FloatFormat is the printf-style coordinate format, e.g. "%.3g".
	FloatFormat string `yaml:"float_format"`

	// ColorPrefix names generated color definitions, e.g. "mycolor"
	// yields mycolor0, mycolor1, ...
	ColorPrefix string `yaml:"color_prefix"`
}

// RunOptions converts the parsed options into RunContext options.
func (o Options) RunOptions() []RunOption {
	var opts []RunOption
	if o.FloatFormat != "" {
		opts = append(opts, WithFloatFormat(o.FloatFormat))
	}
	if o.ColorPrefix != "" {
		opts = append(opts, WithColorPrefix(o.ColorPrefix))
	}
	return opts
}

// LoadOptions reads a YAML options file. Unknown keys are rejected so a
// typo in an option name surfaces instead of silently keeping defaults.
func LoadOptions(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("tikz: reading options: %w", err)
	}
	return ParseOptions(data)
}

// ParseOptions parses YAML options data.
func ParseOptions(data []byte) (Options, error) {
	var o Options
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&o); err != nil && !errors.Is(err, io.EOF) {
		return Options{}, fmt.Errorf("tikz: parsing options: %w", err)
	}
	return o, nil
}
