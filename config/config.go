package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/katalvlaran/icurves/diagram"
	"github.com/katalvlaran/icurves/layout"
	"github.com/katalvlaran/icurves/med"
	"github.com/katalvlaran/icurves/recompose"
	"github.com/katalvlaran/icurves/route"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
	"honnef.co/go/curve"
)

var (
	// ErrUnsupportedFormat indicates a file extension other than .yaml, .yml or .toml.
	ErrUnsupportedFormat = errors.New("config: unsupported file format")

	// ErrInvalid indicates a value outside its allowed range.
	ErrInvalid = errors.New("config: invalid value")
)

// Format is a config file encoding.
type Format string

const (
	YAML Format = "yaml"
	TOML Format = "toml"
)

// FormatOf derives the encoding from a file name.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	}

	return "", fmt.Errorf("%q: %w", path, ErrUnsupportedFormat)
}

// File mirrors the keys of a config file. Nil fields are unset.
type File struct {
	BaseRadius     *float64    `yaml:"base_radius" toml:"base_radius"`
	RingSize       *int        `yaml:"ring_size" toml:"ring_size"`
	RingMargin     *float64    `yaml:"ring_margin" toml:"ring_margin"`
	Smooth         *bool       `yaml:"smooth" toml:"smooth"`
	Parallel       *bool       `yaml:"parallel" toml:"parallel"`
	Workers        *int        `yaml:"workers" toml:"workers"`
	CircleSegments *int        `yaml:"circle_segments" toml:"circle_segments"`
	Precision      *float64    `yaml:"precision" toml:"precision"`
	ProbeOffset    *float64    `yaml:"probe_offset" toml:"probe_offset"`
	Tiles          *int        `yaml:"tiles" toml:"tiles"`
	Downsample     *int        `yaml:"downsample" toml:"downsample"`
	BBox           *[4]float64 `yaml:"bbox" toml:"bbox"`
	Strategy       *string     `yaml:"strategy" toml:"strategy"`
	TieBreak       *string     `yaml:"tie_break" toml:"tie_break"`
	CycleTimeout   *string     `yaml:"cycle_timeout" toml:"cycle_timeout"`
}

// Load reads and validates the file at path.
func Load(path string) (*File, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("config: expand %q: %w", path, err)
	}
	format, err := FormatOf(expanded)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(expanded)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return Decode(data, format)
}

// Decode parses data in the given format and validates it. Unknown keys
// are rejected.
func Decode(data []byte, format Format) (*File, error) {
	f := &File{}
	switch format {
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(f); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("config: yaml: %w", err)
		}
	case TOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(f); err != nil {
			return nil, fmt.Errorf("config: toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%q: %w", format, ErrUnsupportedFormat)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}

	return f, nil
}

func invalid(key string, v any) error {
	return fmt.Errorf("%s=%v: %w", key, v, ErrInvalid)
}

// Validate checks every set value.
func (f *File) Validate() error {
	positive := []struct {
		key string
		v   *float64
	}{
		{"base_radius", f.BaseRadius},
		{"precision", f.Precision},
		{"probe_offset", f.ProbeOffset},
	}
	for _, p := range positive {
		if p.v != nil && *p.v <= 0 {
			return invalid(p.key, *p.v)
		}
	}
	if f.RingMargin != nil && *f.RingMargin < 0 {
		return invalid("ring_margin", *f.RingMargin)
	}
	if f.RingSize != nil && *f.RingSize < 3 {
		return invalid("ring_size", *f.RingSize)
	}
	if f.CircleSegments != nil && *f.CircleSegments < 8 {
		return invalid("circle_segments", *f.CircleSegments)
	}
	for key, v := range map[string]*int{"workers": f.Workers, "tiles": f.Tiles, "downsample": f.Downsample} {
		if v != nil && *v < 1 {
			return invalid(key, *v)
		}
	}
	if f.BBox != nil {
		b := *f.BBox
		if b[2] <= b[0] || b[3] <= b[1] {
			return invalid("bbox", b)
		}
	}
	if f.Strategy != nil {
		if _, err := recompose.ParseStrategy(*f.Strategy); err != nil {
			return fmt.Errorf("strategy=%s: %w: %w", *f.Strategy, ErrInvalid, err)
		}
	}
	if f.TieBreak != nil {
		if _, err := parseTieBreak(*f.TieBreak); err != nil {
			return err
		}
	}
	if f.CycleTimeout != nil {
		d, err := time.ParseDuration(*f.CycleTimeout)
		if err != nil || d < 0 {
			return invalid("cycle_timeout", *f.CycleTimeout)
		}
	}

	return nil
}

func parseTieBreak(s string) (diagram.TieBreak, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "clearance":
		return diagram.TieBreakClearance, nil
	case "centroid":
		return diagram.TieBreakCentroid, nil
	}

	return 0, invalid("tie_break", s)
}

// Options converts the set values to layout options. Call Validate first;
// values that fail to parse are skipped.
func (f *File) Options() []layout.Option {
	var opts []layout.Option
	if f.BaseRadius != nil {
		opts = append(opts, layout.WithBaseRadius(*f.BaseRadius))
	}
	if f.RingSize != nil || f.RingMargin != nil {
		opts = append(opts, layout.WithRing(intOr(f.RingSize, med.DefaultRingSize), floatOr(f.RingMargin, med.DefaultRingMargin)))
	}
	if f.Smooth != nil {
		opts = append(opts, layout.WithSmooth(*f.Smooth))
	}
	if (f.Parallel != nil && *f.Parallel) || f.Workers != nil {
		opts = append(opts, layout.WithParallel(intOr(f.Workers, 0)))
	}
	if f.CircleSegments != nil {
		opts = append(opts, layout.WithCircleSegments(*f.CircleSegments))
	}
	if f.Precision != nil {
		opts = append(opts, layout.WithPrecision(*f.Precision))
	}
	if f.ProbeOffset != nil {
		opts = append(opts, layout.WithProbeOffset(*f.ProbeOffset))
	}
	if f.Tiles != nil || f.Downsample != nil {
		opts = append(opts, layout.WithRouting(intOr(f.Tiles, route.DefaultTiles), intOr(f.Downsample, route.DefaultDownsample)))
	}
	if f.BBox != nil {
		b := *f.BBox
		opts = append(opts, layout.WithBBox(curve.Rect{X0: b[0], Y0: b[1], X1: b[2], Y1: b[3]}))
	}
	if f.Strategy != nil {
		if s, err := recompose.ParseStrategy(*f.Strategy); err == nil {
			opts = append(opts, layout.WithStrategy(s))
		}
	}
	if f.TieBreak != nil {
		if t, err := parseTieBreak(*f.TieBreak); err == nil {
			opts = append(opts, layout.WithTieBreak(t))
		}
	}
	if f.CycleTimeout != nil {
		if d, err := time.ParseDuration(*f.CycleTimeout); err == nil {
			opts = append(opts, layout.WithCycleTimeout(d))
		}
	}

	return opts
}

func intOr(v *int, def int) int {
	if v == nil {
		return def
	}

	return *v
}

func floatOr(v *float64, def float64) float64 {
	if v == nil {
		return def
	}

	return *v
}
