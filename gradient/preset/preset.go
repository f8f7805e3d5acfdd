// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package preset loads and saves named gradients in TOML and YAML files.
//
// A preset file holds a list of gradients:
//
//	[[gradient]]
//	name = "sunset"
//	space = "OKLAB"
//	interpolation = "SmoothStep"
//	colors = ["#2d1b69", "crimson", "#ffcc00"]
//
//	[[gradient]]
//	name = "steps"
//	stops = [
//		{ position = 0, color = "black" },
//		{ position = 0.8, color = "#ffffff80" },
//	]
//
// Gradients list either colors, which are spaced evenly, or explicit
// stops. The space and interpolation are optional and default to those
// of [gradient.NewEmpty].
package preset

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/gradients/colorspace"
	"cogentcore.org/gradients/gradient"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is a preset file format.
type Format int

const (
	// TOML is the TOML format, used for the .toml extension.
	TOML Format = iota

	// YAML is the YAML format, used for the .yaml and .yml extensions.
	YAML
)

// ErrFormat is returned for a file extension that is not a known format.
var ErrFormat = errors.New("unknown preset file format")

// FormatFor returns the format for the extension of the given file name.
func FormatFor(filename string) (Format, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return 0, fmt.Errorf("preset.FormatFor %q: %w", filename, ErrFormat)
}

// Preset is a named gradient as it is stored in a file.
type Preset struct {
	Name          string                   `toml:"name" yaml:"name"`
	Space         *colorspace.ColorSpaces  `toml:"space,omitempty" yaml:"space,omitempty"`
	Interpolation *gradient.Interpolations `toml:"interpolation,omitempty" yaml:"interpolation,omitempty"`
	Offset        float64                  `toml:"offset,omitempty" yaml:"offset,omitempty"`
	Colors        []string                 `toml:"colors,omitempty" yaml:"colors,omitempty"`
	Stops         []Stop                   `toml:"stops,omitempty" yaml:"stops,omitempty"`
}

// Stop is a color stop of a [Preset].
type Stop struct {
	Position float64 `toml:"position" yaml:"position"`
	Color    string  `toml:"color" yaml:"color"`
}

// file is the top level of a preset file.
type file struct {
	Gradients []Preset `toml:"gradient" yaml:"gradients"`
}

// Gradient returns a new gradient built from the preset.
func (p *Preset) Gradient() (*gradient.Gradient, error) {
	var g *gradient.Gradient
	var err error
	switch {
	case len(p.Stops) > 0:
		stops := make([]*gradient.ColorStop, len(p.Stops))
		for i, s := range p.Stops {
			c, err := ParseColor(s.Color)
			if err != nil {
				return nil, fmt.Errorf("preset %q stop %d: %w", p.Name, i, err)
			}
			stops[i] = gradient.NewColorStop(c, s.Position)
		}
		g, err = gradient.NewFromStops(stops...)
	default:
		colors := make([]uint32, len(p.Colors))
		for i, s := range p.Colors {
			if colors[i], err = ParseColor(s); err != nil {
				return nil, fmt.Errorf("preset %q color %d: %w", p.Name, i, err)
			}
		}
		g, err = gradient.New(colors...)
	}
	if err != nil {
		return nil, fmt.Errorf("preset %q: %w", p.Name, err)
	}
	if p.Space != nil {
		g.SetColorSpace(*p.Space)
	}
	if p.Interpolation != nil {
		g.SetInterpolation(*p.Interpolation)
	}
	return g.SetOffset(p.Offset), nil
}

// FromGradient returns a preset with the given name that stores g.
func FromGradient(name string, g *gradient.Gradient) Preset {
	space, in := g.Space, g.Interpolation
	p := Preset{Name: name, Space: &space, Interpolation: &in, Offset: g.Offset}
	p.Stops = make([]Stop, len(g.Stops))
	for i, s := range g.Stops {
		p.Stops[i] = Stop{Position: s.Position, Color: FormatColor(s.Color)}
	}
	return p
}

// Unmarshal decodes the presets in data.
func Unmarshal(data []byte, format Format) ([]Preset, error) {
	var f file
	var err error
	switch format {
	case TOML:
		err = toml.Unmarshal(data, &f)
	case YAML:
		err = yaml.Unmarshal(data, &f)
	default:
		err = ErrFormat
	}
	if err != nil {
		return nil, fmt.Errorf("preset.Unmarshal: %w", err)
	}
	return f.Gradients, nil
}

// Marshal encodes the presets.
func Marshal(presets []Preset, format Format) ([]byte, error) {
	f := file{Gradients: presets}
	switch format {
	case TOML:
		return toml.Marshal(f)
	case YAML:
		return yaml.Marshal(f)
	}
	return nil, fmt.Errorf("preset.Marshal: %w", ErrFormat)
}

// Load reads the presets in the given file, in the format given by
// its extension.
func Load(filename string) ([]Preset, error) {
	format, err := FormatFor(filename)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	ps, err := Unmarshal(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return ps, nil
}

// Save writes the presets to the given file, in the format given by
// its extension.
func Save(filename string, presets []Preset) error {
	format, err := FormatFor(filename)
	if err != nil {
		return err
	}
	data, err := Marshal(presets, format)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0666)
}

// Find returns the preset with the given name, ignoring case.
func Find(presets []Preset, name string) (Preset, bool) {
	for _, p := range presets {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Preset{}, false
}

//go:embed builtin.toml
var builtinTOML []byte

// Builtin returns the built in presets.
func Builtin() []Preset {
	ps, err := Unmarshal(builtinTOML, TOML)
	if err != nil {
		panic(err)
	}
	return ps
}
