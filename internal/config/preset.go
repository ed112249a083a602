// Package config loads named blur presets from YAML or TOML files.
package config

import (
	"github.com/gogpu/fastblur"
)

// Preset is a named set of blur parameters.
type Preset struct {
	Name     string  `yaml:"name" toml:"name" validate:"required,preset_name"`
	Sigma    float64 `yaml:"sigma" toml:"sigma" validate:"gte=0"`
	Passes   int     `yaml:"passes,omitempty" toml:"passes,omitempty" validate:"omitempty,min=1,max=10"`
	Edge     string  `yaml:"edge,omitempty" toml:"edge,omitempty" validate:"omitempty,oneof=extend crop"`
	Parallel bool    `yaml:"parallel,omitempty" toml:"parallel,omitempty"`
}

// File is the top-level structure of a preset file.
type File struct {
	Presets []Preset `yaml:"presets" toml:"presets" validate:"dive"`
}

// Options converts the preset to blur options. Zero fields keep the
// library defaults.
func (p Preset) Options() []fastblur.Option {
	var opts []fastblur.Option
	if p.Passes != 0 {
		opts = append(opts, fastblur.WithPasses(p.Passes))
	}
	if p.Edge != "" {
		// Validated, so the parse cannot fail.
		edge, _ := fastblur.ParseEdge(p.Edge)
		opts = append(opts, fastblur.WithEdge(edge))
	}
	if p.Parallel {
		opts = append(opts, fastblur.WithParallel(true))
	}
	return opts
}

// EffectivePasses returns the pass count the preset blurs with.
func (p Preset) EffectivePasses() int {
	if p.Passes == 0 {
		return fastblur.DefaultPasses
	}
	return p.Passes
}

// Builtin returns the presets available without a config file.
func Builtin() *File {
	return &File{Presets: []Preset{
		{Name: "subtle", Sigma: 2},
		{Name: "default", Sigma: 4},
		{Name: "heavy", Sigma: 12, Passes: 5},
		{Name: "shadow", Sigma: 6, Edge: "crop"},
	}}
}

// Lookup returns the preset with the given name.
func (f *File) Lookup(name string) (Preset, bool) {
	if f == nil {
		return Preset{}, false
	}
	for _, p := range f.Presets {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}

// Merge returns a new file holding the presets of f followed by those of
// other. A preset in other replaces the one of the same name in f, keeping
// its position.
func (f *File) Merge(other *File) *File {
	out := &File{}
	index := make(map[string]int)
	for _, src := range []*File{f, other} {
		if src == nil {
			continue
		}
		for _, p := range src.Presets {
			if i, ok := index[p.Name]; ok {
				out.Presets[i] = p
				continue
			}
			index[p.Name] = len(out.Presets)
			out.Presets = append(out.Presets, p)
		}
	}
	return out
}
