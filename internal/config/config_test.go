package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/fastblur"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadYAML(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "presets.yaml", `
presets:
  - name: soft
    sigma: 3.5
  - name: wide
    sigma: 20
    passes: 6
    edge: crop
    parallel: true
`)
	f, err := Load(path)
	require.NoError(t, err)
	require.Len(t, f.Presets, 2)

	assert.Equal(t, Preset{Name: "soft", Sigma: 3.5}, f.Presets[0])
	assert.Equal(t, Preset{Name: "wide", Sigma: 20, Passes: 6, Edge: "crop", Parallel: true}, f.Presets[1])
}

func TestLoadTOML(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "presets.toml", `
[[presets]]
name = "soft"
sigma = 3.5

[[presets]]
name = "wide"
sigma = 20.0
passes = 6
edge = "crop"
`)
	f, err := Load(path)
	require.NoError(t, err)
	require.Len(t, f.Presets, 2)

	p, ok := f.Lookup("wide")
	require.True(t, ok)
	assert.Equal(t, 6, p.Passes)
	assert.Equal(t, "crop", p.Edge)
}

func TestLoadEmptyYAML(t *testing.T) {
	t.Parallel()

	f, err := Load(writeFile(t, "empty.yml", ""))
	require.NoError(t, err)
	assert.Empty(t, f.Presets)
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		var pe *ParseError
		require.ErrorAs(t, err, &pe)
	})

	t.Run("unknown extension", func(t *testing.T) {
		t.Parallel()
		_, err := Load(writeFile(t, "presets.json", "{}"))
		var pe *ParseError
		require.ErrorAs(t, err, &pe)
		assert.Contains(t, err.Error(), ".json")
	})

	t.Run("malformed yaml reports line", func(t *testing.T) {
		t.Parallel()
		path := writeFile(t, "bad.yaml", "presets:\n  - name: a\n    sigma: [1\n")
		_, err := Load(path)
		var pe *ParseError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, path, pe.Path)
		assert.Positive(t, pe.Line)
	})

	t.Run("unknown yaml key", func(t *testing.T) {
		t.Parallel()
		_, err := Load(writeFile(t, "extra.yaml", "presets:\n  - name: a\n    radius: 3\n"))
		var pe *ParseError
		require.ErrorAs(t, err, &pe)
	})

	t.Run("unknown toml key", func(t *testing.T) {
		t.Parallel()
		_, err := Load(writeFile(t, "extra.toml", "[[presets]]\nname = \"a\"\nradius = 3\n"))
		var pe *ParseError
		require.ErrorAs(t, err, &pe)
		assert.Contains(t, err.Error(), "radius")
	})

	t.Run("malformed toml", func(t *testing.T) {
		t.Parallel()
		_, err := Load(writeFile(t, "bad.toml", "[[presets]\nname = \n"))
		var pe *ParseError
		require.ErrorAs(t, err, &pe)
	})
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		preset  Preset
		field   string
		wantErr bool
	}{
		{name: "valid", preset: Preset{Name: "ok", Sigma: 1}},
		{name: "zero sigma", preset: Preset{Name: "ok", Sigma: 0}},
		{name: "missing name", preset: Preset{Sigma: 1}, field: "presets[0].name", wantErr: true},
		{name: "bad name", preset: Preset{Name: "Has Space", Sigma: 1}, field: "presets[0].name", wantErr: true},
		{name: "negative sigma", preset: Preset{Name: "a", Sigma: -1}, field: "presets[0].sigma", wantErr: true},
		{name: "too many passes", preset: Preset{Name: "a", Sigma: 1, Passes: 11}, field: "presets[0].passes", wantErr: true},
		{name: "unknown edge", preset: Preset{Name: "a", Sigma: 1, Edge: "wrap"}, field: "presets[0].edge", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := Validate(&File{Presets: []Preset{tt.preset}})
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestValidateDuplicateNames(t *testing.T) {
	t.Parallel()

	err := Validate(&File{Presets: []Preset{
		{Name: "a", Sigma: 1},
		{Name: "b", Sigma: 2},
		{Name: "a", Sigma: 3},
	}})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "presets[2].name", ve.Field)
	assert.Contains(t, ve.Message, "duplicate")

	require.Error(t, Validate(nil))
}

func TestBuiltin(t *testing.T) {
	t.Parallel()

	b := Builtin()
	require.NoError(t, Validate(b))

	for _, name := range []string{"subtle", "default", "heavy", "shadow"} {
		_, ok := b.Lookup(name)
		assert.True(t, ok, "missing builtin preset %q", name)
	}

	heavy, _ := b.Lookup("heavy")
	assert.Equal(t, 12.0, heavy.Sigma)
	assert.Equal(t, 5, heavy.EffectivePasses())

	def, _ := b.Lookup("default")
	assert.Equal(t, fastblur.DefaultPasses, def.EffectivePasses())
}

func TestMerge(t *testing.T) {
	t.Parallel()

	user := &File{Presets: []Preset{
		{Name: "default", Sigma: 9},
		{Name: "mine", Sigma: 1},
	}}
	merged := Builtin().Merge(user)

	require.Len(t, merged.Presets, 5)
	assert.Equal(t, "default", merged.Presets[1].Name)
	assert.Equal(t, 9.0, merged.Presets[1].Sigma)
	assert.Equal(t, "mine", merged.Presets[4].Name)

	// Receivers are left untouched.
	def, _ := Builtin().Lookup("default")
	assert.Equal(t, 4.0, def.Sigma)

	var nilFile *File
	assert.Len(t, nilFile.Merge(user).Presets, 2)
	_, ok := nilFile.Lookup("default")
	assert.False(t, ok)
}

func TestPresetOptions(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Preset{Name: "a", Sigma: 1}.Options())
	assert.Len(t, Preset{Name: "a", Sigma: 1, Passes: 4, Edge: "crop", Parallel: true}.Options(), 3)

	// The options must be accepted by the blur.
	p := Preset{Name: "a", Sigma: 1, Passes: 4, Edge: "crop"}
	in := make([]uint8, 8*8)
	out := make([]uint8, 8*8)
	require.NoError(t, fastblur.GaussianBlur(&in, &out, 8, 8, 1, p.Sigma, p.Options()...))
}
