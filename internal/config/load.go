package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Load reads and validates a preset file. The syntax is chosen by
// extension: .yaml and .yml for YAML, .toml for TOML.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, newParseError(path, 0, err)
	}

	var f *File
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		f, err = ParseYAML(data)
	case ".toml":
		f, err = ParseTOML(data)
	default:
		return nil, newParseError(path, 0, fmt.Errorf("unsupported preset file extension %q", ext))
	}
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			pe.Path = path
		}
		return nil, err
	}
	return f, nil
}

// ParseYAML decodes and validates YAML preset data.
func ParseYAML(data []byte) (*File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, newParseError("<yaml>", extractLine(err), err)
	}
	if err := Validate(&f); err != nil {
		return nil, err
	}
	return &f, nil
}

// ParseTOML decodes and validates TOML preset data.
func ParseTOML(data []byte) (*File, error) {
	var f File
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		line := 0
		var perr toml.ParseError
		if errors.As(err, &perr) {
			line = perr.Position.Line
		}
		return nil, newParseError("<toml>", line, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, newParseError("<toml>", 0, fmt.Errorf("unknown key %q", undecoded[0].String()))
	}
	if err := Validate(&f); err != nil {
		return nil, err
	}
	return &f, nil
}

func extractLine(err error) int {
	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}
	line, convErr := strconv.Atoi(matches[1])
	if convErr != nil {
		return 0
	}
	return line
}
