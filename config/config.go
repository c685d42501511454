// Package config loads the optional .jsbeautifyrc YAML file that
// supplies default jsfmt.Options for the CLI, the way rubylexer's
// evaluator leans on gopkg.in/yaml.v3 to move between YAML documents
// and Go values.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/alexisbouchez/jsbeautify/jsfmt"
)

// rcFile mirrors the four recognized option keys as YAML tags so a
// .jsbeautifyrc can be written in the same vocabulary as the JSON
// option map the HTTP service accepts.
type rcFile struct {
	IndentSize       *int    `yaml:"indent_size"`
	IndentChar       *string `yaml:"indent_char"`
	IndentLevel      *int    `yaml:"indent_level"`
	PreserveNewlines *bool   `yaml:"preserve_newlines"`
}

// Load reads path as a YAML .jsbeautifyrc document and returns the
// jsfmt.Options it describes. A missing file is not an error — Load
// silently returns jsfmt.Defaults(), the same fallback the spec's
// option-coercion table requires for any single non-conforming value.
// An existing-but-unreadable or malformed file returns an error.
func Load(path string) (jsfmt.Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return jsfmt.Defaults(), nil
		}
		return jsfmt.Options{}, err
	}

	var rc rcFile
	if err := yaml.Unmarshal(data, &rc); err != nil {
		return jsfmt.Options{}, err
	}

	return rc.toOptions(), nil
}

func (rc rcFile) toOptions() jsfmt.Options {
	m := map[string]any{}
	if rc.IndentSize != nil {
		m["indent_size"] = *rc.IndentSize
	}
	if rc.IndentChar != nil {
		m["indent_char"] = *rc.IndentChar
	}
	if rc.IndentLevel != nil {
		m["indent_level"] = *rc.IndentLevel
	}
	if rc.PreserveNewlines != nil {
		m["preserve_newlines"] = *rc.PreserveNewlines
	}
	return jsfmt.FromMap(m)
}

// Merge copies into base each field of override whose option key is true
// in overridden, zero values included; other fields keep base's value.
// Used by the CLI to let explicit flags win over the .jsbeautifyrc
// defaults.
func Merge(base jsfmt.Options, override jsfmt.Options, overridden map[string]bool) jsfmt.Options {
	if overridden["indent_size"] {
		base.IndentSize = override.IndentSize
	}
	if overridden["indent_char"] {
		base.IndentChar = override.IndentChar
	}
	if overridden["indent_level"] {
		base.IndentLevel = override.IndentLevel
	}
	if overridden["preserve_newlines"] {
		base.PreserveNewlines = override.PreserveNewlines
	}
	return base
}
