// Package properties implements the agent construction property bag shared
// by both search cores: a string-keyed option set of the form
// "name=value role=player seed=1 init=true" that the framework's agents are
// constructed from (§6, §9 "Configuration property bag").
package properties

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// recognized is the closed set of keys the two cores understand. Unknown
// keys are retained in Extra but never consulted by core logic.
var recognized = map[string]bool{
	"name": true, "role": true, "seed": true, "alpha": true,
	"init": true, "load": true, "save": true, "N": true,
}

// Properties is a typed view over the agent property bag. Zero value is a
// valid, empty bag.
type Properties struct {
	values map[string]string
	Extra  map[string]string
}

// Parse parses a "key=value key2=value2 ..." string into a Properties bag.
// Keys outside the recognized set are kept in Extra rather than rejected,
// matching §9: "Unknown keys are silently retained but ignored by the core."
func Parse(args string) Properties {
	p := Properties{values: map[string]string{}, Extra: map[string]string{}}
	for _, pair := range strings.Fields(args) {
		key, value, found := strings.Cut(pair, "=")
		if !found {
			continue
		}
		if recognized[key] {
			p.values[key] = value
		} else {
			p.Extra[key] = value
		}
	}
	return p
}

// preset is the on-disk shape read by LoadPresetYAML.
type preset struct {
	Name  string `yaml:"name,omitempty"`
	Role  string `yaml:"role,omitempty"`
	Seed  string `yaml:"seed,omitempty"`
	Alpha string `yaml:"alpha,omitempty"`
	Init  string `yaml:"init,omitempty"`
	Load  string `yaml:"load,omitempty"`
	Save  string `yaml:"save,omitempty"`
	N     string `yaml:"N,omitempty"`
}

// LoadPresetYAML loads a Properties bag from a YAML document, an
// alternative to the "key=value" string form for saved agent presets
// (weights path, seed, iteration budget) that doesn't fit naturally on a
// single command line.
func LoadPresetYAML(data []byte) (Properties, error) {
	var ps preset
	if err := yaml.Unmarshal(data, &ps); err != nil {
		return Properties{}, fmt.Errorf("parsing properties yaml: %w", err)
	}
	p := Properties{values: map[string]string{}, Extra: map[string]string{}}
	for key, value := range map[string]string{
		"name": ps.Name, "role": ps.Role, "seed": ps.Seed, "alpha": ps.Alpha,
		"init": ps.Init, "load": ps.Load, "save": ps.Save, "N": ps.N,
	} {
		if value != "" {
			p.values[key] = value
		}
	}
	return p, nil
}

// Has reports whether key was set, either in the string form or YAML preset.
func (p Properties) Has(key string) bool {
	_, ok := p.values[key]
	return ok
}

// String returns the raw value for key, or "" if unset.
func (p Properties) String(key string) string {
	return p.values[key]
}

// Int returns the value for key parsed as an integer, or def if unset or
// unparsable.
func (p Properties) Int(key string, def int) int {
	v, ok := p.values[key]
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// Float returns the value for key parsed as a float64, or def if unset or
// unparsable.
func (p Properties) Float(key string, def float64) float64 {
	v, ok := p.values[key]
	if !ok {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}

// Bool reports whether key is set to a truthy value ("1", "true", "yes"),
// used for boolean-flag-style keys like "init".
func (p Properties) Bool(key string) bool {
	v, ok := p.values[key]
	if !ok {
		return false
	}
	switch strings.ToLower(v) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}

// Name returns the "name" property, defaulting to "unknown" per the
// original agent constructor's "name=unknown role=unknown" defaults.
func (p Properties) Name() string {
	if v, ok := p.values["name"]; ok {
		return v
	}
	return "unknown"
}

// Role returns the "role" property, defaulting to "unknown".
func (p Properties) Role() string {
	if v, ok := p.values["role"]; ok {
		return v
	}
	return "unknown"
}

// reservedNameChars mirrors the original C++ constructor's
// name.find_first_of("[]():; ") rejection (§7: "Invalid name containing
// reserved punctuation").
const reservedNameChars = "[]():; \t\n"

// ValidateName returns an error if name contains any reserved character.
func ValidateName(name string) error {
	if strings.ContainsAny(name, reservedNameChars) {
		return fmt.Errorf("invalid name %q: contains reserved punctuation or whitespace", name)
	}
	return nil
}
