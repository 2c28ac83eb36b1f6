package kconfig

import (
	"encoding/json"
	"io"
	"os"

	"golang.org/x/xerrors"
)

// Setting is one desired option value, e.g. {Name: "CONFIG_KVM", Value: "y"}.
type Setting struct {
	Name  string
	Value string
}

func (s Setting) String() string { return s.Name + "=" + s.Value }

// Settings is the set of desired option values, in the order in which the
// options appear in the JSON document.
type Settings []Setting

// ParseSettings reads a JSON object mapping option names to desired values.
//
// Values must be strings or numbers; numbers are used verbatim (e.g. 0x1000).
// A name which appears more than once keeps its first position and takes the
// last value.
func ParseSettings(r io.Reader) (Settings, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, xerrors.Errorf("desired settings must be a JSON object, got %v", tok)
	}
	var (
		settings Settings
		index    = make(map[string]int)
	)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		name := tok.(string) // object keys are always strings
		var v interface{}
		if err := dec.Decode(&v); err != nil {
			return nil, xerrors.Errorf("%s: %w", name, err)
		}
		var value string
		switch v := v.(type) {
		case string:
			value = v
		case json.Number:
			value = v.String()
		default:
			return nil, xerrors.Errorf("%s: value must be a string or number, got %T", name, v)
		}
		if idx, ok := index[name]; ok {
			settings[idx].Value = value
			continue
		}
		index[name] = len(settings)
		settings = append(settings, Setting{Name: name, Value: value})
	}
	if _, err := dec.Token(); err != nil { // closing }
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, xerrors.Errorf("unexpected data after desired settings object")
	}
	return settings, nil
}

// LoadSettings reads desired settings from the JSON file at path.
func LoadSettings(path string) (Settings, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	settings, err := ParseSettings(f)
	if err != nil {
		return nil, xerrors.Errorf("%s: %w", path, err)
	}
	return settings, nil
}
