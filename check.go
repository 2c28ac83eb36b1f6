package kconfig

import "fmt"

// Mismatch describes a desired setting which a config file does not satisfy.
type Mismatch struct {
	Setting

	// Got is the value found in the config file. It is empty if Present is
	// false.
	Got     string
	Present bool
}

func (m Mismatch) String() string {
	return fmt.Sprintf("Config %s is not set to %s", m.Name, m.Value)
}

// Check returns one Mismatch per desired setting which lines do not satisfy,
// in settings order. An empty result means the config satisfies all settings.
//
// An option assigned on several lines must have the desired value on every
// one of them; the first offending line is reported.
//
// An option missing from the config is only reported when the desired value
// is "y". Absence of any other desired value (e.g. "n" or "m") is accepted.
// This asymmetry is long-standing behavior which scripts depend on.
func Check(lines []string, settings Settings) []Mismatch {
	var mismatches []Mismatch
	for _, s := range settings {
		if m, ok := check(lines, s); !ok {
			mismatches = append(mismatches, m)
		}
	}
	return mismatches
}

func check(lines []string, s Setting) (Mismatch, bool) {
	exists := false
	for _, line := range lines {
		name, value, ok := Assignment(line)
		if !ok || name != s.Name {
			continue
		}
		if value != s.Value {
			return Mismatch{Setting: s, Got: value, Present: true}, false
		}
		exists = true
	}
	if !exists && s.Value == "y" {
		return Mismatch{Setting: s}, false
	}
	return Mismatch{}, true
}
