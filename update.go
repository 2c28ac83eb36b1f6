package kconfig

// Update returns a copy of lines in which every desired setting holds. lines
// is not modified.
//
// For each setting, in order: disabled-setting markers for the option are
// blanked, assignments of the option are rewritten to the desired value, and
// if there was no assignment, one is appended to the end.
//
// Update is idempotent: Update(Update(l, s), s) equals Update(l, s).
func Update(lines []string, settings Settings) []string {
	cur := append([]string(nil), lines...)
	for _, s := range settings {
		cur = apply(cur, s)
	}
	return cur
}

func apply(lines []string, s Setting) []string {
	out := make([]string, 0, len(lines)+1)
	updated := false
	for _, line := range lines {
		if name, ok := DisabledName(line); ok && name == s.Name {
			out = append(out, "")
			continue
		}
		if name, _, ok := Assignment(line); ok && name == s.Name {
			out = append(out, s.String())
			updated = true
			continue
		}
		out = append(out, line)
	}
	if !updated {
		out = append(out, s.String())
	}
	return out
}
