// Package kconfig implements checking and enforcing options in a Linux kernel
// .config file.
//
// Only the flat format written by the kernel build is understood: lines of
// the form NAME=VALUE and the disabled-setting marker “# NAME is not set”.
// All other lines are carried along untouched.
package kconfig

import "strings"

// Assignment splits an active setting line into its name (everything before
// the first '=') and its value (everything after, with surrounding whitespace
// removed). ok is false if line contains no '='.
func Assignment(line string) (name, value string, ok bool) {
	idx := strings.IndexByte(line, '=')
	if idx == -1 {
		return "", "", false
	}
	return line[:idx], strings.TrimSpace(line[idx+1:]), true
}

// DisabledName returns the option name of a disabled-setting marker, e.g.
// CONFIG_FOO for “# CONFIG_FOO is not set”.
func DisabledName(line string) (string, bool) {
	if !strings.HasPrefix(line, "#") {
		return "", false
	}
	fields := strings.Fields(line[1:])
	if len(fields) != 4 || strings.Join(fields[1:], " ") != "is not set" {
		return "", false
	}
	return fields[0], true
}

// Values returns the active settings of a config file, keyed by name. When an
// option is assigned more than once, the last assignment wins.
func Values(lines []string) map[string]string {
	values := make(map[string]string)
	for _, line := range lines {
		name, value, ok := Assignment(line)
		if !ok || strings.HasPrefix(name, "#") {
			continue
		}
		values[name] = value
	}
	return values
}
