package kconfig

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAssignment(t *testing.T) {
	for _, tt := range []struct {
		line      string
		wantName  string
		wantValue string
		wantOK    bool
	}{
		{line: "CONFIG_KVM=y", wantName: "CONFIG_KVM", wantValue: "y", wantOK: true},
		{line: `CONFIG_CMDLINE="console=ttyS0 quiet"`, wantName: "CONFIG_CMDLINE", wantValue: `"console=ttyS0 quiet"`, wantOK: true},
		{line: "CONFIG_LOG_BUF_SHIFT=17  ", wantName: "CONFIG_LOG_BUF_SHIFT", wantValue: "17", wantOK: true},
		{line: "CONFIG_EMPTY=", wantName: "CONFIG_EMPTY", wantValue: "", wantOK: true},
		{line: "# CONFIG_KVM is not set"},
		{line: ""},
		{line: "CONFIG_KVM"},
	} {
		t.Run(tt.line, func(t *testing.T) {
			name, value, ok := Assignment(tt.line)
			if ok != tt.wantOK {
				t.Fatalf("Assignment(%q): ok = %v, want %v", tt.line, ok, tt.wantOK)
			}
			if got, want := name, tt.wantName; got != want {
				t.Errorf("Assignment(%q): name = %q, want %q", tt.line, got, want)
			}
			if got, want := value, tt.wantValue; got != want {
				t.Errorf("Assignment(%q): value = %q, want %q", tt.line, got, want)
			}
		})
	}
}

func TestDisabledName(t *testing.T) {
	for _, tt := range []struct {
		line     string
		wantName string
		wantOK   bool
	}{
		{line: "# CONFIG_KVM is not set", wantName: "CONFIG_KVM", wantOK: true},
		{line: "#CONFIG_KVM is not set", wantName: "CONFIG_KVM", wantOK: true},
		{line: "# CONFIG_KVM is not set ", wantName: "CONFIG_KVM", wantOK: true},
		{line: "# CONFIG_KVM is not set (see below)"},
		{line: "# CONFIG_KVM=y"},
		{line: "# Automatically generated file; DO NOT EDIT."},
		{line: "CONFIG_KVM=y"},
		{line: "# is not set"},
	} {
		t.Run(tt.line, func(t *testing.T) {
			name, ok := DisabledName(tt.line)
			if ok != tt.wantOK || name != tt.wantName {
				t.Errorf("DisabledName(%q) = %q, %v; want %q, %v", tt.line, name, ok, tt.wantName, tt.wantOK)
			}
		})
	}
}

func TestValues(t *testing.T) {
	lines := []string{
		"#",
		"# Automatically generated file; DO NOT EDIT.",
		"# comment=with equals sign",
		"CONFIG_64BIT=y",
		"# CONFIG_KVM is not set",
		"CONFIG_HZ=250",
		"CONFIG_HZ=1000",
		"",
	}
	want := map[string]string{
		"CONFIG_64BIT": "y",
		"CONFIG_HZ":    "1000",
	}
	if diff := cmp.Diff(want, Values(lines)); diff != "" {
		t.Fatalf("Values: unexpected result: diff (-want +got):\n%s", diff)
	}
}
