// Package cfgfile reads and atomically replaces kernel config files.
package cfgfile

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/distr1/kconfig/internal/oninterrupt"
	"github.com/google/renameio"
	"golang.org/x/xerrors"
)

// ReadLines returns the lines of the file at path, without line terminators.
func ReadLines(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Split(b), nil
}

// Split splits b into lines. A missing terminator on the last line is
// tolerated, and an empty input yields no lines.
func Split(b []byte) []string {
	if len(b) == 0 {
		return nil
	}
	return strings.Split(strings.TrimSuffix(string(b), "\n"), "\n")
}

// Write writes lines to w, terminating every line with \n.
func Write(w io.Writer, lines []string) error {
	var buf bytes.Buffer
	for _, line := range lines {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// Replace atomically replaces the file at path with lines. The permission
// bits of the existing file are retained. If path is a symbolic link, its
// target is replaced.
//
// Until Replace returns, an interrupt removes the temporary file and leaves
// the original file untouched.
func Replace(path string, lines []string) error {
	dest, err := filepath.EvalSymlinks(path)
	if err != nil {
		return err
	}
	st, err := os.Stat(dest)
	if err != nil {
		return err
	}
	f, err := renameio.TempFile("", dest)
	if err != nil {
		return xerrors.Errorf("replacing %s: %w", dest, err)
	}
	defer f.Cleanup()
	unregister := oninterrupt.Register(func() { f.Cleanup() })
	defer unregister()
	if err := f.Chmod(st.Mode().Perm()); err != nil {
		return err
	}
	if err := Write(f, lines); err != nil {
		return xerrors.Errorf("writing %s: %w", f.Name(), err)
	}
	if err := f.CloseAtomicallyReplace(); err != nil {
		return xerrors.Errorf("replacing %s: %w", dest, err)
	}
	return nil
}
