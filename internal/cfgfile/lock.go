package cfgfile

import (
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/xerrors"
)

// Lock takes an advisory flock(2) on the file at path (exclusive if excl is
// true, shared otherwise) and returns the locked file. Closing the file
// releases the lock.
//
// Replace swaps the inode behind path, so a lock obtained on a file which was
// replaced in the meantime is dropped and the lock is taken again.
func Lock(path string, excl bool) (*os.File, error) {
	how := unix.LOCK_SH
	if excl {
		how = unix.LOCK_EX
	}
	for {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		if err := unix.Flock(int(f.Fd()), how); err != nil {
			f.Close()
			return nil, xerrors.Errorf("flock(%s): %w", path, err)
		}
		locked, err := f.Stat()
		if err != nil {
			f.Close()
			return nil, err
		}
		current, err := os.Stat(path)
		if err != nil {
			f.Close()
			return nil, err
		}
		if os.SameFile(locked, current) {
			return f, nil
		}
		f.Close() // replaced while we were waiting
	}
}
