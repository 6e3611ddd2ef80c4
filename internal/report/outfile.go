package report

import (
	"fmt"
	"os"

	"github.com/gofrs/flock"

	"github.com/mesh-intelligence/syncparse/pkg/types"
)

// OutFile is a report file held under an exclusive lock so that two runs
// cannot interleave output in the same file.
type OutFile struct {
	f    *os.File
	lock *flock.Flock
}

// CreateOutFile locks path (through path.lock) and truncates or creates it.
// It returns ErrOutFileBusy when another process holds the lock.
func CreateOutFile(path string) (*OutFile, error) {
	lock := flock.New(path + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("lock %s: %w", path, err)
	}
	if !locked {
		return nil, fmt.Errorf("%w: %s", types.ErrOutFileBusy, path)
	}

	f, err := os.Create(path)
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("create %s: %w", path, err)
	}
	return &OutFile{f: f, lock: lock}, nil
}

// Write implements io.Writer.
func (o *OutFile) Write(p []byte) (int, error) {
	return o.f.Write(p)
}

// Close closes the file and releases the lock.
func (o *OutFile) Close() error {
	err := o.f.Close()
	if uerr := o.lock.Unlock(); err == nil {
		err = uerr
	}
	return err
}
