package fs

import (
	"errors"
	"os"
	"path/filepath"

	"go.trai.ch/vis/internal/core/domain"
	"go.trai.ch/vis/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Scaffolder = (*Scaffolder)(nil)

// Scaffolder writes starter files without clobbering existing ones.
type Scaffolder struct{}

// NewScaffolder creates a new Scaffolder.
func NewScaffolder() *Scaffolder {
	return &Scaffolder{}
}

// WriteFile creates path exclusively. An existing file is reported as not created.
func (s *Scaffolder) WriteFile(path string, data []byte) (bool, error) {
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrScaffoldFailed.Error()), "path", path)
	}

	//nolint:gosec // Target path comes from the init command
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, domain.FilePerm)
	if errors.Is(err, os.ErrExist) {
		return false, nil
	}
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrScaffoldFailed.Error()), "path", path)
	}

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return false, zerr.With(zerr.Wrap(err, domain.ErrScaffoldFailed.Error()), "path", path)
	}
	if err := f.Close(); err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrScaffoldFailed.Error()), "path", path)
	}

	return true, nil
}
