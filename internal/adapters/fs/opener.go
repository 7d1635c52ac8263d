// Package fs provides file system adapters for reading shader sources
// and writing starter files.
package fs

import (
	iofs "io/fs"
	"os"

	"go.trai.ch/vis/internal/core/ports"
)

var _ ports.SourceOpener = (*Opener)(nil)

// Opener opens shader sources from the host file system.
// Unlike os.DirFS it accepts absolute and parent-relative paths.
type Opener struct{}

// NewOpener creates a new Opener.
func NewOpener() *Opener {
	return &Opener{}
}

// Open opens the named file for reading.
func (o *Opener) Open(name string) (iofs.File, error) {
	return os.Open(name) //nolint:gosec // Paths come from the user's configuration
}
