package ports

import "io/fs"

// SourceOpener opens tracked shader sources.
// The returned file reports the modification time through Stat and the
// content through Read. fstest.MapFS satisfies it for tests.
//
//go:generate mockgen -source=source.go -destination=mocks/mock_source.go -package=mocks
type SourceOpener interface {
	Open(name string) (fs.File, error)
}
