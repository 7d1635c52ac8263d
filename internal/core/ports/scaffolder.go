package ports

// Scaffolder writes starter files for a new project.
//
//go:generate mockgen -source=scaffolder.go -destination=mocks/mock_scaffolder.go -package=mocks
type Scaffolder interface {
	// WriteFile creates path with data, creating parent directories.
	// It never overwrites: an existing file is left untouched and created is false.
	WriteFile(path string, data []byte) (created bool, err error)
}
