// Package assets embeds the starter project written by vis init.
package assets

import (
	"embed"
	"io/fs"
	"path"
)

//go:embed files
var files embed.FS

// File is a starter file and its path relative to the project directory.
type File struct {
	Path string
	Data []byte
}

// Starter returns the starter files in lexical path order.
func Starter() ([]File, error) {
	root, err := fs.Sub(files, "files")
	if err != nil {
		return nil, err
	}

	var out []File
	err = fs.WalkDir(root, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := fs.ReadFile(root, p)
		if err != nil {
			return err
		}
		out = append(out, File{Path: path.Clean(p), Data: data})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
