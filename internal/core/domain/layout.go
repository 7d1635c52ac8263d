package domain

import (
	"path/filepath"
	"time"
)

const (
	// ConfigFileName is the name of the optional viewer configuration file.
	ConfigFileName = "vis.yaml"

	// ShaderDirName is the directory that holds the default shader sources.
	ShaderDirName = "shaders"

	// DefaultVertexFile is the file name of the default vertex shader.
	DefaultVertexFile = "default.vert"

	// DefaultFragmentFile is the file name of the default fragment shader.
	DefaultFragmentFile = "default.frag"

	// DefaultGeometryFile is the file name of the default geometry shader.
	DefaultGeometryFile = "default.geom"

	// DefaultPollInterval is the delay between two watcher scans.
	DefaultPollInterval = 500 * time.Millisecond

	// DefaultSampleRate is the value reported through the iSampleRate uniform.
	DefaultSampleRate = 44100

	// DefaultWindowTitle is the title of the viewer window.
	DefaultWindowTitle = "vis"

	// DefaultWindowWidth is the initial window width in screen coordinates.
	DefaultWindowWidth = 1024

	// DefaultWindowHeight is the initial window height in screen coordinates.
	DefaultWindowHeight = 768

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultShaderPath returns the path of a default shader file relative to the working directory.
func DefaultShaderPath(name string) string {
	return filepath.Join(ShaderDirName, name)
}
