package domain

import (
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
)

// Role is the shader pipeline stage a tracked source feeds.
type Role uint8

const (
	// RoleVertex is the vertex stage.
	RoleVertex Role = iota
	// RoleFragment is the fragment stage.
	RoleFragment
	// RoleGeometry is the optional geometry stage.
	RoleGeometry
)

// Roles lists every role in pipeline order.
var Roles = []Role{RoleVertex, RoleFragment, RoleGeometry}

// Required reports whether every program needs the stage.
func (r Role) Required() bool {
	return r == RoleVertex || r == RoleFragment
}

// String returns the configuration name of the role.
func (r Role) String() string {
	switch r {
	case RoleVertex:
		return "vertex"
	case RoleFragment:
		return "fragment"
	case RoleGeometry:
		return "geometry"
	default:
		return "unknown"
	}
}

// ParseRole converts a configuration string into a Role.
// Both the long names and the usual file extensions are accepted.
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "vertex", "vert", "vs":
		return RoleVertex, nil
	case "fragment", "frag", "fs":
		return RoleFragment, nil
	case "geometry", "geom", "gs":
		return RoleGeometry, nil
	default:
		return 0, zerr.With(ErrUnknownRole, "role", s)
	}
}

// TrackedSource is a watched shader file and the stage it feeds.
type TrackedSource struct {
	Path string
	Role Role
}

// DefaultSources returns the watch list used when no configuration names one.
func DefaultSources() []TrackedSource {
	return []TrackedSource{
		{Path: DefaultShaderPath(DefaultVertexFile), Role: RoleVertex},
		{Path: DefaultShaderPath(DefaultFragmentFile), Role: RoleFragment},
		{Path: DefaultShaderPath(DefaultGeometryFile), Role: RoleGeometry},
	}
}

// ResolveSources anchors relative source paths at root and drops duplicates.
// When the same path is listed twice the first role wins.
func ResolveSources(root string, sources []TrackedSource) []TrackedSource {
	seen := make(map[string]struct{}, len(sources))
	out := make([]TrackedSource, 0, len(sources))

	for _, src := range sources {
		path := src.Path
		if !filepath.IsAbs(path) && root != "" {
			path = filepath.Join(root, path)
		}
		path = filepath.Clean(path)

		if _, dup := seen[path]; dup {
			continue
		}
		seen[path] = struct{}{}
		out = append(out, TrackedSource{Path: path, Role: src.Role})
	}

	return out
}
