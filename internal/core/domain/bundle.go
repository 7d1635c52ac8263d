package domain

import (
	"github.com/cespare/xxhash/v2"
)

// ShaderBundle holds the shader texts captured during one watcher cycle.
// A role is either present with its full text or absent.
type ShaderBundle struct {
	sources map[Role]string
}

// NewShaderBundle returns an empty bundle.
func NewShaderBundle() ShaderBundle {
	return ShaderBundle{sources: make(map[Role]string, len(Roles))}
}

// Set stores text for the role, replacing any earlier text for it.
func (b *ShaderBundle) Set(role Role, text string) {
	if b.sources == nil {
		b.sources = make(map[Role]string, len(Roles))
	}
	b.sources[role] = text
}

// Source returns the text for the role and whether it is present.
func (b ShaderBundle) Source(role Role) (string, bool) {
	text, ok := b.sources[role]
	return text, ok
}

// Has reports whether the role is present.
func (b ShaderBundle) Has(role Role) bool {
	_, ok := b.sources[role]
	return ok
}

// Roles returns the present roles in pipeline order.
func (b ShaderBundle) Roles() []Role {
	present := make([]Role, 0, len(b.sources))
	for _, role := range Roles {
		if b.Has(role) {
			present = append(present, role)
		}
	}
	return present
}

// Len returns the number of present roles.
func (b ShaderBundle) Len() int {
	return len(b.sources)
}

// Drawable reports whether the bundle carries both stages a program needs.
func (b ShaderBundle) Drawable() bool {
	for _, role := range Roles {
		if role.Required() && !b.Has(role) {
			return false
		}
	}
	return true
}

// Digest returns a content hash over the present roles.
// Two bundles with the same texts for the same roles share a digest.
func (b ShaderBundle) Digest() uint64 {
	d := xxhash.New()
	for _, role := range b.Roles() {
		_, _ = d.WriteString(role.String())
		_, _ = d.Write([]byte{0})
		_, _ = d.WriteString(b.sources[role])
		_, _ = d.Write([]byte{0})
	}
	return d.Sum64()
}
