package domain

// ModificationLedger records the last observed modification time, in Unix
// seconds, of every tracked source. Entries are never removed.
type ModificationLedger struct {
	seen map[string]int64
}

// NewModificationLedger returns an empty ledger.
func NewModificationLedger() *ModificationLedger {
	return &ModificationLedger{seen: make(map[string]int64)}
}

// Observe records modTime for path and reports whether it is a change:
// either the first observation or a strictly newer time.
// An older or equal time leaves the entry untouched.
func (l *ModificationLedger) Observe(path string, modTime int64) bool {
	prev, ok := l.seen[path]
	if ok && prev >= modTime {
		return false
	}
	l.seen[path] = modTime
	return true
}

// Get returns the recorded time for path.
func (l *ModificationLedger) Get(path string) (int64, bool) {
	t, ok := l.seen[path]
	return t, ok
}

// Len returns the number of recorded sources.
func (l *ModificationLedger) Len() int {
	return len(l.seen)
}
