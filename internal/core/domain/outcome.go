package domain

// ReloadStatus is the result kind of one reload poll.
type ReloadStatus uint8

const (
	// ReloadUnchanged means no usable bundle arrived and the active program stays.
	ReloadUnchanged ReloadStatus = iota
	// ReloadApplied means a new program was compiled and is now active.
	ReloadApplied
	// ReloadFailed means a bundle failed to compile and the active program stays.
	ReloadFailed
)

// String returns a short label for logs and span attributes.
func (s ReloadStatus) String() string {
	switch s {
	case ReloadUnchanged:
		return "unchanged"
	case ReloadApplied:
		return "reloaded"
	case ReloadFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ReloadOutcome describes what one poll did to the active program.
type ReloadOutcome struct {
	Status ReloadStatus
	// Diagnostic is the compiler output when Status is ReloadFailed.
	Diagnostic string
	// Digest identifies the bundle that was applied or rejected.
	Digest uint64
}

// Unchanged is the outcome of a poll that found nothing to apply.
var Unchanged = ReloadOutcome{Status: ReloadUnchanged}
