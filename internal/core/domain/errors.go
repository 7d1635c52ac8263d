package domain

import "go.trai.ch/zerr"

var (
	// ErrUnknownRole is returned when a configured shader role is not vertex, fragment or geometry.
	ErrUnknownRole = zerr.New("unknown shader role")

	// ErrSourceUnavailable is returned when a tracked source cannot be opened.
	ErrSourceUnavailable = zerr.New("shader source unavailable")

	// ErrSourceReadFailed is returned when a tracked source was opened but its content could not be read.
	ErrSourceReadFailed = zerr.New("failed to read shader source")

	// ErrSourceNotUTF8 is returned when a tracked source does not hold valid UTF-8 text.
	ErrSourceNotUTF8 = zerr.New("shader source is not valid UTF-8")

	// ErrIncompleteBundle is returned when a bundle lacks the vertex or fragment stage.
	ErrIncompleteBundle = zerr.New("shader bundle is missing a vertex or fragment stage")

	// ErrShaderCompileFailed is returned when a bundle fails to compile or link.
	ErrShaderCompileFailed = zerr.New("failed to compile shader program")

	// ErrInitialLoadFailed is returned when the first bundle cannot produce a program.
	ErrInitialLoadFailed = zerr.New("failed to load initial shader program")

	// ErrWatcherGone is returned when the bundle channel is closed while the renderer still needs it.
	ErrWatcherGone = zerr.New("shader watcher stopped unexpectedly")

	// ErrConfigNotFound is returned when an explicitly requested config file does not exist.
	ErrConfigNotFound = zerr.New("config file not found")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidConfig is returned when a parsed config fails validation.
	ErrInvalidConfig = zerr.New("invalid config")

	// ErrInvalidMissingRolePolicy is returned when missingRole is neither retain nor omit.
	ErrInvalidMissingRolePolicy = zerr.New("invalid missing role policy, expected 'retain' or 'omit'")

	// ErrWindowCreateFailed is returned when the window or its graphics context cannot be created.
	ErrWindowCreateFailed = zerr.New("failed to create window")

	// ErrScaffoldFailed is returned when init cannot write a scaffold file.
	ErrScaffoldFailed = zerr.New("failed to write scaffold file")
)
