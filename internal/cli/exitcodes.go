package cli

// Exit codes for jsdocfmt.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitCheckFailed indicates --check found non-canonical blocks.
	ExitCheckFailed = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)
