package cli

import "errors"

// Exit codes for php-ls.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitFormattingNeeded indicates --check found files that are not formatted.
	ExitFormattingNeeded = 1

	// ExitSyntaxErrors indicates some inputs were skipped because they do not parse.
	ExitSyntaxErrors = 2

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

var (
	// ErrFormattingNeeded is returned by format --check when a file would change.
	ErrFormattingNeeded = errors.New("files need formatting")

	// ErrSyntaxErrors is returned when inputs were skipped because they do not parse.
	ErrSyntaxErrors = errors.New("files with syntax errors were skipped")

	// ErrInvalidUsage marks errors in flags or arguments.
	ErrInvalidUsage = errors.New("invalid usage")

	// ErrConfig marks errors loading the configuration.
	ErrConfig = errors.New("configuration error")

	// ErrIO marks errors reading or writing files.
	ErrIO = errors.New("i/o error")
)

// ExitCodeFromError maps an error returned by a command to a process exit code.
func ExitCodeFromError(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrFormattingNeeded):
		return ExitFormattingNeeded
	case errors.Is(err, ErrSyntaxErrors):
		return ExitSyntaxErrors
	case errors.Is(err, ErrInvalidUsage):
		return ExitInvalidUsage
	case errors.Is(err, ErrConfig):
		return ExitConfigError
	case errors.Is(err, ErrIO):
		return ExitIOError
	default:
		return ExitInternalError
	}
}

// isSignal reports errors that only carry an exit status and need no log line
func isSignal(err error) bool {
	return errors.Is(err, ErrFormattingNeeded) || errors.Is(err, ErrSyntaxErrors)
}
