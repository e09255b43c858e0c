package cli

import (
	"errors"

	"github.com/yaklabco/doxymd/pkg/fsutil"
	"github.com/yaklabco/doxymd/pkg/xmldoc"
)

// Exit codes for doxymd, following the sysexits convention.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitFailure indicates a run in which no input could be converted.
	ExitFailure = 1

	// ExitUsage indicates invalid command-line usage.
	ExitUsage = 64

	// ExitDataError indicates input that is not valid Doxygen XML.
	ExitDataError = 65

	// ExitInternal indicates an internal error.
	ExitInternal = 70

	// ExitIOError indicates a file I/O error.
	ExitIOError = 74
)

// ErrAllInputsFailed signals that every requested input errored.
var ErrAllInputsFailed = errors.New("no input could be converted")

// ExitCodeForError maps an error returned by command execution to a process
// exit code.
func ExitCodeForError(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, xmldoc.ErrInvalidXML):
		return ExitDataError
	case errors.Is(err, fsutil.ErrNotFound),
		errors.Is(err, fsutil.ErrPermissionDenied),
		errors.Is(err, fsutil.ErrIsDirectory):
		return ExitIOError
	case errors.Is(err, ErrAllInputsFailed):
		return ExitFailure
	default:
		return ExitFailure
	}
}
