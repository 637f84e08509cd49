package lunarmagic

import (
	"fmt"
	"strings"
)

// FailureKind classifies why an invocation failed.
type FailureKind int

const (
	// FailureToolMissing indicates that no Lunar Magic executable exists at
	// the configured path. No process has been spawned.
	FailureToolMissing FailureKind = iota

	// FailureExecution indicates that the operating system could not launch
	// the shell or the Lunar Magic process. No output is available.
	FailureExecution

	// FailureNoTempDir indicates that no temporary directory for capturing
	// the Lunar Magic output could be created.
	FailureNoTempDir

	// FailureNoTempFile indicates that the process ran but its output log
	// could not be read afterwards, for example because Lunar Magic crashed
	// before writing anything.
	FailureNoTempFile

	// FailureOperation indicates that Lunar Magic ran and reported a
	// non-success exit status. The exit code and captured output are
	// available on the error.
	FailureOperation
)

// Error describes a failed Lunar Magic invocation.
type Error struct {
	// Kind classifies the failure.
	Kind FailureKind

	// Command holds the fully composed command line of the invocation.
	Command string

	// ExitCode holds the exit code of the process for FailureOperation,
	// it is -1 when no exit code is available.
	ExitCode int

	// Output holds the captured log lines, set for FailureOperation.
	Output []string

	cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch e.Kind {
	case FailureToolMissing:
		return fmt.Sprintf("Lunar Magic not found while performing operation '%s'", e.Command)

	case FailureExecution:
		return fmt.Sprintf("failed to execute Lunar Magic while attempting to perform operation '%s'", e.Command)

	case FailureNoTempDir:
		return fmt.Sprintf("failed to create temporary folder while attempting to perform operation '%s'", e.Command)

	case FailureNoTempFile:
		return fmt.Sprintf("failed to read temporary log file while attempting to perform operation '%s'", e.Command)

	case FailureOperation:
		if e.ExitCode >= 0 {
			return fmt.Sprintf("Lunar Magic returned with error code %d while performing operation '%s' "+
				"with the following output:\n\t%s", e.ExitCode, e.Command, strings.Join(e.Output, "\n\t"))
		}
		return fmt.Sprintf("Lunar Magic failed while performing operation '%s' "+
			"with the following output:\n\t%s", e.Command, strings.Join(e.Output, "\n\t"))

	default:
		return fmt.Sprintf("unknown failure while performing operation '%s'", e.Command)
	}
}

// Unwrap returns the underlying cause of the failure, it can be nil.
func (e *Error) Unwrap() error {
	return e.cause
}
