package domain

import (
	"sort"
	"strings"

	"go.trai.ch/zerr"
)

var (
	// ErrEnvironmentNotFound is returned when the named environment is not
	// registered with the host package manager.
	ErrEnvironmentNotFound = zerr.New("environment not found")

	// ErrExportStrategyFailed is returned when one specific export strategy
	// fails. It never aborts the remaining strategies.
	ErrExportStrategyFailed = zerr.New("export strategy failed")

	// ErrWritePermissionDenied is returned when the output directory cannot be
	// written to. It aborts the capture before any export is attempted.
	ErrWritePermissionDenied = zerr.New("output directory is not writable")

	// ErrPlatformMismatch is returned when an explicit lock list references
	// package builds that are unavailable for the host platform. Restore fails
	// rather than silently substituting different builds.
	ErrPlatformMismatch = zerr.New("package builds unavailable for this platform")

	// ErrUnknownArtifact is returned when a restore input is neither an
	// explicit lock list nor a declarative descriptor.
	ErrUnknownArtifact = zerr.New("unrecognized descriptor format")

	// ErrArtifactMismatch is returned by verify when a capture artifact no
	// longer matches its manifest checksum.
	ErrArtifactMismatch = zerr.New("artifact does not match manifest")
)

// StrategyFailures aggregates per-strategy capture failures. Partial success
// is a valid end state: failures are collected rather than short-circuited and
// the mask of failed strategies drives the process exit code.
type StrategyFailures struct {
	Failed map[Strategy]error
}

// Error lists the names of the failed strategies.
func (e *StrategyFailures) Error() string {
	names := make([]string, 0, len(e.Failed))
	for s := range e.Failed {
		names = append(names, s.String())
	}
	sort.Strings(names)
	return "export strategies failed: " + strings.Join(names, ", ")
}

// Mask returns the bitwise-or of the failed strategies' failure bits.
func (e *StrategyFailures) Mask() int {
	mask := 0
	for s := range e.Failed {
		mask |= s.FailureBit()
	}
	return mask
}

// ExitCode returns the process exit code for this failure set: bit 3 marks a
// strategy-level failure and is or-ed with the failure mask. This keeps every
// partial-failure code distinct from the generic fatal exit code 1.
func (e *StrategyFailures) ExitCode() int {
	return 0b1000 | e.Mask()
}
