package domain

// Strategy identifies one of the independent export strategies used to
// serialize an environment. Each strategy produces its own artifact; all of
// them are attempted unconditionally so one failing export never blocks the
// others.
type Strategy int

const (
	// ExplicitLock is the platform-specific listing pinned to exact package
	// builds. Replaying it installs byte-identical builds on a compatible
	// platform.
	ExplicitLock Strategy = iota

	// FullDeclarative is the cross-platform export of the full dependency
	// closure, including transitively pulled packages.
	FullDeclarative

	// HistoryDeclarative is the cross-platform export restricted to the
	// packages the user explicitly requested. More portable than FullDeclarative
	// at the cost of exact reproducibility.
	HistoryDeclarative
)

// Strategies lists all export strategies in the order they are attempted.
// The order is cosmetic: the strategies are independent reads of the same
// environment state.
var Strategies = []Strategy{ExplicitLock, FullDeclarative, HistoryDeclarative}

// Suffix returns the file suffix appended to the capture basename for this
// strategy's artifact.
func (s Strategy) Suffix() string {
	switch s {
	case ExplicitLock:
		return ".txt"
	case FullDeclarative:
		return ".yml"
	case HistoryDeclarative:
		return "_fh.yml"
	}
	return ""
}

// String returns the strategy name used in log output, error context, and
// manifest keys.
func (s Strategy) String() string {
	switch s {
	case ExplicitLock:
		return "explicit"
	case FullDeclarative:
		return "full"
	case HistoryDeclarative:
		return "from-history"
	}
	return "unknown"
}

// FailureBit returns the bit this strategy contributes to the aggregate
// failure mask reported through the process exit code.
func (s Strategy) FailureBit() int {
	return 1 << int(s)
}

// ArtifactPath returns the file path this strategy's artifact is written to
// for the given basename.
func (s Strategy) ArtifactPath(basename string) string {
	return basename + s.Suffix()
}
