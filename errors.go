package push3

import "fmt"

// ParseError reports a lexical or structural failure while parsing a
// program: an oversize program, a disallowed numeric form, or unbalanced
// parentheses. ConfigError is defined in config.go.
type ParseError struct {
	Pos    int // rune offset into the source where the problem was detected
	Reason string
}

func (e ParseError) Error() string {
	return fmt.Sprintf("parse error at %d: %s", e.Pos, e.Reason)
}

// Result is returned by Run, reporting why execution stopped.
type Result struct {
	Steps            int
	StepLimitReached bool
	Cancelled        bool

	// RecoveredPanics counts handler panics the engine recovered from and
	// treated as no-ops (see the per-step safety discipline in engine.go).
	// It is a diagnostic hook, not a failure signal.
	RecoveredPanics []RecoveredPanic
}

// RecoveredPanic records one handler panic the engine converted into a
// no-op step, for tests and diagnostics to inspect.
type RecoveredPanic struct {
	Step        int
	Instruction string
	Value       interface{}
}
