// keelnum holds the severity value domain shared across the keel ecosystem
package keelnum

import (
	"sync/atomic"
)

// Severity is one of four levels, ordered from least to most severe.
// Logging APIs built above keel are expected to terminate the program when
// a message is logged at Fatal; the other levels have no special semantics.
// The ordinal values are stable and may be serialized.
type Severity int32

const (
	Info    Severity = 0
	Warning Severity = 1
	Error   Severity = 2
	Fatal   Severity = 3
)

// Severities returns the four standard severities ordered from least to
// most severe.
func Severities() []Severity {
	return []Severity{Info, Warning, Error, Fatal}
}

// Name returns the all-caps name of s ("INFO", "WARNING", "ERROR", "FATAL")
// when s is one of the standard severities and "UNKNOWN" otherwise.
func Name(s Severity) string {
	switch s {
	case Info:
		return "INFO"
	case Warning:
		return "WARNING"
	case Error:
		return "ERROR"
	case Fatal:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

func (s Severity) String() string { return Name(s) }

// Normalize maps an arbitrary Severity into the standard domain: values
// below Info become Info and values above Fatal become Error, NOT Fatal.
// An out-of-range input must never come back as the one severity that
// terminates the program. Integer inputs are cast to Severity first:
// Normalize(Severity(n)).
func Normalize(s Severity) Severity {
	switch {
	case s < Info:
		return Info
	case s > Fatal:
		return Error
	default:
		return s
	}
}

// IsASeverity reports whether s is one of the four standard severities.
func (s Severity) IsASeverity() bool {
	return s >= Info && s <= Fatal
}

// AtomicLoad and AtomicStore exist for downstream minimum-level filters
// that adjust their threshold while other goroutines read it.

func (s *Severity) AtomicLoad() Severity {
	return Severity(atomic.LoadInt32((*int32)(s)))
}

func (s *Severity) AtomicStore(newSeverity Severity) {
	atomic.StoreInt32((*int32)(s), int32(newSeverity))
}
