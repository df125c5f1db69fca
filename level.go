package librarylog

import (
	"fmt"
	"strings"
)

// Severity is the ordered severity of a call-site, and the floor of an Inclusion.
type Severity uint8

const (
	// TraceLevel is for step-by-step implementation detail.
	TraceLevel Severity = iota + 1
	// DebugLevel is for diagnostic detail.
	DebugLevel
	// WarnLevel is for unexpected but recoverable conditions (default floor).
	WarnLevel
	// ErrorLevel is for failures.
	ErrorLevel
	// OffLevel sorts above every severity. It is only meaningful as a floor.
	OffLevel
)

var severityNames = [...]string{
	0:          "ALL",
	TraceLevel: "TRACE",
	DebugLevel: "DEBUG",
	WarnLevel:  "WARN",
	ErrorLevel: "ERROR",
	OffLevel:   "OFF",
}

// String returns the upper-case name of the severity.
func (s Severity) String() string {
	if int(s) < len(severityNames) {
		return severityNames[s]
	}
	return "UNKNOWN"
}

// ParseSeverity converts a case-insensitive name into a Severity.
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "all", "":
		return 0, nil
	case "trace":
		return TraceLevel, nil
	case "debug":
		return DebugLevel, nil
	case "warn", "warning":
		return WarnLevel, nil
	case "error":
		return ErrorLevel, nil
	case "off", "none":
		return OffLevel, nil
	}
	return 0, fmt.Errorf("unknown severity %q", s)
}

// Audience is who a log line is meant for.
type Audience uint8

const (
	// AudienceInternal targets maintainers of the library itself.
	AudienceInternal Audience = iota + 1
	// AudienceDev targets developers consuming the library.
	AudienceDev
	// AudiencePublic targets end users; public lines are always emitted.
	AudiencePublic
)

func (a Audience) String() string {
	switch a {
	case AudienceInternal:
		return "internal"
	case AudienceDev:
		return "dev"
	case AudiencePublic:
		return "public"
	default:
		return "none"
	}
}

// Category is a topical tag. It is carried as metadata and does not take
// part in filtering other than through the composite ordering.
type Category uint8

const (
	CategoryGeneral Category = iota + 1
	CategoryTodo
	CategoryTroubleshooting
)

func (c Category) String() string {
	switch c {
	case CategoryGeneral:
		return "general"
	case CategoryTodo:
		return "todo"
	case CategoryTroubleshooting:
		return "troubleshooting"
	default:
		return "none"
	}
}

// Level is the composite of one severity, one audience and one category.
// A Level with zero audience and category is a pure severity floor.
type Level struct {
	Severity Severity
	Audience Audience
	Category Category
}

// AtLeast returns the floor that admits every non-public level of severity s
// or above.
func AtLeast(s Severity) Level {
	return Level{Severity: s}
}

var (
	// MinAll is the floor that admits everything.
	MinAll = Level{}
	// MinOff is the floor that rejects every non-public level.
	MinOff = AtLeast(OffLevel)
)

// Compare orders levels the way their packed integer encoding does: severity
// dominates, then audience (internal < dev < public), then category
// (general < todo < troubleshooting). It returns -1, 0 or +1.
//
// Two levels of equal severity but different audience or category compare
// unequal. A floor carrying an audience therefore rejects lower audiences of
// the same severity; that ordering is kept as is.
func Compare(a, b Level) int {
	switch {
	case a.Severity != b.Severity:
		return cmp3(int(a.Severity), int(b.Severity))
	case a.Audience != b.Audience:
		return cmp3(int(a.Audience), int(b.Audience))
	default:
		return cmp3(int(a.Category), int(b.Category))
	}
}

func cmp3(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Bits returns the packed integer encoding: category in bits 0-2, audience in
// bits 3-5, severity in bits 6-10. Integer comparison of Bits agrees with
// Compare.
func (l Level) Bits() uint32 {
	var b uint32
	if l.Category != 0 {
		b |= 1 << (l.Category - 1)
	}
	if l.Audience != 0 {
		b |= 1 << (l.Audience + 2)
	}
	if l.Severity != 0 {
		b |= 1 << (l.Severity + 5)
	}
	return b
}

func (l Level) String() string {
	return l.Severity.String() + "_" + strings.ToUpper(l.Audience.String()) + "_" + strings.ToUpper(l.Category.String())
}
