package librarylog

import (
	stderrs "errors"
	"strings"

	smerrors "github.com/Station-Manager/errors"
	"github.com/rs/zerolog"
)

// parseLevel parses a string log level into a zerolog.Level.
// Returns zerolog.NoLevel and an error if parsing fails.
func parseLevel(level string) (zerolog.Level, error) {
	l, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.NoLevel, err
	}
	return l, nil
}

// zerologLevel maps a call-site severity onto zerolog.
func zerologLevel(s Severity) zerolog.Level {
	switch s {
	case ErrorLevel:
		return zerolog.ErrorLevel
	case WarnLevel:
		return zerolog.WarnLevel
	case DebugLevel:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// errorChain is an error's causes, outermost first. ops[i] is the Station-Manager
// operation of messages[i], or "" for plain errors.
type errorChain struct {
	messages []string
	ops      []string
}

// maxChainDepth bounds the walk; repeated plain messages also stop it.
const maxChainDepth = 50

// walkErrorChain follows DetailedError.Cause first and errors.Unwrap otherwise.
func walkErrorChain(err error) errorChain {
	var c errorChain
	seen := make(map[string]struct{})
	for depth := 0; err != nil && depth < maxChainDepth; depth++ {
		if d, ok := smerrors.AsDetailedError(err); ok && d != nil {
			c.add(d.Error(), string(d.Op()))
			err = d.Cause()
			continue
		}
		msg := err.Error()
		if _, dup := seen[msg]; dup {
			break
		}
		seen[msg] = struct{}{}
		c.add(msg, emptyString)
		err = stderrs.Unwrap(err)
	}
	return c
}

func (c *errorChain) add(msg, op string) {
	c.messages = append(c.messages, msg)
	c.ops = append(c.ops, op)
}

func (c errorChain) empty() bool { return len(c.messages) == 0 }

// root is the innermost message.
func (c errorChain) root() string {
	if c.empty() {
		return emptyString
	}
	return c.messages[len(c.messages)-1]
}

// rootOp is the innermost operation, "" when the innermost cause is a plain error.
func (c errorChain) rootOp() string {
	if c.empty() {
		return emptyString
	}
	return c.ops[len(c.ops)-1]
}

// history renders the messages as "outer -> inner".
func (c errorChain) history() string {
	return strings.Join(c.messages, " -> ")
}
