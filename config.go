package librarylog

import (
	"strings"

	"github.com/Station-Manager/errors"
)

// ConsoleConfig selects where log lines go. It is one of ConsoleOut,
// NamedOut or KeyedOut.
type ConsoleConfig interface {
	consoleConfig()
}

// ConsoleOut writes to a Console.
type ConsoleOut struct {
	// Style renders names with %c style directives. Default: true.
	Style *bool
	// Console overrides the provider's console. Default: the provider console.
	Console Console
}

// NamedOut hands every node's rendered name path to a factory.
type NamedOut struct {
	Named NamedFactory
}

// KeyedOut hands every node's name-and-key path to a factory.
type KeyedOut struct {
	Keyed KeyedFactory
}

func (ConsoleOut) consoleConfig() {}
func (NamedOut) consoleConfig() {}
func (KeyedOut) consoleConfig() {}

// DefaultConsole is the shorthand for a styled provider console.
var DefaultConsole ConsoleConfig = ConsoleOut{}

// ParseConsoleConfig accepts the "console" shorthand.
func ParseConsoleConfig(s string) (ConsoleConfig, error) {
	const op errors.Op = "librarylog.ParseConsoleConfig"
	if strings.TrimSpace(s) == ConsoleShorthand {
		return DefaultConsole, nil
	}
	return nil, errors.New(op).Msg(errMsgUnknownConsole + " Got " + s + ".")
}

// FilteringConfig sets the global filtering defaults. Dev, Internal, Min and
// Include reset to their defaults when nil; ConsoleStyle leaves the style
// untouched when nil.
type FilteringConfig struct {
	// ConsoleStyle toggles styled console output.
	ConsoleStyle *bool
	// Dev includes logs for developers using the library. Default: false.
	Dev *bool
	// Internal includes logs for maintainers of the library. Default: false.
	Internal *bool
	// Min is the floor for non-public levels. Default: AtLeast(WarnLevel).
	Min *Level
	// Include overrides inclusion per source. Default: no overrides.
	Include IncludeHook
}

// output is the sink strategy of a snapshot.
type output interface {
	emitter(src Source, style bool) emitter
}

type consoleOutput struct {
	con    Console
	styles *StyleCache
}

func (o consoleOutput) emitter(src Source, style bool) emitter {
	if style {
		return newStyledEmitter(o.con, src, o.styles)
	}
	return newPlainEmitter(o.con, src)
}

type extOutput struct {
	factory KeyedFactory
}

func (o extOutput) emitter(src Source, _ bool) emitter {
	return &extEmitter{ext: o.factory(src.Segments())}
}

// Config is an immutable snapshot of a provider's configuration. Every node is
// built from exactly one snapshot.
type Config struct {
	out      output
	style    bool
	includes Inclusion
	include  IncludeHook
}

// Inclusion returns the global defaults of the snapshot.
func (c *Config) Inclusion() Inclusion {
	return c.includes
}

// Resolve returns the inclusion policy for src: the defaults with the include
// hook's overrides applied.
func (c *Config) Resolve(src Source) Inclusion {
	if c.include == nil {
		return c.includes
	}
	return c.includes.With(c.include(src))
}

// Styled reports whether console output is styled.
func (c *Config) Styled() bool {
	return c.style
}

// sink returns the snapshot's output strategy. A zero Config writes to the
// process console.
func (c *Config) sink() output {
	if c.out == nil {
		return consoleOutput{con: NewStdConsole(), styles: defaultStyles}
	}
	return c.out
}

func (c *Config) clone() *Config {
	next := *c
	return &next
}
