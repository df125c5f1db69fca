package librarylog

// Fields is the optional structured payload of a log call.
type Fields map[string]any

// LogFunc is a bound call-site. Excluded call-sites are bound to a no-op with
// the same signature, so callers never branch on inclusion.
type LogFunc func(message string, fields ...Fields)

// LazyFunc is a bound call-site whose fields are produced only when the line
// is actually emitted.
type LazyFunc func(message string, fields func() Fields)

// Console is the console-like sink the built-in adapters write to. The first
// argument passed by the adapters is the rendered name prefix, which may hold
// %c style directives consumed from args.
//
// Info backs debug-severity output and Debug backs trace-severity output.
type Console interface {
	// Error receives ERROR logs.
	Error(message string, args ...any)
	// Warn receives WARN logs.
	Warn(message string, args ...any)
	// Info receives DEBUG logs.
	Info(message string, args ...any)
	// Debug receives TRACE logs.
	Debug(message string, args ...any)
}

// ExtLogger is an externally supplied destination. It receives decomposed
// metadata instead of a rendered prefix and may filter a second time.
type ExtLogger interface {
	Error(meta Meta, message string, fields Fields)
	Warn(meta Meta, message string, fields Fields)
	Debug(meta Meta, message string, fields Fields)
	Trace(meta Meta, message string, fields Fields)
}

// KeyedFactory builds an ExtLogger for a name-and-key path.
type KeyedFactory func(segments []Segment) ExtLogger

// NamedFactory builds an ExtLogger for a path of rendered names, where keys
// are folded into the name as "name (key)".
type NamedFactory func(names []string) ExtLogger

// UtilLogger is a downgraded logger backed by a single audience, for passing
// to utility code that should not see the full call-site surface.
type UtilLogger interface {
	// Error is usually equivalent to Console.Error.
	Error(message string, fields ...Fields)
	// Warn is usually equivalent to Console.Warn.
	Warn(message string, fields ...Fields)
	// Debug is usually equivalent to Console.Info.
	Debug(message string, fields ...Fields)
	// Trace is usually equivalent to Console.Debug.
	Trace(message string, fields ...Fields)
	Named(name string, key ...any) UtilLogger
}
