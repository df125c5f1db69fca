package librarylog

// Logger is one node of the naming tree. Its call-sites are resolved once, at
// construction, against a single configuration snapshot; a Logger is never
// modified afterwards and is safe for concurrent use.
//
// The internal call-sites (Hmm, Todo, Error, Kapow, Warn, Debug, Trace) target
// maintainers of the library; the *Dev call-sites target developers using it;
// the *Public call-sites target end users and are always emitted.
type Logger struct {
	source  Source
	b       *bindings
	current func() *Config
}

// build resolves a node for src against cfg. current supplies the snapshot
// children are built from.
func build(src Source, cfg *Config, current func() *Config) *Logger {
	if cfg == nil {
		cfg = &Config{}
	}
	inc := cfg.Resolve(src)
	return &Logger{
		source:  src,
		b:       bindAll(inc, cfg.sink().emitter(src, cfg.style)),
		current: current,
	}
}

// Build resolves a standalone node for src against cfg. Children created with
// Named keep using cfg.
func Build(src Source, cfg *Config) *Logger {
	if cfg == nil {
		cfg = &Config{}
	}
	return build(src, cfg, func() *Config { return cfg })
}

// Named returns a child node with one more path segment. The child is built
// from the provider's current configuration, and the include hook is
// consulted again for the extended path. At most one key is used.
func (l *Logger) Named(name string, key ...any) *Logger {
	return build(l.source.Named(name, key...), l.current(), l.current)
}

// Source returns the node's path.
func (l *Logger) Source() Source {
	return l.source
}

// Enabled reports whether m was bound to the sink when the node was built.
func (l *Logger) Enabled(m Method) bool {
	return l.b.enabled[m]
}

// Func returns the bound function for m.
func (l *Logger) Func(m Method) LogFunc {
	return l.b.fns[m]
}

// Lazy returns the lazy variants of the node's call-sites.
func (l *Logger) Lazy() LazyLogger {
	return LazyLogger{b: l.b}
}

// Downgrade returns the audience-restricted views of the node.
func (l *Logger) Downgrade() Downgrade {
	return Downgrade{l: l}
}

// Hmm logs an unexpected event (ERROR, internal, troubleshooting).
func (l *Logger) Hmm(message string, fields ...Fields) {
	l.b.fns[MethodHmm](message, fields...)
}

// Todo logs an unfinished code path (ERROR, internal, todo).
func (l *Logger) Todo(message string, fields ...Fields) {
	l.b.fns[MethodTodo](message, fields...)
}

// Error logs a failure (ERROR, internal, general).
func (l *Logger) Error(message string, fields ...Fields) {
	l.b.fns[MethodError](message, fields...)
}

// ErrorDev logs a failure caused by the calling code (ERROR, dev, general).
func (l *Logger) ErrorDev(message string, fields ...Fields) {
	l.b.fns[MethodErrorDev](message, fields...)
}

// ErrorPublic logs a failure the end user should see (ERROR, public, general).
func (l *Logger) ErrorPublic(message string, fields ...Fields) {
	l.b.fns[MethodErrorPublic](message, fields...)
}

// Kapow surfaces a temporary debugging marker (WARN, internal,
// troubleshooting). The styled console highlights it.
func (l *Logger) Kapow(message string, fields ...Fields) {
	l.b.fns[MethodKapow](message, fields...)
}

// Warn logs a recoverable problem (WARN, internal, general).
func (l *Logger) Warn(message string, fields ...Fields) {
	l.b.fns[MethodWarn](message, fields...)
}

// WarnDev logs misuse by the calling code (WARN, dev, general).
func (l *Logger) WarnDev(message string, fields ...Fields) {
	l.b.fns[MethodWarnDev](message, fields...)
}

// WarnPublic logs a problem the end user should see (WARN, public, general).
func (l *Logger) WarnPublic(message string, fields ...Fields) {
	l.b.fns[MethodWarnPublic](message, fields...)
}

// Debug logs diagnostic detail (DEBUG, internal, general).
func (l *Logger) Debug(message string, fields ...Fields) {
	l.b.fns[MethodDebug](message, fields...)
}

// DebugDev logs diagnostic detail for developers (DEBUG, dev, general).
func (l *Logger) DebugDev(message string, fields ...Fields) {
	l.b.fns[MethodDebugDev](message, fields...)
}

// Trace logs fine-grained progress (TRACE, internal, general).
func (l *Logger) Trace(message string, fields ...Fields) {
	l.b.fns[MethodTrace](message, fields...)
}

// TraceDev logs fine-grained progress for developers (TRACE, dev, general).
func (l *Logger) TraceDev(message string, fields ...Fields) {
	l.b.fns[MethodTraceDev](message, fields...)
}
