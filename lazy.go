package librarylog

// LazyLogger mirrors the Logger call-sites, but takes a producer for the
// fields. The producer runs only when the call-site is bound to a sink.
type LazyLogger struct {
	b *bindings
}

// Func returns the lazy bound function for m.
func (l LazyLogger) Func(m Method) LazyFunc {
	return l.b.lazy[m]
}

// Hmm is the lazy Logger.Hmm (ERROR, internal, troubleshooting).
func (l LazyLogger) Hmm(message string, fields func() Fields) {
	l.b.lazy[MethodHmm](message, fields)
}

// Todo is the lazy Logger.Todo (ERROR, internal, todo).
func (l LazyLogger) Todo(message string, fields func() Fields) {
	l.b.lazy[MethodTodo](message, fields)
}

// Error is the lazy Logger.Error (ERROR, internal, general).
func (l LazyLogger) Error(message string, fields func() Fields) {
	l.b.lazy[MethodError](message, fields)
}

// ErrorDev is the lazy Logger.ErrorDev (ERROR, dev, general).
func (l LazyLogger) ErrorDev(message string, fields func() Fields) {
	l.b.lazy[MethodErrorDev](message, fields)
}

// ErrorPublic is the lazy Logger.ErrorPublic (ERROR, public, general).
func (l LazyLogger) ErrorPublic(message string, fields func() Fields) {
	l.b.lazy[MethodErrorPublic](message, fields)
}

// Kapow is the lazy Logger.Kapow (WARN, internal, troubleshooting).
func (l LazyLogger) Kapow(message string, fields func() Fields) {
	l.b.lazy[MethodKapow](message, fields)
}

// Warn is the lazy Logger.Warn (WARN, internal, general).
func (l LazyLogger) Warn(message string, fields func() Fields) {
	l.b.lazy[MethodWarn](message, fields)
}

// WarnDev is the lazy Logger.WarnDev (WARN, dev, general).
func (l LazyLogger) WarnDev(message string, fields func() Fields) {
	l.b.lazy[MethodWarnDev](message, fields)
}

// WarnPublic is the lazy Logger.WarnPublic (WARN, public, general).
func (l LazyLogger) WarnPublic(message string, fields func() Fields) {
	l.b.lazy[MethodWarnPublic](message, fields)
}

// Debug is the lazy Logger.Debug (DEBUG, internal, general).
func (l LazyLogger) Debug(message string, fields func() Fields) {
	l.b.lazy[MethodDebug](message, fields)
}

// DebugDev is the lazy Logger.DebugDev (DEBUG, dev, general).
func (l LazyLogger) DebugDev(message string, fields func() Fields) {
	l.b.lazy[MethodDebugDev](message, fields)
}

// Trace is the lazy Logger.Trace (TRACE, internal, general).
func (l LazyLogger) Trace(message string, fields func() Fields) {
	l.b.lazy[MethodTrace](message, fields)
}

// TraceDev is the lazy Logger.TraceDev (TRACE, dev, general).
func (l LazyLogger) TraceDev(message string, fields func() Fields) {
	l.b.lazy[MethodTraceDev](message, fields)
}
