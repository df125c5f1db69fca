package librarylog

import (
	"sync"
)

type consoleCall struct {
	channel string
	format  string
	args    []any
}

// recordingConsole captures every call made to it.
type recordingConsole struct {
	mu    sync.Mutex
	calls []consoleCall
}

func (c *recordingConsole) record(channel, format string, args []any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, consoleCall{channel: channel, format: format, args: args})
}

func (c *recordingConsole) Error(format string, args ...any) { c.record("error", format, args) }
func (c *recordingConsole) Warn(format string, args ...any) { c.record("warn", format, args) }
func (c *recordingConsole) Info(format string, args ...any) { c.record("info", format, args) }
func (c *recordingConsole) Debug(format string, args ...any) { c.record("debug", format, args) }

func (c *recordingConsole) Calls() []consoleCall {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]consoleCall, len(c.calls))
	copy(out, c.calls)
	return out
}

type extCall struct {
	channel string
	path    []Segment
	meta    Meta
	message string
	fields  Fields
}

// extRecorder backs a KeyedFactory that records calls and factory lookups.
type extRecorder struct {
	mu      sync.Mutex
	calls   []extCall
	created [][]Segment
}

func (r *extRecorder) factory() KeyedFactory {
	return func(segments []Segment) ExtLogger {
		r.mu.Lock()
		r.created = append(r.created, segments)
		r.mu.Unlock()
		return &recordingExt{r: r, path: segments}
	}
}

func (r *extRecorder) Calls() []extCall {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]extCall, len(r.calls))
	copy(out, r.calls)
	return out
}

type recordingExt struct {
	r    *extRecorder
	path []Segment
}

func (e *recordingExt) add(channel string, meta Meta, message string, fields Fields) {
	e.r.mu.Lock()
	defer e.r.mu.Unlock()
	e.r.calls = append(e.r.calls, extCall{channel: channel, path: e.path, meta: meta, message: message, fields: fields})
}

func (e *recordingExt) Error(meta Meta, message string, fields Fields) {
	e.add("error", meta, message, fields)
}

func (e *recordingExt) Warn(meta Meta, message string, fields Fields) {
	e.add("warn", meta, message, fields)
}

func (e *recordingExt) Debug(meta Meta, message string, fields Fields) {
	e.add("debug", meta, message, fields)
}

func (e *recordingExt) Trace(meta Meta, message string, fields Fields) {
	e.add("trace", meta, message, fields)
}

// callAll invokes every call-site of l once, with the method name as message.
func callAll(l *Logger) {
	for _, m := range Methods() {
		l.Func(m)(m.String())
	}
}
