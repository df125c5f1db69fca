package librarylog

// consoleEmitter binds call-sites to a Console with a pre-rendered prefix.
// The plain and styled variants differ only in how the prefix is built.
type consoleEmitter struct {
	con Console
	// prefix is the format string followed by its style arguments.
	prefix []any
	// kapowPrefix is used by MethodKapow.
	kapowPrefix []any
}

func newPlainEmitter(con Console, src Source) *consoleEmitter {
	prefix := []any{plainPrefix(src)}
	return &consoleEmitter{con: con, prefix: prefix, kapowPrefix: prefix}
}

func newStyledEmitter(con Console, src Source, styles *StyleCache) *consoleEmitter {
	prefix := styledPrefix(src, styles)
	return &consoleEmitter{con: con, prefix: prefix, kapowPrefix: kapowPrefix(prefix)}
}

func (e *consoleEmitter) bind(m Method) LogFunc {
	prefix := e.prefix
	if m == MethodKapow {
		prefix = e.kapowPrefix
	}
	format := prefix[0].(string)
	head := prefix[1:]

	var out func(string, ...any)
	switch methodTable[m].channel {
	case channelError:
		out = e.con.Error
	case channelWarn:
		out = e.con.Warn
	case channelDebug:
		out = e.con.Info
	default:
		out = e.con.Debug
	}

	return func(message string, fields ...Fields) {
		args := make([]any, 0, len(head)+1+len(fields))
		args = append(args, head...)
		args = append(args, message)
		for _, f := range fields {
			if f != nil {
				args = append(args, f)
			}
		}
		out(format, args...)
	}
}

// plainPrefix renders " name" or " name#key" per segment.
func plainPrefix(src Source) string {
	var prefix string
	for _, seg := range src.segments {
		prefix += " " + seg.Name
		if seg.HasKey() {
			prefix += "#" + seg.KeyString()
		}
	}
	return prefix
}

// styledPrefix renders a %c directive and a style argument per segment, plus
// a second pair for the key.
func styledPrefix(src Source, styles *StyleCache) []any {
	var format string
	var args []any
	for _, seg := range src.segments {
		format += " %c" + seg.Name
		args = append(args, styles.CSS(seg.Name))
		if seg.HasKey() {
			keyStr := "%c#" + seg.KeyString()
			format += keyStr
			args = append(args, styles.CSS(keyStr))
		}
	}
	return append([]any{format}, args...)
}

// kapowPrefix highlights every style argument of prefix.
func kapowPrefix(prefix []any) []any {
	out := make([]any, len(prefix))
	copy(out, prefix)
	for i := 1; i < len(out); i++ {
		out[i] = out[i].(string) + kapowHighlight
	}
	return out
}
