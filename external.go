package librarylog

// extEmitter binds call-sites to an ExtLogger, passing the call-site's
// metadata instead of a rendered prefix.
type extEmitter struct {
	ext ExtLogger
}

func (e *extEmitter) bind(m Method) LogFunc {
	meta := metas[m]
	var out func(Meta, string, Fields)
	switch methodTable[m].channel {
	case channelError:
		out = e.ext.Error
	case channelWarn:
		out = e.ext.Warn
	case channelDebug:
		out = e.ext.Debug
	default:
		out = e.ext.Trace
	}
	return func(message string, fields ...Fields) {
		out(meta, message, mergeFields(fields))
	}
}

// namedToKeyed adapts a NamedFactory to the keyed shape by folding keys into
// the rendered names.
func namedToKeyed(named NamedFactory) KeyedFactory {
	return func(segments []Segment) ExtLogger {
		return named(Source{segments: segments}.Names())
	}
}
