package librarylog

// emitter is the one capability an output strategy supplies: turning an
// included call-site into a bound sink call. Prefix rendering and channel
// mapping live behind it.
type emitter interface {
	bind(m Method) LogFunc
}

// bindings is the resolved state of one node.
type bindings struct {
	fns     [methodCount]LogFunc
	lazy    [methodCount]LazyFunc
	enabled [methodCount]bool
}

func noop(string, ...Fields) {}
func noopLazy(string, func() Fields) {}

// bindAll evaluates ShouldLog once per call-site and binds each one to the
// emitter or to the shared no-op.
func bindAll(inc Inclusion, e emitter) *bindings {
	b := &bindings{}
	for m := Method(0); m < methodCount; m++ {
		if !ShouldLog(inc, methodTable[m].level) {
			b.fns[m] = noop
			b.lazy[m] = noopLazy
			continue
		}
		fn := e.bind(m)
		b.fns[m] = fn
		b.lazy[m] = lazy(fn)
		b.enabled[m] = true
	}
	return b
}

func lazy(fn LogFunc) LazyFunc {
	return func(message string, fields func() Fields) {
		if fields == nil {
			fn(message)
			return
		}
		fn(message, fields())
	}
}

// mergeFields flattens the variadic payload into one map. It returns nil when
// there is nothing to merge and the sole map as is when there is one.
func mergeFields(fields []Fields) Fields {
	switch len(fields) {
	case 0:
		return nil
	case 1:
		return fields[0]
	}
	out := make(Fields)
	for _, f := range fields {
		for k, v := range f {
			out[k] = v
		}
	}
	return out
}
