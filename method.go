package librarylog

// Method identifies one of the fixed log call-sites.
type Method uint8

const (
	// MethodHmm marks an unexpected event worth investigating.
	MethodHmm Method = iota
	// MethodTodo marks unfinished code paths.
	MethodTodo
	MethodError
	MethodErrorDev
	MethodErrorPublic
	// MethodKapow surfaces something right now while debugging; it is not
	// meant to stay in the code.
	MethodKapow
	MethodWarn
	MethodWarnDev
	MethodWarnPublic
	MethodDebug
	MethodDebugDev
	MethodTrace
	MethodTraceDev

	methodCount
)

// channel is the output function a call-site writes to.
type channel uint8

const (
	channelError channel = iota
	channelWarn
	channelDebug
	channelTrace
)

type methodSpec struct {
	name    string
	level   Level
	channel channel
}

var methodTable = [methodCount]methodSpec{
	MethodHmm:         {"_hmm", Level{ErrorLevel, AudienceInternal, CategoryTroubleshooting}, channelError},
	MethodTodo:        {"_todo", Level{ErrorLevel, AudienceInternal, CategoryTodo}, channelError},
	MethodError:       {"_error", Level{ErrorLevel, AudienceInternal, CategoryGeneral}, channelError},
	MethodErrorDev:    {"errorDev", Level{ErrorLevel, AudienceDev, CategoryGeneral}, channelError},
	MethodErrorPublic: {"errorPublic", Level{ErrorLevel, AudiencePublic, CategoryGeneral}, channelError},
	MethodKapow:       {"_kapow", Level{WarnLevel, AudienceInternal, CategoryTroubleshooting}, channelWarn},
	MethodWarn:        {"_warn", Level{WarnLevel, AudienceInternal, CategoryGeneral}, channelWarn},
	MethodWarnDev:     {"warnDev", Level{WarnLevel, AudienceDev, CategoryGeneral}, channelWarn},
	MethodWarnPublic:  {"warnPublic", Level{WarnLevel, AudiencePublic, CategoryGeneral}, channelWarn},
	MethodDebug:       {"_debug", Level{DebugLevel, AudienceInternal, CategoryGeneral}, channelDebug},
	MethodDebugDev:    {"debugDev", Level{DebugLevel, AudienceDev, CategoryGeneral}, channelDebug},
	MethodTrace:       {"_trace", Level{TraceLevel, AudienceInternal, CategoryGeneral}, channelTrace},
	MethodTraceDev:    {"traceDev", Level{TraceLevel, AudienceDev, CategoryGeneral}, channelTrace},
}

// Meta is the decomposed, immutable description of a call-site. External
// factories receive it with every call.
type Meta struct {
	Audience Audience
	Category Category
	Level    Severity
}

var metas [methodCount]Meta

func init() {
	for m, entry := range methodTable {
		lvl := entry.level
		if lvl.Severity < TraceLevel || lvl.Severity > ErrorLevel || lvl.Audience == 0 || lvl.Category == 0 {
			panic("librarylog: malformed level for " + entry.name)
		}
		metas[m] = Meta{Audience: lvl.Audience, Category: lvl.Category, Level: lvl.Severity}
	}
}

// MetaOf returns the metadata of m.
func MetaOf(m Method) Meta {
	return metas[m]
}

// LevelOf returns the composite level of m.
func LevelOf(m Method) Level {
	return methodTable[m].level
}

// Methods lists every call-site in declaration order.
func Methods() []Method {
	out := make([]Method, methodCount)
	for i := range out {
		out[i] = Method(i)
	}
	return out
}

// String returns the call-site's canonical name, e.g. "_kapow" or "warnDev".
func (m Method) String() string {
	if m < methodCount {
		return methodTable[m].name
	}
	return "unknown"
}
