package librarylog

const (
	emptyString = ""

	// ConsoleShorthand is the string form accepted by ParseConsoleConfig.
	ConsoleShorthand = "console"
)

const (
	errMsgNilConfig        = "Logging config is nil."
	errMsgNilService       = "Logger service is nil."
	errMsgConfigInvalid    = "Logging configuration is invalid."
	errMsgUnsafeLogDir     = "RelLogFileDir must be a relative path inside the working directory."
	errMsgNoChannels       = "No logging channels enabled."
	errMsgUnknownConsole   = "Unknown console configuration."
	errMsgWorkingDirNotSet = "Working directory has not been set."
)

// Markers prepended when a public view forwards a message that has no public
// audience target to the internal warn call-site.
const (
	publicDebugMarker = `(public "debug" filtered out) `
	publicTraceMarker = `(public "trace" filtered out) `
)

// kapowHighlight is appended to every style argument of the Kapow prefix.
const kapowHighlight = ";background-color:#e0005a;padding:2px;color:white"
