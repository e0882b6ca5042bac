package service

const emptyString = ""

// Supported backends.
const (
	BackendZerolog = "zerolog"
	BackendZap     = "zap"
	BackendLogrus  = "logrus"
	BackendSlog    = "slog"
)

// Supported console formats.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

const (
	errMsgNilConfig        = "Logging config is nil."
	errMsgNilService       = "Logger service is nil."
	errMsgWorkingDirNotSet = "Working dir has not been set."
	errMsgConfigInvalid    = "Logging configuration is invalid."
	errMsgNoChannels       = "No logging channels enabled."
	errMsgLogDir           = "Failed to create logs directory."
	errMsgFlush            = "Failed to flush logger."
	errMsgCloseFile        = "Failed to close log file."
	errMsgReadConfig       = "Failed to read logging config."
	errMsgParseConfig      = "Failed to parse logging config."
)
