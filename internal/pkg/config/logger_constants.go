package config

// Log severity levels accepted by the logger settings.
const (
	LogLevelInfo     = "info"
	LogLevelDebug    = "debug"
	LogLevelError    = "error"
	LogLevelWarning  = "warning"
	LogLevelCritical = "critical"
)

// Log sink types accepted by the logger settings.
const (
	LogTypeConsole = "console"
	LogTypeFile    = "file"
)
