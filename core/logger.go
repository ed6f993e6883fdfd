package core

// Logger is the application-wide logging contract.
// args may carry an error, a map of extras and/or the logged-in user for error reporting.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Fatal(msg string, args ...interface{})
}
