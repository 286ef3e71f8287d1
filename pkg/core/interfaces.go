package core

// Logger interface for renderer progress logging
type Logger interface {
	Printf(format string, args ...interface{})
}
