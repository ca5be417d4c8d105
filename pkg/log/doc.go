// Package log provides the logging abstraction used across primeify.
//
// The engine, codecs and watcher log through the Logger interface so that
// embedding applications can plug in their own logging library. A zerolog
// adapter and a no-op logger are provided.
//
// # Usage
//
//	zl := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
//	logger := log.NewZerologAdapterWithLogger(zl)
//
// Or, in tests:
//
//	logger := log.NewNoopLogger()
//
// # Custom Loggers
//
// Implement the Logger interface to integrate with your existing
// logging infrastructure:
//
//	type MyLogger struct { ... }
//
//	func (l *MyLogger) Debug(msg string, fields ...log.Field) { ... }
//	func (l *MyLogger) Info(msg string, fields ...log.Field) { ... }
//	func (l *MyLogger) Warn(msg string, fields ...log.Field) { ... }
//	func (l *MyLogger) Error(msg string, fields ...log.Field) { ... }
package log
