package common

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/lni/dragonboat/v4/logger"
)

// loggerNames are the subsystems this library logs through
var loggerNames = []string{"transport", "transport/http"}

// --------------------------------------------------------------------------
// Custom Logger (implements logger.ILogger)
// --------------------------------------------------------------------------

// transportLogger implements the ILogger interface with one compact line
// per message, written to stderr so log output never mixes with payload
// data on stdout
type transportLogger struct {
	name  string
	level logger.LogLevel
	out   *log.Logger
}

func (l *transportLogger) SetLevel(level logger.LogLevel) {
	l.level = level
}

// logf formats and writes the message if the logger is levelled at or
// above want. all public level methods funnel through here
func (l *transportLogger) logf(want logger.LogLevel, tag string, format string, args ...interface{}) {
	if l.level < want {
		return
	}
	l.out.Printf("%-5s | %-15s | %s", tag, l.name, fmt.Sprintf(format, args...))
}

func (l *transportLogger) Debugf(format string, args ...interface{}) {
	l.logf(logger.DEBUG, "DEBUG", format, args...)
}

func (l *transportLogger) Infof(format string, args ...interface{}) {
	l.logf(logger.INFO, "INFO", format, args...)
}

func (l *transportLogger) Warningf(format string, args ...interface{}) {
	l.logf(logger.WARNING, "WARN", format, args...)
}

func (l *transportLogger) Errorf(format string, args ...interface{}) {
	l.logf(logger.ERROR, "ERROR", format, args...)
}

// Panicf is deliberately not levelled: a message this severe must never be
// suppressed by configuration
func (l *transportLogger) Panicf(format string, args ...interface{}) {
	panic(fmt.Sprintf(format, args...))
}

// --------------------------------------------------------------------------
// Logger Factory
// --------------------------------------------------------------------------

// CreateLogger builds a logger for the named subsystem. It satisfies
// logger.Factory.
func CreateLogger(pkgName string) logger.ILogger {
	return &transportLogger{
		name:  pkgName,
		level: logger.INFO,
		out:   log.New(os.Stderr, "", log.Ldate|log.Ltime),
	}
}

// --------------------------------------------------------------------------
// Helper
// --------------------------------------------------------------------------

// parseLogLevel converts a string level to logger.LogLevel
func parseLogLevel(level string) (logger.LogLevel, error) {
	switch strings.ToLower(level) {
	case "debug":
		return logger.DEBUG, nil
	case "info":
		return logger.INFO, nil
	case "warning", "warn":
		return logger.WARNING, nil
	case "error":
		return logger.ERROR, nil
	default:
		return 0, fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", level)
	}
}

// --------------------------------------------------------------------------
// Logger initialization
// --------------------------------------------------------------------------

// InitLoggers installs the custom logger factory and levels every logger
// this library logs through. Embedders that already configured a factory of
// their own can skip this and level the named loggers directly.
func InitLoggers(logLevel string) error {
	level, err := parseLogLevel(logLevel)
	if err != nil {
		return err
	}

	logger.SetLoggerFactory(CreateLogger)
	for _, name := range loggerNames {
		logger.GetLogger(name).SetLevel(level)
	}
	return nil
}
