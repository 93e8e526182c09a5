package log

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

var Logger *log.Logger

func init() {
	Logger = New(os.Stderr)
}

// New returns a logger with the installer's output settings writing to w.
func New(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: false,
		ReportCaller:    false,
	})
}

// SetDebug toggles debug output on the package logger.
func SetDebug(on bool) {
	if on {
		Logger.SetLevel(log.DebugLevel)
		return
	}
	Logger.SetLevel(log.InfoLevel)
}

// Debug logs a debug message.
func Debug(msg interface{}, keyvals ...interface{}) {
	Logger.Debug(msg, keyvals...)
}

// Debugf logs a debug message with formatting.
func Debugf(format string, args ...interface{}) {
	Logger.Debugf(format, args...)
}
