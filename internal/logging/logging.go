// Package logging configures logrus for the host and adapts it to the
// logger interface the Wails runtime expects.
package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	wailslogger "github.com/wailsapp/wails/v2/pkg/logger"
)

// New returns a logrus logger writing text to out at the named level.
// Unknown levels fall back to info.
func New(out io.Writer, level string) *logrus.Logger {
	if out == nil {
		out = os.Stderr
	}
	log := logrus.New()
	log.SetOutput(out)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)
	return log
}

// WailsLevel maps a logrus level onto the Wails runtime's log level.
func WailsLevel(level logrus.Level) wailslogger.LogLevel {
	switch level {
	case logrus.TraceLevel:
		return wailslogger.TRACE
	case logrus.DebugLevel:
		return wailslogger.DEBUG
	case logrus.WarnLevel:
		return wailslogger.WARNING
	case logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel:
		return wailslogger.ERROR
	default:
		return wailslogger.INFO
	}
}

// WailsLogger sends runtime log lines through logrus.
type WailsLogger struct {
	entry *logrus.Entry
}

var _ wailslogger.Logger = (*WailsLogger)(nil)

func NewWailsLogger(log logrus.FieldLogger) *WailsLogger {
	return &WailsLogger{entry: log.WithField("component", "wails")}
}

func (l *WailsLogger) Print(message string)   { l.entry.Print(message) }
func (l *WailsLogger) Trace(message string)   { l.entry.Trace(message) }
func (l *WailsLogger) Debug(message string)   { l.entry.Debug(message) }
func (l *WailsLogger) Info(message string)    { l.entry.Info(message) }
func (l *WailsLogger) Warning(message string) { l.entry.Warn(message) }
func (l *WailsLogger) Error(message string)   { l.entry.Error(message) }

// Fatal logs at error level and leaves shutdown to the runtime.
func (l *WailsLogger) Fatal(message string) { l.entry.Error(message) }
