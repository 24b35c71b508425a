package logging

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	wailslogger "github.com/wailsapp/wails/v2/pkg/logger"
)

func TestNew_Level(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, New(nil, "debug").GetLevel())
	assert.Equal(t, logrus.WarnLevel, New(nil, "warning").GetLevel())
	assert.Equal(t, logrus.InfoLevel, New(nil, "nonsense").GetLevel())
}

func TestWailsLevel(t *testing.T) {
	cases := map[logrus.Level]wailslogger.LogLevel{
		logrus.TraceLevel: wailslogger.TRACE,
		logrus.DebugLevel: wailslogger.DEBUG,
		logrus.InfoLevel:  wailslogger.INFO,
		logrus.WarnLevel:  wailslogger.WARNING,
		logrus.ErrorLevel: wailslogger.ERROR,
		logrus.FatalLevel: wailslogger.ERROR,
	}
	for in, want := range cases {
		assert.Equal(t, want, WailsLevel(in), in.String())
	}
}

func TestWailsLogger_WritesThroughLogrus(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "trace")
	wl := NewWailsLogger(log)

	wl.Info("window ready")
	wl.Warning("slow asset")
	wl.Fatal("runtime gave up")

	out := buf.String()
	assert.Contains(t, out, "window ready")
	assert.Contains(t, out, "level=warning")
	assert.Contains(t, out, "runtime gave up")
	assert.Contains(t, out, "component=wails")
}

func TestWailsLogger_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	wl := NewWailsLogger(New(&buf, "error"))

	wl.Debug("hidden")
	wl.Info("hidden too")

	assert.Empty(t, buf.String())
}
