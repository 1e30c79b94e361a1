package logger

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// New builds the JSON logger at LOG_LEVEL.
func New() *logrus.Logger {
	return NewWithLevel(os.Getenv("LOG_LEVEL"))
}

func NewWithLevel(level string) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	l.SetFormatter(&logrus.JSONFormatter{})
	l.SetLevel(ParseLevel(level))
	return l
}

// ParseLevel maps a LOG_LEVEL value to a logrus level, defaulting to info.
func ParseLevel(level string) logrus.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return logrus.TraceLevel
	case "debug":
		return logrus.DebugLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}
