package types

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps a named sugared zap logger.
type Logger struct {
	*zap.SugaredLogger
	LogsPath string
	Name     string
}

// Log is the snapshot of one entry passed to hooks.
type Log struct {
	Timestamp  time.Time
	Caller     string
	LoggerName string
	Level      zapcore.Level
	Message    string
}

// LogHook is called for every log entry once set.
type LogHook func(log Log)
