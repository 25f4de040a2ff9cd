package logging

import (
	"sync"

	"github.com/pion/logging"
)

var (
	loggerFactory = logging.NewDefaultLoggerFactory()

	mu      sync.Mutex
	loggers []*logging.DefaultLeveledLogger
)

func NewLogger(scope string) logging.LeveledLogger {
	mu.Lock()
	defer mu.Unlock()

	logger := loggerFactory.NewLogger(scope)
	if l, ok := logger.(*logging.DefaultLeveledLogger); ok {
		loggers = append(loggers, l)
	}
	return logger
}

// SetLevel changes the level of every logger handed out so far and of the
// ones created later. PION_LOG_* environment variables are only consulted at
// startup.
func SetLevel(level logging.LogLevel) {
	mu.Lock()
	defer mu.Unlock()

	loggerFactory.DefaultLogLevel = level
	for _, l := range loggers {
		l.SetLevel(level)
	}
}
