package logging

import (
	"sync"

	"github.com/pion/logging"
)

const scopePrefix = "vidcbuf/"

var (
	mu            sync.RWMutex
	loggerFactory logging.LoggerFactory = logging.NewDefaultLoggerFactory()
)

// NewLogger returns a leveled logger for the given scope. Scopes are prefixed
// with "vidcbuf/" so PION_LOG_* environment variables can target them.
func NewLogger(scope string) logging.LeveledLogger {
	return Factory().NewLogger(scopePrefix + scope)
}

// Factory returns the factory used by NewLogger.
func Factory() logging.LoggerFactory {
	mu.RLock()
	defer mu.RUnlock()
	return loggerFactory
}

// SetLoggerFactory replaces the factory used by NewLogger. Loggers created
// before the call keep their previous factory.
func SetLoggerFactory(f logging.LoggerFactory) {
	if f == nil {
		f = logging.NewDefaultLoggerFactory()
	}
	mu.Lock()
	loggerFactory = f
	mu.Unlock()
}
