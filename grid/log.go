package grid

import (
	"sync"

	"go.uber.org/zap"
)

// packageLogger receives the clamp and unknown-key warnings emitted by the
// pure helpers in this package. It defaults to a no-op logger so the library
// stays silent unless the host application opts in.
var (
	packageLogger   = zap.NewNop()
	packageLoggerMu sync.RWMutex
)

// SetLogger registers the logger used for engine warnings. Typically called
// once at app startup, before any layout resolution occurs.
func SetLogger(l *zap.Logger) {
	packageLoggerMu.Lock()
	defer packageLoggerMu.Unlock()
	if l == nil {
		l = zap.NewNop()
	}
	packageLogger = l
}

func logger() *zap.Logger {
	packageLoggerMu.RLock()
	defer packageLoggerMu.RUnlock()
	return packageLogger
}
