package vector

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the vector package's logger instance.
// It uses a no-op logger by default.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger configures the vector package's logger.
// This must be called before any vector operations.
func SetLogger(l *zap.Logger) {
	logger = l
}

func logGrow(op string, oldCap, newCap, size int) {
	if ce := Logger().Check(zap.DebugLevel, "vector grow"); ce != nil {
		ce.Write(
			zap.String("op", op),
			zap.Int("old_cap", oldCap),
			zap.Int("new_cap", newCap),
			zap.Int("size", size))
	}
}
