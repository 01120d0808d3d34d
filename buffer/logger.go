package buffer

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the logger used for allocation diagnostics.
// It is a no-op logger until SetLogger is called.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger installs l for allocation diagnostics.
// Call it before the first buffer is allocated.
func SetLogger(l *zap.Logger) {
	logger = l
}

func logAllocFailed(slots int, elemSize uintptr, limit uint64) {
	if ce := Logger().Check(zap.WarnLevel, "buffer allocation refused"); ce != nil {
		ce.Write(
			zap.Int("slots", slots),
			zap.Uint64("elem_size", uint64(elemSize)),
			zap.Uint64("limit", limit))
	}
}
