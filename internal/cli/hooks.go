package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// logHooks reports pipeline events at debug level.
type logHooks struct {
	logger *log.Logger
}

func (h *logHooks) OnStratifyStart(_ context.Context, strategy string, cells int) {
	h.logger.Debug("stratify start", "strategy", strategy, "cells", cells)
}

func (h *logHooks) OnStratifyComplete(_ context.Context, strategy string, cells, unknown int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("stratify failed", "strategy", strategy, "err", err)
		return
	}
	h.logger.Debug("stratify done", "strategy", strategy, "cells", cells, "unknown", unknown, "duration", d)
}

func (h *logHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h *logHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h *logHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "size", size)
}
