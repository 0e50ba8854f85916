package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks writes every event to a logger at debug level, errors at warn.
type LogHooks struct {
	logger *log.Logger
}

// NewLogHooks returns hooks that log to logger, or log.Default() when nil.
func NewLogHooks(logger *log.Logger) *LogHooks {
	if logger == nil {
		logger = log.Default()
	}
	return &LogHooks{logger: logger}
}

func (h *LogHooks) OnBuildStart(_ context.Context, source string) {
	h.logger.Debug("build start", "source", source)
}

func (h *LogHooks) OnBuildComplete(_ context.Context, source string, s BuildStats, d time.Duration, err error) {
	if err != nil {
		h.logger.Warn("build failed", "source", source, "duration", d, "err", err)
		return
	}
	h.logger.Debug("build done", "source", source, "nodes", s.Nodes, "subgraphs", s.Subgraphs,
		"ports", s.Ports, "edges", s.Edges, "duration", d)
}

func (h *LogHooks) OnLayoutStart(_ context.Context, mode string, nodeCount int) {
	h.logger.Debug("layout start", "mode", mode, "nodes", nodeCount)
}

func (h *LogHooks) OnLayoutComplete(_ context.Context, mode string, d time.Duration, err error) {
	if err != nil {
		h.logger.Warn("layout failed", "mode", mode, "duration", d, "err", err)
		return
	}
	h.logger.Debug("layout done", "mode", mode, "duration", d)
}

func (h *LogHooks) OnRenderStart(_ context.Context, format string) {
	h.logger.Debug("render start", "format", format)
}

func (h *LogHooks) OnRenderComplete(_ context.Context, format string, size int, d time.Duration, err error) {
	if err != nil {
		h.logger.Warn("render failed", "format", format, "duration", d, "err", err)
		return
	}
	h.logger.Debug("render done", "format", format, "bytes", size, "duration", d)
}

func (h *LogHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "stage", keyType)
}

func (h *LogHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "stage", keyType)
}

func (h *LogHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "stage", keyType, "bytes", size)
}

func (h *LogHooks) OnRequest(_ context.Context, method, route string) {
	h.logger.Debug("request", "method", method, "route", route)
}

func (h *LogHooks) OnResponse(_ context.Context, method, route string, status int, d time.Duration) {
	h.logger.Info("response", "method", method, "route", route, "status", status, "duration", d)
}

var (
	_ PipelineHooks = (*LogHooks)(nil)
	_ CacheHooks    = (*LogHooks)(nil)
	_ ServerHooks   = (*LogHooks)(nil)
)
