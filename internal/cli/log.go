package cli

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/newjenk/gridsystem/pkg/observability"
)

// newLogger creates a logger with "HH:MM:SS.ms" timestamps.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress logs the elapsed time of an operation when it finishes.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg with the elapsed time, e.g. "Rendered 12 blocks (3ms)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger on ctx, or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// =============================================================================
// Debug hooks
// =============================================================================

// logHooks reports render and cache events at debug level.
type logHooks struct {
	logger *log.Logger
}

func (h logHooks) OnRenderStart(_ context.Context, blocks int, profile string) {
	h.logger.Debug("render started", "blocks", blocks, "profile", profile)
}

func (h logHooks) OnBlockRendered(_ context.Context, block string, classes int, cached bool) {
	h.logger.Debug("block rendered", "block", block, "classes", classes, "cached", cached)
}

func (h logHooks) OnRenderComplete(_ context.Context, blocks int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("render failed", "blocks", blocks, "took", d, "err", err)
		return
	}
	h.logger.Debug("render complete", "blocks", blocks, "took", d)
}

func (h logHooks) OnCacheHit(_ context.Context, kind string) {
	h.logger.Debug("cache hit", "kind", kind)
}

func (h logHooks) OnCacheMiss(_ context.Context, kind string) {
	h.logger.Debug("cache miss", "kind", kind)
}

func (h logHooks) OnCacheSet(_ context.Context, kind string, size int) {
	h.logger.Debug("cache set", "kind", kind, "bytes", size)
}

var hooksOnce sync.Once

// registerLogHooks installs logHooks for the process lifetime.
func registerLogHooks(l *log.Logger) {
	hooksOnce.Do(func() {
		h := logHooks{logger: l}
		observability.SetRenderHooks(h)
		observability.SetCacheHooks(h)
	})
}
