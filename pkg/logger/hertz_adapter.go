package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// HertzSlogAdapter bridges Hertz's hlog.FullLogger interface onto slog,
// so framework-internal logs share the application's handler.
type HertzSlogAdapter struct {
	logger *slog.Logger
}

// NewHertzSlogAdapter creates a Hertz logger adapter backed by logger.
func NewHertzSlogAdapter(logger *slog.Logger) *HertzSlogAdapter {
	return &HertzSlogAdapter{logger: logger}
}

func (h *HertzSlogAdapter) log(level slog.Level, v ...interface{}) {
	h.logger.Log(context.Background(), level, fmt.Sprint(v...))
}

func (h *HertzSlogAdapter) logf(ctx context.Context, level slog.Level, format string, v ...interface{}) {
	h.logger.Log(ctx, level, fmt.Sprintf(format, v...))
}

// Trace and Notice have no slog counterpart; they map to Debug and Info.
// Fatal maps to Error: exiting is the server's decision, not the logger's.

func (h *HertzSlogAdapter) Trace(v ...interface{})  { h.log(slog.LevelDebug, v...) }
func (h *HertzSlogAdapter) Debug(v ...interface{})  { h.log(slog.LevelDebug, v...) }
func (h *HertzSlogAdapter) Info(v ...interface{})   { h.log(slog.LevelInfo, v...) }
func (h *HertzSlogAdapter) Notice(v ...interface{}) { h.log(slog.LevelInfo, v...) }
func (h *HertzSlogAdapter) Warn(v ...interface{})   { h.log(slog.LevelWarn, v...) }
func (h *HertzSlogAdapter) Error(v ...interface{})  { h.log(slog.LevelError, v...) }
func (h *HertzSlogAdapter) Fatal(v ...interface{})  { h.log(slog.LevelError, v...) }

func (h *HertzSlogAdapter) Tracef(format string, v ...interface{}) {
	h.logf(context.Background(), slog.LevelDebug, format, v...)
}

func (h *HertzSlogAdapter) Debugf(format string, v ...interface{}) {
	h.logf(context.Background(), slog.LevelDebug, format, v...)
}

func (h *HertzSlogAdapter) Infof(format string, v ...interface{}) {
	h.logf(context.Background(), slog.LevelInfo, format, v...)
}

func (h *HertzSlogAdapter) Noticef(format string, v ...interface{}) {
	h.logf(context.Background(), slog.LevelInfo, format, v...)
}

func (h *HertzSlogAdapter) Warnf(format string, v ...interface{}) {
	h.logf(context.Background(), slog.LevelWarn, format, v...)
}

func (h *HertzSlogAdapter) Errorf(format string, v ...interface{}) {
	h.logf(context.Background(), slog.LevelError, format, v...)
}

func (h *HertzSlogAdapter) Fatalf(format string, v ...interface{}) {
	h.logf(context.Background(), slog.LevelError, format, v...)
}

func (h *HertzSlogAdapter) CtxTracef(ctx context.Context, format string, v ...interface{}) {
	h.logf(ctx, slog.LevelDebug, format, v...)
}

func (h *HertzSlogAdapter) CtxDebugf(ctx context.Context, format string, v ...interface{}) {
	h.logf(ctx, slog.LevelDebug, format, v...)
}

func (h *HertzSlogAdapter) CtxInfof(ctx context.Context, format string, v ...interface{}) {
	h.logf(ctx, slog.LevelInfo, format, v...)
}

func (h *HertzSlogAdapter) CtxNoticef(ctx context.Context, format string, v ...interface{}) {
	h.logf(ctx, slog.LevelInfo, format, v...)
}

func (h *HertzSlogAdapter) CtxWarnf(ctx context.Context, format string, v ...interface{}) {
	h.logf(ctx, slog.LevelWarn, format, v...)
}

func (h *HertzSlogAdapter) CtxErrorf(ctx context.Context, format string, v ...interface{}) {
	h.logf(ctx, slog.LevelError, format, v...)
}

func (h *HertzSlogAdapter) CtxFatalf(ctx context.Context, format string, v ...interface{}) {
	h.logf(ctx, slog.LevelError, format, v...)
}

// SetLevel is a no-op for interface compatibility; the slog level is
// fixed at setup time.
func (h *HertzSlogAdapter) SetLevel(level hlog.Level) {}

// SetOutput is a no-op for interface compatibility; the slog output is
// fixed at setup time.
func (h *HertzSlogAdapter) SetOutput(writer io.Writer) {}
