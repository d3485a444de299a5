package xlogger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/vitalvas/ulid"
)

// TraceKey is the attribute key under which trace ids are logged.
const TraceKey = "trace_id"

type Config struct {
	Level      string
	LogType    string
	AddSource  bool
	SourcePath string

	// Output defaults to os.Stdout.
	Output io.Writer
}

type traceKey struct{}

func New(conf Config) *slog.Logger {
	opts := &slog.HandlerOptions{
		AddSource:   conf.AddSource,
		Level:       getLogLevel(conf.Level),
		ReplaceAttr: replaceAttr(conf),
	}

	out := conf.Output
	if out == nil {
		out = os.Stdout
	}

	return slog.New(&traceHandler{Handler: getHandler(conf.LogType, out, opts)})
}

// WithTraceID returns a context whose log records carry id as trace_id.
func WithTraceID(ctx context.Context, id ulid.ULID) context.Context {
	return context.WithValue(ctx, traceKey{}, id)
}

// TraceID returns the trace id stored in ctx, if any.
func TraceID(ctx context.Context) (ulid.ULID, bool) {
	id, ok := ctx.Value(traceKey{}).(ulid.ULID)
	return id, ok
}

func getLogLevel(logLevel string) slog.Level {
	switch strings.ToLower(logLevel) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getHandler(logType string, out io.Writer, opts *slog.HandlerOptions) slog.Handler {
	switch strings.ToLower(logType) {
	case "json":
		return slog.NewJSONHandler(out, opts)

	default:
		return slog.NewTextHandler(out, opts)
	}
}

func replaceAttr(conf Config) func(groups []string, a slog.Attr) slog.Attr {
	return func(_ []string, attr slog.Attr) slog.Attr {
		if attr.Key == slog.SourceKey {
			if source, ok := attr.Value.Any().(*slog.Source); ok && source != nil {
				return slog.String(slog.SourceKey, trimSource(conf.SourcePath, source))
			}
		}

		return attr
	}
}

func trimSource(prefix string, source *slog.Source) string {
	file := source.File

	if len(prefix) > 0 {
		if strings.HasPrefix(file, prefix) {
			file = strings.TrimPrefix(file, prefix)
		} else if index := strings.Index(file, prefix); index > 0 {
			file = file[index+len(prefix):]
		}
	}

	return fmt.Sprintf("%s:%d", file, source.Line)
}

// traceHandler adds the context trace id to every record.
type traceHandler struct {
	slog.Handler
}

func (h *traceHandler) Handle(ctx context.Context, record slog.Record) error {
	if id, ok := TraceID(ctx); ok {
		record.AddAttrs(slog.String(TraceKey, id.String()))
	}

	return h.Handler.Handle(ctx, record)
}

func (h *traceHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &traceHandler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h *traceHandler) WithGroup(name string) slog.Handler {
	return &traceHandler{Handler: h.Handler.WithGroup(name)}
}
