package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"

	"github.com/gleanwork/mcp-config-glean/internal/redact"
)

// Handler implements slog.Handler for terminal text output. Lines look like
//
//	3:04PM DEBUG building configuration client=cursor transport=stdio
//
// and are colourised when the writer supports it.
type Handler struct {
	opts   slog.HandlerOptions
	out    io.Writer
	mu     *sync.Mutex
	prefix string // dotted group path for attribute keys
	attrs  []slog.Attr

	colors *palette
}

type palette struct {
	time, trace, debug, info, warn, err, key *color.Color
}

// NewHandler creates a text handler writing to out.
func NewHandler(out io.Writer, opts *slog.HandlerOptions) *Handler {
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}

	h := &Handler{
		opts: *opts,
		out:  out,
		mu:   &sync.Mutex{},
	}
	if SupportsColor(out) {
		h.colors = &palette{
			time:  color.New(color.FgHiBlack),
			trace: color.New(color.FgHiBlack),
			debug: color.New(color.FgMagenta),
			info:  color.New(color.FgGreen),
			warn:  color.New(color.FgYellow),
			err:   color.New(color.FgRed, color.Bold),
			key:   color.New(color.FgCyan),
		}
	}
	return h
}

// Enabled reports whether the handler handles records at the given level.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	minLevel := slog.LevelInfo
	if h.opts.Level != nil {
		minLevel = h.opts.Level.Level()
	}
	return level >= minLevel
}

// Handle writes r as a single line.
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder

	if !r.Time.IsZero() {
		b.WriteString(h.paint(h.timeColor(), r.Time.Format(time.Kitchen)))
		b.WriteByte(' ')
	}
	fmt.Fprintf(&b, "%-5s %s", h.paint(h.levelColor(r.Level), levelName(r.Level)), r.Message)

	for _, a := range h.attrs {
		h.writeAttr(&b, a, "")
	}
	r.Attrs(func(a slog.Attr) bool {
		h.writeAttr(&b, a, h.prefix)
		return true
	})
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.out, b.String())
	return err
}

func (h *Handler) writeAttr(b *strings.Builder, a slog.Attr, prefix string) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		group := prefix
		if a.Key != "" {
			group = joinKey(prefix, a.Key)
		}
		for _, ga := range a.Value.Group() {
			h.writeAttr(b, ga, group)
		}
		return
	}

	if h.opts.ReplaceAttr != nil {
		a = h.opts.ReplaceAttr(nil, a)
	} else {
		a = redactAttr(a)
	}
	fmt.Fprintf(b, " %s=%v", h.paint(h.keyColor(), joinKey(prefix, a.Key)), a.Value.Any())
}

// WithAttrs returns a new Handler with the given attributes.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	newH := *h
	newH.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	newH.attrs = append(newH.attrs, h.attrs...)
	for _, a := range attrs {
		if h.prefix != "" {
			a.Key = joinKey(h.prefix, a.Key)
		}
		newH.attrs = append(newH.attrs, a)
	}
	return &newH
}

// WithGroup returns a new Handler that prefixes later attribute keys with
// name.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	newH := *h
	newH.prefix = joinKey(h.prefix, name)
	return &newH
}

func joinKey(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

func (h *Handler) paint(c *color.Color, s string) string {
	if c == nil {
		return s
	}
	return c.Sprint(s)
}

func (h *Handler) timeColor() *color.Color {
	if h.colors == nil {
		return nil
	}
	return h.colors.time
}

func (h *Handler) keyColor() *color.Color {
	if h.colors == nil {
		return nil
	}
	return h.colors.key
}

func (h *Handler) levelColor(level slog.Level) *color.Color {
	if h.colors == nil {
		return nil
	}
	switch {
	case level >= slog.LevelError:
		return h.colors.err
	case level >= slog.LevelWarn:
		return h.colors.warn
	case level >= slog.LevelInfo:
		return h.colors.info
	case level >= slog.LevelDebug:
		return h.colors.debug
	default:
		return h.colors.trace
	}
}

func levelName(level slog.Level) string {
	if level <= LevelTrace {
		return "TRACE"
	}
	return level.String()
}

// redactAttr masks a if its key or string value looks like a credential.
func redactAttr(a slog.Attr) slog.Attr {
	switch v := a.Value.Any().(type) {
	case string:
		switch {
		case strings.EqualFold(a.Key, "authorization"):
			a.Value = slog.StringValue(redact.Bearer(v))
		case redact.ShouldMask(a.Key), redact.ContainsTokenPrefix(v):
			a.Value = slog.StringValue(redact.Value(v))
		}
	case map[string]string:
		a.Value = slog.AnyValue(redact.Env(v))
	case map[string]any:
		a.Value = slog.AnyValue(redact.Config(v))
	case []string:
		a.Value = slog.AnyValue(redact.Args(v))
	default:
		if redact.ShouldMask(a.Key) && a.Value.Kind() != slog.KindGroup {
			a.Value = slog.StringValue(redact.Value(fmt.Sprint(v)))
		}
	}
	return a
}
