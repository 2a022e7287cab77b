// Package extensibility provides the pluggable pieces around an applied
// widget: event sources feeding the event loop and handler middleware.
package extensibility

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/comalice/ariax/internal/core"
	"github.com/comalice/ariax/internal/primitives"
)

// ErrInvalidGuard is returned for guard expressions that cannot be parsed.
var ErrInvalidGuard = errors.New("invalid guard expression")

// LoggingMiddleware logs every handled event with the machine that handled
// it and the time the handlers took.
func LoggingMiddleware(logger *slog.Logger) core.Middleware {
	return func(t primitives.EventType, machine string, h primitives.EventHandler) primitives.EventHandler {
		return func(m *primitives.Mutable, s *primitives.State, ev *primitives.Event) {
			start := time.Now()
			h(m, s, ev)
			logger.Debug("event handled",
				"type", t,
				"key", ev.Key,
				"machine", machine,
				"prevented", ev.DefaultPrevented(),
				"duration", time.Since(start),
			)
		}
	}
}

// Guard decides whether an event reaches the handlers.
type Guard func(s *primitives.State, ev *primitives.Event) bool

// GuardMiddleware drops events for which g reports false.
func GuardMiddleware(g Guard) core.Middleware {
	return func(_ primitives.EventType, _ string, h primitives.EventHandler) primitives.EventHandler {
		return func(m *primitives.Mutable, s *primitives.State, ev *primitives.Event) {
			if g(s, ev) {
				h(m, s, ev)
			}
		}
	}
}

// IgnoreAltKeys drops keydown events with Alt held, which hosts reserve for
// their own shortcuts.
func IgnoreAltKeys(_ *primitives.State, ev *primitives.Event) bool {
	return ev.Type != primitives.KeyDown || !ev.Alt
}

// ExpressionGuard parses a "property op value" expression evaluated against
// the applied state, for example "disabled == false" or "count < 3".
// Supported operators are ==, !=, < and >.
func ExpressionGuard(expr string) (Guard, error) {
	parts := strings.Fields(expr)
	if len(parts) != 3 {
		return nil, fmt.Errorf("%q: want \"property op value\": %w", expr, ErrInvalidGuard)
	}
	key, op, raw := parts[0], parts[1], parts[2]
	switch op {
	case "==":
		return func(s *primitives.State, _ *primitives.Event) bool { return equals(s.Read(key), raw) }, nil
	case "!=":
		return func(s *primitives.State, _ *primitives.Event) bool { return !equals(s.Read(key), raw) }, nil
	case "<", ">":
		want, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("%q: %q is not a number: %w", expr, raw, ErrInvalidGuard)
		}
		return func(s *primitives.State, _ *primitives.Event) bool {
			got, ok := toFloat(s.Read(key))
			if !ok {
				return false
			}
			if op == "<" {
				return got < want
			}
			return got > want
		}, nil
	}
	return nil, fmt.Errorf("%q: unknown operator %q: %w", expr, op, ErrInvalidGuard)
}

func equals(v any, raw string) bool {
	switch raw {
	case "true":
		return v == true
	case "false":
		return v == false
	case "nil":
		return v == nil
	}
	if want, err := strconv.ParseFloat(raw, 64); err == nil {
		if got, ok := toFloat(v); ok {
			return got == want
		}
	}
	if s, ok := v.(fmt.Stringer); ok {
		return s.String() == raw
	}
	s, ok := v.(string)
	return ok && s == raw
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
