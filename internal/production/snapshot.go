// Package production provides integrations around an applied widget: change
// publishing, descriptor visualization and state snapshots for inspection.
package production

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"reflect"
	"slices"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/comalice/ariax/internal/core"
	"github.com/comalice/ariax/internal/primitives"
)

// Format names a snapshot encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatJSON, FormatYAML:
		return f, nil
	}
	return "", fmt.Errorf("unknown snapshot format %q", s)
}

// Snapshot is a point-in-time, serializable view of an applied state.
type Snapshot struct {
	Machine    string         `json:"machine" yaml:"machine"`
	Version    string         `json:"version" yaml:"version"`
	Timestamp  time.Time      `json:"timestamp" yaml:"timestamp"`
	Managed    []string       `json:"managed" yaml:"managed"`
	Properties map[string]any `json:"properties" yaml:"properties"`
}

// Snapshotter is implemented by values with a custom plain representation.
type Snapshotter interface {
	SnapshotValue() any
}

// NewSnapshot captures the current values of a's state.
func NewSnapshot(a *core.Applied) Snapshot {
	return Snapshot{
		Machine:    a.Descriptor().Name,
		Version:    a.Version(),
		Timestamp:  time.Now().UTC(),
		Managed:    a.Descriptor().Managed(),
		Properties: NormalizeMap(a.State().Snapshot()),
	}
}

// Encode writes s in format f.
func Encode(w io.Writer, f Format, s Snapshot) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("json encode: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("yaml encode: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown snapshot format %q", f)
	}
	return nil
}

// NormalizeMap normalizes every value of m.
func NormalizeMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for _, k := range slices.Sorted(maps.Keys(m)) {
		out[k] = Normalize(m[k])
	}
	return out
}

// Normalize converts v to plain data: scalars, strings, slices and string
// keyed maps. Values without a plain form are replaced by their type name.
func Normalize(v any) any {
	if v == nil {
		return nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		if rv.IsNil() {
			return nil
		}
	}
	switch x := v.(type) {
	case bool, string, int, int64, float64:
		return x
	case *primitives.FocusRequest:
		return map[string]any{"target": Normalize(x.Target)}
	case Snapshotter:
		return x.SnapshotValue()
	case fmt.Stringer:
		return x.String()
	}
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = Normalize(rv.Index(i).Interface())
		}
		return out
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			break
		}
		out := make(map[string]any, rv.Len())
		for _, k := range rv.MapKeys() {
			out[k.String()] = Normalize(rv.MapIndex(k).Interface())
		}
		return out
	case reflect.String:
		return rv.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int()
	case reflect.Bool:
		return rv.Bool()
	}
	return fmt.Sprintf("%T", v)
}
