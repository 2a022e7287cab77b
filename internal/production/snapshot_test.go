package production

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/comalice/ariax/internal/core"
	"github.com/comalice/ariax/internal/primitives"
)

type namedElement struct{ name string }

func (e *namedElement) Focus()         {}
func (e *namedElement) String() string { return e.name }

type opaque struct{ ch chan int }

type custom struct{}

func (custom) SnapshotValue() any { return "custom" }

func TestNormalize(t *testing.T) {
	id := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	var nilFocus *primitives.FocusRequest
	tests := []struct {
		name string
		in   any
		want any
	}{
		{"nil", nil, nil},
		{"scalar", 3, 3},
		{"uuid", id, id.String()},
		{"uuid slice", []uuid.UUID{id}, []any{id.String()}},
		{"named string", primitives.EventType("keydown"), "keydown"},
		{"focus request", primitives.RequestFocus(&namedElement{"list"}), map[string]any{"target": "list"}},
		{"typed nil", nilFocus, nil},
		{"snapshotter", custom{}, "custom"},
		{"map", map[string]int{"a": 1}, map[string]any{"a": 1}},
		{"opaque", opaque{}, "production.opaque"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func appliedFixture(t *testing.T) *core.Applied {
	t.Helper()
	initial := primitives.NewState(map[string]any{
		"count":   primitives.NewCell(2),
		"element": &namedElement{"list"},
	})
	d := primitives.Descriptor{
		Name: "counter",
		Transitions: map[string]primitives.TransitionFunc{
			"count": func(_ *primitives.State, prev any) any { return prev },
		},
	}
	a, err := core.Apply(initial, d, nil)
	require.NoError(t, err)
	t.Cleanup(a.Release)
	return a
}

func TestEncodeJSON(t *testing.T) {
	snap := NewSnapshot(appliedFixture(t))
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, FormatJSON, snap))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "counter", got["machine"])
	props := got["properties"].(map[string]any)
	assert.Equal(t, float64(2), props["count"])
	assert.Equal(t, "list", props["element"])
}

func TestEncodeYAML(t *testing.T) {
	snap := NewSnapshot(appliedFixture(t))
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, FormatYAML, snap))

	var got struct {
		Machine    string         `yaml:"machine"`
		Managed    []string       `yaml:"managed"`
		Properties map[string]any `yaml:"properties"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "counter", got.Machine)
	assert.Equal(t, []string{"count"}, got.Managed)
	assert.Equal(t, 2, got.Properties["count"])
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("yaml")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	_, err = ParseFormat("xml")
	assert.Error(t, err)
	assert.Error(t, Encode(&bytes.Buffer{}, Format("xml"), Snapshot{}))
}
