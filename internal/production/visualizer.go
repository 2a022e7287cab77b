package production

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/comalice/ariax/internal/primitives"
)

// DefaultVisualizer renders descriptors as Graphviz DOT or JSON.
type DefaultVisualizer struct{}

// ExportDOT generates Graphviz DOT source for a descriptor: event nodes feed
// the machine node, which derives one node per managed property. snapshot,
// when given, labels each property with its current value; properties the
// machine does not manage are drawn dashed.
func (v *DefaultVisualizer) ExportDOT(d primitives.Descriptor, snapshot map[string]any) string {
	var buf bytes.Buffer
	buf.WriteString(`digraph Behavior {
  rankdir=LR;
  node [shape=box, fontsize=10, style=rounded];
  edge [fontsize=9];
`)
	machine := d.Name
	if machine == "" {
		machine = "machine"
	}
	label := strings.Join(components(d), `\n`)
	buf.WriteString(fmt.Sprintf("  %q [label=\"%s\" shape=component style=filled fillcolor=lightblue];\n", machine, escape(label)))

	for _, t := range d.Handled() {
		node := "event:" + string(t)
		buf.WriteString(fmt.Sprintf("  %q [label=%q shape=ellipse];\n", node, string(t)))
		buf.WriteString(fmt.Sprintf("  %q -> %q;\n", node, machine))
	}

	managed := d.Managed()
	for _, p := range managed {
		node := "prop:" + p
		buf.WriteString(fmt.Sprintf("  %q [label=\"%s\"];\n", node, escape(propLabel(p, snapshot))))
		buf.WriteString(fmt.Sprintf("  %q -> %q;\n", machine, node))
	}

	var others []string
	for name := range snapshot {
		if !slices.Contains(managed, name) {
			others = append(others, name)
		}
	}
	slices.Sort(others)
	for _, p := range others {
		buf.WriteString(fmt.Sprintf("  %q [label=\"%s\" style=dashed color=gray];\n", "prop:"+p, escape(propLabel(p, snapshot))))
	}

	buf.WriteString("}\n")
	return buf.String()
}

// descriptorJSON is the JSON shape of a descriptor.
type descriptorJSON struct {
	Name       string                 `json:"name"`
	Version    string                 `json:"version"`
	Components []string               `json:"components"`
	Managed    []string               `json:"managed"`
	Handled    []primitives.EventType `json:"handled"`
}

// ExportJSON serializes the descriptor's shape to JSON.
func (v *DefaultVisualizer) ExportJSON(d primitives.Descriptor) ([]byte, error) {
	return json.MarshalIndent(descriptorJSON{
		Name:       d.Name,
		Version:    primitives.ComputeVersion(d),
		Components: components(d),
		Managed:    d.Managed(),
		Handled:    d.Handled(),
	}, "", "  ")
}

// components splits a composed name into its parts.
func components(d primitives.Descriptor) []string {
	if d.Name == "" {
		return nil
	}
	return strings.Split(d.Name, "+")
}

func propLabel(name string, snapshot map[string]any) string {
	v, ok := snapshot[name]
	if !ok {
		return name
	}
	s := fmt.Sprint(Normalize(v))
	if len(s) > 40 {
		s = s[:37] + "..."
	}
	return name + `\n` + s
}

// escape quotes a label for use inside a double-quoted DOT string while
// keeping \n line breaks.
func escape(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}
