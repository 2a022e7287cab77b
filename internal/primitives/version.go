package primitives

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
)

type versionKey struct {
	Name    string      `json:"name"`
	Managed []string    `json:"managed"`
	Handled []EventType `json:"handled"`
}

// ComputeVersion returns a stable identity for d derived from its name,
// managed properties and handled events. Function bodies are not part of the
// identity.
func ComputeVersion(d Descriptor) string {
	data, err := json.Marshal(versionKey{Name: d.Name, Managed: d.Managed(), Handled: d.Handled()})
	if err != nil {
		return "invalid-" + d.Name
	}
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%x", hash[:8])
}
