// Package config loads widget configuration from YAML.
//
// Documents are decoded into a generic map first, defaults are merged in,
// and the result is decoded into the typed structs with mapstructure so that
// unknown keys are reported instead of silently ignored.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// ErrConfig is returned for documents that decode but describe an invalid widget.
var ErrConfig = errors.New("invalid configuration")

// ListboxOptions selects the listbox behaviors.
type ListboxOptions struct {
	WrapKeyNavigation     bool   `mapstructure:"wrapKeyNavigation" yaml:"wrapKeyNavigation"`
	UseActiveDescendant   bool   `mapstructure:"useActiveDescendant" yaml:"useActiveDescendant"`
	SelectionFollowsFocus bool   `mapstructure:"selectionFollowsFocus" yaml:"selectionFollowsFocus"`
	Multiple              bool   `mapstructure:"multiple" yaml:"multiple"`
	Typeahead             bool   `mapstructure:"typeahead" yaml:"typeahead"`
	Orientation           string `mapstructure:"orientation" yaml:"orientation"`
	Direction             string `mapstructure:"direction" yaml:"direction"`
}

// DefaultListboxOptions returns the listbox defaults: no wrapping, active
// descendant focus, selection following focus, vertical, left to right.
func DefaultListboxOptions() ListboxOptions {
	return ListboxOptions{
		UseActiveDescendant:   true,
		SelectionFollowsFocus: true,
		Orientation:           "vertical",
		Direction:             "ltr",
	}
}

// Validate checks the option combination.
func (o ListboxOptions) Validate() error {
	if o.Orientation != "vertical" && o.Orientation != "horizontal" {
		return fmt.Errorf("orientation %q: %w", o.Orientation, ErrConfig)
	}
	if o.Direction != "ltr" && o.Direction != "rtl" {
		return fmt.Errorf("direction %q: %w", o.Direction, ErrConfig)
	}
	return nil
}

// ItemConfig describes one listbox option.
type ItemConfig struct {
	Label    string `mapstructure:"label"`
	Disabled bool   `mapstructure:"disabled"`
	Selected bool   `mapstructure:"selected"`
}

// ListboxConfig describes a listbox.
type ListboxConfig struct {
	Options  ListboxOptions `mapstructure:"options"`
	Disabled bool           `mapstructure:"disabled"`
	Items    []ItemConfig   `mapstructure:"items"`
}

// WidgetConfig describes a widget inside a grid cell.
type WidgetConfig struct {
	Label         string `mapstructure:"label"`
	Editable      bool   `mapstructure:"editable"`
	UsesArrowKeys bool   `mapstructure:"usesArrowKeys"`
	Disabled      bool   `mapstructure:"disabled"`
}

// CellConfig describes a grid cell.
type CellConfig struct {
	Label    string         `mapstructure:"label"`
	RowSpan  int            `mapstructure:"rowspan"`
	ColSpan  int            `mapstructure:"colspan"`
	Disabled bool           `mapstructure:"disabled"`
	Widgets  []WidgetConfig `mapstructure:"widgets"`
}

// GridConfig describes a grid.
type GridConfig struct {
	Wrap bool           `mapstructure:"wrap"`
	Rows [][]CellConfig `mapstructure:"rows"`
}

// File is a configuration document. Either section may be absent.
type File struct {
	Listbox *ListboxConfig `mapstructure:"listbox"`
	Grid    *GridConfig    `mapstructure:"grid"`
}

// Validate checks every present section.
func (f *File) Validate() error {
	if f.Listbox == nil && f.Grid == nil {
		return fmt.Errorf("no listbox or grid section: %w", ErrConfig)
	}
	if f.Listbox != nil {
		if err := f.Listbox.Options.Validate(); err != nil {
			return fmt.Errorf("listbox: %w", err)
		}
		if len(f.Listbox.Items) == 0 {
			return fmt.Errorf("listbox: no items: %w", ErrConfig)
		}
		selected := 0
		for _, it := range f.Listbox.Items {
			if it.Selected {
				selected++
			}
		}
		if selected > 1 && !f.Listbox.Options.Multiple {
			return fmt.Errorf("listbox: %d items selected in a single-select listbox: %w", selected, ErrConfig)
		}
	}
	if f.Grid != nil {
		for r, row := range f.Grid.Rows {
			for c, cell := range row {
				if cell.RowSpan < 1 || cell.ColSpan < 1 {
					return fmt.Errorf("grid: cell %d,%d: span below one: %w", r, c, ErrConfig)
				}
			}
		}
	}
	return nil
}

// Load decodes a configuration document from r.
func Load(r io.Reader) (*File, error) {
	raw := map[string]any{}
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	applyDefaults(raw)

	var f File
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &f,
		ErrorUnused:      true,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("decode config: %w", errors.Join(err, ErrConfig))
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// LoadFile decodes the configuration document at path.
func LoadFile(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer fh.Close()
	return Load(fh)
}

// applyDefaults fills in listbox options and cell spans that the document omits.
func applyDefaults(raw map[string]any) {
	if lb, ok := raw["listbox"].(map[string]any); ok {
		opts, _ := lb["options"].(map[string]any)
		if opts == nil {
			opts = map[string]any{}
		}
		d := DefaultListboxOptions()
		defaults := map[string]any{
			"wrapKeyNavigation":     d.WrapKeyNavigation,
			"useActiveDescendant":   d.UseActiveDescendant,
			"selectionFollowsFocus": d.SelectionFollowsFocus,
			"multiple":              d.Multiple,
			"typeahead":             d.Typeahead,
			"orientation":           d.Orientation,
			"direction":             d.Direction,
		}
		for k, v := range defaults {
			if _, set := opts[k]; !set {
				opts[k] = v
			}
		}
		lb["options"] = opts
	}
	if g, ok := raw["grid"].(map[string]any); ok {
		rows, _ := g["rows"].([]any)
		for _, row := range rows {
			cells, _ := row.([]any)
			for _, cell := range cells {
				m, ok := cell.(map[string]any)
				if !ok {
					continue
				}
				for _, k := range []string{"rowspan", "colspan"} {
					if _, set := m[k]; !set {
						m[k] = 1
					}
				}
			}
		}
	}
}
