// Package zonetab maintains a table of named fixed UTC offsets.
//
// A table is a plain name-to-offset mapping, not a timezone database: every
// entry is a fixed offset with no transitions. Additional entries can be
// loaded from a YAML document of the form
//
//	zones:
//	  SGT: "+08:00"
//	  EST: "-05:00"
package zonetab

import (
	"fmt"
	"io"
	"sort"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/cfal/go-epoch/tzoffset"
)

// Table maps display names to fixed offsets.
type Table struct {
	zones map[string]tzoffset.Offset
}

// Builtin returns a table preloaded with the canonical zero-offset zones
// UTC and GMT.
func Builtin() *Table {
	return &Table{zones: map[string]tzoffset.Offset{
		tzoffset.UTC.Name: tzoffset.UTC,
		tzoffset.GMT.Name: tzoffset.GMT,
	}}
}

type file struct {
	Zones map[string]string `yaml:"zones"`
}

// Load reads a YAML zone table from r and merges its entries over the
// existing ones. Offset values use the compact forms accepted by
// tzoffset.FromString; the entry's key becomes the offset's display name.
func (t *Table) Load(r io.Reader) error {
	var f file
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		return fmt.Errorf("decode zone table: %w", err)
	}
	if t.zones == nil {
		t.zones = make(map[string]tzoffset.Offset, len(f.Zones))
	}
	for name, value := range f.Zones {
		off, err := tzoffset.FromStringNamed(value, name)
		if err != nil {
			return fmt.Errorf("zone %s: %w", name, err)
		}
		t.zones[name] = off
	}
	return nil
}

// Lookup returns the offset registered under name.
func (t *Table) Lookup(name string) (tzoffset.Offset, bool) {
	off, ok := t.zones[name]
	return off, ok
}

// Names returns all zone names in lexical order.
func (t *Table) Names() []string {
	names := lo.Keys(t.zones)
	sort.Strings(names)
	return names
}
