package diagcat

import (
	"fmt"

	"gopkg.in/yaml.v2"
)

// ID is the stable integer identity of one diagnostic in the compiled
// catalog. Valid ids are in [0, Catalog.Count()).
type ID uint32

// UnknownID is the reserved sentinel for "not a known diagnostic".
const UnknownID ID = ^ID(0)

// Entry is one diagnostic in the compiled catalog: a stable symbolic name
// and the default (untranslated) message text.
type Entry struct {
	Name    string
	Default string
}

// Catalog is the host-compiled, read-only enumeration of diagnostics.
// Ids are the positions of entries in declaration order and never change
// once the catalog is built. The localization subsystem only reads it.
type Catalog struct {
	entries []Entry
	index   map[string]ID
}

// NewCatalog builds a catalog from entries in declared order. Names must be
// non-empty, unique, and must not contain a double quote (raw ids are never
// escaped in the line-oriented grammar).
func NewCatalog(entries []Entry) (*Catalog, error) {
	cat := &Catalog{
		entries: make([]Entry, len(entries)),
		index:   make(map[string]ID, len(entries)),
	}
	copy(cat.entries, entries)
	for i, entry := range cat.entries {
		if entry.Name == "" {
			return nil, fmt.Errorf("catalog entry %d: name is required", i)
		}
		for j := 0; j < len(entry.Name); j++ {
			if entry.Name[j] == '"' {
				return nil, fmt.Errorf("catalog entry %d: name %q contains a double quote", i, entry.Name)
			}
		}
		if prev, exists := cat.index[entry.Name]; exists {
			return nil, fmt.Errorf("catalog entry %d: name %q already used by entry %d", i, entry.Name, prev)
		}
		cat.index[entry.Name] = ID(i)
	}
	return cat, nil
}

// ParseDefinition builds a catalog from a definition file: the same
// structured records grammar the YAML backend reads, with msg holding the
// default text. Lets the CLI tooling work without compiled-in definitions.
func ParseDefinition(data []byte) (*Catalog, error) {
	var records []localizedRecord
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse catalog definition: %w", err)
	}
	entries := make([]Entry, 0, len(records))
	for _, rec := range records {
		entries = append(entries, Entry{Name: rec.ID, Default: rec.Msg})
	}
	return NewCatalog(entries)
}

// Count returns the catalog cardinality N.
func (c *Catalog) Count() int {
	return len(c.entries)
}

// Name returns the symbolic name for id, or "" when id is out of range.
func (c *Catalog) Name(id ID) string {
	if int(id) >= len(c.entries) {
		return ""
	}
	return c.entries[id].Name
}

// Default returns the compiled-in default text for id, or "" when id is
// out of range.
func (c *Catalog) Default(id ID) string {
	if int(id) >= len(c.entries) {
		return ""
	}
	return c.entries[id].Default
}

// Lookup resolves a symbolic name to its id.
func (c *Catalog) Lookup(name string) (ID, bool) {
	id, ok := c.index[name]
	return id, ok
}

// DebugSuffix returns the bracketed symbolic-name suffix appended to
// localized messages in debug mode, e.g. " [ERR_NOT_FOUND]".
func (c *Catalog) DebugSuffix(id ID) string {
	if int(id) >= len(c.entries) {
		return " [<not a diagnostic>]"
	}
	return " [" + c.entries[id].Name + "]"
}
