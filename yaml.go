package diagcat

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// yamlBackend loads the structured grammar: an ordered sequence of
// id/msg records. Records are matched against the compiled catalog's name
// table; matched messages land at their integer index (last record for a
// given id wins), unmatched names are retained in unknown and their
// messages discarded.
type yamlBackend struct {
	cat      *Catalog
	path     string
	locale   string
	observer Observer
	messages []string
	unknown  []string
}

func (b *yamlBackend) initialize() error {
	data, err := os.ReadFile(b.path)
	if err != nil {
		return fmt.Errorf("read localization file: %w", err)
	}
	var records []localizedRecord
	if err := yaml.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("parse %s: %w", b.path, err)
	}
	// Records are not guaranteed to follow declaration order; sizing to
	// the full cardinality leaves holes for diagnostics not yet localized.
	b.messages = make([]string, b.cat.Count())
	for _, rec := range records {
		id, ok := b.cat.Lookup(rec.ID)
		if !ok {
			b.unknown = append(b.unknown, rec.ID)
			notifyUnknownID(b.observer, b.locale, rec.ID)
			continue
		}
		b.messages[id] = rec.Msg
	}
	return nil
}

func (b *yamlBackend) message(id ID) string {
	if int(id) >= len(b.messages) {
		return ""
	}
	return b.messages[id]
}

func (b *yamlBackend) unknownIDs() []string {
	return b.unknown
}
