package diagcat

import (
	"fmt"
	"os"
	"path/filepath"
)

// File extensions probed by ProducerFor, in priority order. The serialized
// form gives O(1) hashed access and is preferred for distribution; the
// text forms stay human-editable for translators.
const (
	SerializedExt = ".db"
	YAMLExt       = ".yaml"
	StringsExt    = ".strings"
)

// DefaultResourcePath is used when Config.ResourcePath is empty.
const DefaultResourcePath = "./resources/diagnostics"

// ProducerFor probes cfg.ResourcePath for a localization file matching
// cfg.Locale, trying SerializedExt, then YAMLExt, then StringsExt. The
// first existing file wins; only one backend is ever active per locale.
// Returns nil when no file exists, in which case every lookup should use
// the compiled-in default.
//
// Construction does not parse file contents; parsing happens on the first
// lookup. The serialized case reads the whole file up front to anchor its
// table view; a read failure there surfaces as a failed initialization,
// not an error here.
func ProducerFor(cat *Catalog, cfg Config) *Producer {
	if cat == nil || cfg.Locale == "" {
		return nil
	}
	resourcePath := cfg.ResourcePath
	if resourcePath == "" {
		resourcePath = DefaultResourcePath
	}
	base := filepath.Join(resourcePath, cfg.Locale)

	if path := base + SerializedExt; fileExists(path) {
		data, err := os.ReadFile(path)
		return newProducer(cat, &serializedBackend{data: data, readErr: err}, cfg.DebugNames)
	}
	if path := base + YAMLExt; fileExists(path) {
		return newProducer(cat, &yamlBackend{
			cat:      cat,
			path:     path,
			locale:   cfg.Locale,
			observer: cfg.Observer,
		}, cfg.DebugNames)
	}
	if path := base + StringsExt; fileExists(path) {
		return newProducer(cat, &stringsBackend{
			cat:      cat,
			path:     path,
			locale:   cfg.Locale,
			observer: cfg.Observer,
		}, cfg.DebugNames)
	}
	return nil
}

// FileProducer builds a producer for one explicit localization file,
// choosing the backend by extension. Used by offline tooling that operates
// on files outside the resource directory layout.
func FileProducer(cat *Catalog, path string, cfg Config) (*Producer, error) {
	if cat == nil {
		return nil, fmt.Errorf("catalog is required")
	}
	switch filepath.Ext(path) {
	case SerializedExt:
		data, err := os.ReadFile(path)
		return newProducer(cat, &serializedBackend{data: data, readErr: err}, cfg.DebugNames), nil
	case YAMLExt:
		return newProducer(cat, &yamlBackend{
			cat:      cat,
			path:     path,
			locale:   cfg.Locale,
			observer: cfg.Observer,
		}, cfg.DebugNames), nil
	case StringsExt:
		return newProducer(cat, &stringsBackend{
			cat:      cat,
			path:     path,
			locale:   cfg.Locale,
			observer: cfg.Observer,
		}, cfg.DebugNames), nil
	}
	return nil, fmt.Errorf("unsupported localization file extension: %s", path)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
