package diagcat

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"

	"github.com/loopcontext/diagcat/internal/disktable"
)

// TableWriter compiles a translation catalog into the serialized binary
// form: a 4-byte little-endian offset to a hashed lookup table keyed by
// diagnostic id. Write-once; the emitted file is read-only thereafter.
type TableWriter struct {
	generator *disktable.Generator
}

func NewTableWriter() *TableWriter {
	return &TableWriter{generator: disktable.NewGenerator()}
}

// Insert records the translation for id. A later insert for the same id
// overwrites the earlier one.
func (w *TableWriter) Insert(id ID, text string) {
	w.generator.Insert(uint32(id), []byte(text))
}

// Emit writes the serialized table to path, which must carry the .db
// extension. A placeholder offset goes out first, the frozen table is
// serialized behind it, then the real table offset is patched over the
// placeholder and the file is flushed.
func (w *TableWriter) Emit(path string) error {
	if filepath.Ext(path) != SerializedExt {
		return fmt.Errorf("serialized table requires the %s extension, got %q", SerializedExt, path)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("open serialized table: %w", err)
	}

	var header [4]byte
	emit := func() error {
		if _, err := file.Write(header[:]); err != nil {
			return err
		}
		tableOff, err := w.generator.Emit(file, 4)
		if err != nil {
			return err
		}
		if _, err := file.Seek(0, 0); err != nil {
			return err
		}
		binary.LittleEndian.PutUint32(header[:], tableOff)
		if _, err := file.Write(header[:]); err != nil {
			return err
		}
		return file.Sync()
	}
	if err := emit(); err != nil {
		file.Close()
		return fmt.Errorf("write serialized table: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close serialized table: %w", err)
	}
	return nil
}

// serializedBackend reads translations from the emitted binary form. The
// whole buffer is retained for the producer's lifetime; lookups are O(1)
// hashed probes into an immutable view, no parsing and no copying.
type serializedBackend struct {
	data    []byte
	readErr error
	table   *disktable.Table
}

func (b *serializedBackend) initialize() error {
	if b.readErr != nil {
		return b.readErr
	}
	if len(b.data) < 4 {
		return fmt.Errorf("serialized table: %d-byte buffer has no header", len(b.data))
	}
	tableOff := binary.LittleEndian.Uint32(b.data)
	table, err := disktable.Open(b.data, tableOff)
	if err != nil {
		return err
	}
	b.table = table
	return nil
}

func (b *serializedBackend) message(id ID) string {
	value, ok := b.table.Get(uint32(id))
	if !ok || len(value) == 0 {
		// An explicitly stored empty string and an absent key are
		// indistinguishable here.
		return ""
	}
	return string(value)
}
