package diagcat_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/loopcontext/diagcat"
)

func buildFuzzCatalog(t *testing.T) *diagcat.Catalog {
	t.Helper()
	cat, err := diagcat.NewCatalog([]diagcat.Entry{
		{Name: "ERR_A", Default: "default A"},
		{Name: "ERR_B", Default: "default B"},
	})
	if err != nil {
		t.Fatalf("failed to build catalog: %v", err)
	}
	return cat
}

func FuzzStringsParse(f *testing.F) {
	f.Add([]byte(`"ERR_A" = "hello";`))
	f.Add([]byte("/* c */ \"ERR_B\" = \"with \\\"quotes\\\"\";\r\n"))
	f.Add([]byte(`"ERR_A" = "broken`))
	f.Add([]byte(`"UNKNOWN" = "x";`))
	f.Add([]byte("\"\" = \"\";"))
	f.Add([]byte("/*"))

	f.Fuzz(func(t *testing.T, data []byte) {
		cat := buildFuzzCatalog(t)
		dir := t.TempDir()
		path := filepath.Join(dir, "fz.strings")
		if err := os.WriteFile(path, data, 0o600); err != nil {
			t.Fatalf("failed to write fixture: %v", err)
		}
		producer := diagcat.ProducerFor(cat, diagcat.Config{Locale: "fz", ResourcePath: dir})
		if producer == nil {
			t.Fatal("expected a producer for an existing file")
		}
		// Arbitrary input must never panic; it either parses or degrades
		// to the default.
		_ = producer.GetMessageOr(0, "D")
		_ = producer.GetMessageOr(diagcat.UnknownID, "D")
		producer.ForEachAvailable(func(id diagcat.ID, text string) {
			if text == "" {
				t.Fatalf("ForEachAvailable yielded an empty translation for id %d", id)
			}
		})
	})
}

func FuzzSerializedRoundTrip(f *testing.F) {
	f.Add(uint32(0), "hello")
	f.Add(uint32(1), "")
	f.Add(^uint32(0), "sentinel payload")

	f.Fuzz(func(t *testing.T, key uint32, text string) {
		writer := diagcat.NewTableWriter()
		writer.Insert(diagcat.ID(key), text)
		path := filepath.Join(t.TempDir(), "fz.db")
		if err := writer.Emit(path); err != nil {
			t.Fatalf("emit failed: %v", err)
		}

		cat := buildFuzzCatalog(t)
		producer, err := diagcat.FileProducer(cat, path, diagcat.Config{})
		if err != nil {
			t.Fatalf("open failed: %v", err)
		}
		got := producer.GetMessageOr(diagcat.ID(key), "\x00default")
		if text == "" {
			if got != "\x00default" {
				t.Fatalf("explicit empty must fall back to the default, got %q", got)
			}
			return
		}
		if got != text {
			t.Fatalf("round trip mismatch: inserted %q, got %q", text, got)
		}
	})
}

func FuzzSerializedReader(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{4, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0})
	f.Add([]byte("garbage that is long enough to look like a table"))

	f.Fuzz(func(t *testing.T, data []byte) {
		cat := buildFuzzCatalog(t)
		path := filepath.Join(t.TempDir(), "fz.db")
		if err := os.WriteFile(path, data, 0o600); err != nil {
			t.Fatalf("failed to write fixture: %v", err)
		}
		producer, err := diagcat.FileProducer(cat, path, diagcat.Config{})
		if err != nil {
			t.Fatalf("open failed: %v", err)
		}
		// Corrupt buffers must degrade to defaults, never panic.
		for id := diagcat.ID(0); id < 4; id++ {
			if got := producer.GetMessageOr(id, "D"); producer.State() == diagcat.FailedInitialization && got != "D" {
				t.Fatalf("failed init must serve defaults, got %q", got)
			}
		}
	})
}
