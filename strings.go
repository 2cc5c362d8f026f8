package diagcat

import (
	"bytes"
	"fmt"
	"os"
)

// stringsBackend loads the line-oriented grammar:
//
//	/* optional block comment */
//	"<raw-id>" = "<message>";
//
// The parser is a single forward scan over the raw bytes and is
// intentionally strict: these files are build-controlled input, so any
// grammar violation outside the documented escape rules aborts the parse
// and the producer degrades to defaults.
type stringsBackend struct {
	cat      *Catalog
	path     string
	locale   string
	observer Observer
	messages []string
	unknown  []string
}

func (b *stringsBackend) initialize() error {
	data, err := os.ReadFile(b.path)
	if err != nil {
		return fmt.Errorf("read localization file: %w", err)
	}
	b.messages = make([]string, b.cat.Count())
	return b.parse(data)
}

func (b *stringsBackend) message(id ID) string {
	if int(id) >= len(b.messages) {
		return ""
	}
	return b.messages[id]
}

func (b *stringsBackend) unknownIDs() []string {
	return b.unknown
}

// parse scans buf record by record. Every matched substring is copied into
// an owned string before the cursor advances; nothing retains a reference
// into buf past this call.
func (b *stringsBackend) parse(buf []byte) error {
	pos := skipWhitespace(buf, 0)
	for pos < len(buf) {
		if bytes.HasPrefix(buf[pos:], []byte("/*")) {
			end := bytes.Index(buf[pos+2:], []byte("*/"))
			if end < 0 {
				return fmt.Errorf("%s: unterminated comment at offset %d", b.path, pos)
			}
			pos = skipWhitespace(buf, pos+2+end+2)
			continue
		}

		if buf[pos] != '"' {
			return fmt.Errorf("%s: expected '\"' to open a record at offset %d", b.path, pos)
		}
		pos++
		// A valid raw id cannot contain a quote, so it runs to the next one.
		idLen := bytes.IndexByte(buf[pos:], '"')
		if idLen < 0 {
			return fmt.Errorf("%s: unterminated id at offset %d", b.path, pos)
		}
		rawID := string(buf[pos : pos+idLen])
		pos += idLen + 1

		pos = skipBlanks(buf, pos)
		if pos >= len(buf) || buf[pos] != '=' {
			return fmt.Errorf("%s: expected '=' after id %q", b.path, rawID)
		}
		pos = skipBlanks(buf, pos+1)
		if pos >= len(buf) || buf[pos] != '"' {
			return fmt.Errorf("%s: expected '\"' to open the message for id %q", b.path, rawID)
		}
		pos++

		msg := make([]byte, 0, 64)
		escaped := false
		terminated := false
	scan:
		for pos < len(buf) {
			switch c := buf[pos]; c {
			case '\\':
				// A backslash escaping a backslash yields one literal
				// backslash, which cannot itself escape what follows.
				if escaped {
					msg = append(msg, '\\')
					escaped = false
				} else {
					escaped = true
				}
				pos++
			case '"':
				if escaped {
					msg = append(msg, '"')
					escaped = false
					pos++
					continue
				}
				// An unescaped quote must be immediately followed by the
				// statement terminator; anything else is unrecoverable.
				if pos+1 < len(buf) && buf[pos+1] == ';' {
					pos += 2
					terminated = true
					break scan
				}
				return fmt.Errorf("%s: '\"' not followed by ';' at offset %d (id %q)", b.path, pos, rawID)
			default:
				if escaped {
					msg = append(msg, '\\')
					escaped = false
				}
				msg = append(msg, c)
				pos++
			}
		}
		if !terminated {
			return fmt.Errorf("%s: unterminated message for id %q", b.path, rawID)
		}
		pos = skipWhitespace(buf, pos)

		if id, ok := b.cat.Lookup(rawID); ok {
			// Last occurrence for a given id wins.
			b.messages[id] = string(msg)
		} else {
			b.unknown = append(b.unknown, rawID)
			notifyUnknownID(b.observer, b.locale, rawID)
		}
	}
	return nil
}

func skipWhitespace(buf []byte, pos int) int {
	for pos < len(buf) {
		switch buf[pos] {
		case ' ', '\t', '\r', '\n':
			pos++
		default:
			return pos
		}
	}
	return pos
}

func skipBlanks(buf []byte, pos int) int {
	for pos < len(buf) && (buf[pos] == ' ' || buf[pos] == '\t') {
		pos++
	}
	return pos
}
