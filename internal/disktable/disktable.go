// Package disktable implements a write-once chained hash table serialized
// into a flat byte buffer. Keys are 32-bit integers, values are arbitrary
// byte spans. A Generator accumulates entries and emits the frozen table;
// a Table is a read-only view over the raw bytes with no copying.
//
// Layout, all integers little-endian uint32, offsets absolute from the
// buffer base:
//
//	[base, tableOff)      entry records: key, next, dataLen, data...
//	[tableOff, end)       bucketCount, entryCount, bucketCount offsets
//
// next links entries sharing a bucket; 0 terminates a chain, and 0 is also
// the empty-bucket marker (a real entry can never sit at offset 0 because
// the caller reserves a header before the first record).
package disktable

import (
	"encoding/binary"
	"fmt"
	"io"
	"sort"

	"fortio.org/safecast"
)

const entryHeaderSize = 12 // key + next + dataLen

// Generator accumulates key/value pairs and serializes them in one pass.
// Inserting the same key twice keeps the later value.
type Generator struct {
	entries map[uint32][]byte
}

func NewGenerator() *Generator {
	return &Generator{entries: make(map[uint32][]byte)}
}

func (g *Generator) Insert(key uint32, value []byte) {
	owned := make([]byte, len(value))
	copy(owned, value)
	g.entries[key] = owned
}

func (g *Generator) Len() int {
	return len(g.entries)
}

// Emit writes all entry records followed by the bucket index to w. base is
// the number of bytes the caller has already written before the first
// record (at least 4, for the header that will hold the table offset).
// Returns the absolute offset of the bucket index.
func (g *Generator) Emit(w io.Writer, base uint32) (uint32, error) {
	if base < 4 {
		return 0, fmt.Errorf("disktable: base offset %d overlaps the header", base)
	}
	keys := make([]uint32, 0, len(g.entries))
	for key := range g.entries {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	entryCount, err := safecast.Conv[uint32](len(keys))
	if err != nil {
		return 0, fmt.Errorf("disktable: too many entries: %w", err)
	}
	bucketCount := bucketCountFor(entryCount)
	mask := bucketCount - 1

	// First pass: assign every record its absolute offset and link the
	// chains in emission order.
	offsets := make([]uint32, len(keys))
	next := make([]uint32, len(keys))
	heads := make([]uint32, bucketCount)
	tails := make([]int, bucketCount)
	for i := range tails {
		tails[i] = -1
	}
	pos := base
	for i, key := range keys {
		dataLen, err := safecast.Conv[uint32](len(g.entries[key]))
		if err != nil {
			return 0, fmt.Errorf("disktable: value for key %d too large: %w", key, err)
		}
		offsets[i] = pos
		bucket := hashKey(key) & mask
		if tails[bucket] >= 0 {
			next[tails[bucket]] = pos
		} else {
			heads[bucket] = pos
		}
		tails[bucket] = i
		pos += entryHeaderSize + dataLen
	}
	tableOff := pos

	// Second pass: write records, then the bucket index.
	var scratch [entryHeaderSize]byte
	for i, key := range keys {
		value := g.entries[key]
		binary.LittleEndian.PutUint32(scratch[0:4], key)
		binary.LittleEndian.PutUint32(scratch[4:8], next[i])
		binary.LittleEndian.PutUint32(scratch[8:12], uint32(len(value)))
		if _, err := w.Write(scratch[:]); err != nil {
			return 0, err
		}
		if _, err := w.Write(value); err != nil {
			return 0, err
		}
	}
	binary.LittleEndian.PutUint32(scratch[0:4], bucketCount)
	binary.LittleEndian.PutUint32(scratch[4:8], entryCount)
	if _, err := w.Write(scratch[:8]); err != nil {
		return 0, err
	}
	for _, head := range heads {
		binary.LittleEndian.PutUint32(scratch[0:4], head)
		if _, err := w.Write(scratch[:4]); err != nil {
			return 0, err
		}
	}
	return tableOff, nil
}

// Table is an immutable lookup view over a serialized buffer. It keeps a
// reference to data and never copies values until Get materializes one.
type Table struct {
	data        []byte
	tableOff    uint32
	bucketCount uint32
	entryCount  uint32
}

// Open validates the bucket index at tableOff and returns a view anchored
// at the start of data. The buffer must stay immutable for the lifetime of
// the table.
func Open(data []byte, tableOff uint32) (*Table, error) {
	size, err := safecast.Conv[uint32](len(data))
	if err != nil {
		return nil, fmt.Errorf("disktable: buffer too large: %w", err)
	}
	if tableOff < 4 || tableOff > size || size-tableOff < 8 {
		return nil, fmt.Errorf("disktable: table offset %d out of range for %d-byte buffer", tableOff, size)
	}
	bucketCount := binary.LittleEndian.Uint32(data[tableOff:])
	entryCount := binary.LittleEndian.Uint32(data[tableOff+4:])
	if bucketCount == 0 || bucketCount&(bucketCount-1) != 0 {
		return nil, fmt.Errorf("disktable: bucket count %d is not a power of two", bucketCount)
	}
	indexSize := size - tableOff - 8
	if indexSize/4 < bucketCount {
		return nil, fmt.Errorf("disktable: truncated bucket index: %d buckets, %d bytes", bucketCount, indexSize)
	}
	return &Table{
		data:        data,
		tableOff:    tableOff,
		bucketCount: bucketCount,
		entryCount:  entryCount,
	}, nil
}

// Len returns the number of entries recorded at emission time.
func (t *Table) Len() int {
	return int(t.entryCount)
}

// Get returns the payload stored for key. The returned slice aliases the
// underlying buffer and must not be modified. A missing key yields
// (nil, false); an explicitly stored empty payload yields a zero-length
// slice and true.
func (t *Table) Get(key uint32) ([]byte, bool) {
	bucket := hashKey(key) & (t.bucketCount - 1)
	pos := binary.LittleEndian.Uint32(t.data[t.tableOff+8+4*bucket:])
	// Chains are finite by construction; the hop bound guards against a
	// corrupt buffer with a cycle.
	for hops := uint32(0); pos != 0 && hops <= t.entryCount; hops++ {
		if pos < 4 || pos > t.tableOff || t.tableOff-pos < entryHeaderSize {
			return nil, false
		}
		entryKey := binary.LittleEndian.Uint32(t.data[pos:])
		nextPos := binary.LittleEndian.Uint32(t.data[pos+4:])
		dataLen := binary.LittleEndian.Uint32(t.data[pos+8:])
		if dataLen > t.tableOff-pos-entryHeaderSize {
			return nil, false
		}
		if entryKey == key {
			start := pos + entryHeaderSize
			return t.data[start : start+dataLen], true
		}
		pos = nextPos
	}
	return nil, false
}

func bucketCountFor(entries uint32) uint32 {
	count := uint32(1)
	for count < entries && count < 1<<30 {
		count <<= 1
	}
	return count
}

// hashKey mixes the key bits so sequential diagnostic ids spread across
// buckets (the finalizer from murmur3).
func hashKey(key uint32) uint32 {
	key ^= key >> 16
	key *= 0x85ebca6b
	key ^= key >> 13
	key *= 0xc2b2ae35
	key ^= key >> 16
	return key
}
