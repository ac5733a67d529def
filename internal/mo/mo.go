// Package mo reads the string tables of compiled GNU gettext catalogs.
//
// Only the header and the two descriptor tables are inspected. The decoder
// counts entries, it never loads the strings themselves.
//
// GNU MO file format:
//
//	http://www.gnu.org/software/gettext/manual/gettext.html#MO-Files
package mo

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"
)

const (
	magicLittleEndian = 0x950412de
	magicBigEndian    = 0xde120495

	offsetCount      = 8
	offsetOrigTable  = 12
	offsetTransTable = 16

	// descriptorSize is the size of one (length, offset) pair in a table.
	descriptorSize = 8
)

// ErrMalformed is returned for input that is not a readable catalog.
var ErrMalformed = errors.New("malformed catalog")

// Counts holds the entry counts of one catalog. The metadata entry is not
// included in either field.
type Counts struct {
	Translated int
	Total      int
}

// Untranslated returns Total - Translated.
func (c Counts) Untranslated() int {
	return c.Total - c.Translated
}

// Decode counts translated and total entries in a compiled catalog.
func Decode(data []byte) (Counts, error) {
	r := reader{data: data, order: binary.LittleEndian}

	// The first word identifies the byte order.
	magic, err := r.uint32At(0)
	if err != nil {
		return Counts{}, err
	}
	switch magic {
	case magicLittleEndian:
		r.order = binary.LittleEndian
	case magicBigEndian:
		r.order = binary.BigEndian
	default:
		return Counts{}, fmt.Errorf("%w: unknown magic %#08x", ErrMalformed, magic)
	}

	count, err := r.uint32At(offsetCount)
	if err != nil {
		return Counts{}, err
	}
	origTable, err := r.uint32At(offsetOrigTable)
	if err != nil {
		return Counts{}, err
	}
	transTable, err := r.uint32At(offsetTransTable)
	if err != nil {
		return Counts{}, err
	}

	var c Counts
	for i := uint64(0); i < uint64(count); i++ {
		origLen, err := r.uint32At(uint64(origTable) + i*descriptorSize)
		if err != nil {
			return Counts{}, err
		}
		transLen, err := r.uint32At(uint64(transTable) + i*descriptorSize)
		if err != nil {
			return Counts{}, err
		}
		if origLen == 0 {
			// metadata entry
			continue
		}
		c.Total++
		if transLen > 0 {
			c.Translated++
		}
	}
	return c, nil
}

// Count is Decode with every failure collapsed to (0, 0).
func Count(data []byte) (translated, total int) {
	c, err := Decode(data)
	if err != nil {
		return 0, 0
	}
	return c.Translated, c.Total
}

// CountFile reads path and counts its entries. An unreadable file counts as
// (0, 0).
func CountFile(path string) (translated, total int) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, 0
	}
	return Count(data)
}

// reader performs bounds-checked word reads with a fixed byte order.
type reader struct {
	data  []byte
	order binary.ByteOrder
}

func (r reader) uint32At(off uint64) (uint32, error) {
	if off > uint64(len(r.data)) || uint64(len(r.data))-off < 4 {
		return 0, fmt.Errorf("%w: read of 4 bytes at offset %d past end (%d bytes)", ErrMalformed, off, len(r.data))
	}
	return r.order.Uint32(r.data[off : off+4]), nil
}
