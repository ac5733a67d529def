// Package motest builds compiled catalogs in memory for tests.
package motest

import (
	"encoding/binary"
)

// Entry is one message of a catalog. An empty ID is the metadata entry.
type Entry struct {
	ID          string
	Translation string
}

// Build encodes entries as a GNU MO file in the given byte order. The output
// has the standard 28-byte header, both descriptor tables and the string
// data, and no hash table.
func Build(order binary.ByteOrder, entries []Entry) []byte {
	const headerSize = 28
	n := uint32(len(entries))
	origTable := uint32(headerSize)
	transTable := origTable + n*8
	strings := transTable + n*8

	buf := make([]byte, strings)
	order.PutUint32(buf[0:], 0x950412de)
	order.PutUint32(buf[4:], 0)
	order.PutUint32(buf[8:], n)
	order.PutUint32(buf[12:], origTable)
	order.PutUint32(buf[16:], transTable)
	order.PutUint32(buf[20:], 0)
	order.PutUint32(buf[24:], strings)

	for i, e := range entries {
		off := uint32(len(buf))
		buf = append(buf, e.ID...)
		buf = append(buf, 0)
		order.PutUint32(buf[origTable+uint32(i)*8:], uint32(len(e.ID)))
		order.PutUint32(buf[origTable+uint32(i)*8+4:], off)
	}
	for i, e := range entries {
		off := uint32(len(buf))
		buf = append(buf, e.Translation...)
		buf = append(buf, 0)
		order.PutUint32(buf[transTable+uint32(i)*8:], uint32(len(e.Translation)))
		order.PutUint32(buf[transTable+uint32(i)*8+4:], off)
	}
	return buf
}

// Header returns a catalog carrying only raw descriptor lengths, laid out the
// way the length fields are read: the original table at 28 and the
// translation table right after it. String offsets are left zero.
func Header(order binary.ByteOrder, origLens, transLens []uint32) []byte {
	n := uint32(len(origLens))
	origTable := uint32(28)
	transTable := origTable + n*8
	buf := make([]byte, transTable+n*8)
	order.PutUint32(buf[0:], 0x950412de)
	order.PutUint32(buf[8:], n)
	order.PutUint32(buf[12:], origTable)
	order.PutUint32(buf[16:], transTable)
	for i := range origLens {
		order.PutUint32(buf[origTable+uint32(i)*8:], origLens[i])
		order.PutUint32(buf[transTable+uint32(i)*8:], transLens[i])
	}
	return buf
}
