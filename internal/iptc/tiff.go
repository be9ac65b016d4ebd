package iptc

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

var (
	tiffLittleEndian = []byte{'I', 'I', 42, 0}
	tiffBigEndian    = []byte{'M', 'M', 0, 42}
)

const (
	tagIPTCNAA      = 33723
	tagPhotoshopIRB = 34377
	tagSubIFDs      = 330

	// maxIFDs bounds the IFD chain walk so a looping file terminates.
	maxIFDs = 32
)

// tiffTypeSize maps TIFF field types to their element sizes. Types not
// listed here are never read as payloads.
var tiffTypeSize = map[uint16]uint32{
	1:  1, // BYTE
	2:  1, // ASCII
	3:  2, // SHORT
	4:  4, // LONG
	7:  1, // UNDEFINED
	13: 4, // IFD
}

func isTIFF(magic []byte) bool {
	return bytes.Equal(magic, tiffLittleEndian) || bytes.Equal(magic, tiffBigEndian)
}

// tiffIPTC returns the IIM block of a TIFF or TIFF-based raw file. The
// IPTC-NAA tag wins over the IPTC resource inside a Photoshop IRB tag.
// SubIFDs are searched after the main chain.
func tiffIPTC(ra io.ReaderAt) ([]byte, error) {
	var header [8]byte
	if err := readAt(ra, header[:], 0); err != nil {
		return nil, ErrTruncated
	}
	var order binary.ByteOrder = binary.BigEndian
	if header[0] == 'I' {
		order = binary.LittleEndian
	}

	t := &tiffWalker{ra: ra, order: order, seen: make(map[uint32]bool)}
	queue := []uint32{order.Uint32(header[4:8])}
	var irb []byte

	for len(queue) > 0 && len(t.seen) < maxIFDs {
		offset := queue[0]
		queue = queue[1:]
		if offset == 0 || t.seen[offset] {
			continue
		}
		t.seen[offset] = true

		entries, next, err := t.readIFD(offset)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			switch e.tag {
			case tagIPTCNAA:
				return t.payload(e)
			case tagPhotoshopIRB:
				if irb == nil {
					if irb, err = t.payload(e); err != nil {
						return nil, err
					}
				}
			case tagSubIFDs:
				subs, err := t.offsets(e)
				if err != nil {
					return nil, err
				}
				queue = append(queue, subs...)
			}
		}
		queue = append([]uint32{next}, queue...)
	}

	if irb == nil {
		return nil, nil
	}
	return FindIPTC(irb)
}

type tiffEntry struct {
	tag   uint16
	typ   uint16
	count uint32
	value [4]byte
}

type tiffWalker struct {
	ra    io.ReaderAt
	order binary.ByteOrder
	seen  map[uint32]bool
}

func (t *tiffWalker) readIFD(offset uint32) ([]tiffEntry, uint32, error) {
	var countBuf [2]byte
	if err := readAt(t.ra, countBuf[:], int64(offset)); err != nil {
		return nil, 0, fmt.Errorf("%w: IFD at %d", ErrTruncated, offset)
	}
	n := int(t.order.Uint16(countBuf[:]))

	raw := make([]byte, n*12+4)
	if err := readAt(t.ra, raw, int64(offset)+2); err != nil {
		return nil, 0, fmt.Errorf("%w: IFD at %d", ErrTruncated, offset)
	}

	entries := make([]tiffEntry, n)
	for i := range entries {
		b := raw[i*12 : i*12+12]
		entries[i] = tiffEntry{
			tag:   t.order.Uint16(b[0:2]),
			typ:   t.order.Uint16(b[2:4]),
			count: t.order.Uint32(b[4:8]),
		}
		copy(entries[i].value[:], b[8:12])
	}
	return entries, t.order.Uint32(raw[n*12:]), nil
}

// payload returns the raw bytes of an entry. IPTC is often stored as LONG
// but the bytes are an IIM stream in file order either way.
func (t *tiffWalker) payload(e tiffEntry) ([]byte, error) {
	elem, ok := tiffTypeSize[e.typ]
	if !ok {
		return nil, fmt.Errorf("tag %d has unsupported type %d", e.tag, e.typ)
	}
	size := uint64(elem) * uint64(e.count)
	if size > maxResourceSection {
		return nil, fmt.Errorf("tag %d exceeds %d bytes", e.tag, maxResourceSection)
	}
	if size <= 4 {
		return append([]byte(nil), e.value[:size]...), nil
	}

	data := make([]byte, size)
	if err := readAt(t.ra, data, int64(t.order.Uint32(e.value[:]))); err != nil {
		return nil, fmt.Errorf("%w: tag %d", ErrTruncated, e.tag)
	}
	return data, nil
}

func (t *tiffWalker) offsets(e tiffEntry) ([]uint32, error) {
	if e.typ != 4 && e.typ != 13 {
		return nil, nil
	}
	data, err := t.payload(e)
	if err != nil {
		return nil, err
	}
	out := make([]uint32, 0, len(data)/4)
	for i := 0; i+4 <= len(data); i += 4 {
		out = append(out, t.order.Uint32(data[i:i+4]))
	}
	return out, nil
}

// readAt fills p, accepting io.EOF when the read ends exactly at the end
// of the file.
func readAt(ra io.ReaderAt, p []byte, off int64) error {
	n, err := ra.ReadAt(p, off)
	if n == len(p) {
		return nil
	}
	if err == nil {
		err = io.ErrUnexpectedEOF
	}
	return err
}
