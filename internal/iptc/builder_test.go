package iptc

import (
	"bytes"
	"encoding/binary"
)

// dataset encodes one IIM dataset with a standard length field.
func dataset(record, number byte, value string) []byte {
	var b bytes.Buffer
	b.Write([]byte{iimTagMarker, record, number})
	_ = binary.Write(&b, binary.BigEndian, uint16(len(value)))
	b.WriteString(value)
	return b.Bytes()
}

// extendedDataset encodes one IIM dataset using a 4-byte extended length.
func extendedDataset(record, number byte, value string) []byte {
	var b bytes.Buffer
	b.Write([]byte{iimTagMarker, record, number})
	_ = binary.Write(&b, binary.BigEndian, uint16(0x8004))
	_ = binary.Write(&b, binary.BigEndian, uint32(len(value)))
	b.WriteString(value)
	return b.Bytes()
}

func keywordsIIM(keywords ...string) []byte {
	var b bytes.Buffer
	b.Write(dataset(recordApplication, 0, "\x00\x04"))
	for _, k := range keywords {
		b.Write(dataset(recordApplication, datasetKeywords, k))
	}
	return b.Bytes()
}

// resource encodes one Photoshop image resource block with an empty name.
func resource(id uint16, payload []byte) []byte {
	var b bytes.Buffer
	b.Write(resourceSignature)
	_ = binary.Write(&b, binary.BigEndian, id)
	b.Write([]byte{0, 0})
	_ = binary.Write(&b, binary.BigEndian, uint32(len(payload)))
	b.Write(payload)
	if len(payload)%2 != 0 {
		b.WriteByte(0)
	}
	return b.Bytes()
}

func segment(marker byte, payload []byte) []byte {
	var b bytes.Buffer
	b.Write([]byte{0xFF, marker})
	_ = binary.Write(&b, binary.BigEndian, uint16(len(payload)+2))
	b.Write(payload)
	return b.Bytes()
}

// jpeg builds a minimal JPEG with an APP0 segment, the given APP13
// Photoshop payloads and a start of scan.
func jpeg(app13 ...[]byte) []byte {
	var b bytes.Buffer
	b.Write(jpegSOI)
	b.Write(segment(0xE0, []byte("JFIF\x00\x01\x01\x00\x00\x01\x00\x01\x00\x00")))
	for _, p := range app13 {
		b.Write(segment(markerAPP13, append(append([]byte{}, photoshopHeader...), p...)))
	}
	b.Write(segment(markerSOS, []byte{0x01, 0x01, 0x00, 0x00, 0x3F, 0x00}))
	b.Write([]byte{0x12, 0x34, 0xFF, markerEOI})
	return b.Bytes()
}

// psd builds a PSD header with the given image resources section.
func psd(resources []byte) []byte {
	var b bytes.Buffer
	b.Write(psdSignature)
	b.Write(make([]byte, 22))
	_ = binary.Write(&b, binary.BigEndian, uint32(3))
	b.Write([]byte{1, 2, 3})
	_ = binary.Write(&b, binary.BigEndian, uint32(len(resources)))
	b.Write(resources)
	b.Write([]byte("layer data"))
	return b.Bytes()
}

// tiffField is one IFD entry of a synthetic TIFF.
type tiffField struct {
	tag  uint16
	typ  uint16
	data []byte
}

// tiff builds a TIFF whose IFDs are chained in order. Payloads longer than
// four bytes are placed right after their IFD.
func tiff(order binary.ByteOrder, ifds ...[]tiffField) []byte {
	var b bytes.Buffer
	if order == binary.LittleEndian {
		b.Write(tiffLittleEndian)
	} else {
		b.Write(tiffBigEndian)
	}
	_ = binary.Write(&b, order, uint32(8))

	for n, fields := range ifds {
		start := uint32(b.Len())
		dataStart := start + 2 + uint32(len(fields))*12 + 4

		var data bytes.Buffer
		var entries bytes.Buffer
		for _, f := range fields {
			elem := tiffTypeSize[f.typ]
			_ = binary.Write(&entries, order, f.tag)
			_ = binary.Write(&entries, order, f.typ)
			_ = binary.Write(&entries, order, uint32(len(f.data))/elem)
			if len(f.data) <= 4 {
				var inline [4]byte
				copy(inline[:], f.data)
				entries.Write(inline[:])
				continue
			}
			_ = binary.Write(&entries, order, dataStart+uint32(data.Len()))
			data.Write(f.data)
			if data.Len()%2 != 0 {
				data.WriteByte(0)
			}
		}

		var next uint32
		if n < len(ifds)-1 {
			next = dataStart + uint32(data.Len())
		}
		_ = binary.Write(&b, order, uint16(len(fields)))
		b.Write(entries.Bytes())
		_ = binary.Write(&b, order, next)
		b.Write(data.Bytes())
	}
	return b.Bytes()
}

// longAligned pads p with zeros to a multiple of four bytes so it can be
// declared as LONG.
func longAligned(p []byte) []byte {
	for len(p)%4 != 0 {
		p = append(p, 0)
	}
	return p
}
