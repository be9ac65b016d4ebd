package iptc

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

const (
	iimTagMarker = 0x1C

	recordEnvelope    = 1
	datasetCharset    = 90
	recordApplication = 2
	datasetKeywords   = 25
)

// utf8Charset is the ISO 2022 escape sequence declaring UTF-8 in dataset 1:90.
var utf8Charset = []byte{0x1B, 0x25, 0x47}

// ErrTruncated indicates a metadata block ended inside a record.
var ErrTruncated = errors.New("truncated metadata")

// ParseIIM extracts the keyword datasets from an IIM stream. Values are
// decoded as UTF-8 when the envelope declares it or when they are valid
// UTF-8, and as ISO 8859-1 otherwise.
func ParseIIM(data []byte) ([]string, error) {
	var keywords []string
	declaredUTF8 := false

	for i := 0; i < len(data); {
		if data[i] != iimTagMarker {
			// Padding after the last dataset.
			break
		}
		if i+5 > len(data) {
			return keywords, ErrTruncated
		}
		record, dataset := data[i+1], data[i+2]
		size := int(binary.BigEndian.Uint16(data[i+3 : i+5]))
		i += 5

		if size&0x8000 != 0 {
			n := size & 0x7FFF
			if n == 0 || n > 4 || i+n > len(data) {
				return keywords, fmt.Errorf("%w: bad extended length", ErrTruncated)
			}
			size = 0
			for _, b := range data[i : i+n] {
				size = size<<8 | int(b)
			}
			i += n
		}
		if size < 0 || i+size > len(data) {
			return keywords, ErrTruncated
		}
		value := data[i : i+size]
		i += size

		switch {
		case record == recordEnvelope && dataset == datasetCharset:
			declaredUTF8 = bytes.Equal(value, utf8Charset)
		case record == recordApplication && dataset == datasetKeywords:
			keywords = append(keywords, decodeText(value, declaredUTF8))
		}
	}

	return keywords, nil
}

func decodeText(value []byte, declaredUTF8 bool) string {
	if declaredUTF8 || utf8.Valid(value) {
		return string(value)
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(value)
	if err != nil {
		return string(value)
	}
	return string(decoded)
}
