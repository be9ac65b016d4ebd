package iptc

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

const resourceIPTC = 0x0404

var resourceSignature = []byte("8BIM")

// Signatures of other vendors' blocks found in the same resource list.
var foreignSignatures = [][]byte{[]byte("MeSa"), []byte("PHUT"), []byte("AgHg"), []byte("DCSR")}

// FindIPTC walks a Photoshop image resource block sequence and returns the
// payload of the IPTC resource, or nil when there is none. Blocks with a
// foreign signature are skipped by length.
func FindIPTC(data []byte) ([]byte, error) {
	for i := 0; i+4 <= len(data); {
		signature := data[i : i+4]
		if !knownSignature(signature) {
			// Trailing padding.
			return nil, nil
		}
		photoshop := bytes.Equal(signature, resourceSignature)
		i += 4

		if i+3 > len(data) {
			return nil, ErrTruncated
		}
		id := binary.BigEndian.Uint16(data[i : i+2])
		i += 2

		// Pascal string name, padded to an even total length.
		nameLen := int(data[i])
		i += 1 + nameLen
		if (1+nameLen)%2 != 0 {
			i++
		}

		if i+4 > len(data) {
			return nil, ErrTruncated
		}
		size := int(binary.BigEndian.Uint32(data[i : i+4]))
		i += 4
		if size < 0 || i+size > len(data) {
			return nil, fmt.Errorf("%w: resource 0x%04x", ErrTruncated, id)
		}

		if photoshop && id == resourceIPTC {
			return data[i : i+size], nil
		}

		i += size
		if size%2 != 0 {
			i++
		}
	}
	return nil, nil
}

func knownSignature(sig []byte) bool {
	if bytes.Equal(sig, resourceSignature) {
		return true
	}
	for _, s := range foreignSignatures {
		if bytes.Equal(sig, s) {
			return true
		}
	}
	return false
}
