package iptc

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// ErrUnknownFormat indicates the stream is not a JPEG, TIFF or PSD file.
var ErrUnknownFormat = errors.New("unrecognized image format")

// maxResourceSection bounds how much of a container is buffered while
// looking for the resource block.
const maxResourceSection = 64 << 20

var (
	jpegSOI         = []byte{0xFF, 0xD8}
	psdSignature    = []byte("8BPS")
	photoshopHeader = []byte("Photoshop 3.0\x00")
)

const (
	markerSOS   = 0xDA
	markerEOI   = 0xD9
	markerAPP13 = 0xED
)

// ReadKeywords returns the IPTC keywords of a JPEG, TIFF or PSD stream.
// TIFF-based raw formats are read like TIFF. A file with no IPTC block
// yields no keywords and no error.
//
// TIFF needs random access; when r is not an io.ReaderAt the stream is
// buffered up to maxResourceSection bytes.
func ReadKeywords(r io.Reader) ([]string, error) {
	br := bufio.NewReader(r)
	magic, err := br.Peek(4)
	if err != nil {
		return nil, ErrUnknownFormat
	}

	var block []byte
	switch {
	case bytes.Equal(magic[:2], jpegSOI):
		block, err = resourceIPTCBlock(jpegResources(br))
	case bytes.Equal(magic, psdSignature):
		block, err = resourceIPTCBlock(psdResources(br))
	case isTIFF(magic):
		ra, ok := r.(io.ReaderAt)
		if !ok {
			if ra, err = bufferAll(br); err != nil {
				return nil, err
			}
		}
		block, err = tiffIPTC(ra)
	default:
		return nil, ErrUnknownFormat
	}
	if err != nil || block == nil {
		return nil, err
	}
	return ParseIIM(block)
}

func resourceIPTCBlock(resources []byte, err error) ([]byte, error) {
	if err != nil {
		return nil, err
	}
	return FindIPTC(resources)
}

func bufferAll(r io.Reader) (*bytes.Reader, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxResourceSection+1))
	if err != nil {
		return nil, err
	}
	if len(data) > maxResourceSection {
		return nil, fmt.Errorf("stream exceeds %d bytes", maxResourceSection)
	}
	return bytes.NewReader(data), nil
}

// jpegResources concatenates the Photoshop payloads of all APP13 segments
// preceding the image data.
func jpegResources(br *bufio.Reader) ([]byte, error) {
	if _, err := br.Discard(2); err != nil {
		return nil, err
	}

	var resources []byte
	for {
		b, err := br.ReadByte()
		if err != nil {
			return resources, nil
		}
		if b != 0xFF {
			return resources, fmt.Errorf("%w: expected marker, got 0x%02x", ErrTruncated, b)
		}

		marker, err := br.ReadByte()
		for err == nil && marker == 0xFF {
			marker, err = br.ReadByte()
		}
		if err != nil {
			return resources, nil
		}

		switch {
		case marker == markerSOS || marker == markerEOI:
			return resources, nil
		case marker == 0x01 || (marker >= 0xD0 && marker <= 0xD7):
			continue
		}

		var lenBuf [2]byte
		if _, err := io.ReadFull(br, lenBuf[:]); err != nil {
			return resources, ErrTruncated
		}
		size := int(binary.BigEndian.Uint16(lenBuf[:])) - 2
		if size < 0 {
			return resources, fmt.Errorf("%w: bad segment length", ErrTruncated)
		}

		if marker != markerAPP13 {
			if _, err := br.Discard(size); err != nil {
				return resources, ErrTruncated
			}
			continue
		}

		segment := make([]byte, size)
		if _, err := io.ReadFull(br, segment); err != nil {
			return resources, ErrTruncated
		}
		if bytes.HasPrefix(segment, photoshopHeader) {
			resources = append(resources, segment[len(photoshopHeader):]...)
			if len(resources) > maxResourceSection {
				return nil, fmt.Errorf("resource section exceeds %d bytes", maxResourceSection)
			}
		}
	}
}

// psdResources returns the image resources section of a PSD file.
func psdResources(br *bufio.Reader) ([]byte, error) {
	// Fixed 26-byte file header.
	if _, err := br.Discard(26); err != nil {
		return nil, ErrTruncated
	}

	colorModeLen, err := readUint32(br)
	if err != nil {
		return nil, err
	}
	if _, err := br.Discard(int(colorModeLen)); err != nil {
		return nil, ErrTruncated
	}

	resourcesLen, err := readUint32(br)
	if err != nil {
		return nil, err
	}
	if resourcesLen > maxResourceSection {
		return nil, fmt.Errorf("resource section exceeds %d bytes", maxResourceSection)
	}
	resources := make([]byte, resourcesLen)
	if _, err := io.ReadFull(br, resources); err != nil {
		return nil, ErrTruncated
	}
	return resources, nil
}

func readUint32(r io.Reader) (uint32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, ErrTruncated
	}
	return binary.BigEndian.Uint32(buf[:]), nil
}
