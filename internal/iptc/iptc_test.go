package iptc

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danieljhkim/tagsync/internal/fsops"
)

func TestParseIIM(t *testing.T) {
	got, err := ParseIIM(keywordsIIM("beach", "Summer", "beach"))
	require.NoError(t, err)
	assert.Equal(t, []string{"beach", "Summer", "beach"}, got)
}

func TestParseIIM_ExtendedLength(t *testing.T) {
	data := extendedDataset(recordApplication, datasetKeywords, "long keyword")
	got, err := ParseIIM(data)
	require.NoError(t, err)
	assert.Equal(t, []string{"long keyword"}, got)
}

func TestParseIIM_Charset(t *testing.T) {
	latin1 := "caf\xe9"

	got, err := ParseIIM(dataset(recordApplication, datasetKeywords, latin1))
	require.NoError(t, err)
	assert.Equal(t, []string{"café"}, got)

	declared := append(dataset(recordEnvelope, datasetCharset, string(utf8Charset)),
		dataset(recordApplication, datasetKeywords, "café")...)
	got, err = ParseIIM(declared)
	require.NoError(t, err)
	assert.Equal(t, []string{"café"}, got)
}

func TestParseIIM_Truncated(t *testing.T) {
	data := keywordsIIM("beach")
	_, err := ParseIIM(data[:len(data)-2])
	assert.True(t, errors.Is(err, ErrTruncated))
}

func TestParseIIM_StopsAtPadding(t *testing.T) {
	data := append(keywordsIIM("a"), 0, 0, 0)
	got, err := ParseIIM(data)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, got)
}

func TestFindIPTC(t *testing.T) {
	iim := keywordsIIM("x")
	data := append(resource(0x03ED, []byte{1, 2, 3}), resource(resourceIPTC, iim)...)

	got, err := FindIPTC(data)
	require.NoError(t, err)
	assert.Equal(t, iim, got)

	none, err := FindIPTC(resource(0x03ED, []byte{1, 2}))
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestReadKeywords_JPEG(t *testing.T) {
	data := jpeg(resource(resourceIPTC, keywordsIIM("a", "b")))
	got, err := ReadKeywords(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestReadKeywords_JPEGSplitAcrossSegments(t *testing.T) {
	block := resource(resourceIPTC, keywordsIIM("split", "keywords"))
	half := len(block) / 2
	data := jpeg(block[:half], block[half:])

	got, err := ReadKeywords(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, []string{"split", "keywords"}, got)
}

func TestReadKeywords_JPEGWithoutIPTC(t *testing.T) {
	got, err := ReadKeywords(bytes.NewReader(jpeg()))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestReadKeywords_PSD(t *testing.T) {
	data := psd(resource(resourceIPTC, keywordsIIM("layered")))
	got, err := ReadKeywords(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, []string{"layered"}, got)
}

func TestReadKeywords_TIFF(t *testing.T) {
	widthField := tiffField{tag: 256, typ: 3, data: []byte{0, 1}}

	tests := []struct {
		name string
		data []byte
		want []string
	}{
		{
			name: "IPTC-NAA little endian",
			data: tiff(binary.LittleEndian, []tiffField{
				widthField,
				{tag: tagIPTCNAA, typ: 7, data: keywordsIIM("beach")},
			}),
			want: []string{"beach"},
		},
		{
			name: "IPTC-NAA stored as LONG big endian",
			data: tiff(binary.BigEndian, []tiffField{
				{tag: tagIPTCNAA, typ: 4, data: longAligned(keywordsIIM("beach", "summer"))},
			}),
			want: []string{"beach", "summer"},
		},
		{
			name: "Photoshop IRB",
			data: tiff(binary.LittleEndian, []tiffField{
				{tag: tagPhotoshopIRB, typ: 1, data: append(resource(0x03ED, []byte{1, 2}), resource(resourceIPTC, keywordsIIM("layered"))...)},
			}),
			want: []string{"layered"},
		},
		{
			name: "IPTC in second IFD",
			data: tiff(binary.BigEndian,
				[]tiffField{widthField},
				[]tiffField{{tag: tagIPTCNAA, typ: 7, data: keywordsIIM("thumb")}},
			),
			want: []string{"thumb"},
		},
		{
			name: "no IPTC",
			data: tiff(binary.LittleEndian, []tiffField{widthField}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadKeywords(bytes.NewReader(tt.data))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// plainReader hides the io.ReaderAt of its source.
type plainReader struct {
	r io.Reader
}

func (p plainReader) Read(b []byte) (int, error) {
	return p.r.Read(b)
}

func TestReadKeywords_TIFFWithoutReaderAt(t *testing.T) {
	data := tiff(binary.LittleEndian, []tiffField{{tag: tagIPTCNAA, typ: 7, data: keywordsIIM("streamed")}})
	got, err := ReadKeywords(plainReader{r: bytes.NewReader(data)})
	require.NoError(t, err)
	assert.Equal(t, []string{"streamed"}, got)
}

func TestReadKeywords_TIFFTruncated(t *testing.T) {
	data := tiff(binary.LittleEndian, []tiffField{{tag: tagIPTCNAA, typ: 7, data: keywordsIIM("beach")}})
	_, err := ReadKeywords(bytes.NewReader(data[:20]))
	assert.True(t, errors.Is(err, ErrTruncated))
}

func TestReadKeywords_TIFFLoopingChain(t *testing.T) {
	data := tiff(binary.LittleEndian, []tiffField{{tag: 256, typ: 3, data: []byte{1, 0}}})
	// Point the next-IFD offset back at the first IFD.
	binary.LittleEndian.PutUint32(data[len(data)-4:], 8)

	got, err := ReadKeywords(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFindIPTC_SkipsForeignResources(t *testing.T) {
	foreign := resource(0x0001, []byte("meta"))
	copy(foreign, "MeSa")
	iim := keywordsIIM("x")
	data := append(foreign, resource(resourceIPTC, iim)...)

	got, err := FindIPTC(data)
	require.NoError(t, err)
	assert.Equal(t, iim, got)
}

func TestFindIPTC_ForeignIPTCIDIgnored(t *testing.T) {
	foreign := resource(resourceIPTC, keywordsIIM("not photoshop"))
	copy(foreign, "PHUT")

	got, err := FindIPTC(foreign)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestReadKeywords_UnknownFormat(t *testing.T) {
	_, err := ReadKeywords(bytes.NewReader([]byte("plain text file")))
	assert.True(t, errors.Is(err, ErrUnknownFormat))
}

func TestReader_Read(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "/p/tagged.jpg", jpeg(resource(resourceIPTC, keywordsIIM("a", "b"))), 0644))
	require.NoError(t, afero.WriteFile(mem, "/p/notes.txt", []byte("hello"), 0644))
	require.NoError(t, afero.WriteFile(mem, "/p/scan.tif", tiff(binary.LittleEndian, []tiffField{{tag: tagIPTCNAA, typ: 7, data: keywordsIIM("beach")}}), 0644))
	require.NoError(t, afero.WriteFile(mem, "/p/broken.jpg", jpeg(resource(resourceIPTC, keywordsIIM("a")))[:40], 0644))

	r := NewReader(fsops.NewAferoFS(mem), zerolog.Nop())

	assert.Equal(t, []string{"a", "b"}, r.Read("/p/tagged.jpg").Sorted())
	assert.Equal(t, []string{"beach"}, r.Read("/p/scan.tif").Sorted())
	assert.True(t, r.Read("/p/notes.txt").IsEmpty())
	assert.True(t, r.Read("/p/broken.jpg").IsEmpty())
	assert.True(t, r.Read("/p/missing.jpg").IsEmpty())
}

func TestReader_LogLevels(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "/p/notes.txt", []byte("hello"), 0644))
	require.NoError(t, afero.WriteFile(mem, "/p/broken.jpg", jpeg(resource(resourceIPTC, keywordsIIM("a")))[:40], 0644))

	var buf bytes.Buffer
	r := NewReader(fsops.NewAferoFS(mem), zerolog.New(&buf).Level(zerolog.WarnLevel))

	r.Read("/p/notes.txt")
	assert.Empty(t, buf.String(), "unknown formats are not warnings")

	r.Read("/p/broken.jpg")
	assert.Contains(t, buf.String(), `"level":"warn"`)
	assert.Contains(t, buf.String(), "/p/broken.jpg")
}
