package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeEncodeRoundTrip(t *testing.T) {
	records := []Raw{
		{Tag: 0x010, Level: 0, Data: []byte{1, 2, 3, 4}},
		{Tag: 0x050, Level: 1, Data: []byte{}},
		{Tag: 0x051, Level: 2, Data: []byte("hello")},
	}

	encoded := Encode(records)
	decoded, err := Decode(encoded)
	require.NoError(t, err)
	require.Len(t, decoded, len(records))
	for i, want := range records {
		assert.Equal(t, want.Tag, decoded[i].Tag)
		assert.Equal(t, want.Level, decoded[i].Level)
		assert.Equal(t, want.Data, decoded[i].Data)
	}
}

func TestDecodeExtendedSize(t *testing.T) {
	body := make([]byte, 5000)
	for i := range body {
		body[i] = byte(i)
	}
	records := []Raw{{Tag: 0x012, Level: 0, Data: body}}

	encoded := Encode(records)
	decoded, err := Decode(encoded)
	require.NoError(t, err)
	require.Len(t, decoded, 1)
	assert.Equal(t, body, decoded[0].Data)
}

func TestDecodeTruncatedHeader(t *testing.T) {
	_, err := Decode([]byte{0x01, 0x02})
	assert.Error(t, err)
}

func TestDecodeTruncatedBody(t *testing.T) {
	records := []Raw{{Tag: 1, Level: 0, Data: []byte{1, 2, 3, 4, 5, 6, 7, 8}}}
	encoded := Encode(records)
	_, err := Decode(encoded[:len(encoded)-2])
	assert.Error(t, err)
}

func TestAssembleTreeNesting(t *testing.T) {
	records := []Raw{
		{Tag: 0x055, Level: 0},
		{Tag: 0x056, Level: 1},
		{Tag: 0x057, Level: 2},
		{Tag: 0x058, Level: 1},
		{Tag: 0x055, Level: 0},
	}
	roots, err := AssembleTree(records)
	require.NoError(t, err)
	require.Len(t, roots, 2)
	require.Len(t, roots[0].Children, 2)
	require.Len(t, roots[0].Children[0].Children, 1)
	assert.Equal(t, uint16(0x057), roots[0].Children[0].Children[0].Raw.Tag)
	assert.Equal(t, uint16(0x058), roots[0].Children[1].Raw.Tag)
}

func TestAssembleTreeUnexpectedLevel(t *testing.T) {
	records := []Raw{
		{Tag: 1, Level: 0},
		{Tag: 2, Level: 2}, // jumps from level 0 straight to level 2
	}
	_, err := AssembleTree(records)
	assert.Error(t, err)
}

func TestFlattenIsInverseOfAssembleTree(t *testing.T) {
	records := []Raw{
		{Tag: 1, Level: 0, Data: []byte{1}},
		{Tag: 2, Level: 1, Data: []byte{2}},
		{Tag: 3, Level: 1, Data: []byte{3}},
	}
	roots, err := AssembleTree(records)
	require.NoError(t, err)
	assert.Equal(t, records, Flatten(roots))
}

func TestCompressDecompressRoundTrip(t *testing.T) {
	original := []byte("the quick brown fox jumps over the lazy dog, repeatedly, to give deflate something to compress")
	compressed, err := Compress(original)
	require.NoError(t, err)

	decompressed, err := Decompress(compressed)
	require.NoError(t, err)
	assert.Equal(t, original, decompressed)
}

func TestDecompressToleratesZlibHeader(t *testing.T) {
	original := []byte("zlib-wrapped payload")
	raw, err := Compress(original)
	require.NoError(t, err)

	wrapped := append([]byte{0x78, 0x9C}, raw...)
	decompressed, err := Decompress(wrapped)
	require.NoError(t, err)
	assert.Equal(t, original, decompressed)
}
