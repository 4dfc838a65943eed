package filehdr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	flags := Flags{Compressed: true, Script: true}
	data := Encode(flags)
	require.Len(t, data, Size)

	hdr, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, Current, hdr.Version)
	assert.Equal(t, flags, hdr.Flags)
}

func TestEncodeLiteralBytes(t *testing.T) {
	data := Encode(Flags{})
	assert.Equal(t, []byte("HWP Document File"), data[:17])
	assert.Equal(t, byte(0x1A), data[30])
	assert.Equal(t, byte(0x02), data[31])
	assert.Equal(t, []byte{0x05, 0x00, 0x03, 0x04}, data[32:36])
	assert.Equal(t, byte(0x04), data[43])
}

func TestDecodeRejectsBadSignature(t *testing.T) {
	data := Encode(Flags{})
	data[0] = 'X'
	_, err := Decode(data)
	assert.Error(t, err)
}

func TestDecodeRejectsTruncated(t *testing.T) {
	_, err := Decode(make([]byte, 10))
	assert.Error(t, err)
}

func TestDecodeRejectsUnsupportedVersion(t *testing.T) {
	data := Encode(Flags{})
	data[32] = 6
	data[33] = 0
	data[34] = 0
	data[35] = 0
	_, err := Decode(data)
	assert.Error(t, err)
}
