package bytecursor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadWriteIntegersRoundTrip(t *testing.T) {
	w := NewWriter()
	w.U8(0xAB)
	w.U16(0x1234)
	w.I16(-1)
	w.U32(0xDEADBEEF)
	w.I32(-42)
	w.U64(0x0102030405060708)

	r := NewReader(w.Bytes())
	u8, err := r.U8()
	require.NoError(t, err)
	assert.Equal(t, uint8(0xAB), u8)

	u16, err := r.U16()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x1234), u16)

	i16, err := r.I16()
	require.NoError(t, err)
	assert.Equal(t, int16(-1), i16)

	u32, err := r.U32()
	require.NoError(t, err)
	assert.Equal(t, uint32(0xDEADBEEF), u32)

	i32, err := r.I32()
	require.NoError(t, err)
	assert.Equal(t, int32(-42), i32)

	u64, err := r.U64()
	require.NoError(t, err)
	assert.Equal(t, uint64(0x0102030405060708), u64)

	assert.Equal(t, 0, r.Remaining())
}

func TestUTF16StringRoundTrip(t *testing.T) {
	w := NewWriter()
	w.UTF16String("함초롬바탕")

	r := NewReader(w.Bytes())
	s, err := r.UTF16String()
	require.NoError(t, err)
	assert.Equal(t, "함초롬바탕", s)
}

func TestPeekU32DoesNotAdvance(t *testing.T) {
	w := NewWriter()
	w.U32(42)
	w.U32(43)

	r := NewReader(w.Bytes())
	peeked, err := r.PeekU32()
	require.NoError(t, err)
	assert.Equal(t, uint32(42), peeked)

	first, err := r.U32()
	require.NoError(t, err)
	assert.Equal(t, uint32(42), first)
}

func TestSeekAndSkip(t *testing.T) {
	r := NewReader([]byte{1, 2, 3, 4, 5})
	require.NoError(t, r.Skip(2))
	assert.Equal(t, 2, r.Position())

	b, err := r.U8()
	require.NoError(t, err)
	assert.Equal(t, uint8(3), b)

	require.NoError(t, r.Seek(0))
	assert.Equal(t, 0, r.Position())

	err = r.Seek(100)
	require.Error(t, err)
}

func TestReadPastEndFails(t *testing.T) {
	r := NewReader([]byte{1, 2})
	_, err := r.U32()
	require.Error(t, err)
}

func TestArrayReturnsOwnedCopy(t *testing.T) {
	buf := []byte{1, 2, 3, 4}
	r := NewReader(buf)
	out, err := r.Array(4)
	require.NoError(t, err)
	out[0] = 0xFF
	assert.Equal(t, byte(1), buf[0])
}

func TestPad(t *testing.T) {
	w := NewWriter()
	w.U8(1)
	w.Pad(3)
	assert.Equal(t, []byte{1, 0, 0, 0}, w.Bytes())
}
