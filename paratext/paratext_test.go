package paratext

import (
	"testing"
	"unicode/utf16"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeParsePlainText(t *testing.T) {
	runs := []Run{{Text: "Hello"}}
	text := Encode(runs)
	assert.Equal(t, "Hello", text)

	got, err := Parse(text)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Hello", got[0].Text)
}

func TestEncodeParseShortControls(t *testing.T) {
	runs := []Run{
		{Text: "Hello"},
		{Code: 13}, // paragraph break
		{Code: 10}, // line break
	}
	text := Encode(runs)
	assert.Equal(t, "Hello\r\n", text)
	assert.EqualValues(t, 7, ExpandedLen(runs))

	got, err := Parse(text)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "Hello", got[0].Text)
	assert.Equal(t, uint16(13), got[1].Code)
	assert.Equal(t, uint16(10), got[2].Code)
}

func TestEncodeParseExtendedControlRoundTrip(t *testing.T) {
	runs := []Run{
		{Text: "pic: "},
		NewExtended(2, fourccU32("$pic"), 1, 2, 3),
	}
	text := Encode(runs)
	assert.EqualValues(t, ExpandedLen(runs), len(utf16.Encode([]rune(text))))

	got, err := Parse(text)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "pic: ", got[0].Text)
	require.True(t, got[1].IsExtended())
	assert.Equal(t, fourccU32("$pic"), got[1].FOURCC())
	assert.Equal(t, [7]uint16{uint16(fourccU32("$pic")), uint16(fourccU32("$pic") >> 16), 1, 2, 3, 0, 0}, got[1].Params)
}

func TestParseTruncatedControlErrors(t *testing.T) {
	_, err := Parse(string([]rune{2, 'a'}))
	require.Error(t, err)
}

func fourccU32(s string) uint32 {
	b := []byte(s)
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}
