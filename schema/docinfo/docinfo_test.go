package docinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDocInfo() *DocInfo {
	info := &DocInfo{
		Properties: &DocumentProperties{SectionCount: 1, CharCount: 7},
		Faces:      [7][]*FaceName{{{Name: "함초롬바탕"}}},
		CharShapes: []*CharShape{{BaseSize: 1000, BorderFillID: 0}},
		ParaShapes: []*ParaShape{{Properties: ParaShapeProperties{Alignment: AlignLeft}}},
		BorderFills: []*BorderFill{
			{Flags: 0, Fill: FillInfo{Kind: 1, SolidColor: 0xFFFFFF}},
		},
	}
	info.RebuildIDMappings()
	return info
}

func TestDocInfoEncodeDecodeRoundTrip(t *testing.T) {
	info := sampleDocInfo()
	encoded := info.Encode()

	decoded, err := Decode(encoded)
	require.NoError(t, err)

	require.NotNil(t, decoded.Properties)
	assert.Equal(t, uint16(1), decoded.Properties.SectionCount)
	assert.Equal(t, uint32(7), decoded.Properties.CharCount)

	require.Len(t, decoded.Faces[LangKorean], 1)
	assert.Equal(t, "함초롬바탕", decoded.Faces[LangKorean][0].Name)

	require.Len(t, decoded.CharShapes, 1)
	assert.Equal(t, uint32(1000), decoded.CharShapes[0].BaseSize)

	require.Len(t, decoded.ParaShapes, 1)
	assert.Equal(t, AlignLeft, decoded.ParaShapes[0].Properties.Alignment)

	require.Len(t, decoded.BorderFills, 1)
	assert.Equal(t, uint32(0xFFFFFF), decoded.BorderFills[0].Fill.SolidColor)
}

func TestFaceNameWithSubstituteRoundTrip(t *testing.T) {
	sub := "Arial"
	f := &FaceName{Name: "Batang", Substitute: &sub, TypeInfo: &FontTypeInfo{Weight: 5}}
	decoded, err := DecodeFaceName(f.Encode())
	require.NoError(t, err)
	assert.Equal(t, "Batang", decoded.Name)
	require.NotNil(t, decoded.Substitute)
	assert.Equal(t, "Arial", *decoded.Substitute)
	require.NotNil(t, decoded.TypeInfo)
	assert.Equal(t, uint8(5), decoded.TypeInfo.Weight)
}

func TestBinDataLinkVsEmbedding(t *testing.T) {
	link := &BinData{Type: BinDataLink, Path: `C:\images\a.png`}
	decodedLink, err := DecodeBinData(link.Encode())
	require.NoError(t, err)
	assert.Equal(t, BinDataLink, decodedLink.Type)
	assert.Equal(t, link.Path, decodedLink.Path)

	embed := &BinData{Type: BinDataEmbedding, Format: "png"}
	decodedEmbed, err := DecodeBinData(embed.Encode())
	require.NoError(t, err)
	assert.Equal(t, BinDataEmbedding, decodedEmbed.Type)
	assert.Equal(t, "png", decodedEmbed.Format)
}
