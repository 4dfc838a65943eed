package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hwp5/hwp/schema/bodytext"
	"github.com/hwp5/hwp/schema/docinfo"
)

func newTestDoc() *Document {
	d := New()
	d.Info.CharShapes = []*docinfo.CharShape{{}}
	d.Info.ParaShapes = []*docinfo.ParaShape{{}}
	d.Info.Faces[docinfo.LangKorean] = []*docinfo.FaceName{{Name: "함초롬바탕"}}
	d.Info.BinData = []*docinfo.BinData{{Type: docinfo.BinDataEmbedding, Format: "png"}}
	d.Sections = []*bodytext.Section{{Paragraphs: []*bodytext.Paragraph{
		{Header: &bodytext.ParaHeader{}, Text: "hello"},
	}}}
	return d
}

func TestAccessors(t *testing.T) {
	d := newTestDoc()
	require.NotNil(t, d.Section(0))
	assert.Nil(t, d.Section(1))
	assert.Len(t, d.ParagraphsOf(0), 1)
	assert.NotNil(t, d.CharShape(0))
	assert.Nil(t, d.CharShape(1))
	assert.NotNil(t, d.ParaShape(0))
	require.NotNil(t, d.Face(int(docinfo.LangKorean), 0))
	assert.Equal(t, "함초롬바탕", d.Face(int(docinfo.LangKorean), 0).Name)
	require.NotNil(t, d.BinDataByID(1))
	assert.Nil(t, d.BinDataByID(0))
	assert.Nil(t, d.BinDataByID(2))
}

func TestCheckInvariantsPasses(t *testing.T) {
	d := newTestDoc()
	assert.NoError(t, CheckInvariants(d))
}

func TestCheckInvariantsCatchesDanglingCharShape(t *testing.T) {
	d := newTestDoc()
	d.Sections[0].Paragraphs[0].CharShapeRuns = []bodytext.CharShapeRun{
		{Position: 0, CharShapeID: 5},
	}
	err := CheckInvariants(d)
	require.Error(t, err)
}

func TestCheckInvariantsCatchesDanglingParaShape(t *testing.T) {
	d := newTestDoc()
	d.Sections[0].Paragraphs[0].Header.ParaShapeID = 99
	err := CheckInvariants(d)
	require.Error(t, err)
}

func TestBinDataPoolPutAndLoad(t *testing.T) {
	pool := NewBinDataPool(nil)
	pool.Put(1, []byte{1, 2, 3})
	data, err := pool.Load(1)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, data)
}

func TestBinDataPoolMissingSource(t *testing.T) {
	pool := NewBinDataPool(nil)
	pool.SetTable([]*docinfo.BinData{{Type: docinfo.BinDataEmbedding, Format: "png"}})
	_, err := pool.Load(1)
	require.Error(t, err)
}
