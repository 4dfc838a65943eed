package bodytext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sectionDefineParagraph(text string) *Paragraph {
	return &Paragraph{
		Header: &ParaHeader{ParaShapeID: 0},
		Text:   text,
		Controls: []*Control{
			{ID: FOURCCSectionDefine, Body: &SectionDefine{
				PageDef:        &PageDef{Width: 59528, Height: 84188},
				FootnoteShape:  &FootnoteShape{NumberFormat: 1},
				PageBorderFill: &PageBorderFillRec{BorderFillID: 0},
			}},
			{ID: FOURCCColumnDefine, Body: &ColumnDefine{Type: 0, ColumnCount: 1, SameWidth: true}},
		},
	}
}

func TestSectionRoundTripMinimal(t *testing.T) {
	sec := &Section{Paragraphs: []*Paragraph{
		sectionDefineParagraph(""),
		{Header: &ParaHeader{}, Text: "Hello\r\n"},
	}}

	encoded := sec.Encode()
	decoded, err := Decode(encoded, false)
	require.NoError(t, err)
	require.Len(t, decoded.Paragraphs, 2)

	assert.Equal(t, "Hello\r\n", decoded.Paragraphs[1].Text)
	assert.True(t, decoded.Paragraphs[1].Header.LastInList())
	assert.False(t, decoded.Paragraphs[0].Header.LastInList())

	require.Len(t, decoded.Paragraphs[0].Controls, 2)
	assert.Equal(t, FOURCCSectionDefine, decoded.Paragraphs[0].Controls[0].ID)
	secd := decoded.Paragraphs[0].Controls[0].Body.(*SectionDefine)
	require.NotNil(t, secd.PageDef)
	assert.Equal(t, uint32(59528), secd.PageDef.Width)
}

func TestHyperlinkControlRoundTrip(t *testing.T) {
	p := &Paragraph{
		Header: &ParaHeader{},
		Text:   "Visit site",
		RangeTags: []RangeTag{
			{Start: 0, End: 10, Tag: 0},
		},
		Controls: []*Control{
			{ID: FOURCCHyperlink, Body: &Hyperlink{URL: "https://example.com"}},
		},
	}
	sec := &Section{Paragraphs: []*Paragraph{p}}

	encoded := sec.Encode()
	decoded, err := Decode(encoded, false)
	require.NoError(t, err)

	got := decoded.Paragraphs[0]
	assert.Equal(t, "Visit site", got.Text)
	require.Len(t, got.RangeTags, 1)
	require.Len(t, got.Controls, 1)
	assert.Equal(t, FOURCCHyperlink, got.Controls[0].ID)
	link := got.Controls[0].Body.(*Hyperlink)
	assert.Equal(t, "https://example.com", link.URL)
}

func TestTableControlRoundTrip(t *testing.T) {
	cellParagraph := func(text string) *ListHeader {
		return &ListHeader{Paragraphs: []*Paragraph{{Header: &ParaHeader{}, Text: text}}}
	}
	table := &Table{
		Rows: 2, Cols: 2,
		Cells: []Cell{
			{Row: 0, Col: 0, RowSpan: 1, ColSpan: 1, Content: cellParagraph("A")},
			{Row: 0, Col: 1, RowSpan: 1, ColSpan: 1, Content: cellParagraph("B")},
			{Row: 1, Col: 0, RowSpan: 1, ColSpan: 1, Content: cellParagraph("C")},
			{Row: 1, Col: 1, RowSpan: 1, ColSpan: 1, Content: cellParagraph("D")},
		},
	}
	p := &Paragraph{
		Header:   &ParaHeader{},
		Controls: []*Control{{ID: FOURCCTable, Body: table}},
	}
	sec := &Section{Paragraphs: []*Paragraph{p}}

	encoded := sec.Encode()
	decoded, err := Decode(encoded, false)
	require.NoError(t, err)

	require.Len(t, decoded.Paragraphs, 1)
	require.Len(t, decoded.Paragraphs[0].Controls, 1)
	got := decoded.Paragraphs[0].Controls[0].Body.(*Table)
	require.Len(t, got.Cells, 4)

	var texts []string
	for _, cell := range got.Cells {
		require.Len(t, cell.Content.Paragraphs, 1)
		texts = append(texts, cell.Content.Paragraphs[0].Text)
	}
	assert.Equal(t, []string{"A", "B", "C", "D"}, texts)
}

func TestOpaqueControlPreservesUnknownFourcc(t *testing.T) {
	p := &Paragraph{
		Header: &ParaHeader{},
		Controls: []*Control{
			{ID: fourcc("zzzz"), Body: &OpaqueControl{HeaderBody: []byte{1, 2, 3, 4}}},
		},
	}
	sec := &Section{Paragraphs: []*Paragraph{p}}
	encoded := sec.Encode()
	decoded, err := Decode(encoded, false)
	require.NoError(t, err)

	got := decoded.Paragraphs[0].Controls[0]
	assert.Equal(t, fourcc("zzzz"), got.ID)
	opaque := got.Body.(*OpaqueControl)
	assert.Equal(t, []byte{1, 2, 3, 4}, opaque.HeaderBody)
}
