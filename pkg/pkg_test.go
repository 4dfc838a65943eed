package hwp

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hwp5/hwp/document"
	"github.com/hwp5/hwp/schema/bodytext"
	"github.com/hwp5/hwp/schema/docinfo"
)

func sectionDefineParagraph() *bodytext.Paragraph {
	return &bodytext.Paragraph{
		Header: &bodytext.ParaHeader{},
		Controls: []*bodytext.Control{
			{ID: bodytext.FOURCCSectionDefine, Body: &bodytext.SectionDefine{
				PageDef:        &bodytext.PageDef{Width: 59528, Height: 84188},
				FootnoteShape:  &bodytext.FootnoteShape{NumberFormat: 1},
				PageBorderFill: &bodytext.PageBorderFillRec{},
			}},
			{ID: bodytext.FOURCCColumnDefine, Body: &bodytext.ColumnDefine{ColumnCount: 1, SameWidth: true}},
		},
	}
}

// minimalDoc builds an S1-style document: one section, a section-define
// paragraph followed by "Hello\r\n".
func minimalDoc() *document.Document {
	doc := document.New()
	doc.Info.Properties = &docinfo.DocumentProperties{SectionCount: 1}
	doc.Info.Faces[docinfo.LangKorean] = []*docinfo.FaceName{{Name: "함초롬바탕"}}
	doc.Info.CharShapes = []*docinfo.CharShape{{}}
	doc.Info.ParaShapes = []*docinfo.ParaShape{{}}
	doc.Sections = []*bodytext.Section{{Paragraphs: []*bodytext.Paragraph{
		sectionDefineParagraph(),
		{Header: &bodytext.ParaHeader{}, Text: "Hello\r\n"},
	}}}
	return doc
}

func TestWriteReadRoundTripMinimal(t *testing.T) {
	doc := minimalDoc()
	out, err := Write(doc)
	require.NoError(t, err)

	got, err := Read(bytes.NewReader(out))
	require.NoError(t, err)

	require.Len(t, got.Sections, 1)
	require.Len(t, got.Sections[0].Paragraphs, 2)
	assert.Equal(t, "Hello\r\n", got.Sections[0].Paragraphs[1].Text)
	assert.True(t, got.Sections[0].Paragraphs[1].Header.LastInList())
	assert.False(t, got.Header.Flags.Compressed)
	assert.Equal(t, "함초롬바탕", got.Face(int(docinfo.LangKorean), 0).Name)
}

func TestWriteReadIdempotentThroughWriter(t *testing.T) {
	doc := minimalDoc()
	out1, err := Write(doc)
	require.NoError(t, err)

	read1, err := Read(bytes.NewReader(out1))
	require.NoError(t, err)

	out2, err := Write(read1)
	require.NoError(t, err)

	read2, err := Read(bytes.NewReader(out2))
	require.NoError(t, err)

	assert.Equal(t, read1.Sections[0].Paragraphs[1].Text, read2.Sections[0].Paragraphs[1].Text)
	assert.Equal(t, len(read1.Sections), len(read2.Sections))
}

func TestWriteHyperlinkAndTableSurviveRoundTrip(t *testing.T) {
	doc := minimalDoc()
	cellParagraph := func(text string) *bodytext.ListHeader {
		return &bodytext.ListHeader{Paragraphs: []*bodytext.Paragraph{{Header: &bodytext.ParaHeader{}, Text: text}}}
	}
	table := &bodytext.Table{
		Rows: 2, Cols: 2,
		Cells: []bodytext.Cell{
			{Row: 0, Col: 0, RowSpan: 1, ColSpan: 1, Content: cellParagraph("A")},
			{Row: 0, Col: 1, RowSpan: 1, ColSpan: 1, Content: cellParagraph("B")},
			{Row: 1, Col: 0, RowSpan: 1, ColSpan: 1, Content: cellParagraph("C")},
			{Row: 1, Col: 1, RowSpan: 1, ColSpan: 1, Content: cellParagraph("D")},
		},
	}
	doc.Sections[0].Paragraphs = append(doc.Sections[0].Paragraphs, &bodytext.Paragraph{
		Header: &bodytext.ParaHeader{},
		Text:   "Visit site",
		RangeTags: []bodytext.RangeTag{
			{Start: 0, End: 10},
		},
		Controls: []*bodytext.Control{
			{ID: bodytext.FOURCCHyperlink, Body: &bodytext.Hyperlink{URL: "https://example.com"}},
			{ID: bodytext.FOURCCTable, Body: table},
		},
	})

	out, err := Write(doc)
	require.NoError(t, err)
	got, err := Read(bytes.NewReader(out))
	require.NoError(t, err)

	last := got.Sections[0].Paragraphs[len(got.Sections[0].Paragraphs)-1]
	require.Len(t, last.Controls, 2)
	link := last.Controls[0].Body.(*bodytext.Hyperlink)
	assert.Equal(t, "https://example.com", link.URL)

	tbl := last.Controls[1].Body.(*bodytext.Table)
	var texts []string
	for _, cell := range tbl.Cells {
		texts = append(texts, cell.Content.Paragraphs[0].Text)
	}
	assert.Equal(t, []string{"A", "B", "C", "D"}, texts)
}

func TestWriteRejectsDanglingCharShapeID(t *testing.T) {
	doc := minimalDoc()
	doc.Sections[0].Paragraphs[1].CharShapeRuns = []bodytext.CharShapeRun{
		{Position: 0, CharShapeID: 42},
	}
	_, err := Write(doc)
	require.Error(t, err)
}
