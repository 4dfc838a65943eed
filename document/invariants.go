package document

import (
	"fmt"

	"github.com/hwp5/hwp/herr"
	"github.com/hwp5/hwp/schema/bodytext"
)

// CheckInvariants walks every paragraph in doc, including those nested
// inside table cells and header/footer controls, and reports
// InvariantViolation for the first dangling reference it finds
// (spec.md §3.5/§8 Testable Property 7): a char_shape_id, para_shape_id,
// or bin-data id with no matching DocInfo table entry.
func CheckInvariants(doc *Document) error {
	paraShapes := 0
	charShapes := 0
	binData := 0
	if doc.Info != nil {
		paraShapes = len(doc.Info.ParaShapes)
		charShapes = len(doc.Info.CharShapes)
		binData = len(doc.Info.BinData)
	}

	for _, section := range doc.Sections {
		for _, p := range section.Paragraphs {
			if err := checkParagraph(p, paraShapes, charShapes, binData); err != nil {
				return err
			}
		}
	}
	return nil
}

func checkParagraph(p *bodytext.Paragraph, paraShapes, charShapes, binData int) error {
	if p.Header == nil {
		return nil
	}
	if int(p.Header.ParaShapeID) >= paraShapes {
		return herr.New(herr.InvariantViolation,
			fmt.Sprintf("paragraph references para_shape_id %d, but DocInfo only has %d para shapes", p.Header.ParaShapeID, paraShapes))
	}
	for _, run := range p.CharShapeRuns {
		if int(run.CharShapeID) >= charShapes {
			return herr.New(herr.InvariantViolation,
				fmt.Sprintf("paragraph references char_shape_id %d, but DocInfo only has %d char shapes", run.CharShapeID, charShapes))
		}
	}
	for _, c := range p.Controls {
		if err := checkControl(c, paraShapes, charShapes, binData); err != nil {
			return err
		}
	}
	return nil
}

func checkControl(c *bodytext.Control, paraShapes, charShapes, binData int) error {
	switch body := c.Body.(type) {
	case *bodytext.Picture:
		if body.BinDataID != 0 && int(body.BinDataID) > binData {
			return herr.New(herr.InvariantViolation,
				fmt.Sprintf("picture references bin_data id %d, but DocInfo only has %d bin-data entries", body.BinDataID, binData))
		}
	case *bodytext.Header:
		return checkListHeader(body.ListHeader, paraShapes, charShapes, binData)
	case *bodytext.Footer:
		return checkListHeader(body.ListHeader, paraShapes, charShapes, binData)
	case *bodytext.Table:
		for _, cell := range body.Cells {
			if err := checkListHeader(cell.Content, paraShapes, charShapes, binData); err != nil {
				return err
			}
		}
	}
	return nil
}

func checkListHeader(lh *bodytext.ListHeader, paraShapes, charShapes, binData int) error {
	if lh == nil {
		return nil
	}
	for _, p := range lh.Paragraphs {
		if err := checkParagraph(p, paraShapes, charShapes, binData); err != nil {
			return err
		}
	}
	return nil
}
