package bodytext

import (
	"github.com/hwp5/hwp/bytecursor"
	"github.com/hwp5/hwp/record"
)

// ApplyPage selects which pages a header/footer control applies to.
type ApplyPage uint8

const (
	ApplyBothPages ApplyPage = iota
	ApplyEvenPages
	ApplyOddPages
)

// Header is the `head` control: running page-header content.
type Header struct {
	ApplyTo    ApplyPage
	ListHeader *ListHeader
}

// Footer is the `foot` control: running page-footer content. Same wire
// shape as Header; kept as a distinct type so callers don't confuse the
// two in the Document model.
type Footer struct {
	ApplyTo    ApplyPage
	ListHeader *ListHeader
}

func decodeHeaderFooterCommon(headerBody []byte, children []*record.Node) (ApplyPage, *ListHeader, error) {
	r := bytecursor.NewReader(headerBody)
	applyByte, err := r.U8()
	if err != nil {
		return 0, nil, err
	}
	var lh *ListHeader
	for _, child := range children {
		if child.Raw.Tag == TagListHeader {
			if lh, err = decodeListHeader(child, false); err != nil {
				return 0, nil, err
			}
			break
		}
	}
	return ApplyPage(applyByte), lh, nil
}

func encodeHeaderFooter(applyTo ApplyPage, lh *ListHeader) ([]byte, []*record.Node) {
	w := bytecursor.NewWriter()
	w.U8(uint8(applyTo))
	var children []*record.Node
	if lh != nil {
		children = append(children, encodeListHeader(lh))
	}
	return w.Bytes(), children
}
