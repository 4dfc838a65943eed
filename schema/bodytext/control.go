package bodytext

import (
	"github.com/hwp5/hwp/bytecursor"
	"github.com/hwp5/hwp/record"
)

// FOURCC identifies a control's type, packed little-endian as a u32 over
// its 4 ASCII bytes (spec.md §4.4.4/§6.2).
type FOURCC uint32

func fourcc(s string) FOURCC {
	b := []byte(s)
	return FOURCC(uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24)
}

var (
	FOURCCSectionDefine FOURCC = fourcc("secd")
	FOURCCColumnDefine  FOURCC = fourcc("cold")
	FOURCCHeader        FOURCC = fourcc("head")
	FOURCCFooter        FOURCC = fourcc("foot")
	FOURCCPicture       FOURCC = fourcc("$pic")
	FOURCCHyperlink     FOURCC = fourcc("gsh ")
	FOURCCTable         FOURCC = fourcc("tbl ")
)

// Control is one CTRL_HEADER (0x055) and the subtree of records nested
// beneath it, dispatched by FOURCC into a closed set of known bodies,
// falling back to OpaqueControl for anything else (spec.md §9's open
// question on unrecognized shape bodies).
type Control struct {
	ID   FOURCC
	Body any // one of *SectionDefine, *ColumnDefine, *Header, *Footer, *Picture, *Hyperlink, *Table, *OpaqueControl
}

// OpaqueControl preserves an unrecognized control's CTRL_HEADER body and
// entire child subtree verbatim, so Reader -> Writer never drops content
// the schema layer doesn't understand.
type OpaqueControl struct {
	HeaderBody []byte
	Children   []*record.Node
}

// decodeControl turns a CTRL_HEADER node (and its already-parsed
// children) into a Control. node.Raw.Data's first 4 bytes are the
// FOURCC; the rest is the control's type-specific header body.
func decodeControl(node *record.Node) (*Control, error) {
	if len(node.Raw.Data) < 4 {
		return nil, errShortControlHeader
	}
	id := FOURCC(uint32(node.Raw.Data[0]) | uint32(node.Raw.Data[1])<<8 |
		uint32(node.Raw.Data[2])<<16 | uint32(node.Raw.Data[3])<<24)
	headerBody := node.Raw.Data[4:]

	c := &Control{ID: id}
	var err error
	switch id {
	case FOURCCSectionDefine:
		c.Body, err = decodeSectionDefine(headerBody, node.Children)
	case FOURCCColumnDefine:
		c.Body, err = decodeColumnDefine(headerBody)
	case FOURCCHeader:
		var applyTo ApplyPage
		var lh *ListHeader
		applyTo, lh, err = decodeHeaderFooterCommon(headerBody, node.Children)
		c.Body = &Header{ApplyTo: applyTo, ListHeader: lh}
	case FOURCCFooter:
		var applyTo ApplyPage
		var lh *ListHeader
		applyTo, lh, err = decodeHeaderFooterCommon(headerBody, node.Children)
		c.Body = &Footer{ApplyTo: applyTo, ListHeader: lh}
	case FOURCCPicture:
		c.Body, err = decodePicture(headerBody, node.Children)
	case FOURCCHyperlink:
		c.Body, err = decodeHyperlink(headerBody)
	case FOURCCTable:
		c.Body, err = decodeTable(headerBody, node.Children)
	default:
		c.Body = &OpaqueControl{HeaderBody: headerBody, Children: node.Children}
	}
	return c, err
}

// encodeControl is decodeControl's inverse: it returns the CTRL_HEADER
// raw record and the records.Node's children.
func encodeControl(c *Control) (record.Raw, []*record.Node) {
	w := bytecursor.NewWriter()
	w.U32(uint32(c.ID))

	var headerBody []byte
	var children []*record.Node

	switch body := c.Body.(type) {
	case *SectionDefine:
		headerBody, children = encodeSectionDefine(body)
	case *ColumnDefine:
		headerBody = encodeColumnDefine(body)
	case *Header:
		headerBody, children = encodeHeaderFooter(body.ApplyTo, body.ListHeader)
	case *Footer:
		headerBody, children = encodeHeaderFooter(body.ApplyTo, body.ListHeader)
	case *Picture:
		headerBody, children = encodePicture(body)
	case *Hyperlink:
		headerBody = encodeHyperlink(body)
	case *Table:
		headerBody, children = encodeTable(body)
	case *OpaqueControl:
		headerBody = body.HeaderBody
		children = body.Children
	}

	w.Raw(headerBody)
	return record.Raw{Tag: TagCtrlHeader, Level: 0, Data: w.Bytes()}, children
}
