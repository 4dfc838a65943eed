// Package bodytext codecs the record bodies found in /BodyText/SectionN
// and /ViewText/SectionN streams (spec.md §4.4.3): paragraphs, their
// inline runs, and the controls (tables, pictures, hyperlinks, headers,
// footers, section definitions) nested beneath a paragraph header.
package bodytext

// Tag IDs for BodyText-stream records (spec.md §4.4.3).
const (
	TagParaHeader     = 0x050
	TagParaText       = 0x051
	TagParaCharShape  = 0x052
	TagParaLineSeg    = 0x053
	TagParaRangeTag   = 0x054
	TagCtrlHeader     = 0x055
	TagListHeader     = 0x056
	TagPageDef        = 0x057
	TagFootnoteShape  = 0x058
	TagPageBorderFill = 0x059
	TagShapeComponent = 0x05B
	TagTable          = 0x05F
)
