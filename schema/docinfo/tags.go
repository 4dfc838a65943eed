// Package docinfo codecs the record bodies that make up the /DocInfo
// stream (spec.md §4.4.2): document-level properties, the table-size
// map, and the shared shape/font/border/style tables that paragraphs
// reference by ID.
package docinfo

// Tag IDs for records found at level 0 of the DocInfo record stream.
const (
	TagDocumentProperties = 0x010
	TagIDMappings         = 0x011
	TagBinData            = 0x012
	TagFaceName           = 0x013
	TagBorderFill         = 0x014
	TagCharShape          = 0x015
	TagTabDef             = 0x016
	TagNumbering          = 0x017
	TagBullet             = 0x018
	TagParaShape          = 0x019
	TagStyle              = 0x01A
)
