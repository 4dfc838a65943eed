package hwp

import (
	"fmt"

	"github.com/hwp5/hwp/cfb"
	"github.com/hwp5/hwp/document"
	"github.com/hwp5/hwp/schema/docinfo"
	"github.com/hwp5/hwp/schema/filehdr"
)

// Write implements spec.md §4.6's Writer.to_bytes contract: re-check
// invariants, serialize DocInfo and every section, and build an
// uncompressed CFB container (the Writer never emits a compressed
// stream, per spec.md §4.6 step 3).
func Write(doc *document.Document) ([]byte, error) {
	if err := document.CheckInvariants(doc); err != nil {
		return nil, err
	}

	doc.Info.RebuildIDMappings()

	container := cfb.NewContainer()
	container.Put("FileHeader", filehdr.Encode(filehdr.Flags{}))
	container.Put("DocInfo", doc.Info.Encode())

	for i, section := range doc.Sections {
		container.Put(fmt.Sprintf("BodyText/Section%d", i), section.Encode())
	}

	container.Put("Scripts/DefaultJScript", []byte{0x00, 0x00})
	container.Put("Scripts/JScriptVersion", []byte{0x00, 0x00})

	for id, data := range doc.BinData.Cached() {
		entry := doc.BinDataByID(id)
		if entry == nil || entry.Type == docinfo.BinDataLink {
			continue
		}
		container.Put(fmt.Sprintf("BinData/BIN%04X.%s", id, entry.Format), data)
	}

	return cfb.Write(container)
}
