package hwp

import (
	"fmt"
	"io"

	"github.com/hwp5/hwp/cfb"
	"github.com/hwp5/hwp/document"
	"github.com/hwp5/hwp/herr"
	"github.com/hwp5/hwp/record"
	"github.com/hwp5/hwp/schema/bodytext"
	"github.com/hwp5/hwp/schema/docinfo"
	"github.com/hwp5/hwp/schema/filehdr"
)

// Read implements spec.md §4.6's Reader.from_bytes contract: parse the
// CFB container, decode FileHeader, decompress and decode DocInfo, then
// fold every BodyText/SectionN stream into a Section.
func Read(r io.ReaderAt) (*document.Document, error) {
	container, err := cfb.Read(r)
	if err != nil {
		return nil, err
	}

	headerData, err := container.Stream("FileHeader")
	if err != nil {
		return nil, herr.Wrap(herr.MissingStream, "FileHeader", err)
	}
	header, err := filehdr.Decode(headerData)
	if err != nil {
		return nil, err
	}

	docInfoStream, err := container.Stream("DocInfo")
	if err != nil {
		return nil, herr.Wrap(herr.MissingStream, "DocInfo", err)
	}
	docInfoData, err := maybeDecompress(docInfoStream, header.Flags.Compressed)
	if err != nil {
		return nil, err
	}
	info, err := docinfo.Decode(docInfoData)
	if err != nil {
		return nil, err
	}

	// spec.md §4.4.3's PARA_HEADER change-tracking field is only present
	// when the document's history/change-tracking flag is set; the
	// History flag is the closest FileHeader signal for that.
	trackChanges := header.Flags.History

	var sections []*bodytext.Section
	for i := 0; ; i++ {
		path := fmt.Sprintf("BodyText/Section%d", i)
		raw, err := container.Stream(path)
		if err != nil {
			break
		}
		data, err := maybeDecompress(raw, header.Flags.Compressed)
		if err != nil {
			return nil, err
		}
		section, err := bodytext.Decode(data, trackChanges)
		if err != nil {
			return nil, err
		}
		sections = append(sections, section)
	}

	pool := document.NewBinDataPool(container)
	pool.SetTable(info.BinData)

	return &document.Document{
		Header:   header,
		Info:     info,
		Sections: sections,
		BinData:  pool,
	}, nil
}

func maybeDecompress(data []byte, compressed bool) ([]byte, error) {
	if !compressed {
		return data, nil
	}
	return record.Decompress(data)
}
