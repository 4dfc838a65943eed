package docinfo

import "github.com/hwp5/hwp/bytecursor"

// BinDataType is BIN_DATA's low flag bits: how the binary payload is
// reached from this record.
type BinDataType uint8

const (
	BinDataLink      BinDataType = 0 // external file, addressed by Path
	BinDataEmbedding BinDataType = 1 // stored in /BinData/BIN####.ext
	BinDataStorage   BinDataType = 2 // stored in an OLE storage sub-stream
)

// BinData is BIN_DATA (0x012): a reference to an embedded or linked
// binary blob. Embedded/storage entries are addressed by their 1-based
// position in this table, matching the /BinData/BIN####.ext naming in
// spec.md §6.1.
type BinData struct {
	Type       BinDataType
	Compressed bool

	Path   string // set when Type == BinDataLink
	Format string // extension (e.g. "png"), set when Type != BinDataLink
}

func decodeBinDataFlags(flags uint16) (BinDataType, bool) {
	return BinDataType(flags & 0x0F), flags&0x10 != 0
}

func (b BinData) encodeFlags() uint16 {
	v := uint16(b.Type) & 0x0F
	if b.Compressed {
		v |= 0x10
	}
	return v
}

func DecodeBinData(data []byte) (*BinData, error) {
	r := bytecursor.NewReader(data)
	flags, err := r.U16()
	if err != nil {
		return nil, err
	}
	b := &BinData{}
	b.Type, b.Compressed = decodeBinDataFlags(flags)
	if b.Type == BinDataLink {
		if b.Path, err = r.UTF16String(); err != nil {
			return nil, err
		}
	} else {
		if b.Format, err = r.UTF16String(); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (b *BinData) Encode() []byte {
	w := bytecursor.NewWriter()
	w.U16(b.encodeFlags())
	if b.Type == BinDataLink {
		w.UTF16String(b.Path)
	} else {
		w.UTF16String(b.Format)
	}
	return w.Bytes()
}
