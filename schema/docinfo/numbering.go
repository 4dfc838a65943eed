package docinfo

import "github.com/hwp5/hwp/bytecursor"

// numberingLevels is the fixed number of outline levels HWP's NUMBERING
// and BULLET records carry one spec per.
const numberingLevels = 7

// NumberingLevel is one level's marker spec within a NUMBERING record.
type NumberingLevel struct {
	Format      string // e.g. "%1." — level format template
	StartNumber uint32
	CharShapeID int32 // -1 means "inherit surrounding run's shape"
	Distance    int32
}

// Numbering is NUMBERING (0x017): a 7-level list-marker specification
// for automatically numbered lists.
type Numbering struct {
	Levels [numberingLevels]NumberingLevel
}

func DecodeNumbering(data []byte) (*Numbering, error) {
	r := bytecursor.NewReader(data)
	n := &Numbering{}
	for i := range n.Levels {
		lvl := &n.Levels[i]
		var err error
		if lvl.Format, err = r.UTF16String(); err != nil {
			return nil, err
		}
		if lvl.StartNumber, err = r.U32(); err != nil {
			return nil, err
		}
		v, err := r.I32()
		if err != nil {
			return nil, err
		}
		lvl.CharShapeID = v
		if lvl.Distance, err = r.I32(); err != nil {
			return nil, err
		}
	}
	return n, nil
}

func (n *Numbering) Encode() []byte {
	w := bytecursor.NewWriter()
	for _, lvl := range n.Levels {
		w.UTF16String(lvl.Format)
		w.U32(lvl.StartNumber)
		w.I32(lvl.CharShapeID)
		w.I32(lvl.Distance)
	}
	return w.Bytes()
}

// BulletLevel is one level's marker spec within a BULLET record.
type BulletLevel struct {
	Char     rune
	UseImage bool
	Image    string // path, set when UseImage
}

// Bullet is BULLET (0x018): a 7-level list-marker specification for
// unordered (bulleted) lists.
type Bullet struct {
	Levels [numberingLevels]BulletLevel
}

func DecodeBullet(data []byte) (*Bullet, error) {
	r := bytecursor.NewReader(data)
	b := &Bullet{}
	for i := range b.Levels {
		lvl := &b.Levels[i]
		ch, err := r.U16()
		if err != nil {
			return nil, err
		}
		lvl.Char = rune(ch)
		useImage, err := r.U8()
		if err != nil {
			return nil, err
		}
		lvl.UseImage = useImage != 0
		if lvl.UseImage {
			if lvl.Image, err = r.UTF16String(); err != nil {
				return nil, err
			}
		}
	}
	return b, nil
}

func (b *Bullet) Encode() []byte {
	w := bytecursor.NewWriter()
	for _, lvl := range b.Levels {
		w.U16(uint16(lvl.Char))
		if lvl.UseImage {
			w.U8(1)
			w.UTF16String(lvl.Image)
		} else {
			w.U8(0)
		}
	}
	return w.Bytes()
}
