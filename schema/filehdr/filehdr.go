// Package filehdr codecs the fixed 256-byte FileHeader stream (spec.md
// §4.4.1): signature, version, flags, and a reserved tail. Unlike every
// other stream, FileHeader is never compressed and is never framed as
// records.
package filehdr

import (
	"bytes"

	"github.com/hwp5/hwp/bytecursor"
	"github.com/hwp5/hwp/herr"
)

const Size = 256

// signature is "HWP Document File" padded with NULs to 30 bytes, then
// the 0x1A/0x02 terminator pair, for 32 bytes total.
var signature = func() [32]byte {
	var sig [32]byte
	copy(sig[:], "HWP Document File")
	sig[30] = 0x1A
	sig[31] = 0x02
	return sig
}()

// ReservedByte3 is the fourth byte of the reserved dword at offset 40.
// The source format sets this to 0x04, documented only as "empirically
// required for target compatibility" (spec.md §9's open question); kept
// as a package-level var rather than a literal constant so a caller who
// has verified a target accepts 0x00 can override it.
var ReservedByte3 byte = 0x04

// Flags is FileHeader's bit 0-7 feature flags (spec.md §4.4.1).
type Flags struct {
	Compressed   bool
	Password     bool
	Distribution bool
	Script       bool
	DRM          bool
	XMLTemplate  bool
	History      bool
	Signed       bool
}

func (f Flags) encode() uint32 {
	var v uint32
	set := func(bit uint, on bool) {
		if on {
			v |= 1 << bit
		}
	}
	set(0, f.Compressed)
	set(1, f.Password)
	set(2, f.Distribution)
	set(3, f.Script)
	set(4, f.DRM)
	set(5, f.XMLTemplate)
	set(6, f.History)
	set(7, f.Signed)
	return v
}

func decodeFlags(v uint32) Flags {
	bit := func(n uint) bool { return v&(1<<n) != 0 }
	return Flags{
		Compressed:   bit(0),
		Password:     bit(1),
		Distribution: bit(2),
		Script:       bit(3),
		DRM:          bit(4),
		XMLTemplate:  bit(5),
		History:      bit(6),
		Signed:       bit(7),
	}
}

// Version is HWP's MM.mm.bb.rr version tuple.
type Version struct {
	Major, Minor, Build, Revision uint8
}

// Supported reports whether v is within the 5.0.x family this codec
// understands (spec.md §7's UnsupportedVersion / S2).
func (v Version) Supported() bool { return v.Major == 5 && v.Minor == 0 }

// Current is the version this package writes: 5.0.3.4.
var Current = Version{Major: 5, Minor: 0, Build: 3, Revision: 4}

// FileHeader is the fully decoded /FileHeader stream.
type FileHeader struct {
	Version Version
	Flags   Flags
}

// Decode parses the first Size bytes. A shorter buffer is rejected as
// Truncated; bytes past Size are ignored.
func Decode(data []byte) (*FileHeader, error) {
	if len(data) < Size {
		return nil, herr.Truncatedf(Size, len(data))
	}
	if !bytes.Equal(data[:32], signature[:]) {
		return nil, herr.New(herr.BadSignature, "FileHeader signature mismatch")
	}

	r := bytecursor.NewReader(data[32:])
	verBytes, err := r.Bytes(4)
	if err != nil {
		return nil, herr.Wrap(herr.Truncated, "reading version", err)
	}
	version := Version{Major: verBytes[0], Minor: verBytes[1], Build: verBytes[2], Revision: verBytes[3]}

	flagWord, err := r.U32()
	if err != nil {
		return nil, herr.Wrap(herr.Truncated, "reading flags", err)
	}

	if !version.Supported() {
		return nil, herr.New(herr.UnsupportedVersion, versionString(version))
	}

	return &FileHeader{Version: version, Flags: decodeFlags(flagWord)}, nil
}

// Encode emits a canonical 256-byte FileHeader: the given flags, the
// Current version, and ReservedByte3 in the reserved dword's fourth
// byte, with the remaining 212 bytes zeroed (spec.md §4.6 step 4).
func Encode(flags Flags) []byte {
	w := bytecursor.NewWriter()
	w.Raw(signature[:])
	w.U8(Current.Major)
	w.U8(Current.Minor)
	w.U8(Current.Build)
	w.U8(Current.Revision)
	w.U32(flags.encode())
	w.U8(0)
	w.U8(0)
	w.U8(0)
	w.U8(ReservedByte3)
	w.Pad(Size - w.Len())
	return w.Bytes()
}

func versionString(v Version) string {
	digits := func(n uint8) byte { return '0' + n%10 }
	return string([]byte{digits(v.Major), '.', digits(v.Minor), '.', digits(v.Build), '.', digits(v.Revision)})
}
