// Package bytecursor provides a stateful little-endian reader/writer over a
// byte buffer, generalizing the manual binary.LittleEndian extraction the
// teacher repo inlines in ole2/reader.go and writer/writer.go into one
// reusable cursor type.
package bytecursor

import (
	"encoding/binary"
	"unicode/utf16"

	"github.com/hwp5/hwp/herr"
)

// Reader is a bounds-checked, read-only cursor over a byte slice. It owns
// its position and borrows the underlying buffer; there is no interior
// mutability beyond that position.
type Reader struct {
	buf []byte
	pos int
}

// NewReader wraps buf for sequential little-endian reads starting at 0.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Position returns the current read offset.
func (r *Reader) Position() int { return r.pos }

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int { return len(r.buf) - r.pos }

// Seek moves the cursor to an absolute offset.
func (r *Reader) Seek(offset int) error {
	if offset < 0 || offset > len(r.buf) {
		return herr.Truncatedf(offset, len(r.buf))
	}
	r.pos = offset
	return nil
}

// Skip advances the cursor by n bytes.
func (r *Reader) Skip(n int) error {
	return r.Seek(r.pos + n)
}

func (r *Reader) need(n int) error {
	if r.Remaining() < n {
		return herr.Truncatedf(n, r.Remaining())
	}
	return nil
}

// Bytes reads n raw bytes.
func (r *Reader) Bytes(n int) ([]byte, error) {
	if err := r.need(n); err != nil {
		return nil, err
	}
	b := r.buf[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

// Array reads exactly n bytes into a freshly allocated, owned slice.
func (r *Reader) Array(n int) ([]byte, error) {
	b, err := r.Bytes(n)
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, b)
	return out, nil
}

// U8 reads an unsigned 8-bit integer.
func (r *Reader) U8() (uint8, error) {
	b, err := r.Bytes(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// U16 reads a little-endian unsigned 16-bit integer.
func (r *Reader) U16() (uint16, error) {
	b, err := r.Bytes(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// I16 reads a little-endian signed 16-bit integer.
func (r *Reader) I16() (int16, error) {
	v, err := r.U16()
	return int16(v), err
}

// U32 reads a little-endian unsigned 32-bit integer.
func (r *Reader) U32() (uint32, error) {
	b, err := r.Bytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// I32 reads a little-endian signed 32-bit integer.
func (r *Reader) I32() (int32, error) {
	v, err := r.U32()
	return int32(v), err
}

// U64 reads a little-endian unsigned 64-bit integer.
func (r *Reader) U64() (uint64, error) {
	b, err := r.Bytes(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// PeekU32 reads a little-endian u32 without advancing the cursor.
func (r *Reader) PeekU32() (uint32, error) {
	if err := r.need(4); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(r.buf[r.pos : r.pos+4]), nil
}

// UTF16String reads a u16 code-unit count followed by that many UTF-16LE
// code units, per spec.md §4.1's length-prefixed string contract.
func (r *Reader) UTF16String() (string, error) {
	count, err := r.U16()
	if err != nil {
		return "", err
	}
	if err := r.need(int(count) * 2); err != nil {
		return "", err
	}
	units := make([]uint16, count)
	for i := range units {
		units[i] = binary.LittleEndian.Uint16(r.buf[r.pos+i*2:])
	}
	r.pos += int(count) * 2
	return string(utf16.Decode(units)), nil
}

// Writer is a growable little-endian byte buffer. Writes never fail, per
// spec.md §4.1's contract for the write side of ByteCursor.
type Writer struct {
	buf []byte
}

// NewWriter returns an empty growable cursor.
func NewWriter() *Writer {
	return &Writer{}
}

// Bytes returns the accumulated buffer.
func (w *Writer) Bytes() []byte { return w.buf }

// Len returns the number of bytes written so far.
func (w *Writer) Len() int { return len(w.buf) }

// Raw appends b verbatim.
func (w *Writer) Raw(b []byte) { w.buf = append(w.buf, b...) }

// U8 appends an unsigned 8-bit integer.
func (w *Writer) U8(v uint8) { w.buf = append(w.buf, v) }

// U16 appends a little-endian unsigned 16-bit integer.
func (w *Writer) U16(v uint16) {
	w.buf = binary.LittleEndian.AppendUint16(w.buf, v)
}

// I16 appends a little-endian signed 16-bit integer.
func (w *Writer) I16(v int16) { w.U16(uint16(v)) }

// U32 appends a little-endian unsigned 32-bit integer.
func (w *Writer) U32(v uint32) {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, v)
}

// I32 appends a little-endian signed 32-bit integer.
func (w *Writer) I32(v int32) { w.U32(uint32(v)) }

// U64 appends a little-endian unsigned 64-bit integer.
func (w *Writer) U64(v uint64) {
	w.buf = binary.LittleEndian.AppendUint64(w.buf, v)
}

// UTF16String appends a u16 code-unit count followed by the UTF-16LE
// encoding of s, mirroring Reader.UTF16String.
func (w *Writer) UTF16String(s string) {
	units := utf16.Encode([]rune(s))
	w.U16(uint16(len(units)))
	for _, u := range units {
		w.U16(u)
	}
}

// Pad appends n zero bytes.
func (w *Writer) Pad(n int) {
	w.buf = append(w.buf, make([]byte, n)...)
}
