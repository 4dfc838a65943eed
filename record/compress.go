package record

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/flate"

	"github.com/hwp5/hwp/herr"
)

// zlibHeader1/zlibHeader2 are the two bytes a zlib-wrapped DEFLATE stream
// starts with under the compression level HWP writers use (0x78 CMF, with
// an FLG byte whose checksum bits make the 16-bit header a multiple of
// 31). spec.md §3.5 only requires tolerating this wrapper on read, never
// emitting it on write.
const zlibHeader1 = 0x78

// Decompress inflates a raw (or optionally zlib-wrapped) DEFLATE stream,
// per spec.md §3.1/§6.3: HWP's DocInfo and BodyText streams hold a raw
// DEFLATE bitstream with no trailing adler32, but some producers prepend
// a 2-byte zlib header that must be tolerated and skipped.
func Decompress(data []byte) ([]byte, error) {
	body := data
	if len(body) >= 2 && body[0] == zlibHeader1 && (uint16(body[0])<<8|uint16(body[1]))%31 == 0 {
		body = body[2:]
	}
	fr := flate.NewReader(bytes.NewReader(body))
	defer fr.Close()
	out, err := io.ReadAll(fr)
	if err != nil {
		return nil, herr.Wrap(herr.Decompress, "inflating record stream", err)
	}
	return out, nil
}

// Compress deflates data into a raw DEFLATE bitstream with no zlib
// header and no trailing checksum, matching what HWP writers emit
// (spec.md §3.5).
func Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	fw, err := flate.NewWriter(&buf, flate.DefaultCompression)
	if err != nil {
		return nil, herr.Wrap(herr.Decompress, "initializing deflate writer", err)
	}
	if _, err := fw.Write(data); err != nil {
		return nil, herr.Wrap(herr.Decompress, "writing deflate stream", err)
	}
	if err := fw.Close(); err != nil {
		return nil, herr.Wrap(herr.Decompress, "closing deflate stream", err)
	}
	return buf.Bytes(), nil
}
