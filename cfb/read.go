// Package cfb implements the subset of the Microsoft Compound File Binary
// container format that HWP 5.0 uses: a FAT-style hierarchical virtual
// filesystem of named streams (spec.md §4.2).
//
// Reading is delegated to github.com/richardlehane/mscfb, the real Go CFB
// reader already present in this corpus; cfb.Read just walks its directory
// iterator into the path→bytes map spec.md §4.2 requires. Writing has no
// ready-made library (mscfb is read-only), so cfb.Write is hand-rolled,
// generalizing the teacher's ole2.Writer.
package cfb

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/richardlehane/mscfb"

	"github.com/hwp5/hwp/herr"
)

// Container is the in-memory result of parsing a CFB file: a flat mapping
// from "/"-delimited stream path to its raw payload.
type Container struct {
	Streams map[string][]byte
	// order preserves the directory traversal order, useful for callers
	// (e.g. the inspector) that want to print streams deterministically.
	order []string
}

// Order returns stream paths in the order they were encountered on read,
// or insertion order if built by NewContainer.
func (c *Container) Order() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// NewContainer returns an empty, writable Container.
func NewContainer() *Container {
	return &Container{Streams: make(map[string][]byte)}
}

// Put adds or replaces a stream.
func (c *Container) Put(path string, data []byte) {
	if _, exists := c.Streams[path]; !exists {
		c.order = append(c.order, path)
	}
	c.Streams[path] = data
}

// Stream returns a named stream's payload, or MissingStream.
func (c *Container) Stream(path string) ([]byte, error) {
	data, ok := c.Streams[path]
	if !ok {
		return nil, herr.New(herr.MissingStream, path)
	}
	return data, nil
}

// Read parses a CFB container from r, returning every stream it contains.
// Storage (directory) entries with the well-known names storageLooking
// lists are not represented — only leaf streams, matching spec.md §4.2's
// read contract.
func Read(r io.ReaderAt) (*Container, error) {
	rdr, err := mscfb.New(r)
	if err != nil {
		return nil, herr.Wrap(herr.BadSignature, "not a compound file binary container", err)
	}

	c := NewContainer()
	buf := make([]byte, 4096)
	for entry, err := rdr.Next(); err == nil; entry, err = rdr.Next() {
		if entry.Size == 0 {
			// Storages (and zero-length streams) carry no payload.
			if !isStorage(entry) {
				c.Put(entryPath(entry), nil)
			}
			continue
		}
		var data bytes.Buffer
		for {
			n, rerr := rdr.Read(buf)
			if n > 0 {
				data.Write(buf[:n])
			}
			if rerr == io.EOF {
				break
			}
			if rerr != nil {
				return nil, herr.Wrap(herr.CorruptCfb, fmt.Sprintf("reading stream %s", entryPath(entry)), rerr)
			}
		}
		c.Put(entryPath(entry), data.Bytes())
	}
	return c, nil
}

// entryPath reconstructs the "/"-delimited path spec.md §4.2 addresses
// streams by, from an mscfb.File's storage path and leaf name.
func entryPath(entry *mscfb.File) string {
	parts := append(append([]string(nil), entry.Path...), entry.Name)
	return strings.Join(parts, "/")
}

// isStorage reports whether entry represents a directory (storage) rather
// than a leaf stream. mscfb surfaces storages as zero-size entries with no
// stream content of their own.
func isStorage(entry *mscfb.File) bool {
	return entry.Size == 0 && len(entry.Name) > 0 && storageLooking(entry)
}

// storageLooking is a conservative heuristic: the well-known HWP
// storages (BodyText, ViewText, BinData, DocOptions, Scripts) never
// appear as zero-length leaf streams in a valid document, so only a
// zero-size entry with one of these names is treated as a storage and
// skipped. Any other zero-size entry is kept as an empty stream.
func storageLooking(entry *mscfb.File) bool {
	switch entry.Name {
	case "BodyText", "ViewText", "BinData", "DocOptions", "Scripts", "Root Entry":
		return true
	default:
		return false
	}
}
