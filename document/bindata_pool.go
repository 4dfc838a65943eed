package document

import (
	"fmt"

	"github.com/hwp5/hwp/herr"
	"github.com/hwp5/hwp/schema/docinfo"
)

// Source is the minimal CFB accessor BinDataPool needs; *cfb.Container
// satisfies it. Kept as an interface here so document never imports cfb
// (the document package only knows about streams by name).
type Source interface {
	Stream(path string) ([]byte, error)
}

// BinDataPool lazily loads embedded blobs from their backing CFB
// streams, keyed by the 1-based BIN_DATA ID, adapted from the teacher's
// ObjectPool (objects/objects.go): load-on-demand with a cache, except
// keyed by a stable table index instead of a byte offset, since HWP
// addresses blobs by ID rather than by stream position.
type BinDataPool struct {
	source Source
	table  []*docinfo.BinData
	cache  map[int][]byte
}

// NewBinDataPool builds a pool backed by source (nil for a Document
// under construction with no CFB origin yet).
func NewBinDataPool(source Source) *BinDataPool {
	return &BinDataPool{source: source, cache: make(map[int][]byte)}
}

// SetTable installs the DocInfo BIN_DATA table this pool resolves
// against. Called once by the Reader after DocInfo decodes.
func (p *BinDataPool) SetTable(table []*docinfo.BinData) {
	p.table = table
}

// Put seeds or overwrites the cached payload for a 1-based ID, for
// callers building a Document directly rather than reading one.
func (p *BinDataPool) Put(oneBasedID int, data []byte) {
	p.cache[oneBasedID] = data
}

// Load returns the blob for a 1-based BIN_DATA ID, reading it from the
// backing CFB stream on first access and caching it thereafter.
// BinDataLink entries have no stream payload; Load reports
// MissingStream for those (callers should read entry.Path themselves).
func (p *BinDataPool) Load(oneBasedID int) ([]byte, error) {
	if data, ok := p.cache[oneBasedID]; ok {
		return data, nil
	}
	if oneBasedID < 1 || oneBasedID > len(p.table) {
		return nil, herr.New(herr.MissingStream, fmt.Sprintf("bin-data id %d out of range", oneBasedID))
	}
	entry := p.table[oneBasedID-1]
	if entry.Type == docinfo.BinDataLink {
		return nil, herr.New(herr.MissingStream, fmt.Sprintf("bin-data id %d is a link (path %q), not an embedded stream", oneBasedID, entry.Path))
	}
	if p.source == nil {
		return nil, herr.New(herr.MissingStream, fmt.Sprintf("bin-data id %d: pool has no backing source", oneBasedID))
	}
	path := fmt.Sprintf("BinData/BIN%04X.%s", oneBasedID, entry.Format)
	data, err := p.source.Stream(path)
	if err != nil {
		return nil, herr.Wrap(herr.MissingStream, path, err)
	}
	p.cache[oneBasedID] = data
	return data, nil
}

// Cached reports the 1-based IDs currently resolved in the pool,
// regardless of whether they came from SetTable+Load or Put. The
// Writer uses this to know which /BinData/BIN####.ext streams to emit.
func (p *BinDataPool) Cached() map[int][]byte {
	out := make(map[int][]byte, len(p.cache))
	for id, data := range p.cache {
		out[id] = data
	}
	return out
}
