package cfb

import (
	"bytes"

	"github.com/richardlehane/msoleps"

	"github.com/hwp5/hwp/herr"
)

// SummaryStreamName is the well-known OLE property-set stream spec.md
// §6.1 lists. It always begins with 0x05, which is not valid in a CFB
// directory name typed as UTF-16 text but is the documented convention
// for property-set storages.
const SummaryStreamName = "\x05HwpSummaryInformation"

// SummaryInfo is a best-effort decode of the SummaryInformation property
// set. cfb.Read and cfb.Write carry this stream as an opaque blob like
// any other; the hwp.Read/hwp.Write facades do not keep it, so it is not
// present in their output. This type exists only so cmd/hwpinspect can
// print something readable; a decode failure here affects nothing else.
type SummaryInfo struct {
	Title      string
	Author     string
	LastAuthor string
	Comments   string
	Properties map[string]string
}

// DecodeSummaryInfo parses a raw SummaryInformation stream. Callers that
// only need passthrough should ignore this entirely and keep using
// Container.Stream(SummaryStreamName) directly.
func DecodeSummaryInfo(data []byte) (*SummaryInfo, error) {
	doc, err := msoleps.New(bytes.NewReader(data))
	if err != nil {
		return nil, herr.Wrap(herr.CorruptCfb, "summary info", err)
	}

	info := &SummaryInfo{Properties: make(map[string]string)}
	for _, p := range doc.Property {
		name := p.Name()
		val := p.String()
		info.Properties[name] = val
		switch name {
		case "Title":
			info.Title = val
		case "Author":
			info.Author = val
		case "LastSavedBy":
			info.LastAuthor = val
		case "Comments":
			info.Comments = val
		}
	}
	return info, nil
}
