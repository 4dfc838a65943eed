package bodytext

import "github.com/hwp5/hwp/bytecursor"

// Hyperlink is the `gsh ` control: a range-tag-addressed link target,
// pairing a PARA_RANGE_TAG span (spec.md §4.4.3) with the destination
// URL.
type Hyperlink struct {
	URL string
}

func decodeHyperlink(data []byte) (*Hyperlink, error) {
	r := bytecursor.NewReader(data)
	url, err := r.UTF16String()
	if err != nil {
		return nil, err
	}
	return &Hyperlink{URL: url}, nil
}

func encodeHyperlink(h *Hyperlink) []byte {
	w := bytecursor.NewWriter()
	w.UTF16String(h.URL)
	return w.Bytes()
}
