// Package paratext interprets the control codes embedded in a
// paragraph's UTF-16 text (spec.md §3.4). bodytext.Paragraph.Text
// already holds the raw decoded code units verbatim, control codes
// included; this package gives callers a way to build or read that
// text as a sequence of runs instead of hand-counting code units.
package paratext

import (
	"unicode/utf16"

	"github.com/hwp5/hwp/herr"
)

// extendedControls carries a control-type FOURCC as the first two of
// its seven parameter code units (spec.md §3.4/§6.2).
var extendedControls = map[uint16]bool{
	1: true, 2: true, 3: true,
	11: true,
	15: true, 16: true, 17: true,
	19: true,
	23: true,
}

// shortControls are control codes with no inline parameter record:
// they consume exactly one code unit, the code itself.
var shortControls = map[uint16]bool{
	9:  true, // tab
	10: true, // line break
	13: true, // paragraph break
}

// Run is one logical unit of paragraph text: either a chunk of
// ordinary characters, a short control code, or an extended control
// with its inline FOURCC and parameters.
type Run struct {
	// Text holds ordinary characters when Code == 0. A Run is either
	// text (Code == 0, Text non-empty) or a control code.
	Text string

	Code uint16 // control code (1-31); 0 means this Run is plain text

	// Params holds the 7 inline code units following Code, for any
	// control that isn't a 1-unit short control. For an extended
	// control the first two units are its FOURCC (see FOURCC()).
	Params [7]uint16
}

// IsControl reports whether r is a control-code run rather than plain text.
func (r Run) IsControl() bool { return r.Code != 0 }

// IsExtended reports whether r's control code carries an inline FOURCC.
func (r Run) IsExtended() bool { return extendedControls[r.Code] }

// FOURCC returns the control-type FOURCC packed into Params[0:2] for an
// extended control. Only meaningful when IsExtended() is true.
func (r Run) FOURCC() uint32 { return uint32(r.Params[0]) | uint32(r.Params[1])<<16 }

// NewExtended builds an extended control run (codes 1-3, 11, 15-17, 19,
// 23) carrying fourcc and up to 5 trailing parameter units.
func NewExtended(code uint16, fourcc uint32, params ...uint16) Run {
	r := Run{Code: code}
	r.Params[0] = uint16(fourcc)
	r.Params[1] = uint16(fourcc >> 16)
	copy(r.Params[2:], params)
	return r
}

// unitCount returns how many UTF-16 code units r occupies once encoded.
func (r Run) unitCount() int {
	switch {
	case !r.IsControl():
		return len(utf16.Encode([]rune(r.Text)))
	case r.IsExtended():
		return 8
	case shortControls[r.Code]:
		return 1
	default:
		// Unknown non-extended control: treated as carrying the same
		// 8-unit inline record as the documented majority (spec.md §3.4,
		// "most control codes consume 8 code units total").
		return 8
	}
}

// Encode turns a run sequence into the flat UTF-16 code-unit string
// stored in a PARA_TEXT record. Its length in UTF-16 units is exactly
// the paragraph's text_len (spec.md §3.5, Testable Property #6).
func Encode(runs []Run) string {
	var units []uint16
	for _, r := range runs {
		if !r.IsControl() {
			units = append(units, utf16.Encode([]rune(r.Text))...)
			continue
		}
		units = append(units, r.Code)
		if !shortControls[r.Code] {
			units = append(units, r.Params[:7]...)
		}
	}
	return string(utf16.Decode(units))
}

// Parse splits PARA_TEXT-decoded text back into runs, recognizing
// control codes and consuming their inline records.
func Parse(text string) ([]Run, error) {
	units := utf16.Encode([]rune(text))
	var runs []Run
	var plain []uint16

	flushPlain := func() {
		if len(plain) > 0 {
			runs = append(runs, Run{Text: string(utf16.Decode(plain))})
			plain = nil
		}
	}

	for i := 0; i < len(units); {
		u := units[i]
		if u >= 32 {
			plain = append(plain, u)
			i++
			continue
		}
		flushPlain()

		switch {
		case shortControls[u]:
			runs = append(runs, Run{Code: u})
			i++
		default:
			if i+8 > len(units) {
				return nil, herr.New(herr.CorruptRecord, "paratext: truncated control record")
			}
			run := Run{Code: u}
			copy(run.Params[:], units[i+1:i+8])
			runs = append(runs, run)
			i += 8
		}
	}
	flushPlain()
	return runs, nil
}

// ExpandedLen reports the UTF-16 code-unit length text occupies once
// control codes are expanded to their inline-record width — the value
// a paragraph's text_len must equal (spec.md §3.5, Testable Property #6).
func ExpandedLen(runs []Run) uint32 {
	var n int
	for _, r := range runs {
		n += r.unitCount()
	}
	return uint32(n)
}
