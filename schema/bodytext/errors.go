package bodytext

import "github.com/hwp5/hwp/herr"

var errShortControlHeader = herr.New(herr.CorruptRecord, "CTRL_HEADER body shorter than its 4-byte FOURCC")
