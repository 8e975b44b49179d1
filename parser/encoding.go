package parser

import (
	"log/slog"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// detectConfidence is the minimum chardet confidence (percent) required to
// trust a detected encoding.
const detectConfidence = 70

// fallbackEncodings is the fixed chain tried after detection: single-byte
// Western encodings, in order. ISO 8859-1 accepts any byte, so the chain is
// total.
var fallbackEncodings = []encoding.Encoding{
	charmap.ISO8859_1,
	charmap.Windows1252,
}

// Decode turns raw bytes into text. Valid UTF-8 always wins; otherwise a
// statistical detection result is used when confident enough, then the fixed
// fallback chain. The label only serves diagnostics. Returns ok=false when
// nothing applies.
func Decode(raw []byte, label string, logger *slog.Logger) (string, bool) {
	if logger == nil {
		logger = slog.Default()
	}

	if utf8.Valid(raw) {
		return string(raw), true
	}

	if res, err := chardet.NewTextDetector().DetectBest(raw); err == nil && res.Confidence > detectConfidence {
		if enc, _ := charset.Lookup(res.Charset); enc != nil {
			if out, err := enc.NewDecoder().Bytes(raw); err == nil {
				return string(out), true
			}
		}
	}

	for _, enc := range fallbackEncodings {
		if out, err := enc.NewDecoder().Bytes(raw); err == nil {
			return string(out), true
		}
	}

	logger.Warn("could not decode with any supported encoding", "source", label)
	return "", false
}
