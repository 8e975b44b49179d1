package export

import "fmt"

// Mode selects the unit of output a run emits. The set is closed; each mode
// dispatches to one assembler.
type Mode int

const (
	// ModeRaw emits one record per page: image plus verbatim XML.
	ModeRaw Mode = iota
	// ModeText emits one record per page: image plus joined region text.
	ModeText
	// ModeRegion emits one record per region: cropped image plus region text.
	ModeRegion
	// ModeLine emits one record per line: cropped image plus line text.
	ModeLine
	// ModeWindow emits one record per sliding window of consecutive lines.
	ModeWindow
)

// String returns the mode's CLI name.
func (m Mode) String() string {
	switch m {
	case ModeRaw:
		return "raw"
	case ModeText:
		return "text"
	case ModeRegion:
		return "region"
	case ModeLine:
		return "line"
	case ModeWindow:
		return "window"
	default:
		return "unknown"
	}
}

// ParseMode converts a CLI name into a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "raw", "raw_xml":
		return ModeRaw, nil
	case "text":
		return ModeText, nil
	case "region":
		return ModeRegion, nil
	case "line":
		return ModeLine, nil
	case "window":
		return ModeWindow, nil
	default:
		return 0, fmt.Errorf("unknown export mode %q", s)
	}
}
