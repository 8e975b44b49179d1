package export

import "github.com/l0rn0r/pagexml-hf/model"

// SlidingWindows groups consecutive lines into overlapping windows of up to
// size lines each, advancing by size-overlap between windows. The trailing
// window is kept even when shorter than size. Lines must already be in
// reading order; size and overlap must satisfy size >= 1 and
// 0 <= overlap < size (validated at exporter construction).
func SlidingWindows(lines []model.Line, size, overlap int) [][]model.Line {
	if len(lines) == 0 {
		return nil
	}

	step := size - overlap
	var windows [][]model.Line

	for i := 0; i < len(lines); i += step {
		end := i + size
		if end > len(lines) {
			end = len(lines)
		}
		windows = append(windows, lines[i:end])

		// The window touching the end of the sequence is the last one.
		if i+size >= len(lines) {
			break
		}
	}
	return windows
}
