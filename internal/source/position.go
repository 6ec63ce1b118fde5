package source

import "strings"

// LineColumn converts an absolute byte offset into a 0-based (line, column)
// pair. Offsets outside the text are clamped to its bounds.
func LineColumn(src string, offset int) (line, column int) {
	if offset < 0 {
		offset = 0
	}
	if offset > len(src) {
		offset = len(src)
	}

	before := src[:offset]
	line = strings.Count(before, "\n")
	last := strings.LastIndexByte(before, '\n')
	if last < 0 {
		return line, offset
	}
	return line, offset - last - 1
}
