package annotation

import "unicode/utf16"

// UTF16ToByte converts an LSP column (UTF-16 code units) into a byte offset
// within line. It reports false when the column is past the end of the line
// or falls between the two code units of a surrogate pair.
func UTF16ToByte(line string, col int) (int, bool) {
	if col < 0 {
		return 0, false
	}
	units := 0
	for i, r := range line {
		if units == col {
			return i, true
		}
		if units > col {
			// col landed inside a surrogate pair
			return 0, false
		}
		units += len(utf16.Encode([]rune{r}))
	}
	if units == col {
		return len(line), true
	}
	return 0, false
}

// ByteToUTF16 converts a byte offset within line into an LSP column.
// Offsets past the end of the line clamp to the line's UTF-16 length; an
// offset inside a multi-byte rune maps to that rune's column.
func ByteToUTF16(line string, offset int) int {
	if offset < 0 {
		return 0
	}
	units := 0
	for i, r := range line {
		if i >= offset {
			return units
		}
		units += len(utf16.Encode([]rune{r}))
	}
	return units
}
