package annotation

import "strings"

// SectionAt reports the section enclosing line by scanning backward through
// contiguous comment lines until a header or the top of the block. An
// unrecognized "# ..." header yields no section, matching the parser's
// treatment of content under unknown headers.
func SectionAt(lines []string, line int) Section {
	if line < 0 || line >= len(lines) {
		return SectionNone
	}
	for i := line; i >= 0; i-- {
		if !IsCommentLine(lines[i]) {
			return SectionNone
		}
		text, _ := CommentText(lines[i])
		switch text {
		case HeaderResponses:
			return SectionResponses
		case HeaderExamples:
			return SectionExamples
		case HeaderMetadata:
			return SectionMetadata
		case HeaderPathParams:
			return SectionPathParams
		}
		if strings.HasPrefix(text, "# ") {
			return SectionNone
		}
	}
	return SectionNone
}

// InHandlerContext reports whether the given line belongs to a comment block
// followed by a handler marker within window lines. Blank and attribute lines
// between the block and the marker are tolerated.
func InHandlerContext(lines []string, line, window int) bool {
	if line < 0 || line >= len(lines) {
		return false
	}
	if window <= 0 {
		window = DefaultScanWindow
	}
	for i := line; i < len(lines) && i <= line+window; i++ {
		if IsHandlerMarker(lines[i]) {
			return true
		}
		t := strings.TrimSpace(lines[i])
		if t == "" || strings.HasPrefix(t, CommentPrefix) || strings.HasPrefix(t, "#[") {
			continue
		}
		return false
	}
	return false
}
