package annotation

import "strings"

// CommentPrefix introduces an annotation line. Leading whitespace before it
// is allowed.
const CommentPrefix = "///"

// IsCommentLine reports whether the raw source line is a doc-comment line.
func IsCommentLine(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), CommentPrefix)
}

// IsHandlerMarker reports whether the raw source line marks the following
// function as a handler. The canonical form is "#[rovo]"; any attribute line
// mentioning rovo is accepted so marker variants with arguments still count.
func IsHandlerMarker(line string) bool {
	t := strings.TrimSpace(line)
	if t == HandlerMarker {
		return true
	}
	return strings.HasPrefix(t, "#[") && strings.Contains(t, "rovo")
}

// CommentText extracts the annotation content of a doc-comment line: the text
// after the /// prefix, trimmed once on both sides. The returned offset is
// the byte position of the content within the raw line, so spans computed
// against the content can be mapped back to the source.
func CommentText(line string) (string, int) {
	idx := strings.Index(line, CommentPrefix)
	if idx < 0 {
		return "", 0
	}
	rest := line[idx+len(CommentPrefix):]
	trimmed := strings.TrimLeft(rest, " \t")
	offset := idx + len(CommentPrefix) + len(rest) - len(trimmed)
	return strings.TrimRight(trimmed, " \t"), offset
}

// DocLine is one comment line handed to the parser: the content after the
// prefix plus where it sits in the document.
type DocLine struct {
	Text   string
	Line   int
	Offset int
}

// HandlerBlock is one #[rovo]-marked handler: its preceding comment block and
// the function signature that follows the marker.
type HandlerBlock struct {
	DocLines   []DocLine
	MarkerLine int
	// FnLine is the line carrying "fn", or -1 when no function follows.
	FnLine int
	// Signature is the raw parameter-list text, joined across lines.
	Signature string
}

// FindHandlerBlocks locates every handler in the document. Blank lines inside
// a comment block are tolerated; any other line ends the backward scan.
func FindHandlerBlocks(lines []string) []HandlerBlock {
	var blocks []HandlerBlock
	for i, line := range lines {
		if strings.TrimSpace(line) != HandlerMarker {
			continue
		}
		b := HandlerBlock{MarkerLine: i, FnLine: -1}
		var rev []DocLine
		for j := i - 1; j >= 0; j-- {
			t := strings.TrimSpace(lines[j])
			if t == "" {
				continue
			}
			if !strings.HasPrefix(t, CommentPrefix) {
				break
			}
			text, off := CommentText(lines[j])
			rev = append(rev, DocLine{Text: text, Line: j, Offset: off})
		}
		for k := len(rev) - 1; k >= 0; k-- {
			b.DocLines = append(b.DocLines, rev[k])
		}
		// The function may be separated from the marker by further
		// attribute lines.
		for j := i + 1; j < len(lines) && j <= i+5; j++ {
			t := strings.TrimSpace(lines[j])
			if strings.HasPrefix(t, "#[") {
				continue
			}
			if strings.Contains(t, "fn ") && !strings.HasPrefix(t, "//") {
				b.FnLine = j
				b.Signature = paramList(lines, j)
			}
			break
		}
		blocks = append(blocks, b)
	}
	return blocks
}

// paramList joins a function's parameter list into a single string. The list
// may span lines; the scan runs from the first "(" on the fn line to its
// matching ")".
func paramList(lines []string, fnLine int) string {
	var sb strings.Builder
	depth := 0
	opened := false
	for i := fnLine; i < len(lines) && i <= fnLine+DefaultScanWindow; i++ {
		text := lines[i]
		if i == fnLine {
			// Skip past the fn keyword so visibility modifiers like
			// pub(crate) do not open the scan early.
			if idx := strings.Index(text, "fn "); idx >= 0 {
				text = text[idx+3:]
			}
		}
		for _, r := range text {
			if !opened {
				if r == '(' {
					opened = true
					depth = 1
				}
				continue
			}
			switch r {
			case '(':
				depth++
			case ')':
				depth--
				if depth == 0 {
					return sb.String()
				}
			}
			sb.WriteRune(r)
		}
		if opened {
			sb.WriteRune(' ')
		}
	}
	return sb.String()
}

// SignatureForComment finds the handler signature a comment line belongs to
// by scanning forward for the marker, then extracting the parameter list of
// the function below it. window bounds the forward scan.
func SignatureForComment(lines []string, line, window int) (SignatureInfo, bool) {
	if window <= 0 {
		window = DefaultScanWindow
	}
	for i := line; i < len(lines) && i <= line+window; i++ {
		if strings.TrimSpace(lines[i]) == HandlerMarker {
			for j := i + 1; j < len(lines) && j <= i+5; j++ {
				t := strings.TrimSpace(lines[j])
				if strings.HasPrefix(t, "#[") {
					continue
				}
				if strings.Contains(t, "fn ") && !strings.HasPrefix(t, "//") {
					return ExtractSignature(paramList(lines, j)), true
				}
				break
			}
			return SignatureInfo{}, true
		}
		t := strings.TrimSpace(lines[i])
		if t == "" || strings.HasPrefix(t, CommentPrefix) || strings.HasPrefix(t, "#[") {
			continue
		}
		break
	}
	return SignatureInfo{}, false
}
