package analysis

import (
	"regexp"
	"strings"

	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"

	"rovo-lsp/internal/annotation"
)

var tagLineRe = regexp.MustCompile(`^@tag\s+(\S+)`)

// tagAt returns the tag value on the comment line at pos, with the byte span
// of the value in the raw line. Only @tag lines participate in references
// and rename.
func tagAt(lines []string, line int) (value string, start, end int, ok bool) {
	if line < 0 || line >= len(lines) {
		return "", 0, 0, false
	}
	raw := lines[line]
	if !annotation.IsCommentLine(raw) {
		return "", 0, 0, false
	}
	text, off := annotation.CommentText(raw)
	m := tagLineRe.FindStringSubmatchIndex(text)
	if m == nil {
		return "", 0, 0, false
	}
	return text[m[2]:m[3]], off + m[2], off + m[3], true
}

// TagReferences finds every @tag line carrying the same tag value as the one
// under the cursor.
func TagReferences(docURI uri.URI, content string, pos protocol.Position) []protocol.Location {
	lines := strings.Split(content, "\n")
	value, _, _, ok := tagAt(lines, int(pos.Line))
	if !ok {
		return nil
	}
	var locs []protocol.Location
	for i, raw := range lines {
		v, start, end, found := tagAt(lines, i)
		if !found || v != value {
			continue
		}
		locs = append(locs, protocol.Location{
			URI:   docURI,
			Range: rangeOn(raw, uint32(i), start, end),
		})
	}
	return locs
}
