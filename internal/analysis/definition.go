package analysis

import (
	"strings"

	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"

	"rovo-lsp/internal/annotation"
)

// Definition resolves the type name under the cursor to its declaration in
// the same document. Wrapper generics are unwrapped first, so the cursor on
// Json<Vec<User>> jumps to User. A miss returns no locations.
func Definition(docURI uri.URI, content string, pos protocol.Position) []protocol.Location {
	lines := strings.Split(content, "\n")
	line := int(pos.Line)
	if line < 0 || line >= len(lines) {
		return nil
	}
	raw := lines[line]
	if !annotation.IsCommentLine(raw) {
		return nil
	}
	byteIdx, ok := annotation.UTF16ToByte(raw, int(pos.Character))
	if !ok {
		return nil
	}
	text, off := annotation.CommentText(raw)
	col := byteIdx - off
	if col < 0 || col > len(text) {
		return nil
	}
	word, _, _ := wordAt(text, col)
	if word == "" || strings.HasPrefix(word, "@") {
		return nil
	}
	base := annotation.ExtractInnerType(word)
	declLine, declCol, found := annotation.FindDeclaration(content, base)
	if !found {
		return nil
	}
	declRaw := lines[declLine]
	return []protocol.Location{{
		URI:   docURI,
		Range: rangeOn(declRaw, uint32(declLine), declCol, declCol+len(base)),
	}}
}
