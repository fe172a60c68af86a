package analysis

import (
	"strings"

	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"
)

// PrepareRename reports whether the position is renameable and, if so, the
// exact range of the tag value plus the current value as placeholder.
func PrepareRename(content string, pos protocol.Position) (protocol.Range, string, bool) {
	lines := strings.Split(content, "\n")
	line := int(pos.Line)
	value, start, end, ok := tagAt(lines, line)
	if !ok {
		return protocol.Range{}, "", false
	}
	return rangeOn(lines[line], uint32(line), start, end), value, true
}

// RenameTag renames every occurrence of the tag under the cursor. Only the
// tag-name span of each line is edited; the @tag keyword and surrounding
// text stay untouched. A nil edit means the position is not renameable.
func RenameTag(docURI uri.URI, content string, pos protocol.Position, newName string) *protocol.WorkspaceEdit {
	lines := strings.Split(content, "\n")
	value, _, _, ok := tagAt(lines, int(pos.Line))
	if !ok {
		return nil
	}
	var edits []protocol.TextEdit
	for i, raw := range lines {
		v, start, end, found := tagAt(lines, i)
		if !found || v != value {
			continue
		}
		edits = append(edits, protocol.TextEdit{
			Range:   rangeOn(raw, uint32(i), start, end),
			NewText: newName,
		})
	}
	if len(edits) == 0 {
		return nil
	}
	return &protocol.WorkspaceEdit{
		Changes: map[uri.URI][]protocol.TextEdit{docURI: edits},
	}
}
