package analysis

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"go.lsp.dev/protocol"

	"rovo-lsp/internal/annotation"
	"rovo-lsp/internal/docs"
)

var statusPrefixRe = regexp.MustCompile(`^(\d+):`)

// Hover resolves documentation for the position, trying in order: status
// code, security scheme, type name declared in the document, annotation
// keyword. Positions outside comment lines resolve to nothing.
func Hover(content string, pos protocol.Position) *protocol.Hover {
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
	section := annotation.SectionAt(lines, line)

	if h := statusHover(text, col, raw, off, uint32(line), section); h != nil {
		return h
	}
	if h := schemeHover(text, col, raw, off, uint32(line)); h != nil {
		return h
	}

	word, start, end := wordAt(text, col)
	if word == "" {
		return nil
	}
	wordRange := rangeOn(raw, uint32(line), off+start, off+end)

	if !strings.HasPrefix(word, "@") {
		base := annotation.ExtractInnerType(word)
		if declLine, _, found := annotation.FindDeclaration(content, base); found {
			value := fmt.Sprintf("**%s**\n\nDefined at line %d\n\n```rust\n%s\n```",
				base, declLine+1, strings.TrimSpace(lines[declLine]))
			return markdownHover(value, wordRange)
		}
	}
	if strings.HasPrefix(word, "@") {
		if d, found := docs.AnnotationInfo(word); found {
			return markdownHover(d.Detail, wordRange)
		}
	}
	return nil
}

func statusHover(text string, col int, raw string, off int, line uint32, section annotation.Section) *protocol.Hover {
	if section != annotation.SectionResponses && section != annotation.SectionExamples {
		return nil
	}
	m := statusPrefixRe.FindStringSubmatch(text)
	if m == nil || col > len(m[1]) {
		return nil
	}
	code, err := strconv.Atoi(m[1])
	if err != nil {
		return nil
	}
	return markdownHover(docs.StatusInfo(code), rangeOn(raw, line, off, off+len(m[1])))
}

func schemeHover(text string, col int, raw string, off int, line uint32) *protocol.Hover {
	const prefix = "@security "
	if !strings.HasPrefix(text, prefix) {
		return nil
	}
	rest := text[len(prefix):]
	lead := len(rest) - len(strings.TrimLeft(rest, " \t"))
	start := len(prefix) + lead
	name := strings.Fields(rest)
	if len(name) == 0 {
		return nil
	}
	end := start + len(name[0])
	if col < start || col > end {
		return nil
	}
	detail, found := docs.SchemeInfo(name[0])
	if !found {
		return nil
	}
	return markdownHover(detail, rangeOn(raw, line, off+start, off+end))
}

func markdownHover(value string, rng protocol.Range) *protocol.Hover {
	return &protocol.Hover{
		Contents: protocol.MarkupContent{Kind: protocol.Markdown, Value: value},
		Range:    &rng,
	}
}

// rangeOn builds a protocol range on a single line from byte offsets in the
// raw source line.
func rangeOn(raw string, line uint32, startByte, endByte int) protocol.Range {
	return protocol.Range{
		Start: protocol.Position{Line: line, Character: uint32(annotation.ByteToUTF16(raw, startByte))},
		End:   protocol.Position{Line: line, Character: uint32(annotation.ByteToUTF16(raw, endByte))},
	}
}

// wordAt expands from a byte column to the enclosing token. Type expressions
// keep their generic arguments, keywords keep their @ prefix.
func wordAt(text string, col int) (string, int, int) {
	if len(text) == 0 {
		return "", 0, 0
	}
	if col >= len(text) {
		col = len(text) - 1
	}
	if !isWordByte(text[col]) {
		if col == 0 || !isWordByte(text[col-1]) {
			return "", 0, 0
		}
		col--
	}
	start := col
	for start > 0 && isWordByte(text[start-1]) {
		start--
	}
	end := col + 1
	for end < len(text) && isWordByte(text[end]) {
		end++
	}
	word := text[start:end]
	if word == "-" {
		return "", 0, 0
	}
	return word, start, end
}

func isWordByte(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '_' || c == '@' || c == '<' || c == '>' || c == '-':
		return true
	}
	return false
}
