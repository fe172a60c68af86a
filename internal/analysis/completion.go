// Package analysis implements the stateless request engines behind the
// editor operations. Every function takes the full document text plus a
// position and recomputes what it needs; no syntax tree is cached between
// requests.
package analysis

import (
	"strconv"
	"strings"

	"go.lsp.dev/protocol"

	"rovo-lsp/internal/annotation"
	"rovo-lsp/internal/docs"
)

// statusTemplates are the codes offered as line templates in Responses and
// Examples sections.
var statusTemplates = []int{200, 201, 204, 400, 401, 403, 404, 409, 422, 500, 503}

// Complete returns completion items for the cursor position. The caller is
// responsible for gating on handler context; this function only inspects the
// comment line and its enclosing section.
func Complete(content string, pos protocol.Position, window int) []protocol.CompletionItem {
	lines := strings.Split(content, "\n")
	line := int(pos.Line)
	if line < 0 || line >= len(lines) {
		return nil
	}
	raw := lines[line]
	byteIdx, ok := annotation.UTF16ToByte(raw, int(pos.Character))
	if !ok {
		byteIdx = len(raw)
	}
	prefix := strings.TrimLeft(raw[:byteIdx], " \t")
	if !strings.HasPrefix(prefix, annotation.CommentPrefix) {
		return nil
	}
	typed := strings.TrimLeft(strings.TrimPrefix(prefix, annotation.CommentPrefix), " \t")
	section := annotation.SectionAt(lines, line)

	if strings.HasPrefix(typed, "#") {
		return sectionItems(typed)
	}
	if strings.HasPrefix(typed, "@security") && (section == annotation.SectionMetadata || section == annotation.SectionNone) {
		if rest, ok := strings.CutPrefix(typed, "@security "); ok {
			return schemeItems(strings.TrimLeft(rest, " "))
		}
	}
	if strings.HasPrefix(typed, "@") && (section == annotation.SectionMetadata || section == annotation.SectionNone) {
		return annotationItems(strings.TrimPrefix(typed, "@"))
	}

	switch section {
	case annotation.SectionResponses:
		return statusItems(typed, "${1:Json<T>} - ${2:Description}")
	case annotation.SectionExamples:
		return statusItems(typed, "${1:expression}")
	case annotation.SectionPathParams:
		return pathParamItems(lines, line, window)
	}
	return nil
}

func sectionItems(typed string) []protocol.CompletionItem {
	var items []protocol.CompletionItem
	for _, s := range docs.Sections() {
		if !strings.HasPrefix(s.Header, typed) {
			continue
		}
		items = append(items, protocol.CompletionItem{
			Label:      s.Header,
			Kind:       protocol.CompletionItemKindKeyword,
			Detail:     s.Summary,
			InsertText: s.Header,
			FilterText: s.Header,
		})
	}
	return items
}

func annotationItems(typed string) []protocol.CompletionItem {
	// Scheme values belong to the @security branch, not here.
	if strings.ContainsAny(typed, " \t") {
		return nil
	}
	var items []protocol.CompletionItem
	for _, d := range docs.Annotations() {
		if !strings.HasPrefix(strings.TrimPrefix(d.Keyword, "@"), typed) {
			continue
		}
		items = append(items, protocol.CompletionItem{
			Label:            d.Keyword,
			Kind:             protocol.CompletionItemKindKeyword,
			Detail:           d.Summary,
			Documentation:    &protocol.MarkupContent{Kind: protocol.Markdown, Value: d.Detail},
			InsertText:       strings.TrimPrefix(d.Snippet, "@"),
			InsertTextFormat: protocol.InsertTextFormatSnippet,
			FilterText:       d.Keyword,
		})
	}
	return items
}

func schemeItems(typed string) []protocol.CompletionItem {
	if strings.ContainsAny(typed, " \t") {
		return nil
	}
	var items []protocol.CompletionItem
	for _, d := range docs.SecuritySchemes() {
		if !strings.HasPrefix(d.Name, typed) {
			continue
		}
		items = append(items, protocol.CompletionItem{
			Label:         d.Name,
			Kind:          protocol.CompletionItemKindValue,
			Detail:        d.Summary,
			Documentation: &protocol.MarkupContent{Kind: protocol.Markdown, Value: d.Detail},
			InsertText:    d.Name,
		})
	}
	return items
}

func statusItems(typed, body string) []protocol.CompletionItem {
	for _, r := range typed {
		if r < '0' || r > '9' {
			return nil
		}
	}
	var items []protocol.CompletionItem
	for _, code := range statusTemplates {
		label := strconv.Itoa(code)
		if !strings.HasPrefix(label, typed) {
			continue
		}
		items = append(items, protocol.CompletionItem{
			Label:            label + ":",
			Kind:             protocol.CompletionItemKindSnippet,
			Detail:           docStatusSummary(code),
			InsertText:       label + ": " + body,
			InsertTextFormat: protocol.InsertTextFormatSnippet,
			FilterText:       label,
		})
	}
	return items
}

func docStatusSummary(code int) string {
	for _, d := range docs.StatusCodes() {
		if d.Code == code {
			return d.Summary
		}
	}
	return ""
}

// pathParamItems offers one entry per undocumented binding of the handler the
// comment block precedes, with a generic template as fallback.
func pathParamItems(lines []string, line, window int) []protocol.CompletionItem {
	var items []protocol.CompletionItem
	sig, found := annotation.SignatureForComment(lines, line, window)
	if found && sig.HasPath && !sig.IsStructPattern {
		documented := documentedParams(lines, line)
		for _, b := range sig.Bindings {
			if documented[b] || strings.HasPrefix(b, "_") {
				continue
			}
			items = append(items, protocol.CompletionItem{
				Label:            b,
				Kind:             protocol.CompletionItemKindSnippet,
				Detail:           "path parameter binding",
				InsertText:       b + ": ${1:description}",
				InsertTextFormat: protocol.InsertTextFormatSnippet,
			})
		}
	}
	if len(items) == 0 {
		items = append(items, protocol.CompletionItem{
			Label:            "name: description",
			Kind:             protocol.CompletionItemKindSnippet,
			Detail:           "path parameter entry",
			InsertText:       "${1:name}: ${2:description}",
			InsertTextFormat: protocol.InsertTextFormatSnippet,
		})
	}
	return items
}

// documentedParams collects the parameter names already documented in the
// Path Parameters section around the cursor.
func documentedParams(lines []string, cursor int) map[string]bool {
	out := make(map[string]bool)
	record := func(text string) {
		if i := strings.IndexByte(text, ':'); i > 0 {
			name := strings.TrimSpace(text[:i])
			if name != "" && !strings.ContainsAny(name, " \t") {
				out[name] = true
			}
		}
	}
	for i := cursor - 1; i >= 0 && annotation.IsCommentLine(lines[i]); i-- {
		text, _ := annotation.CommentText(lines[i])
		if strings.HasPrefix(text, "# ") {
			break
		}
		record(text)
	}
	for i := cursor + 1; i < len(lines) && annotation.IsCommentLine(lines[i]); i++ {
		text, _ := annotation.CommentText(lines[i])
		if strings.HasPrefix(text, "# ") {
			break
		}
		record(text)
	}
	return out
}
