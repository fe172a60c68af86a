package analysis

import (
	"strings"

	"go.lsp.dev/protocol"

	"rovo-lsp/internal/annotation"
)

// Diagnostics parses and validates every handler block in the document and
// returns the collected findings. Blocks are independent; a broken block
// never suppresses findings in another.
func Diagnostics(content string) []protocol.Diagnostic {
	lines := strings.Split(content, "\n")
	var out []protocol.Diagnostic
	for _, b := range annotation.FindHandlerBlocks(lines) {
		info, issues := annotation.Parse(b.DocLines)
		sig := annotation.ExtractSignature(b.Signature)
		fnLine := b.FnLine
		if fnLine < 0 {
			fnLine = b.MarkerLine
		}
		issues = append(issues, annotation.Validate(info, sig, fnLine)...)
		for _, issue := range issues {
			out = append(out, toDiagnostic(issue, lines))
		}
	}
	return out
}

func toDiagnostic(issue annotation.Issue, lines []string) protocol.Diagnostic {
	startLine := clampLine(issue.Line, lines)
	endLine := clampLine(issue.EndLine, lines)
	if endLine < startLine {
		endLine = startLine
	}
	startRaw, endRaw := lines[startLine], lines[endLine]

	startCol := issue.StartCol
	endCol := issue.EndCol
	if startCol < 0 {
		// Whole-content span for issues without a precise column.
		_, startCol = annotation.CommentText(startRaw)
	}
	if endCol < 0 {
		endCol = len(endRaw)
	}

	severity := protocol.DiagnosticSeverityError
	if issue.Severity == annotation.SeverityWarning {
		severity = protocol.DiagnosticSeverityWarning
	}
	return protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{Line: uint32(startLine), Character: uint32(annotation.ByteToUTF16(startRaw, startCol))},
			End:   protocol.Position{Line: uint32(endLine), Character: uint32(annotation.ByteToUTF16(endRaw, endCol))},
		},
		Severity: severity,
		Source:   "rovo",
		Message:  issue.Message,
	}
}

func clampLine(line int, lines []string) int {
	if line < 0 {
		return 0
	}
	if line >= len(lines) {
		return len(lines) - 1
	}
	return line
}
