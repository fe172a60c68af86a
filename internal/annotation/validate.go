package annotation

import (
	"fmt"
	"strconv"
	"strings"
)

// Validate cross-checks a parsed block against the handler signature.
// fnLine anchors signature-level findings. All problems are collected; the
// caller decides whether to fail fast.
func Validate(info DocInfo, sig SignatureInfo, fnLine int) []Issue {
	if info.Ignored {
		return nil
	}
	var issues []Issue

	responseCodes := make(map[int]bool, len(info.Responses))
	for _, r := range info.Responses {
		responseCodes[r.StatusCode] = true
		if r.StatusCode < 100 || r.StatusCode > 599 {
			issues = append(issues, Issue{
				Line: r.Line, EndLine: r.Line, StartCol: -1, EndCol: -1,
				Severity: SeverityError,
				Message:  fmt.Sprintf("Invalid HTTP status code: %d. Must be between 100 and 599", r.StatusCode),
			})
		}
		if r.Description == "" {
			issues = append(issues, Issue{
				Line: r.Line, EndLine: r.Line, StartCol: -1, EndCol: -1,
				Severity: SeverityError,
				Message:  fmt.Sprintf("Missing description for response %d: expected '%d: Type - Description'", r.StatusCode, r.StatusCode),
			})
		}
	}

	if len(info.Responses) > 0 {
		for _, e := range info.Examples {
			if responseCodes[e.StatusCode] {
				continue
			}
			issues = append(issues, Issue{
				Line: e.Line, EndLine: e.Line, StartCol: -1, EndCol: -1,
				Severity: SeverityError,
				Message: fmt.Sprintf("Example status code %d does not match any response. Defined response codes: %s",
					e.StatusCode, joinCodes(info.Responses)),
			})
		}
	}

	issues = append(issues, validatePathParams(info, sig, fnLine)...)
	return issues
}

func validatePathParams(info DocInfo, sig SignatureInfo, fnLine int) []Issue {
	var issues []Issue

	if len(info.PathParams) > 0 && !sig.HasPath {
		issues = append(issues, Issue{
			Line: info.PathParams[0].Line, EndLine: info.PathParams[0].Line,
			StartCol: -1, EndCol: -1,
			Severity: SeverityError,
			Message:  "Path parameters documented but no path extractor found in the function signature",
		})
		return issues
	}
	if !sig.HasPath || sig.IsStructPattern {
		// Struct patterns do not expose field names, so name checks
		// cannot run.
		return issues
	}

	bound := make(map[string]bool, len(sig.Bindings))
	for _, b := range sig.Bindings {
		bound[b] = true
	}
	documented := make(map[string]bool, len(info.PathParams))
	for _, p := range info.PathParams {
		documented[p.Name] = true
		if bound[p.Name] {
			continue
		}
		issues = append(issues, Issue{
			Line: p.Line, EndLine: p.Line, StartCol: -1, EndCol: -1,
			Severity: SeverityError,
			Message: fmt.Sprintf("Unknown path parameter '%s'. Available bindings: %s",
				p.Name, quoteJoin(sig.Bindings)),
		})
	}

	var missing []string
	for _, b := range sig.Bindings {
		if !documented[b] && !strings.HasPrefix(b, "_") {
			missing = append(missing, b)
		}
	}
	if len(missing) > 0 {
		issues = append(issues, Issue{
			Line: fnLine, EndLine: fnLine, StartCol: -1, EndCol: -1,
			Severity: SeverityWarning,
			Message: fmt.Sprintf("Undocumented path parameter%s %s. Add a '# Path Parameters' section entry",
				plural(missing), quoteJoin(missing)),
		})
	}
	return issues
}

func joinCodes(responses []ResponseEntry) string {
	parts := make([]string, 0, len(responses))
	seen := make(map[int]bool, len(responses))
	for _, r := range responses {
		if seen[r.StatusCode] {
			continue
		}
		seen[r.StatusCode] = true
		parts = append(parts, strconv.Itoa(r.StatusCode))
	}
	return strings.Join(parts, ", ")
}

func quoteJoin(names []string) string {
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = "'" + n + "'"
	}
	return strings.Join(parts, ", ")
}

func plural(items []string) string {
	if len(items) > 1 {
		return "s"
	}
	return ""
}
