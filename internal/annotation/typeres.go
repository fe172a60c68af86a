package annotation

import (
	"regexp"
	"strings"
)

var wrapperRe = regexp.MustCompile(`^(?:Json|Vec|Option|Result|Arc|Box|Rc)<(.*)>$`)

var declRe = regexp.MustCompile(`(?:^|\s)(?:pub(?:\([^)]*\))?\s+)?(?:struct|enum|type)\s`)

// ExtractInnerType peels known wrapper generics off a type expression until
// the innermost type remains. A generic container that is not a known wrapper
// keeps only its own name.
func ExtractInnerType(expr string) string {
	trimmed := strings.TrimSpace(expr)
	if m := wrapperRe.FindStringSubmatch(trimmed); m != nil {
		return ExtractInnerType(m[1])
	}
	if i := strings.IndexByte(trimmed, '<'); i > 0 {
		return strings.TrimSpace(trimmed[:i])
	}
	return trimmed
}

// FindDeclaration returns the 0-based line and byte column of the first
// struct, enum, or type declaration of typeName in content. Occurrences
// inside line comments or string literals do not count.
func FindDeclaration(content, typeName string) (int, int, bool) {
	if typeName == "" {
		return 0, 0, false
	}
	nameRe, err := regexp.Compile(`\b` + regexp.QuoteMeta(typeName) + `\b`)
	if err != nil {
		return 0, 0, false
	}
	for idx, line := range strings.Split(content, "\n") {
		code := stripCommentsAndStrings(line)
		if !declRe.MatchString(code) || !nameRe.MatchString(code) {
			continue
		}
		// Column lookup runs on the raw line minus any trailing comment,
		// so the span points into the real source.
		raw := line
		if c := strings.Index(raw, "//"); c >= 0 {
			raw = raw[:c]
		}
		if loc := nameRe.FindStringIndex(raw); loc != nil {
			return idx, loc[0], true
		}
	}
	return 0, 0, false
}

// stripCommentsAndStrings blanks string-literal contents and cuts the line at
// a // comment, keeping declaration matching honest.
func stripCommentsAndStrings(line string) string {
	var b strings.Builder
	inStr := false
	for i := 0; i < len(line); i++ {
		c := line[i]
		if inStr {
			if c == '\\' {
				i++
				continue
			}
			if c == '"' {
				inStr = false
			}
			continue
		}
		if c == '"' {
			inStr = true
			continue
		}
		if c == '/' && i+1 < len(line) && line[i+1] == '/' {
			break
		}
		b.WriteByte(c)
	}
	return b.String()
}
