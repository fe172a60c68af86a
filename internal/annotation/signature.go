package annotation

import "strings"

// ExtractSignature scans the raw parameter-list text of a handler for Path
// and State extractors. Bindings from every Path(...) pattern accumulate;
// struct patterns set IsStructPattern instead of contributing bindings.
func ExtractSignature(params string) SignatureInfo {
	var sig SignatureInfo
	rest := params
	for {
		idx := strings.Index(rest, "Path(")
		if idx < 0 {
			break
		}
		sig.HasPath = true
		inner, ok := balanced(rest[idx+len("Path("):], '(', ')')
		if !ok {
			break
		}
		pattern := strings.TrimSpace(inner)
		switch {
		case strings.Contains(pattern, "{"):
			sig.IsStructPattern = true
		case strings.HasPrefix(pattern, "("):
			tuple := strings.TrimSuffix(strings.TrimPrefix(pattern, "("), ")")
			for _, part := range splitTopLevel(tuple) {
				if name := bindingName(part); name != "" {
					sig.Bindings = append(sig.Bindings, name)
				}
			}
		default:
			if name := bindingName(pattern); name != "" {
				sig.Bindings = append(sig.Bindings, name)
			}
		}
		rest = rest[idx+len("Path(")+len(inner):]
	}
	if idx := strings.Index(params, "Path<"); idx >= 0 {
		if inner, ok := balanced(params[idx+len("Path<"):], '<', '>'); ok {
			sig.InnerType = strings.TrimSpace(inner)
		}
	}
	if idx := strings.Index(params, "State<"); idx >= 0 {
		if inner, ok := balanced(params[idx+len("State<"):], '<', '>'); ok {
			sig.StateType = strings.TrimSpace(inner)
		}
	}
	return sig
}

// balanced returns the text up to the close delimiter matching an already
// consumed open delimiter. s starts just past the open.
func balanced(s string, open, close rune) (string, bool) {
	depth := 1
	for i, r := range s {
		switch r {
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return s[:i], true
			}
		}
	}
	return "", false
}

// splitTopLevel splits on commas not nested inside brackets or generics.
func splitTopLevel(s string) []string {
	var parts []string
	depth := 0
	start := 0
	for i, r := range s {
		switch r {
		case '(', '[', '{', '<':
			depth++
		case ')', ']', '}', '>':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	parts = append(parts, s[start:])
	return parts
}

// bindingName normalizes one pattern element to its bound identifier.
func bindingName(part string) string {
	name := strings.TrimSpace(part)
	name = strings.TrimPrefix(name, "mut ")
	if i := strings.IndexByte(name, ':'); i >= 0 {
		name = strings.TrimSpace(name[:i])
	}
	return name
}
