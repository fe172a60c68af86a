package annotation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	statusLineRe = regexp.MustCompile(`^(\d+):`)
	paramLineRe  = regexp.MustCompile(`^(\w+):`)
	idValueRe    = regexp.MustCompile(`^[A-Za-z0-9_]+$`)
)

var knownAnnotations = []string{"tag", "security", "id", "hidden", "rovo-ignore"}

// exampleState accumulates one multi-line example expression.
type exampleState struct {
	active    bool
	status    int
	startLine int
	startCol  int
	endLine   int
	depth     int
	inFence   bool
	pieces    []string
	fence     []string
}

// Parse runs the section state machine over one comment block and returns the
// parsed model plus any grammar issues. Validation against the handler
// signature is a separate step, see Validate.
func Parse(docLines []DocLine) (DocInfo, []Issue) {
	var (
		info   DocInfo
		issues []Issue
	)
	section := SectionNone
	titleSet := false
	inDesc := false
	var descLines []string
	var ex exampleState

	flushExample := func() {
		if !ex.active {
			return
		}
		defer func() { ex = exampleState{} }()
		if ex.inFence {
			// An unclosed fence still yields the collected body.
			info.Examples = append(info.Examples, ExampleEntry{
				StatusCode: ex.status,
				Expr:       strings.Join(ex.fence, "\n"),
				Line:       ex.startLine,
				EndLine:    ex.endLine,
			})
			return
		}
		expr := strings.Join(ex.pieces, " ")
		if strings.TrimSpace(expr) == "" {
			issues = append(issues, Issue{
				Line: ex.startLine, EndLine: ex.startLine,
				StartCol: ex.startCol, EndCol: -1,
				Severity: SeverityError,
				Message:  fmt.Sprintf("Empty example expression for status %d", ex.status),
			})
			return
		}
		if ex.depth != 0 {
			issues = append(issues, Issue{
				Line: ex.startLine, EndLine: ex.endLine,
				StartCol: ex.startCol, EndCol: -1,
				Severity: SeverityError,
				Message:  "Invalid example expression: unbalanced brackets",
			})
			return
		}
		info.Examples = append(info.Examples, ExampleEntry{
			StatusCode: ex.status,
			Expr:       expr,
			Line:       ex.startLine,
			EndLine:    ex.endLine,
		})
	}

	for _, dl := range docLines {
		text := dl.Text

		// @rovo-ignore halts all interpretation wherever it appears. A
		// pending example is discarded without complaint.
		if text == "@rovo-ignore" {
			ex = exampleState{}
			info.Ignored = true
			info.Annotations = append(info.Annotations, Annotation{Kind: AnnotationIgnore, Line: dl.Line})
			break
		}

		// Code-fence mode swallows everything, headers included, until a
		// standalone closing fence.
		if section == SectionExamples && ex.active && ex.inFence {
			if text == "```" {
				info.Examples = append(info.Examples, ExampleEntry{
					StatusCode: ex.status,
					Expr:       strings.Join(ex.fence, "\n"),
					Line:       ex.startLine,
					EndLine:    dl.Line,
				})
				ex = exampleState{}
				continue
			}
			ex.fence = append(ex.fence, text)
			ex.endLine = dl.Line
			continue
		}

		if next, ok := sectionFor(text); ok {
			flushExample()
			section = next
			continue
		}

		switch section {
		case SectionResponses:
			parseResponseLine(&info, text, dl)
		case SectionExamples:
			parseExampleLine(&info, &issues, &ex, flushExample, text, dl)
		case SectionMetadata:
			issues = append(issues, parseMetadataLine(&info, text, dl)...)
		case SectionPathParams:
			if m := paramLineRe.FindStringSubmatch(text); m != nil {
				info.PathParams = append(info.PathParams, PathParamDoc{
					Name:        m[1],
					Description: strings.TrimSpace(text[len(m[0]):]),
					Line:        dl.Line,
				})
			}
		case sectionIgnored:
			// skipped, preserved in source
		default:
			switch {
			case text == "":
				if inDesc {
					descLines = append(descLines, "")
				}
			case !titleSet:
				info.Title = text
				titleSet = true
			default:
				inDesc = true
				descLines = append(descLines, text)
			}
		}
	}
	flushExample()

	info.Description = strings.TrimSpace(strings.Join(descLines, "\n"))
	return info, issues
}

// sectionFor matches a comment line against the section headers. Any other
// "# ..." line switches to the ignored section.
func sectionFor(text string) (Section, bool) {
	switch text {
	case HeaderResponses:
		return SectionResponses, true
	case HeaderExamples:
		return SectionExamples, true
	case HeaderMetadata:
		return SectionMetadata, true
	case HeaderPathParams:
		return SectionPathParams, true
	}
	if strings.HasPrefix(text, "# ") {
		return sectionIgnored, true
	}
	return SectionNone, false
}

func parseResponseLine(info *DocInfo, text string, dl DocLine) {
	m := statusLineRe.FindStringSubmatch(text)
	if m == nil {
		// Non-matching lines continue the previous description.
		if text == "" || len(info.Responses) == 0 {
			return
		}
		last := &info.Responses[len(info.Responses)-1]
		if last.Description == "" {
			last.Description = text
		} else {
			last.Description += " " + text
		}
		return
	}
	status, _ := strconv.Atoi(m[1])
	rest := strings.TrimSpace(text[len(m[0]):])
	typeExpr := rest
	desc := ""
	if i := strings.Index(rest, " - "); i >= 0 {
		typeExpr = strings.TrimSpace(rest[:i])
		desc = strings.TrimSpace(rest[i+3:])
	}
	info.Responses = append(info.Responses, ResponseEntry{
		StatusCode:  status,
		TypeExpr:    typeExpr,
		Description: desc,
		Line:        dl.Line,
	})
}

func parseExampleLine(info *DocInfo, issues *[]Issue, ex *exampleState, flush func(), text string, dl DocLine) {
	if m := statusLineRe.FindStringSubmatch(text); m != nil {
		flush()
		status, _ := strconv.Atoi(m[1])
		rest := strings.TrimSpace(text[len(m[0]):])
		*ex = exampleState{
			active:    true,
			status:    status,
			startLine: dl.Line,
			startCol:  dl.Offset + len(m[0]),
			endLine:   dl.Line,
		}
		if strings.HasPrefix(rest, "```") {
			ex.inFence = true
			return
		}
		if rest != "" {
			feedExample(ex, rest, dl.Line)
			if ex.depth == 0 {
				flush()
			}
		}
		return
	}
	if strings.HasPrefix(text, "@") {
		// An annotation line ends a pending example early.
		flush()
		return
	}
	if !ex.active || text == "" {
		return
	}
	if strings.HasPrefix(text, "```") {
		ex.inFence = true
		return
	}
	feedExample(ex, text, dl.Line)
	if ex.depth <= 0 {
		flush()
	}
}

func feedExample(ex *exampleState, text string, line int) {
	for _, r := range text {
		switch r {
		case '{', '[', '(':
			ex.depth++
		case '}', ']', ')':
			ex.depth--
		}
	}
	ex.pieces = append(ex.pieces, text)
	ex.endLine = line
}

func parseMetadataLine(info *DocInfo, text string, dl DocLine) []Issue {
	if !strings.HasPrefix(text, "@") {
		return nil
	}
	span := func(msg string) []Issue {
		return []Issue{{
			Line: dl.Line, EndLine: dl.Line,
			StartCol: dl.Offset, EndCol: dl.Offset + len(text),
			Severity: SeverityError,
			Message:  msg,
		}}
	}
	fields := strings.Fields(text)
	keyword := fields[0]
	value := ""
	if len(fields) > 1 {
		value = fields[1]
	}
	switch keyword {
	case "@tag":
		if value == "" {
			return span("Invalid @tag annotation: expected '@tag <tag_name>'")
		}
		info.Tags = append(info.Tags, value)
		info.Annotations = append(info.Annotations, Annotation{Kind: AnnotationTag, Value: value, Line: dl.Line})
	case "@security":
		if value == "" {
			return span("Invalid @security annotation: expected '@security <scheme>'")
		}
		info.SecuritySchemes = append(info.SecuritySchemes, value)
		info.Annotations = append(info.Annotations, Annotation{Kind: AnnotationSecurity, Value: value, Line: dl.Line})
	case "@id":
		if value == "" {
			return span("Invalid @id annotation: expected '@id <operation_id>'")
		}
		if !idValueRe.MatchString(value) {
			return span(fmt.Sprintf("Invalid operation ID '%s': only alphanumeric characters and underscores are allowed", value))
		}
		info.OperationID = value
		info.Annotations = append(info.Annotations, Annotation{Kind: AnnotationID, Value: value, Line: dl.Line})
	case "@hidden":
		info.Hidden = true
		info.Annotations = append(info.Annotations, Annotation{Kind: AnnotationHidden, Line: dl.Line})
	default:
		return span(unknownAnnotationMessage(keyword))
	}
	return nil
}

func unknownAnnotationMessage(keyword string) string {
	name := strings.TrimPrefix(keyword, "@")
	if suggestion, ok := closestAnnotation(name); ok {
		return fmt.Sprintf("Unknown annotation '%s'. Did you mean '@%s'?", keyword, suggestion)
	}
	return fmt.Sprintf("Unknown annotation '%s'. Valid annotations: @tag, @security, @id, @hidden, @rovo-ignore", keyword)
}

// closestAnnotation suggests a known keyword within edit distance 2.
func closestAnnotation(name string) (string, bool) {
	best := ""
	bestDist := 3
	for _, known := range knownAnnotations {
		if d := editDistance(name, known); d < bestDist {
			best = known
			bestDist = d
		}
	}
	return best, best != ""
}

func editDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	cur := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		cur[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}
	return prev[len(rb)]
}
