package annotation

// Section identifies which part of a doc-comment block a line belongs to.
type Section int

const (
	SectionNone Section = iota
	SectionResponses
	SectionExamples
	SectionMetadata
	SectionPathParams
	// sectionIgnored covers unrecognized "# ..." headers. Content below one
	// is preserved in the source but skipped by the parser.
	sectionIgnored
)

// Section headers are matched exactly against the trimmed comment content.
const (
	HeaderResponses  = "# Responses"
	HeaderExamples   = "# Examples"
	HeaderMetadata   = "# Metadata"
	HeaderPathParams = "# Path Parameters"
)

// HandlerMarker is the attribute line that makes the preceding comment block
// a handler annotation block.
const HandlerMarker = "#[rovo]"

// DefaultScanWindow bounds the forward scan from a comment line to its
// handler marker.
const DefaultScanWindow = 20

// AnnotationKind enumerates the @-keywords accepted in a Metadata section.
type AnnotationKind int

const (
	AnnotationTag AnnotationKind = iota
	AnnotationSecurity
	AnnotationID
	AnnotationHidden
	AnnotationIgnore
)

// Annotation is one @-line from a Metadata section, kept in encounter order.
type Annotation struct {
	Kind  AnnotationKind
	Value string // tag name, scheme, or operation id; empty for @hidden and @rovo-ignore
	Line  int
}

// ResponseEntry is one "STATUS: TYPE - DESCRIPTION" line from a Responses
// section, with any continuation lines folded into Description.
type ResponseEntry struct {
	StatusCode  int
	TypeExpr    string
	Description string
	Line        int
}

// ExampleEntry is one example expression from an Examples section. The
// expression may span several comment lines.
type ExampleEntry struct {
	StatusCode int
	Expr       string
	Line       int
	EndLine    int
}

// PathParamDoc is one "name: description" line from a Path Parameters section.
type PathParamDoc struct {
	Name        string
	Description string
	Line        int
}

// DocInfo is the parsed model of one handler's annotation block.
type DocInfo struct {
	Title       string
	Description string
	Responses   []ResponseEntry
	Examples    []ExampleEntry
	PathParams  []PathParamDoc

	Tags            []string
	SecuritySchemes []string
	OperationID     string
	Hidden          bool
	Ignored         bool

	// Annotations preserves every Metadata entry in the order it appeared.
	Annotations []Annotation
}

// Severity distinguishes hard grammar/validation errors from advisories.
type Severity int

const (
	SeverityError Severity = iota + 1
	SeverityWarning
)

// Issue is a parse or validation problem anchored to a span in the document.
// Columns are byte offsets into the raw source line; -1 means the whole
// content of the line.
type Issue struct {
	Line     int
	EndLine  int
	StartCol int
	EndCol   int
	Severity Severity
	Message  string
}

// SignatureInfo is what the extractor recovered from a handler's parameter
// list.
type SignatureInfo struct {
	// Bindings are the identifiers bound by Path(...) patterns, in order.
	Bindings []string
	// IsStructPattern is set when any Path pattern destructures a struct;
	// field names are not tracked, so binding checks are skipped.
	IsStructPattern bool
	// HasPath reports whether a Path extractor appears at all.
	HasPath bool
	// InnerType is the T of the first Path<T> type annotation, if any.
	InnerType string
	// StateType is the T of the first State<T> parameter, if any.
	StateType string
}
