// Package docs holds the static documentation tables served through hover
// and completion: HTTP status codes, security schemes, annotation keywords,
// and section headers. The tables are built once and treated as immutable,
// except for extra security schemes merged in from configuration at startup.
package docs

import "fmt"

// StatusDoc describes one HTTP status code.
type StatusDoc struct {
	Code    int
	Summary string
	Detail  string
}

var statusDocs = []StatusDoc{
	{200, "OK - Request succeeded", "**200 OK**\n\nThe request succeeded. The response body contains the requested resource."},
	{201, "Created - Resource created", "**201 Created**\n\nThe request succeeded and a new resource was created. The response typically contains the created resource."},
	{204, "No Content - Success with no body", "**204 No Content**\n\nThe request succeeded but there is no content to return. Common for deletions."},
	{400, "Bad Request - Invalid request", "**400 Bad Request**\n\nThe server cannot process the request due to a client error, such as malformed syntax or invalid parameters."},
	{401, "Unauthorized - Authentication required", "**401 Unauthorized**\n\nThe request lacks valid authentication credentials. The client should authenticate and retry."},
	{403, "Forbidden - Access denied", "**403 Forbidden**\n\nThe server understood the request but refuses to authorize it. Authenticating again will not help."},
	{404, "Not Found - Resource not found", "**404 Not Found**\n\nThe requested resource could not be found. May also be used to conceal a resource's existence."},
	{409, "Conflict - Resource conflict", "**409 Conflict**\n\nThe request conflicts with the current state of the resource, such as a duplicate creation."},
	{422, "Unprocessable Entity - Validation failed", "**422 Unprocessable Entity**\n\nThe request was well-formed but contains semantic errors, typically failed validation."},
	{500, "Internal Server Error - Server fault", "**500 Internal Server Error**\n\nThe server encountered an unexpected condition that prevented it from fulfilling the request."},
	{503, "Service Unavailable - Temporary overload", "**503 Service Unavailable**\n\nThe server is temporarily unable to handle the request, usually due to overload or maintenance."},
}

// StatusCodes returns the documented status codes in table order.
func StatusCodes() []StatusDoc {
	return statusDocs
}

// StatusInfo returns markdown for a status code. Codes without a dedicated
// entry fall back to a description of their class.
func StatusInfo(code int) string {
	for _, d := range statusDocs {
		if d.Code == code {
			return d.Detail
		}
	}
	class := ""
	switch {
	case code >= 100 && code < 200:
		class = "Informational response"
	case code >= 200 && code < 300:
		class = "Success response"
	case code >= 300 && code < 400:
		class = "Redirection response"
	case code >= 400 && code < 500:
		class = "Client error response"
	case code >= 500 && code < 600:
		class = "Server error response"
	default:
		return fmt.Sprintf("**%d**\n\nNot a valid HTTP status code.", code)
	}
	return fmt.Sprintf("**%d**\n\n%s.", code, class)
}

// SchemeDoc describes one security scheme accepted by @security.
type SchemeDoc struct {
	Name    string
	Summary string
	Detail  string
}

var schemeDocs = []SchemeDoc{
	{"bearer", "Bearer token authentication", "**bearer**\n\nHTTP bearer token authentication. The client sends `Authorization: Bearer <token>` with each request."},
	{"basic", "HTTP basic authentication", "**basic**\n\nHTTP basic authentication. The client sends base64-encoded credentials in the `Authorization` header."},
	{"apiKey", "API key authentication", "**apiKey**\n\nAPI key authentication. The client sends a key in a header, query parameter, or cookie."},
	{"oauth2", "OAuth 2.0 flows", "**oauth2**\n\nOAuth 2.0 authorization. Supports authorization code, client credentials, and other standard flows."},
}

// SecuritySchemes returns the known schemes in table order.
func SecuritySchemes() []SchemeDoc {
	return schemeDocs
}

// SchemeInfo returns markdown for a scheme name.
func SchemeInfo(name string) (string, bool) {
	for _, d := range schemeDocs {
		if d.Name == name {
			return d.Detail, true
		}
	}
	return "", false
}

// MergeSchemes appends configured schemes that do not collide with a known
// name. Called once at startup before the server accepts requests.
func MergeSchemes(extra []SchemeDoc) {
	for _, e := range extra {
		if e.Name == "" {
			continue
		}
		if _, ok := SchemeInfo(e.Name); ok {
			continue
		}
		if e.Detail == "" {
			e.Detail = fmt.Sprintf("**%s**\n\n%s", e.Name, e.Summary)
		}
		schemeDocs = append(schemeDocs, e)
	}
}

// AnnotationDoc describes one @-keyword.
type AnnotationDoc struct {
	Keyword string
	Summary string
	Detail  string
	Snippet string

	// hidden keywords resolve on hover but are not offered by completion
	hidden bool
}

var annotationDocs = []AnnotationDoc{
	{
		Keyword: "@tag",
		Summary: "Group related endpoints under a tag",
		Detail:  "**@tag**\n\nGroups related endpoints together in the generated documentation.\n\n```\n/// @tag users\n```",
		Snippet: "@tag ${1:tag_name}",
	},
	{
		Keyword: "@security",
		Summary: "Declare a required security scheme",
		Detail:  "**@security**\n\nDeclares the security scheme required by the endpoint: `bearer`, `basic`, `apiKey`, or `oauth2`.\n\n```\n/// @security bearer\n```",
		Snippet: "@security ${1:bearer}",
	},
	{
		Keyword: "@id",
		Summary: "Set an explicit operation ID",
		Detail:  "**@id**\n\nSets an explicit operation ID for the endpoint. Only alphanumeric characters and underscores are allowed.\n\n```\n/// @id get_user_by_id\n```",
		Snippet: "@id ${1:operation_id}",
	},
	{
		Keyword: "@hidden",
		Summary: "Exclude the endpoint from documentation",
		Detail:  "**@hidden**\n\nExcludes the endpoint from the generated documentation while keeping it routable.",
		Snippet: "@hidden",
	},
	{
		Keyword: "@rovo-ignore",
		Summary: "Stop annotation processing for this block",
		Detail:  "**@rovo-ignore**\n\nStops all annotation processing for the block. Nothing after this line is interpreted or validated.",
		Snippet: "@rovo-ignore",
		hidden:  true,
	},
}

// Annotations returns the keywords offered by completion.
func Annotations() []AnnotationDoc {
	out := make([]AnnotationDoc, 0, len(annotationDocs))
	for _, d := range annotationDocs {
		if !d.hidden {
			out = append(out, d)
		}
	}
	return out
}

// AnnotationInfo returns the doc entry for a keyword, hidden ones included.
func AnnotationInfo(keyword string) (AnnotationDoc, bool) {
	for _, d := range annotationDocs {
		if d.Keyword == keyword {
			return d, true
		}
	}
	return AnnotationDoc{}, false
}

// SectionDoc describes one section header.
type SectionDoc struct {
	Header  string
	Summary string
}

var sectionDocs = []SectionDoc{
	{"# Responses", "Document response status codes and types"},
	{"# Examples", "Provide example response bodies"},
	{"# Metadata", "Tags, security schemes, and operation settings"},
	{"# Path Parameters", "Describe path parameter bindings"},
}

// Sections returns the section headers in table order.
func Sections() []SectionDoc {
	return sectionDocs
}
