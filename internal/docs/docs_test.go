package docs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusCodesTable(t *testing.T) {
	codes := StatusCodes()
	require.Len(t, codes, 11)
	for _, d := range codes {
		assert.NotEmpty(t, d.Summary)
		assert.NotEmpty(t, d.Detail)
	}
	assert.Equal(t, 200, codes[0].Code)
}

func TestStatusInfoFallbacks(t *testing.T) {
	assert.Contains(t, StatusInfo(200), "**200 OK**")
	assert.Contains(t, StatusInfo(302), "Redirection response")
	assert.Contains(t, StatusInfo(418), "Client error response")
	assert.Contains(t, StatusInfo(599), "Server error response")
	assert.Contains(t, StatusInfo(999), "Not a valid HTTP status code")
}

func TestSchemeInfo(t *testing.T) {
	for _, name := range []string{"bearer", "basic", "apiKey", "oauth2"} {
		detail, ok := SchemeInfo(name)
		require.True(t, ok, name)
		assert.NotEmpty(t, detail)
	}
	_, ok := SchemeInfo("saml")
	assert.False(t, ok)
}

func TestMergeSchemes(t *testing.T) {
	before := len(SecuritySchemes())
	MergeSchemes([]SchemeDoc{
		{Name: "bearer", Summary: "duplicate, skipped"},
		{Name: "", Summary: "nameless, skipped"},
		{Name: "mtls", Summary: "Mutual TLS"},
	})
	assert.Len(t, SecuritySchemes(), before+1)

	detail, ok := SchemeInfo("mtls")
	require.True(t, ok)
	assert.Contains(t, detail, "Mutual TLS")

	detail, _ = SchemeInfo("bearer")
	assert.NotContains(t, detail, "duplicate")
}

func TestAnnotationsExcludeHidden(t *testing.T) {
	keywords := make([]string, 0)
	for _, d := range Annotations() {
		keywords = append(keywords, d.Keyword)
	}
	assert.Equal(t, []string{"@tag", "@security", "@id", "@hidden"}, keywords)

	// still resolvable on hover
	d, ok := AnnotationInfo("@rovo-ignore")
	require.True(t, ok)
	assert.NotEmpty(t, d.Detail)
}

func TestSectionsTable(t *testing.T) {
	headers := make([]string, 0)
	for _, s := range Sections() {
		headers = append(headers, s.Header)
	}
	assert.Equal(t, []string{"# Responses", "# Examples", "# Metadata", "# Path Parameters"}, headers)
}
