package annotation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pathSig(bindings ...string) SignatureInfo {
	return SignatureInfo{Bindings: bindings, HasPath: true}
}

func TestValidateStatusCodeBounds(t *testing.T) {
	info, _ := Parse(docBlock(
		"# Responses",
		"100: () - lower bound",
		"599: () - upper bound",
		"99: () - too low",
		"600: () - too high",
	))
	issues := Validate(info, SignatureInfo{}, 0)
	require.Len(t, issues, 2)
	assert.Contains(t, issues[0].Message, "Invalid HTTP status code: 99")
	assert.Contains(t, issues[1].Message, "Invalid HTTP status code: 600")
	for _, issue := range issues {
		assert.Equal(t, SeverityError, issue.Severity)
	}
}

func TestValidateMissingResponseDescription(t *testing.T) {
	info, _ := Parse(docBlock(
		"# Responses",
		"200: Json<User>",
	))
	issues := Validate(info, SignatureInfo{}, 0)
	require.Len(t, issues, 1)
	assert.Contains(t, issues[0].Message, "Missing description for response 200")
	assert.Contains(t, issues[0].Message, "'200: Type - Description'")
}

func TestValidateExampleCrossReference(t *testing.T) {
	info, _ := Parse(docBlock(
		"# Responses",
		"200: Json<User> - ok",
		"404: Json<Error> - missing",
		"# Examples",
		`418: "teapot"`,
	))
	issues := Validate(info, SignatureInfo{}, 0)
	require.Len(t, issues, 1)
	assert.Contains(t, issues[0].Message, "Example status code 418 does not match any response")
	assert.Contains(t, issues[0].Message, "200, 404")
}

func TestValidateExampleWithoutResponsesIsQuiet(t *testing.T) {
	info, _ := Parse(docBlock(
		"# Examples",
		`200: User { id: 1 }`,
	))
	issues := Validate(info, SignatureInfo{}, 0)
	assert.Empty(t, issues)
}

func TestValidateUnknownPathParam(t *testing.T) {
	info, _ := Parse(docBlock(
		"# Path Parameters",
		"user_id: The identifier",
	))
	issues := Validate(info, pathSig("id"), 5)
	require.Len(t, issues, 2)
	assert.Contains(t, issues[0].Message, "Unknown path parameter 'user_id'")
	assert.Contains(t, issues[0].Message, "Available bindings: 'id'")
	assert.Contains(t, issues[1].Message, "Undocumented path parameter 'id'")
}

func TestValidatePathDocsWithoutExtractor(t *testing.T) {
	info, _ := Parse(docBlock(
		"# Path Parameters",
		"id: The identifier",
	))
	issues := Validate(info, SignatureInfo{}, 0)
	require.Len(t, issues, 1)
	assert.Contains(t, issues[0].Message, "no path extractor found")
}

func TestValidateStructPatternSkipsNameChecks(t *testing.T) {
	info, _ := Parse(docBlock(
		"# Path Parameters",
		"anything: Not checked against fields",
	))
	sig := SignatureInfo{HasPath: true, IsStructPattern: true}
	assert.Empty(t, Validate(info, sig, 0))
}

func TestValidateUndocumentedBindingWarning(t *testing.T) {
	info, _ := Parse(docBlock(
		"Get a user",
	))
	issues := Validate(info, pathSig("id"), 7)
	require.Len(t, issues, 1)
	assert.Equal(t, SeverityWarning, issues[0].Severity)
	assert.Equal(t, 7, issues[0].Line)
	assert.Contains(t, issues[0].Message, "Undocumented path parameter 'id'")
}

func TestValidateUndocumentedBindingsGrouped(t *testing.T) {
	info, _ := Parse(docBlock("Two params"))
	issues := Validate(info, pathSig("org", "id"), 0)
	require.Len(t, issues, 1)
	assert.Contains(t, issues[0].Message, "'org'")
	assert.Contains(t, issues[0].Message, "'id'")
}

func TestValidateUnderscoreBindingExempt(t *testing.T) {
	info, _ := Parse(docBlock("Ignored param"))
	assert.Empty(t, Validate(info, pathSig("_id"), 0))
}

func TestValidateDocumentedBindingQuiet(t *testing.T) {
	info, _ := Parse(docBlock(
		"# Path Parameters",
		"id: The identifier",
	))
	assert.Empty(t, Validate(info, pathSig("id"), 0))
}

func TestValidateIgnoredBlockSkipsAllChecks(t *testing.T) {
	info, _ := Parse(docBlock(
		"@rovo-ignore",
		"# Responses",
		"999: nope",
	))
	assert.Empty(t, Validate(info, pathSig("unused"), 0))
}
