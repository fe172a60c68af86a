package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.lsp.dev/uri"
)

const tagDoc = `/// List users
/// # Metadata
/// @tag users
#[rovo]
async fn list_users() {}

/// Get a user
/// # Metadata
/// @tag users
/// @tag admin
#[rovo]
async fn get_user() {}
`

func TestTagReferences(t *testing.T) {
	docURI := uri.File("/tmp/handlers.rs")
	locs := TagReferences(docURI, tagDoc, at(2, 10))
	require.Len(t, locs, 2)
	assert.Equal(t, uint32(2), locs[0].Range.Start.Line)
	assert.Equal(t, uint32(8), locs[1].Range.Start.Line)
	// spans cover only the tag value
	assert.Equal(t, uint32(9), locs[0].Range.Start.Character)
	assert.Equal(t, uint32(14), locs[0].Range.End.Character)
}

func TestTagReferencesDifferentValue(t *testing.T) {
	locs := TagReferences(uri.File("/tmp/a.rs"), tagDoc, at(9, 10))
	require.Len(t, locs, 1)
	assert.Equal(t, uint32(9), locs[0].Range.Start.Line)
}

func TestTagReferencesNotOnTagLine(t *testing.T) {
	assert.Empty(t, TagReferences(uri.File("/tmp/a.rs"), tagDoc, at(0, 4)))
	assert.Empty(t, TagReferences(uri.File("/tmp/a.rs"), tagDoc, at(3, 0)))
}
