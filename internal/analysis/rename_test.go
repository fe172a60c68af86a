package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.lsp.dev/uri"
)

func TestPrepareRename(t *testing.T) {
	rng, placeholder, ok := PrepareRename(tagDoc, at(2, 10))
	require.True(t, ok)
	assert.Equal(t, "users", placeholder)
	assert.Equal(t, uint32(2), rng.Start.Line)
	assert.Equal(t, uint32(9), rng.Start.Character)
	assert.Equal(t, uint32(14), rng.End.Character)
}

func TestPrepareRenameRejectsNonTagLines(t *testing.T) {
	_, _, ok := PrepareRename(tagDoc, at(0, 4))
	assert.False(t, ok)
}

func TestRenameTag(t *testing.T) {
	docURI := uri.File("/tmp/handlers.rs")
	edit := RenameTag(docURI, tagDoc, at(2, 10), "customers")
	require.NotNil(t, edit)
	edits := edit.Changes[docURI]
	require.Len(t, edits, 2)
	for _, e := range edits {
		assert.Equal(t, "customers", e.NewText)
		assert.Equal(t, e.Range.Start.Character, uint32(9))
		assert.Equal(t, e.Range.End.Character, uint32(14))
	}
	assert.Equal(t, uint32(2), edits[0].Range.Start.Line)
	assert.Equal(t, uint32(8), edits[1].Range.Start.Line)
}

func TestRenameTagNotRenameable(t *testing.T) {
	assert.Nil(t, RenameTag(uri.File("/tmp/a.rs"), tagDoc, at(4, 0), "x"))
}
