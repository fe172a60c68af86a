package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.lsp.dev/uri"
)

const defDoc = `#[derive(Serialize)]
pub struct User {
    id: u64,
}

/// # Responses
/// 200: Json<Vec<User>> - All users
#[rovo]
async fn list_users() -> Json<Vec<User>> {}
`

func TestDefinitionJumpsThroughWrappers(t *testing.T) {
	docURI := uri.File("/tmp/handlers.rs")
	line := "/// 200: Json<Vec<User>> - All users"
	locs := Definition(docURI, defDoc, at(6, strings.Index(line, "User")))
	require.Len(t, locs, 1)
	assert.Equal(t, docURI, locs[0].URI)
	assert.Equal(t, uint32(1), locs[0].Range.Start.Line)
	assert.Equal(t, uint32(11), locs[0].Range.Start.Character)
	assert.Equal(t, uint32(15), locs[0].Range.End.Character)
}

func TestDefinitionMissingType(t *testing.T) {
	doc := "/// # Responses\n/// 200: Json<Ghost> - ok\n#[rovo]\nfn f() {}"
	line := "/// 200: Json<Ghost> - ok"
	assert.Empty(t, Definition(uri.File("/tmp/a.rs"), doc, at(1, strings.Index(line, "Ghost"))))
}

func TestDefinitionOutsideComment(t *testing.T) {
	assert.Empty(t, Definition(uri.File("/tmp/a.rs"), defDoc, at(1, 12)))
}
