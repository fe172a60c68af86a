package server

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"
	"go.uber.org/zap"

	"rovo-lsp/internal/config"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	return New(config.DefaultConfig(), zap.NewNop())
}

func TestInitializeCapabilities(t *testing.T) {
	s := newTestServer(t)
	result := s.initialize(&protocol.InitializeParams{})

	require.NotNil(t, result.ServerInfo)
	assert.Equal(t, "rovo-lsp", result.ServerInfo.Name)

	sync, ok := result.Capabilities.TextDocumentSync.(*protocol.TextDocumentSyncOptions)
	require.True(t, ok)
	assert.True(t, sync.OpenClose)
	assert.Equal(t, protocol.TextDocumentSyncKindFull, sync.Change)

	require.NotNil(t, result.Capabilities.CompletionProvider)
	assert.ElementsMatch(t, []string{"@", "#"}, result.Capabilities.CompletionProvider.TriggerCharacters)

	rename, ok := result.Capabilities.RenameProvider.(*protocol.RenameOptions)
	require.True(t, ok)
	assert.True(t, rename.PrepareProvider)
}

func TestCompletionGatedOnHandlerContext(t *testing.T) {
	s := newTestServer(t)
	docURI := uri.File("/tmp/handlers.rs")

	inContext := strings.Join([]string{
		"/// @",
		"#[rovo]",
		"async fn h() {}",
	}, "\n")
	s.store.Open(docURI, inContext, 1)

	list := s.completion(&protocol.CompletionParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: docURI},
			Position:     protocol.Position{Line: 0, Character: 5},
		},
	})
	require.NotNil(t, list)
	assert.Len(t, list.Items, 4)

	// the same comment with no handler below stays quiet
	s.store.Update(docURI, "/// @\nconst X: u8 = 0;", 2)
	list = s.completion(&protocol.CompletionParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: docURI},
			Position:     protocol.Position{Line: 0, Character: 5},
		},
	})
	assert.Empty(t, list.Items)
}

func TestCompletionUnknownDocument(t *testing.T) {
	s := newTestServer(t)
	list := s.completion(&protocol.CompletionParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: uri.File("/tmp/ghost.rs")},
		},
	})
	require.NotNil(t, list)
	assert.Empty(t, list.Items)
}
