// Package server runs the annotation language server over stdio. One
// JSON-RPC connection, full document sync, diagnostics pushed on every open
// and change.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.uber.org/zap"

	"rovo-lsp/internal/analysis"
	"rovo-lsp/internal/annotation"
	"rovo-lsp/internal/config"
	"rovo-lsp/internal/docs"
	"rovo-lsp/internal/version"
)

const serverName = "rovo-lsp"

// Server dispatches LSP requests to the analysis engines.
type Server struct {
	logger *zap.Logger
	store  *DocumentStore
	window int

	conn jsonrpc2.Conn
}

// New builds a server from configuration. Extra security schemes from the
// config are merged into the documentation tables here, before any request
// can observe them.
func New(cfg *config.Config, logger *zap.Logger) *Server {
	window := annotation.DefaultScanWindow
	if cfg != nil && cfg.ScanWindow > 0 {
		window = cfg.ScanWindow
	}
	if cfg != nil {
		extra := make([]docs.SchemeDoc, 0, len(cfg.SecuritySchemes))
		for _, s := range cfg.SecuritySchemes {
			extra = append(extra, docs.SchemeDoc{Name: s.Name, Summary: s.Summary, Detail: s.Documentation})
		}
		docs.MergeSchemes(extra)
	}
	return &Server{
		logger: logger,
		store:  NewDocumentStore(),
		window: window,
	}
}

// RunStdio serves one connection over stdin/stdout and blocks until the
// client disconnects or requests exit.
func (s *Server) RunStdio(ctx context.Context) error {
	return s.Run(ctx, newStdioConn())
}

// Run serves one connection over the given transport.
func (s *Server) Run(ctx context.Context, rwc io.ReadWriteCloser) error {
	conn := jsonrpc2.NewConn(jsonrpc2.NewStream(rwc))
	s.conn = conn
	conn.Go(ctx, s.handler())
	<-conn.Done()
	if err := conn.Err(); err != nil && err != io.EOF {
		return fmt.Errorf("connection closed: %w", err)
	}
	return nil
}

type prepareRenameResult struct {
	Range       protocol.Range `json:"range"`
	Placeholder string         `json:"placeholder"`
}

func (s *Server) handler() jsonrpc2.Handler {
	return func(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
		s.logger.Debug("request", zap.String("method", req.Method()))
		switch req.Method() {
		case MethodInitialize:
			var params protocol.InitializeParams
			if err := unmarshalParams(req, &params); err != nil {
				return reply(ctx, nil, err)
			}
			return reply(ctx, s.initialize(&params), nil)

		case MethodInitialized:
			s.logger.Info("server initialized")
			return reply(ctx, nil, nil)

		case MethodShutdown:
			s.logger.Info("shutdown requested")
			return reply(ctx, nil, nil)

		case MethodExit:
			s.logger.Info("exiting")
			return s.conn.Close()

		case MethodDidOpen:
			var params protocol.DidOpenTextDocumentParams
			if err := unmarshalParams(req, &params); err != nil {
				return reply(ctx, nil, err)
			}
			s.store.Open(params.TextDocument.URI, params.TextDocument.Text, params.TextDocument.Version)
			s.publishDiagnostics(ctx, params.TextDocument.URI, params.TextDocument.Text)
			return reply(ctx, nil, nil)

		case MethodDidChange:
			var params protocol.DidChangeTextDocumentParams
			if err := unmarshalParams(req, &params); err != nil {
				return reply(ctx, nil, err)
			}
			if len(params.ContentChanges) > 0 {
				// Full sync: the last change carries the whole document.
				text := params.ContentChanges[len(params.ContentChanges)-1].Text
				s.store.Update(params.TextDocument.URI, text, params.TextDocument.Version)
				s.publishDiagnostics(ctx, params.TextDocument.URI, text)
			}
			return reply(ctx, nil, nil)

		case MethodDidClose:
			var params protocol.DidCloseTextDocumentParams
			if err := unmarshalParams(req, &params); err != nil {
				return reply(ctx, nil, err)
			}
			s.store.Close(params.TextDocument.URI)
			return reply(ctx, nil, nil)

		case MethodCompletion:
			var params protocol.CompletionParams
			if err := unmarshalParams(req, &params); err != nil {
				return reply(ctx, nil, err)
			}
			return reply(ctx, s.completion(&params), nil)

		case MethodHover:
			var params protocol.HoverParams
			if err := unmarshalParams(req, &params); err != nil {
				return reply(ctx, nil, err)
			}
			content, ok := s.store.Get(params.TextDocument.URI)
			if !ok {
				return reply(ctx, nil, nil)
			}
			return reply(ctx, analysis.Hover(content, params.Position), nil)

		case MethodDefinition:
			var params protocol.DefinitionParams
			if err := unmarshalParams(req, &params); err != nil {
				return reply(ctx, nil, err)
			}
			content, ok := s.store.Get(params.TextDocument.URI)
			if !ok {
				return reply(ctx, nil, nil)
			}
			return reply(ctx, analysis.Definition(params.TextDocument.URI, content, params.Position), nil)

		case MethodReferences:
			var params protocol.ReferenceParams
			if err := unmarshalParams(req, &params); err != nil {
				return reply(ctx, nil, err)
			}
			content, ok := s.store.Get(params.TextDocument.URI)
			if !ok {
				return reply(ctx, nil, nil)
			}
			return reply(ctx, analysis.TagReferences(params.TextDocument.URI, content, params.Position), nil)

		case MethodPrepareRename:
			var params protocol.TextDocumentPositionParams
			if err := unmarshalParams(req, &params); err != nil {
				return reply(ctx, nil, err)
			}
			content, ok := s.store.Get(params.TextDocument.URI)
			if !ok {
				return reply(ctx, nil, nil)
			}
			rng, placeholder, found := analysis.PrepareRename(content, params.Position)
			if !found {
				return reply(ctx, nil, nil)
			}
			return reply(ctx, prepareRenameResult{Range: rng, Placeholder: placeholder}, nil)

		case MethodRename:
			var params protocol.RenameParams
			if err := unmarshalParams(req, &params); err != nil {
				return reply(ctx, nil, err)
			}
			content, ok := s.store.Get(params.TextDocument.URI)
			if !ok {
				return reply(ctx, nil, nil)
			}
			return reply(ctx, analysis.RenameTag(params.TextDocument.URI, content, params.Position, params.NewName), nil)

		default:
			return jsonrpc2.MethodNotFoundHandler(ctx, reply, req)
		}
	}
}

func unmarshalParams(req jsonrpc2.Request, v interface{}) error {
	if len(req.Params()) == 0 {
		return nil
	}
	if err := json.Unmarshal(req.Params(), v); err != nil {
		return fmt.Errorf("%w: %s", jsonrpc2.ErrParse, err)
	}
	return nil
}

func (s *Server) initialize(params *protocol.InitializeParams) *protocol.InitializeResult {
	s.logger.Info("initializing",
		zap.Int32("pid", params.ProcessID),
		zap.Int("scan_window", s.window))
	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: true,
				Change:    protocol.TextDocumentSyncKindFull,
			},
			CompletionProvider: &protocol.CompletionOptions{
				TriggerCharacters: []string{"@", "#"},
			},
			HoverProvider:      true,
			DefinitionProvider: true,
			ReferencesProvider: true,
			RenameProvider:     &protocol.RenameOptions{PrepareProvider: true},
		},
		ServerInfo: &protocol.ServerInfo{
			Name:    serverName,
			Version: version.Version,
		},
	}
}

// completion gates on handler context before consulting the engine, so
// arbitrary doc comments elsewhere in a file stay quiet.
func (s *Server) completion(params *protocol.CompletionParams) *protocol.CompletionList {
	list := &protocol.CompletionList{IsIncomplete: false, Items: []protocol.CompletionItem{}}
	content, ok := s.store.Get(params.TextDocument.URI)
	if !ok {
		return list
	}
	lines := strings.Split(content, "\n")
	if !annotation.InHandlerContext(lines, int(params.Position.Line), s.window) {
		return list
	}
	if items := analysis.Complete(content, params.Position, s.window); items != nil {
		list.Items = items
	}
	return list
}

func (s *Server) publishDiagnostics(ctx context.Context, docURI protocol.DocumentURI, content string) {
	diags := analysis.Diagnostics(content)
	if diags == nil {
		diags = []protocol.Diagnostic{}
	}
	s.logger.Debug("publishing diagnostics",
		zap.String("uri", string(docURI)),
		zap.Int("count", len(diags)))
	params := &protocol.PublishDiagnosticsParams{
		URI:         docURI,
		Diagnostics: diags,
	}
	if err := s.conn.Notify(ctx, MethodPublishDiagnostics, params); err != nil {
		s.logger.Warn("failed to publish diagnostics", zap.Error(err))
	}
}
