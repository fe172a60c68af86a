package server

// LSP method names handled by the server.
const (
	MethodInitialize         = "initialize"
	MethodInitialized        = "initialized"
	MethodShutdown           = "shutdown"
	MethodExit               = "exit"
	MethodDidOpen            = "textDocument/didOpen"
	MethodDidChange          = "textDocument/didChange"
	MethodDidClose           = "textDocument/didClose"
	MethodCompletion         = "textDocument/completion"
	MethodHover              = "textDocument/hover"
	MethodDefinition         = "textDocument/definition"
	MethodReferences         = "textDocument/references"
	MethodPrepareRename      = "textDocument/prepareRename"
	MethodRename             = "textDocument/rename"
	MethodPublishDiagnostics = "textDocument/publishDiagnostics"
)
