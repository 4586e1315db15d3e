package lsp

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	// registers the commonlog backend used by glsp
	_ "github.com/tliron/commonlog/simple"

	"php-ls/internal/config"
	"php-ls/internal/document"
	"php-ls/internal/features"
	"php-ls/internal/logging"
)

// LanguageServerName is the server name reported to clients
const LanguageServerName = "php-ls"

// Version is the server version reported to clients. It is set at build time.
var Version = "0.1.0"

// Server represents the PHP LSP server
type Server struct {
	server     *server.Server
	docManager *document.Manager
	config     *config.Config
	logger     *log.Logger

	formattingProvider *features.FormattingProvider
}

// NewServer creates a new PHP LSP server
func NewServer(cfg *config.Config) (*Server, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	// Create document manager
	docManager, err := document.NewManager(cfg.Files.Extensions...)
	if err != nil {
		return nil, fmt.Errorf("failed to create document manager: %w", err)
	}

	// Create the server
	lspServer := &Server{
		docManager:         docManager,
		config:             cfg,
		logger:             logging.Default().WithPrefix("lsp"),
		formattingProvider: features.NewFormattingProvider(docManager, cfg.FormatOptions()),
	}

	// Set up GLSP server
	handler := protocol.Handler{
		Initialize:                  lspServer.initialize,
		Initialized:                 lspServer.initialized,
		Shutdown:                    lspServer.shutdown,
		SetTrace:                    lspServer.setTrace,
		TextDocumentDidOpen:         lspServer.textDocumentDidOpen,
		TextDocumentDidChange:       lspServer.textDocumentDidChange,
		TextDocumentDidClose:        lspServer.textDocumentDidClose,
		TextDocumentDidSave:         lspServer.textDocumentDidSave,
		TextDocumentFormatting:      lspServer.textDocumentFormatting,
		TextDocumentRangeFormatting: lspServer.textDocumentRangeFormatting,
	}

	lspServer.server = server.NewServer(&handler, LanguageServerName, logging.ParseLevel(cfg.Log.Level) == log.DebugLevel)

	return lspServer, nil
}

// Run serves the protocol over stdin and stdout
func (s *Server) Run() error {
	s.logger.Info("starting PHP language server", "transport", "stdio")
	defer s.close()

	return s.server.RunStdio()
}

// RunTCP serves the protocol to clients connecting to address
func (s *Server) RunTCP(address string) error {
	s.logger.Info("starting PHP language server", "transport", "tcp", logging.FieldAddress, address)
	defer s.close()

	return s.server.RunTCP(address)
}

func (s *Server) close() {
	s.logger.Info("shutting down PHP language server")
	if s.docManager != nil {
		s.docManager.Close()
	}
}

// ConfigureProtocolLog routes glsp's own logging to stderr at a verbosity
// matching level
func ConfigureProtocolLog(level string) {
	verbosity := 0
	switch logging.ParseLevel(level) {
	case log.DebugLevel:
		verbosity = 2
	case log.WarnLevel:
		verbosity = -1
	case log.ErrorLevel:
		verbosity = -2
	}
	commonlog.Configure(verbosity, nil)
}

// initialize handles the initialize request
func (s *Server) initialize(context *glsp.Context, params *protocol.InitializeParams) (any, error) {
	if params.ClientInfo != nil {
		s.logger.Info("initialize request", "client", params.ClientInfo.Name)
	}

	capabilities := s.getServerCapabilities()

	version := Version
	serverInfo := protocol.InitializeResultServerInfo{
		Name:    LanguageServerName,
		Version: &version,
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo:   &serverInfo,
	}, nil
}

// initialized handles the initialized notification
func (s *Server) initialized(context *glsp.Context, params *protocol.InitializedParams) error {
	s.logger.Debug("client initialized, server ready")
	return nil
}

// shutdown handles the shutdown request
func (s *Server) shutdown(context *glsp.Context) error {
	s.logger.Debug("shutdown request received")
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

// setTrace handles the $/setTrace notification
func (s *Server) setTrace(context *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

// textDocumentDidOpen handles textDocument/didOpen notifications
func (s *Server) textDocumentDidOpen(context *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	s.logger.Debug("document opened", logging.FieldURI, params.TextDocument.URI)

	doc, err := s.docManager.DidOpen(params)
	if err != nil {
		s.logger.Error("failed to open document", logging.FieldURI, params.TextDocument.URI, logging.FieldError, err)
		return err
	}

	// Send diagnostics if this is a PHP file
	if doc.ParseResult != nil {
		s.publishDiagnostics(context, doc)
	}

	return nil
}

// textDocumentDidChange handles textDocument/didChange notifications
func (s *Server) textDocumentDidChange(context *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	s.logger.Debug("document changed",
		logging.FieldURI, params.TextDocument.URI,
		logging.FieldVersion, params.TextDocument.Version)

	doc, err := s.docManager.DidChange(params)
	if err != nil {
		s.logger.Error("failed to apply document changes", logging.FieldURI, params.TextDocument.URI, logging.FieldError, err)
		return err
	}

	if doc.ParseResult != nil {
		s.publishDiagnostics(context, doc)
	}

	return nil
}

// textDocumentDidClose handles textDocument/didClose notifications
func (s *Server) textDocumentDidClose(context *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.logger.Debug("document closed", logging.FieldURI, params.TextDocument.URI)

	err := s.docManager.DidClose(params)
	if err != nil {
		s.logger.Error("failed to close document", logging.FieldURI, params.TextDocument.URI, logging.FieldError, err)
	}

	// Clear diagnostics for closed document
	if context != nil && context.Notify != nil {
		context.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
			URI:         params.TextDocument.URI,
			Diagnostics: []protocol.Diagnostic{},
		})
	}

	return err
}

// textDocumentDidSave handles textDocument/didSave notifications. The content is
// already current from didChange.
func (s *Server) textDocumentDidSave(context *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	s.logger.Debug("document saved", logging.FieldURI, params.TextDocument.URI)
	return nil
}

// textDocumentFormatting handles textDocument/formatting requests
func (s *Server) textDocumentFormatting(context *glsp.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	return s.formattingProvider.ProvideDocumentFormatting(params.TextDocument.URI, params.Options), nil
}

// textDocumentRangeFormatting handles textDocument/rangeFormatting requests
func (s *Server) textDocumentRangeFormatting(context *glsp.Context, params *protocol.DocumentRangeFormattingParams) ([]protocol.TextEdit, error) {
	return s.formattingProvider.ProvideDocumentRangeFormatting(params.TextDocument.URI, params.Range, params.Options), nil
}

// publishDiagnostics sends diagnostics to the client
func (s *Server) publishDiagnostics(context *glsp.Context, doc *document.Document) {
	if context == nil || context.Notify == nil {
		return
	}

	diagnostics := doc.Diagnostics()
	s.logger.Debug("publishing diagnostics", logging.FieldURI, doc.URI, "count", len(diagnostics))

	context.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         doc.URI,
		Diagnostics: diagnostics,
	})
}

// getServerCapabilities returns the server's capabilities
func (s *Server) getServerCapabilities() protocol.ServerCapabilities {
	return protocol.ServerCapabilities{
		// Document synchronization
		TextDocumentSync: protocol.TextDocumentSyncOptions{
			OpenClose: &[]bool{true}[0],
			Change:    &[]protocol.TextDocumentSyncKind{protocol.TextDocumentSyncKindIncremental}[0],
			Save: &protocol.SaveOptions{
				IncludeText: &[]bool{false}[0],
			},
		},

		DocumentFormattingProvider:      true,
		DocumentRangeFormattingProvider: true,
	}
}
