package document

import (
	"fmt"
	"net/url"
	"sync"

	"github.com/charmbracelet/log"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"php-ls/internal/logging"
	"php-ls/internal/parser"
)

// LanguageID is the identifier clients use for PHP documents
const LanguageID = "php"

// DefaultExtensions are the file extensions treated as PHP when no configuration says otherwise
var DefaultExtensions = []string{".php", ".phtml", ".inc", ".module"}

// Manager handles document lifecycle and caching
type Manager struct {
	documents  map[string]*Document
	parser     *parser.TreeSitterParser
	extensions []string
	logger     *log.Logger

	// guards documents; also serialises use of the parser, which is not safe
	// for concurrent use
	mutex sync.RWMutex
}

// NewManager creates a new document manager. Documents whose path has one of the
// extensions, or that are opened with the PHP language id, are parsed.
func NewManager(extensions ...string) (*Manager, error) {
	p, err := parser.NewParser()
	if err != nil {
		return nil, fmt.Errorf("failed to create parser: %w", err)
	}

	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}

	return &Manager{
		documents:  make(map[string]*Document),
		parser:     p,
		extensions: extensions,
		logger:     logging.Default().WithPrefix("documents"),
	}, nil
}

// Close releases resources held by the manager
func (m *Manager) Close() {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.parser != nil {
		m.parser.Close()
		m.parser = nil
	}
	m.documents = make(map[string]*Document)
}

// DidOpen handles the textDocument/didOpen notification
func (m *Manager) DidOpen(params *protocol.DidOpenTextDocumentParams) (*Document, error) {
	uri := params.TextDocument.URI

	if _, err := url.Parse(uri); err != nil {
		return nil, fmt.Errorf("invalid URI: %w", err)
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	doc, err := m.build(uri, []byte(params.TextDocument.Text), params.TextDocument.Version,
		params.TextDocument.LanguageID == LanguageID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}

	m.documents[uri] = doc
	return doc, nil
}

// DidChange handles the textDocument/didChange notification
func (m *Manager) DidChange(params *protocol.DidChangeTextDocumentParams) (*Document, error) {
	uri := params.TextDocument.URI

	m.mutex.Lock()
	defer m.mutex.Unlock()

	old, exists := m.documents[uri]
	if !exists {
		return nil, fmt.Errorf("document not found: %s", uri)
	}

	content := old.Content
	for _, change := range params.ContentChanges {
		switch change := change.(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			content = []byte(change.Text)
		case protocol.TextDocumentContentChangeEvent:
			if change.Range == nil {
				content = []byte(change.Text)
				continue
			}
			updated, err := applyChange(content, *change.Range, change.Text)
			if err != nil {
				// should not happen with a well-behaved client; keep what we have
				m.logger.Warn("incremental change rejected", logging.FieldURI, uri, logging.FieldError, err)
				continue
			}
			content = updated
		}
	}

	doc, err := m.build(uri, content, params.TextDocument.Version, old.ParseResult != nil)
	if err != nil {
		return nil, fmt.Errorf("failed to re-parse document: %w", err)
	}

	m.documents[uri] = doc
	return doc, nil
}

// DidClose handles the textDocument/didClose notification
func (m *Manager) DidClose(params *protocol.DidCloseTextDocumentParams) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	delete(m.documents, params.TextDocument.URI)
	return nil
}

// GetDocument retrieves a document by URI
func (m *Manager) GetDocument(uri string) (*Document, bool) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	doc, exists := m.documents[uri]
	return doc, exists
}

// GetAllDocuments returns a copy of all currently managed documents
func (m *Manager) GetAllDocuments() map[string]*Document {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	allDocuments := make(map[string]*Document, len(m.documents))
	for uri, doc := range m.documents {
		allDocuments[uri] = doc
	}

	return allDocuments
}

// Parse builds a standalone document from content without registering it
func (m *Manager) Parse(uri string, content []byte) (*Document, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	return m.build(uri, content, 0, true)
}

// build creates a document snapshot, parsing it when it is PHP. Callers hold the lock.
func (m *Manager) build(uri string, content []byte, version int32, forcePHP bool) (*Document, error) {
	doc := New(uri, content, version, nil)
	if !forcePHP && !doc.IsPHPFile(m.extensions) {
		return doc, nil
	}
	if m.parser == nil {
		return nil, fmt.Errorf("manager is closed")
	}

	result, err := m.parser.Parse(content)
	if err != nil {
		return nil, err
	}

	doc.ParseResult = result
	return doc, nil
}

// pathFromURI extracts the file path of a URI, falling back to the URI itself
func pathFromURI(uri string) string {
	parsed, err := url.Parse(uri)
	if err != nil || parsed.Path == "" {
		return uri
	}
	return parsed.Path
}
