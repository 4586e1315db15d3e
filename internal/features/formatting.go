package features

import (
	"slices"

	"github.com/charmbracelet/log"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"php-ls/internal/document"
	"php-ls/internal/format"
	"php-ls/internal/logging"
)

// DocumentStore resolves open documents by URI
type DocumentStore interface {
	GetDocument(uri string) (*document.Document, bool)
}

// FormattingProvider handles document formatting for PHP files
type FormattingProvider struct {
	store    DocumentStore
	defaults format.Options
	logger   *log.Logger
}

// NewFormattingProvider creates a new formatting provider. defaults fill in
// options the client leaves out.
func NewFormattingProvider(store DocumentStore, defaults format.Options) *FormattingProvider {
	return &FormattingProvider{
		store:    store,
		defaults: defaults,
		logger:   logging.Default().WithPrefix("formatting"),
	}
}

// ProvideDocumentFormatting formats an entire document. The edits are ordered
// from the end of the document to the start.
func (f *FormattingProvider) ProvideDocumentFormatting(uri string, options protocol.FormattingOptions) []protocol.TextEdit {
	doc, ok := f.parsed(uri)
	if !ok {
		return []protocol.TextEdit{}
	}

	edits := format.Format(doc, format.OptionsFromProtocol(options, f.defaults))
	f.logger.Debug("formatted document", logging.FieldURI, uri, logging.FieldEdits, len(edits))

	slices.Reverse(edits)
	return edits
}

// ProvideDocumentRangeFormatting formats the part of a document inside rng. The
// edits are ordered from the end of the document to the start.
func (f *FormattingProvider) ProvideDocumentRangeFormatting(uri string, rng protocol.Range, options protocol.FormattingOptions) []protocol.TextEdit {
	doc, ok := f.parsed(uri)
	if !ok {
		return []protocol.TextEdit{}
	}

	start := doc.OffsetAtPosition(rng.Start)
	end := doc.OffsetAtPosition(rng.End)
	if end < start {
		start, end = end, start
	}

	edits := format.FormatRange(doc, format.OptionsFromProtocol(options, f.defaults), start, end)
	f.logger.Debug("formatted range",
		logging.FieldURI, uri,
		logging.FieldStart, start,
		logging.FieldEnd, end,
		logging.FieldEdits, len(edits))

	slices.Reverse(edits)
	return edits
}

// parsed returns the document for uri if it is known and has a syntax tree
func (f *FormattingProvider) parsed(uri string) (*document.Document, bool) {
	doc, exists := f.store.GetDocument(uri)
	if !exists {
		f.logger.Debug("format request for unknown document", logging.FieldURI, uri)
		return nil, false
	}
	if doc.Root() == nil {
		f.logger.Debug("format request for unparsed document", logging.FieldURI, uri)
		return nil, false
	}
	return doc, true
}
