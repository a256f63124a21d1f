// Package lsp implements a language server that colors the words of
// plain-text documents and checks wordhue config files.
package lsp

import (
	"github.com/jsvensson/wordhue"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

const serverName = "wordhue-lsp"

type Server struct {
	handler  protocol.Handler
	docs     *DocumentStore
	analyzer *Analyzer
	version  string
	log      commonlog.Logger
}

func NewServer(gen *wordhue.Generator, version string) *Server {
	s := &Server{
		docs: NewDocumentStore(),
		analyzer: &Analyzer{
			Tokenizer: gen.Tokenizer,
			Sampler:   gen.Options.Sampler,
		},
		version: version,
		log:     commonlog.GetLogger("wordhue.lsp"),
	}

	s.handler = protocol.Handler{
		Initialize:                    s.initialize,
		Initialized:                   s.initialized,
		Shutdown:                      s.shutdown,
		SetTrace:                      s.setTrace,
		TextDocumentDidOpen:           s.textDocumentDidOpen,
		TextDocumentDidChange:         s.textDocumentDidChange,
		TextDocumentDidClose:          s.textDocumentDidClose,
		TextDocumentColor:             s.textDocumentDocumentColor,
		TextDocumentColorPresentation: s.textDocumentColorPresentation,
		TextDocumentHover:             s.textDocumentHover,
		TextDocumentFormatting:        s.textDocumentFormatting,
	}

	return s
}

// Run serves over stdio. verbosity follows commonlog: 0 is errors only.
func (s *Server) Run(verbosity int) error {
	commonlog.Configure(verbosity, nil)
	srv := server.NewServer(&s.handler, serverName, false)
	return srv.RunStdio()
}

func (s *Server) initialize(_ *glsp.Context, params *protocol.InitializeParams) (any, error) {
	capabilities := s.handler.CreateServerCapabilities()

	syncKind := protocol.TextDocumentSyncKindFull
	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: &protocol.True,
		Change:    &syncKind,
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    serverName,
			Version: &s.version,
		},
	}, nil
}

func (s *Server) initialized(_ *glsp.Context, _ *protocol.InitializedParams) error {
	return nil
}

func (s *Server) shutdown(_ *glsp.Context) error {
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

func (s *Server) setTrace(_ *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (s *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	result := s.analyzer.Analyze(uri, params.TextDocument.Text)
	s.docs.Open(uri, params.TextDocument.Text, result)
	s.publish(ctx, params.TextDocument.URI, result)
	return nil
}

func (s *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	for _, change := range params.ContentChanges {
		if c, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
			result := s.analyzer.Analyze(uri, c.Text)
			s.docs.Update(uri, c.Text, result)
			s.publish(ctx, params.TextDocument.URI, result)
		}
	}
	return nil
}

func (s *Server) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.Close(string(params.TextDocument.URI))
	s.publish(ctx, params.TextDocument.URI, &AnalysisResult{})
	return nil
}

// publish sends the diagnostics of result. An empty list clears earlier ones.
func (s *Server) publish(ctx *glsp.Context, uri protocol.DocumentUri, result *AnalysisResult) {
	diags := result.Diagnostics
	if diags == nil {
		diags = []protocol.Diagnostic{}
	}
	s.log.Debugf("%s: %d words, %d diagnostics", uri, len(result.Words), len(diags))
	if ctx == nil {
		return
	}
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diags,
	})
}
