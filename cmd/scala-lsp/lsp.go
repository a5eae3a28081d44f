package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/sourcegraph/go-lsp"
	"github.com/sourcegraph/jsonrpc2"

	"scala-lint/analysis"
	"scala-lint/symbols"
)

const codeActionRemoveUnusedImports = "scala-lint.remove_unused_imports"

type server struct {
	rootURI string
	engine  *analysis.Engine
}

type initializationOptions struct {
	// paths to symbol manifests describing the modules wildcard imports
	// can draw from
	Symbols []string `json:"symbols"`
}

func (s *server) Initialize(ctx context.Context, conn jsonrpc2.JSONRPC2, params lsp.InitializeParams) (*lsp.InitializeResult, error) {
	s.rootURI = string(params.RootURI)

	var opts initializationOptions
	if params.InitializationOptions != nil {
		if err := unmarshalIface(&opts, params.InitializationOptions); err != nil {
			return nil, fmt.Errorf("failed to read initialization options: %w", err)
		}
	}

	table := symbols.NewTable()
	for _, file := range opts.Symbols {
		manifest, err := symbols.LoadManifest(file)
		if err != nil {
			log.Printf("skipping symbol manifest %s: %s", file, err)
			continue
		}
		table.Add(manifest)
	}

	s.engine = analysis.New(table)
	s.engine.Fixes = true

	return &lsp.InitializeResult{
		Capabilities: lsp.ServerCapabilities{
			TextDocumentSync: &lsp.TextDocumentSyncOptionsOrKind{
				Options: &lsp.TextDocumentSyncOptions{
					OpenClose: true,
					Change:    lsp.TDSKFull,
				},
			},
			CodeActionProvider: true,
			ExecuteCommandProvider: &lsp.ExecuteCommandOptions{
				Commands: []string{codeActionRemoveUnusedImports},
			},
		},
	}, nil
}

func (s *server) Initialized(ctx context.Context, conn jsonrpc2.JSONRPC2, params struct{}) {
}

func (s *server) evaluate(ctx context.Context, conn jsonrpc2.JSONRPC2, uri lsp.DocumentURI, content string) {
	diags := lsp.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: []lsp.Diagnostic{},
	}

	fileURI := strings.TrimPrefix(string(uri), s.rootURI)

	err := s.engine.SetFileContext(fileURI, []byte(content))
	if err != nil {
		log.Printf("failed to analyse %s: %s", fileURI, err)
		return
	}

	found, err := s.engine.Diagnostics(fileURI)
	if err == nil {
		for _, d := range found {
			diags.Diagnostics = append(diags.Diagnostics, d.Diagnostic)
		}
	}

	conn.Notify(ctx, "textDocument/publishDiagnostics", diags)
}

func (s *server) DidOpen(ctx context.Context, conn jsonrpc2.JSONRPC2, params lsp.DidOpenTextDocumentParams) {
	go s.evaluate(ctx, conn, params.TextDocument.URI, params.TextDocument.Text)
}

func (s *server) DidChange(ctx context.Context, conn jsonrpc2.JSONRPC2, params lsp.DidChangeTextDocumentParams) {
	go s.evaluate(ctx, conn, params.TextDocument.URI, params.ContentChanges[0].Text)
}

func (s *server) DidClose(ctx context.Context, conn jsonrpc2.JSONRPC2, params lsp.DidCloseTextDocumentParams) {
	s.engine.DeleteFileContext(strings.TrimPrefix(string(params.TextDocument.URI), s.rootURI))
}

func (s *server) CodeAction(ctx context.Context, conn jsonrpc2.JSONRPC2, params lsp.CodeActionParams) ([]lsp.Command, error) {
	k := []lsp.Command{}

	fileURI := strings.TrimPrefix(string(params.TextDocument.URI), s.rootURI)
	edits, err := s.engine.Edits(fileURI)
	if err != nil {
		return nil, err
	}
	if len(edits) > 0 {
		marshalled, _ := json.Marshal(params)
		var raw interface{}
		json.Unmarshal(marshalled, &raw)
		k = append(k, lsp.Command{
			Title:     "Remove unused imports",
			Command:   codeActionRemoveUnusedImports,
			Arguments: []interface{}{raw},
		})
	}

	return k, nil
}

type applyWorkspaceEditParams struct {
	Edit lsp.WorkspaceEdit `json:"edit"`
}

func (s *server) removeUnusedImports(ctx context.Context, conn jsonrpc2.JSONRPC2, params lsp.CodeActionParams) error {
	fileURI := strings.TrimPrefix(string(params.TextDocument.URI), s.rootURI)
	edits, err := s.engine.Edits(fileURI)
	if err != nil {
		return err
	}

	payload := applyWorkspaceEditParams{
		Edit: lsp.WorkspaceEdit{
			Changes: map[string][]lsp.TextEdit{
				string(params.TextDocument.URI): edits,
			},
		},
	}

	dl, cancel := context.WithDeadline(ctx, time.Now().Add(time.Second*5))
	defer cancel()
	var r interface{}
	return conn.Call(dl, "workspace/applyEdit", payload, &r)
}

func (s *server) ExecuteCommand(ctx context.Context, conn jsonrpc2.JSONRPC2, params lsp.ExecuteCommandParams) (interface{}, error) {
	switch params.Command {
	case codeActionRemoveUnusedImports:
		var p lsp.CodeActionParams
		if err := unmarshalIface(&p, params.Arguments[0]); err != nil {
			return nil, err
		}
		go s.removeUnusedImports(ctx, conn, p)
		return 0, nil
	}

	return nil, errors.New("unsupported command")
}

func unmarshalIface(out interface{}, in interface{}) error {
	data, err := json.Marshal(in)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}
