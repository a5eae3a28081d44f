package analysis

import (
	"github.com/sourcegraph/go-lsp"

	"scala-lint/imports"
)

type Diagnostic struct {
	lsp.Diagnostic
	Actions []imports.Action
}

// Diagnostics returns the unit's warnings in protocol form. The quickfix
// actions ride along untranslated so callers can build workspace edits or
// apply them to the raw bytes.
func (s *Engine) Diagnostics(uri string) ([]Diagnostic, error) {
	fctx, err := s.GetFileContext(uri)
	if err != nil {
		return nil, err
	}
	diags := []Diagnostic{}
	for _, w := range fctx.Warnings {
		diags = append(diags, Diagnostic{
			Diagnostic: lsp.Diagnostic{
				Range:    spanToRange(fctx.Body, w.Pos),
				Severity: lsp.Warning,
				Source:   w.Category,
				Message:  w.Message,
			},
			Actions: w.Actions,
		})
	}
	return diags, nil
}

// Edits flattens every quickfix attached to the unit's warnings into
// protocol text edits.
func (s *Engine) Edits(uri string) ([]lsp.TextEdit, error) {
	fctx, err := s.GetFileContext(uri)
	if err != nil {
		return nil, err
	}
	var actions []imports.Action
	for _, w := range fctx.Warnings {
		actions = append(actions, w.Actions...)
	}
	return ToTextEdits(fctx.Body, actions), nil
}

// Fix applies every quickfix for the unit to its source and returns the
// rewritten bytes.
func (s *Engine) Fix(uri string) ([]byte, error) {
	fctx, err := s.GetFileContext(uri)
	if err != nil {
		return nil, err
	}
	var actions []imports.Action
	for _, w := range fctx.Warnings {
		actions = append(actions, w.Actions...)
	}
	return imports.Apply(fctx.Body, actions), nil
}

func ToTextEdits(body []byte, actions []imports.Action) []lsp.TextEdit {
	edits := []lsp.TextEdit{}
	for _, act := range actions {
		edits = append(edits, lsp.TextEdit{
			Range:   spanToRange(body, act.Span),
			NewText: act.Text,
		})
	}
	return edits
}
