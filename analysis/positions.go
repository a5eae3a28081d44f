package analysis

import (
	"github.com/sourcegraph/go-lsp"

	"scala-lint/imports"
)

func offsetToPosition(body []byte, off imports.Position) lsp.Position {
	line := 0
	col := 0
	for i := 0; i < len(body) && i < int(off); i++ {
		if body[i] == '\n' {
			line++
			col = 0
		} else {
			col++
		}
	}
	return lsp.Position{Line: line, Character: col}
}

func spanToRange(body []byte, sp imports.Span) lsp.Range {
	return lsp.Range{
		Start: offsetToPosition(body, sp.Start),
		End:   offsetToPosition(body, sp.End),
	}
}
