package analysis

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/scala"

	"scala-lint/tsutils"
)

type Queries struct {
	// uses in type position, such as
	// val page: -> AboutPage <- = ...
	TypeReferences *sitter.Query `(type_identifier) @ident`

	// term-level uses, such as
	// -> Files <- .readAllBytes(...)
	TermReferences *sitter.Query `(identifier) @ident`
}

func (q *Queries) Init() error {
	return tsutils.InitQueriesStructure(q, scala.GetLanguage())
}
