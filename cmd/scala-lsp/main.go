package main

import (
	"bufio"
	"fmt"
	"log"
	"os"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/scala"

	"scala-lint/analysis"
	lspserver "scala-lint/lsp-server"
)

func main() {
	if len(os.Args) >= 3 {
		data, err := os.ReadFile(os.Args[2])
		if err != nil {
			panic(err)
		}

		parser := analysis.ScalaParser()
		tree := parser.Parse(nil, data)

		switch os.Args[1] {
		case "parse":
			println(tree.RootNode().String())
		case "query-repl":
			scanner := bufio.NewScanner(os.Stdin)

			fmt.Printf("> ")
			for scanner.Scan() {
				q, e := sitter.NewQuery(scanner.Bytes(), scala.GetLanguage())
				if e != nil {
					fmt.Printf("bad query: %s\n", e)
					continue
				}

				qc := sitter.NewQueryCursor()
				qc.Exec(q, tree.RootNode())

				for match, goNext := qc.NextMatch(); goNext; match, goNext = qc.NextMatch() {
					for idx, cap := range match.Captures {
						println("capture", idx, cap.Node.String())
						println(cap.Node.Content(data))
					}
				}

				fmt.Printf("> ")
			}

			if err := scanner.Err(); err != nil {
				log.Fatal(err)
			}
		}
	} else {
		startServer()
	}
}

func startServer() {
	s := server{}
	a := lspserver.MethodMap{
		"initialize":              lspserver.Zu(s.Initialize),
		"initialized":             lspserver.Zu(s.Initialized),
		"textDocument/didOpen":    lspserver.Zu(s.DidOpen),
		"textDocument/didChange":  lspserver.Zu(s.DidChange),
		"textDocument/didClose":   lspserver.Zu(s.DidClose),
		"textDocument/codeAction":  lspserver.Zu(s.CodeAction),
		"workspace/executeCommand": lspserver.Zu(s.ExecuteCommand),
	}
	lspserver.StartServer(a)
}
