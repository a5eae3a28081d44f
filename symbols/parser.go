package symbols

import (
	"fmt"
	"os"

	"github.com/alecthomas/participle/v2"
)

// Manifest files describe the members a module exports, so the linter can
// answer wildcard-membership queries and attach deprecation notes. The
// format is deliberately small:
//
//	module scala.collection {
//	  member JavaConverters object deprecated "Use scala.jdk.CollectionConverters instead"
//	  member mutable package
//	}

type Manifest struct {
	Modules []Module `@@*`
}

type Module struct {
	Name       []string `"module" @Ident ("." @Ident)*`
	Deprecated *string  `("deprecated" @String)?`
	Members    []Member `"{" @@* "}"`
}

type Member struct {
	Name       string  `"member" @Ident`
	Kind       string  `@("object" | "class" | "trait" | "type" | "def" | "val" | "package")`
	Deprecated *string `("deprecated" @String)?`
}

func (m *Module) Path() string {
	out := ""
	for i, part := range m.Name {
		if i > 0 {
			out += "."
		}
		out += part
	}
	return out
}

var Parser = participle.MustBuild[Manifest](participle.Unquote("String"))

func ParseManifest(file string, b []byte) (*Manifest, error) {
	manifest, err := Parser.ParseBytes(file, b)
	if err != nil {
		return nil, fmt.Errorf("failed to parse symbols manifest %s: %w", file, err)
	}
	return manifest, nil
}

func LoadManifest(file string) (*Manifest, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read symbols manifest %s: %w", file, err)
	}
	return ParseManifest(file, data)
}
