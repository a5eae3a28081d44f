package tsutils

import (
	"reflect"

	sitter "github.com/smacker/go-tree-sitter"
)

// InitQueriesStructure compiles the tree-sitter query in each field's
// struct tag and assigns it to the field, so a package can declare its
// queries declaratively next to their names.
func InitQueriesStructure(q interface{}, lang *sitter.Language) error {
	v := reflect.ValueOf(q)
	strct := v.Elem().Type()
	for i := 0; i < strct.NumField(); i++ {
		k := strct.Field(i)
		query, err := sitter.NewQuery([]byte(k.Tag), lang)
		if err != nil {
			return err
		}
		v.Elem().Field(i).Set(reflect.ValueOf(query))
	}
	return nil
}
