// Package assembler turns folio tokens into a flat instruction list: it
// collects macro definitions into a symbol table and inlines every macro
// call reachable from main.
package assembler

import (
	log "github.com/sirupsen/logrus"

	"github.com/bytom/folio/compiler/lexer"
)

// Assemble parses tokens, indexes the macro definitions, checks their call
// graph and returns main fully expanded. A limit greater than zero bounds
// the number of instructions of the result.
func Assemble(tokens []lexer.Token, limit int) ([]Expression, error) {
	macros, err := Parse(tokens)
	if err != nil {
		return nil, err
	}

	table, err := NewTable(macros)
	if err != nil {
		return nil, err
	}

	if _, ok := table.Lookup(MainMacro); !ok {
		eof := tokens[len(tokens)-1].Span
		return nil, spanError(ErrMissingMain, eof, "no macro named %s is defined", MainMacro)
	}

	if err := table.Check(); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{"module": logModule, "macros": table.Len()}).Debug("built macro table")
	return Expand(table, MainMacro, limit)
}
