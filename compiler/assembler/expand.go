package assembler

import (
	log "github.com/sirupsen/logrus"

	"github.com/bytom/folio/compiler/lexer"
)

const logModule = "assembler"

// node is an expression together with the chain of macros that were inlined
// to produce it.
type node struct {
	expr  Expression
	chain *frame
}

// Expand returns the body of the macro called name with every macro call
// inlined. A limit greater than zero bounds the length of the result.
func Expand(t *Table, name string, limit int) ([]Expression, error) {
	m, ok := t.Lookup(name)
	if !ok {
		return nil, spanError(ErrUndefinedMacro, lexer.Span{}, "macro %s is not defined", name)
	}
	return expand(t, m.Body, (*frame)(nil).push(name), limit)
}

// ExpandBody inlines every macro call of body. A body without calls is
// returned unchanged.
func ExpandBody(t *Table, body []Expression, limit int) ([]Expression, error) {
	return expand(t, body, nil, limit)
}

// expand repeatedly scans the nodes left to right, splicing the body of each
// invoked macro in place of the call, until a pass finds no call. Every
// spliced node extends its call's chain, so a call that would re-enter a
// macro already on its own path is rejected instead of looping forever.
func expand(t *Table, body []Expression, root *frame, limit int) ([]Expression, error) {
	nodes := make([]node, len(body))
	for i, expr := range body {
		nodes[i] = node{expr: expr, chain: root}
	}

	for pass := 1; ; pass++ {
		next := make([]node, 0, len(nodes))
		spliced := 0
		// instructions already in next survive every later pass
		settled := 0
		for _, n := range nodes {
			if !n.expr.IsCall() {
				next = append(next, n)
				settled++
				continue
			}

			callee, ok := t.Lookup(n.expr.Call)
			if !ok {
				return nil, spanError(ErrUndefinedMacro, n.expr.Span, "macro %s is not defined", n.expr.Call)
			}
			if n.chain.contains(callee.Name) {
				return nil, spanError(ErrCyclicMacro, n.expr.Span, "macro %s invokes itself: %s", callee.Name, n.chain.cycle(callee.Name))
			}

			chain := n.chain.push(callee.Name)
			for _, expr := range callee.Body {
				next = append(next, node{expr: expr, chain: chain})
				if !expr.IsCall() {
					settled++
				}
			}
			spliced++

			if limit > 0 && settled > limit {
				return nil, spanError(ErrExpansionLimit, n.expr.Span, "expanding %s exceeds the limit of %d instructions", callee.Name, limit)
			}
		}

		nodes = next
		if spliced == 0 {
			break
		}

		log.WithFields(log.Fields{"module": logModule, "pass": pass, "spliced": spliced, "size": len(nodes)}).Debug("expanded macro calls")
	}

	if limit > 0 && len(nodes) > limit {
		return nil, spanError(ErrExpansionLimit, nodes[limit].expr.Span, "program exceeds the limit of %d instructions", limit)
	}

	res := make([]Expression, len(nodes))
	for i, n := range nodes {
		res[i] = n.expr
	}
	return res, nil
}
