package assembler

import (
	"gopkg.in/fatih/set.v0"
)

// Table is the symbol table of one compilation unit. It is built once and
// only read afterwards.
type Table struct {
	macros map[string]*Macro
	order  []*Macro
}

// NewTable indexes macros by name. A name defined twice fails with
// ErrDuplicateMacro and no table is returned.
func NewTable(macros []*Macro) (*Table, error) {
	t := &Table{macros: make(map[string]*Macro, len(macros))}
	for _, m := range macros {
		if prev, ok := t.macros[m.Name]; ok {
			return nil, spanError(ErrDuplicateMacro, m.Span, "macro %s is already defined at offset %d", m.Name, prev.Span.Start)
		}
		t.macros[m.Name] = m
		t.order = append(t.order, m)
	}
	return t, nil
}

// Lookup returns the macro called name.
func (t *Table) Lookup(name string) (*Macro, bool) {
	m, ok := t.macros[name]
	return m, ok
}

// Len returns the number of macros defined.
func (t *Table) Len() int {
	return len(t.order)
}

// Macros returns the definitions in source order.
func (t *Table) Macros() []*Macro {
	return append([]*Macro(nil), t.order...)
}

// Check walks the call graph of every definition, in source order, and
// reports the first call to an undefined macro or the first call chain that
// re-enters a macro.
func (t *Table) Check() error {
	done := set.New(set.NonThreadSafe)
	for _, m := range t.order {
		if err := t.checkMacro(m, nil, done); err != nil {
			return err
		}
	}
	return nil
}

func (t *Table) checkMacro(m *Macro, chain *frame, done set.Interface) error {
	if done.Has(m.Name) {
		return nil
	}

	chain = chain.push(m.Name)
	for _, expr := range m.Body {
		if !expr.IsCall() {
			continue
		}

		callee, ok := t.macros[expr.Call]
		if !ok {
			return spanError(ErrUndefinedMacro, expr.Span, "macro %s is not defined", expr.Call)
		}
		if chain.contains(callee.Name) {
			return spanError(ErrCyclicMacro, expr.Span, "macro %s invokes itself: %s", callee.Name, chain.cycle(callee.Name))
		}
		if err := t.checkMacro(callee, chain, done); err != nil {
			return err
		}
	}

	done.Add(m.Name)
	return nil
}
