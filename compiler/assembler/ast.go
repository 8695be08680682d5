package assembler

import (
	"strings"

	"github.com/bytom/folio/compiler/lexer"
	"github.com/bytom/folio/compiler/opcode"
)

// MainMacro is the name of the macro a program starts from.
const MainMacro = "main"

// Expression is a node of a macro body: either an instruction or an
// invocation of another macro by name.
type Expression struct {
	// Op is the instruction; nil for a macro call.
	Op opcode.Opcode
	// Call is the name of the invoked macro; empty for an instruction.
	Call string
	// Span locates the statement that produced the node. Expanded nodes keep
	// the span of their definition site.
	Span lexer.Span
}

// Instruction returns an instruction node.
func Instruction(op opcode.Opcode, span lexer.Span) Expression {
	return Expression{Op: op, Span: span}
}

// MacroCall returns an invocation node.
func MacroCall(name string, span lexer.Span) Expression {
	return Expression{Call: name, Span: span}
}

// IsCall reports whether e invokes a macro.
func (e Expression) IsCall() bool {
	return e.Op == nil
}

func (e Expression) String() string {
	if e.IsCall() {
		return e.Call
	}
	return e.Op.String()
}

// Macro is a named, ordered list of expressions.
type Macro struct {
	Name string
	Body []Expression
	// Span locates the macro's name in its definition.
	Span lexer.Span
}

// Opcodes returns the instructions of a fully expanded body.
func Opcodes(body []Expression) ([]opcode.Opcode, error) {
	ops := make([]opcode.Opcode, 0, len(body))
	for _, e := range body {
		if e.IsCall() {
			return nil, spanError(ErrUnexpandedCall, e.Span, "call to %s survived expansion", e.Call)
		}
		ops = append(ops, e.Op)
	}
	return ops, nil
}

// frame is one link of the chain of macros inlined along an expansion path.
type frame struct {
	name   string
	parent *frame
}

func (f *frame) push(name string) *frame {
	return &frame{name: name, parent: f}
}

func (f *frame) contains(name string) bool {
	for ; f != nil; f = f.parent {
		if f.name == name {
			return true
		}
	}
	return false
}

// path renders the chain outermost first.
func (f *frame) path() []string {
	var names []string
	for ; f != nil; f = f.parent {
		names = append(names, f.name)
	}
	for i, j := 0, len(names)-1; i < j; i, j = i+1, j-1 {
		names[i], names[j] = names[j], names[i]
	}
	return names
}

func (f *frame) cycle(name string) string {
	return strings.Join(append(f.path(), name), " -> ")
}
