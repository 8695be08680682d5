// Package compiler compiles folio programs: it lexes the source, expands
// the macros reachable from main and packs every instruction into the
// records the pool virtual machine executes.
//
// A compilation unit is a sequence of macro definitions:
//
//	program = macro*
//	macro   = "macro" identifier "{" expr* "}"
//	expr    = "jump" | "unknown" | opcode ":" (param ":" value)* | identifier
//
// An identifier inside a body invokes the macro of that name; its body is
// inlined verbatim at the call site. Macros take no arguments and have no
// scope. Every parameter of an instruction must be given exactly once, in
// any order:
//
//	allocate, deallocate  useMax poolId deltaLiquidity
//	claim                 poolId fee0 fee1
//	swap                  useMax poolId amount0 amount1 sellAsset
//	createPair            token0 token1
//	createPool            pairId controller priorityFee fee vol dur jit maxPrice price
//
// token0, token1 and controller take 0x-prefixed 160-bit addresses; every
// other parameter takes an unsigned decimal integer.
//
// Compilation keeps no state between calls, so separate inputs may be
// compiled concurrently.
package compiler

import (
	"bytes"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/sha3"

	"github.com/bytom/folio/compiler/assembler"
	"github.com/bytom/folio/compiler/codegen"
	"github.com/bytom/folio/compiler/lexer"
	"github.com/bytom/folio/diagnostics"
	"github.com/bytom/folio/errors"
	"github.com/bytom/folio/version"
)

const logModule = "compiler"

// Program is the output of a successful compilation.
type Program struct {
	// Records holds one packed record per encodable instruction, in
	// execution order.
	Records []codegen.Record
	// Instructions is the length of main after expansion, including
	// instructions that produce no record.
	Instructions int
	// Digest is the keccak-256 hash of Bytecode.
	Digest [32]byte
}

// Bytecode returns the records concatenated.
func (p *Program) Bytecode() []byte {
	var buf bytes.Buffer
	for _, r := range p.Records {
		buf.Write(r.Code)
	}
	return buf.Bytes()
}

type options struct {
	emitter         diagnostics.Emitter
	maxInstructions int
	layout          string
}

// Option configures a compilation.
type Option func(*options)

// WithEmitter reports the error of a failed compilation to e.
func WithEmitter(e diagnostics.Emitter) Option {
	return func(o *options) { o.emitter = e }
}

// WithMaxInstructions bounds the length of main after expansion; n <= 0
// means no bound.
func WithMaxInstructions(n int) Option {
	return func(o *options) { o.maxInstructions = n }
}

// WithLayout fails the compilation unless the emitted record layout is
// compatible with the given layout version.
func WithLayout(layout string) Option {
	return func(o *options) { o.layout = layout }
}

// Compile compiles the source text of the file called fileName. The first
// error aborts the compilation; no partial program is returned. When an
// emitter is configured the error is also reported to it as a diagnostic.
func Compile(fileName, src string, opts ...Option) (*Program, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	start := time.Now()
	prog, err := compile(src, &o)
	if err != nil {
		log.WithFields(log.Fields{"module": logModule, "file": fileName, "code": ErrorCode(err), "err": err}).Debug("compilation failed")
		if o.emitter != nil {
			o.emitter.Emit(Diagnose(fileName, src, err))
		}
		return nil, err
	}

	log.WithFields(log.Fields{
		"module":       logModule,
		"file":         fileName,
		"instructions": prog.Instructions,
		"records":      len(prog.Records),
		"duration":     time.Since(start),
	}).Debug("compiled program")
	return prog, nil
}

func compile(src string, o *options) (*Program, error) {
	if o.layout != "" {
		if err := version.CheckLayout(o.layout); err != nil {
			return nil, err
		}
	}

	tokens, err := lexer.Lex(src)
	if err != nil {
		return nil, errors.Wrap(err, "lexing")
	}

	exprs, err := assembler.Assemble(tokens, o.maxInstructions)
	if err != nil {
		return nil, errors.Wrap(err, "assembling")
	}

	ops, err := assembler.Opcodes(exprs)
	if err != nil {
		return nil, err
	}

	records, err := codegen.Encode(ops)
	if err != nil {
		if i, ok := errors.Data(err)["index"].(int); ok && i < len(exprs) {
			err = errors.WithData(err, "span", exprs[i].Span)
		}
		return nil, errors.Wrap(err, "encoding")
	}

	prog := &Program{Records: records, Instructions: len(exprs)}
	hash := sha3.NewLegacyKeccak256()
	hash.Write(prog.Bytecode())
	copy(prog.Digest[:], hash.Sum(nil))
	return prog, nil
}
