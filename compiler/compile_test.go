package compiler

import (
	"bytes"
	"encoding/hex"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/sha3"

	"github.com/bytom/folio/compiler/assembler"
	"github.com/bytom/folio/compiler/foliotest"
	"github.com/bytom/folio/compiler/lexer"
	"github.com/bytom/folio/compiler/opcode"
	"github.com/bytom/folio/diagnostics"
	"github.com/bytom/folio/errors"
	"github.com/bytom/folio/testutil"
	"github.com/bytom/folio/version"
)

func TestCompileCreatePair(t *testing.T) {
	prog, err := Compile("pair.folio", foliotest.CreatePair)
	require.NoError(t, err)
	require.Len(t, prog.Records, 1)

	code := prog.Records[0].Code
	assert.Equal(t, opcode.KindCreatePair, prog.Records[0].Kind)
	assert.Len(t, code, 41)
	assert.Equal(t, byte(0x0c), code[0])
	assert.Equal(t, bytes.Repeat([]byte{0xaa}, 20), code[1:21])
	assert.Equal(t, bytes.Repeat([]byte{0xbb}, 20), code[21:])
}

func TestCompileAllocate(t *testing.T) {
	prog, err := Compile("allocate.folio", foliotest.Allocate)
	require.NoError(t, err)

	want := testutil.MustDecodeHexString("11 0000000000000005 03 00000000000000000000000000000002")
	if !bytes.Equal(prog.Bytecode(), want) {
		t.Fatalf("Bytecode() = %x, want %x", prog.Bytecode(), want)
	}
	assert.Equal(t, 1, prog.Instructions)
}

func TestCompileLifecycle(t *testing.T) {
	prog, err := Compile("lifecycle.folio", foliotest.Lifecycle)
	require.NoError(t, err)

	var kinds []opcode.Kind
	for _, r := range prog.Records {
		kinds = append(kinds, r.Kind)
	}
	assert.Equal(t, []opcode.Kind{
		opcode.KindCreatePair,
		opcode.KindCreatePool,
		opcode.KindAllocate,
		opcode.KindSwap,
		opcode.KindClaim,
		opcode.KindDeallocate,
	}, kinds)
	// the trailing jump has no record
	assert.Equal(t, 7, prog.Instructions)
	assert.Len(t, prog.Bytecode(), 41+69+26+44+44+26)
}

func TestDigest(t *testing.T) {
	prog, err := Compile("lifecycle.folio", foliotest.Lifecycle)
	require.NoError(t, err)

	hash := sha3.NewLegacyKeccak256()
	hash.Write(prog.Bytecode())
	assert.Equal(t, hash.Sum(nil), prog.Digest[:])

	prog, err = Compile("empty.folio", "macro main { }")
	require.NoError(t, err)
	assert.Empty(t, prog.Records)
	assert.Equal(t, "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470", hex.EncodeToString(prog.Digest[:]))
}

func TestCompileErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		opts []Option
		root error
		code string
	}{
		{
			name: "unrecognized character",
			src:  "macro main { jump $ }",
			root: lexer.ErrUnrecognizedToken,
			code: CodeLex,
		},
		{
			name: "fractional literal",
			src:  "macro main { claim: poolId: 1.5 fee0: 0 fee1: 0 }",
			root: assembler.ErrInvalidLiteral,
			code: CodeLex,
		},
		{
			name: "missing parameter",
			src:  "macro main { claim: poolId: 1 fee0: 0 }",
			root: assembler.ErrUnexpectedToken,
			code: CodeParse,
		},
		{
			name: "duplicate main",
			src:  foliotest.DuplicateMain,
			root: assembler.ErrDuplicateMacro,
			code: CodeDuplicateMacro,
		},
		{
			name: "missing main",
			src:  foliotest.MissingMain,
			root: assembler.ErrMissingMain,
			code: CodeMissingMain,
		},
		{
			name: "undefined macro",
			src:  foliotest.Undefined,
			root: assembler.ErrUndefinedMacro,
			code: CodeUndefinedMacro,
		},
		{
			name: "self recursion",
			src:  foliotest.SelfRecursive,
			root: assembler.ErrCyclicMacro,
			code: CodeCyclicMacro,
		},
		{
			name: "pool id wider than 64 bits",
			src:  "macro main { claim: poolId: 18446744073709551616 fee0: 0 fee1: 0 }",
			root: opcode.ErrOverflow,
			code: CodeEncodingOverflow,
		},
		{
			name: "expansion limit",
			src:  foliotest.Fanout,
			opts: []Option{WithMaxInstructions(16)},
			root: assembler.ErrExpansionLimit,
			code: CodeExpansionLimit,
		},
		{
			name: "incompatible layout",
			src:  foliotest.Allocate,
			opts: []Option{WithLayout("2.0.0")},
			root: version.ErrIncompatibleLayout,
			code: CodeIncompatibleLayout,
		},
		{
			name: "malformed layout",
			src:  foliotest.Allocate,
			opts: []Option{WithLayout("banana")},
			root: version.ErrIncompatibleLayout,
			code: CodeIncompatibleLayout,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var emitted []*diagnostics.Diagnostic
			emitter := diagnostics.EmitterFunc(func(d *diagnostics.Diagnostic) {
				emitted = append(emitted, d)
			})

			prog, err := Compile("test.folio", c.src, append(c.opts, WithEmitter(emitter))...)
			assert.Nil(t, prog)
			require.Equal(t, c.root, errors.Root(err), "%v", err)
			assert.Equal(t, c.code, ErrorCode(err))

			require.Len(t, emitted, 1)
			assert.Equal(t, c.code, emitted[0].Code)
			assert.Equal(t, "test.folio", emitted[0].FileName)
			assert.Equal(t, c.root.Error(), emitted[0].Message)
			assert.NotEmpty(t, emitted[0].Label)
		})
	}
}

func TestErrorLocation(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want lexer.Span
	}{
		{
			name: "unrecognized character",
			src:  "macro main { jump $ }",
			want: lexer.Span{Start: 18, End: 19},
		},
		{
			name: "missing main points at end of input",
			src:  foliotest.MissingMain,
			want: lexer.Span{Start: len(foliotest.MissingMain), End: len(foliotest.MissingMain)},
		},
		{
			name: "overflow points at the instruction",
			src:  "macro main { jump claim: poolId: 18446744073709551616 fee0: 0 fee1: 0 }",
			want: lexer.Span{Start: 18, End: 69},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Compile("test.folio", c.src)
			require.Error(t, err)
			span, ok := SpanOf(err)
			require.True(t, ok, "error %v carries no span", err)
			assert.Equal(t, c.want, span)
		})
	}
}

func TestExpansionLimitBoundary(t *testing.T) {
	prog, err := Compile("fanout.folio", foliotest.Fanout, WithMaxInstructions(32))
	require.NoError(t, err)
	assert.Equal(t, 32, prog.Instructions)
	assert.Empty(t, prog.Records)

	_, err = Compile("fanout.folio", foliotest.Fanout, WithMaxInstructions(31))
	assert.Equal(t, assembler.ErrExpansionLimit, errors.Root(err))

	prog, err = Compile("vanishing.folio", foliotest.Vanishing, WithMaxInstructions(2))
	require.NoError(t, err)
	assert.Equal(t, 2, prog.Instructions)
}

func TestCompatibleLayout(t *testing.T) {
	_, err := Compile("allocate.folio", foliotest.Allocate, WithLayout(version.Layout))
	assert.NoError(t, err)
}

func TestErrorCodeInternal(t *testing.T) {
	assert.Equal(t, CodeInternal, ErrorCode(errors.New("boom")))
	assert.Equal(t, CodeMissingMain, ErrorCode(errors.Wrap(assembler.ErrMissingMain, "assembling")))
}

func TestDiagnoseRender(t *testing.T) {
	_, err := Compile("undefined.folio", foliotest.Undefined)
	require.Error(t, err)

	out := diagnostics.Render(Diagnose("undefined.folio", foliotest.Undefined, err))
	assert.True(t, strings.HasPrefix(out, "error[E0005]: undefined macro"), out)
	assert.Contains(t, out, "undefined.folio:1:19")
}

func TestCompileConcurrently(t *testing.T) {
	want, err := Compile("lifecycle.folio", foliotest.Lifecycle)
	require.NoError(t, err)

	var wg sync.WaitGroup
	digests := make([][32]byte, 16)
	for i := range digests {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			prog, err := Compile("lifecycle.folio", foliotest.Lifecycle)
			if err == nil {
				digests[i] = prog.Digest
			}
		}(i)
	}
	wg.Wait()

	for i, d := range digests {
		assert.Equal(t, want.Digest, d, "compilation %d", i)
	}
}
