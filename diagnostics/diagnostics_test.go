package diagnostics

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPositionOf(t *testing.T) {
	src := "macro a {\n\tjump\n}\nmacro é b"
	cases := []struct {
		offset int
		want   Position
	}{
		{0, Position{1, 1}},
		{6, Position{1, 7}},
		{10, Position{2, 1}},
		{11, Position{2, 2}},
		{16, Position{3, 1}},
		{24, Position{4, 7}},
		{27, Position{4, 9}},
		{1000, Position{4, 10}},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, PositionOf(src, c.offset), "offset %d", c.offset)
	}
}

func TestRender(t *testing.T) {
	d := &Diagnostic{
		Source:   "macro main { jump }\nmacro main { unknown }",
		FileName: "pools.fol",
		Start:    26,
		End:      30,
		Label:    "main is already defined",
		Message:  "duplicate macro",
		Code:     "E0003",
	}

	want := "error[E0003]: duplicate macro\n" +
		" --> pools.fol:2:7\n" +
		"  |\n" +
		"2 | macro main { unknown }\n" +
		"  |       ^^^^ main is already defined\n"
	assert.Equal(t, want, Render(d))

	var buf bytes.Buffer
	NewEmitter(&buf).Emit(d)
	assert.Equal(t, want, buf.String())
}

func TestRenderEndOfInput(t *testing.T) {
	d := &Diagnostic{
		Source:   "macro a { jump }\n",
		FileName: "a.fol",
		Start:    17,
		End:      17,
		Message:  "missing main macro",
	}

	want := "error: missing main macro\n" +
		" --> a.fol:2:1\n" +
		"  |\n" +
		"2 | \n" +
		"  | ^\n"
	assert.Equal(t, want, Render(d))
}

func TestRenderMultiLineSpan(t *testing.T) {
	d := &Diagnostic{
		Source:   "macro main {\n  claim: poolId: 1\n    fee0: 1 fee1: 99999\n}",
		FileName: "m.fol",
		Start:    15,
		End:      57,
		Label:    "fee1 = 99999 does not fit",
		Message:  "value exceeds field width",
		Code:     "E0007",
	}

	want := "error[E0007]: value exceeds field width\n" +
		" --> m.fol:2:3\n" +
		"  |\n" +
		"2 |   claim: poolId: 1\n" +
		"  |   ^^^^^^^^^^^^^^^^ fee1 = 99999 does not fit\n"
	assert.Equal(t, want, Render(d))
}

func TestEmitterFunc(t *testing.T) {
	var got []*Diagnostic
	var e Emitter = EmitterFunc(func(d *Diagnostic) { got = append(got, d) })
	d := &Diagnostic{Code: "E0001"}
	e.Emit(d)
	assert.Equal(t, []*Diagnostic{d}, got)
}
