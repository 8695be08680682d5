package commands

import (
	stdjson "encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bytom/folio/compiler"
	"github.com/bytom/folio/compiler/assembler"
	"github.com/bytom/folio/compiler/foliotest"
	"github.com/bytom/folio/errors"
	"github.com/bytom/folio/version"
)

func TestFormatHex(t *testing.T) {
	prog, err := compiler.Compile("allocate.folio", foliotest.Allocate)
	require.NoError(t, err)

	assert.Equal(t, "0x11000000000000000503"+strings.Repeat("00", 15)+"02\n", formatHex(prog))
}

func TestFormatJSON(t *testing.T) {
	prog, err := compiler.Compile("lifecycle.folio", foliotest.Lifecycle)
	require.NoError(t, err)

	out, err := formatJSON(prog)
	require.NoError(t, err)

	var resp struct {
		Layout       string `json:"layout"`
		Instructions int    `json:"instructions"`
		Records      []struct {
			Opcode string `json:"opcode"`
			Code   string `json:"code"`
		} `json:"records"`
		Digest string `json:"digest"`
	}
	require.NoError(t, stdjson.Unmarshal([]byte(out), &resp))

	assert.Equal(t, version.Layout, resp.Layout)
	assert.Equal(t, 7, resp.Instructions)
	require.Len(t, resp.Records, 6)
	assert.Equal(t, "createPair", resp.Records[0].Opcode)
	assert.Equal(t, "0x0c"+strings.Repeat("aa", 20)+strings.Repeat("bb", 20), resp.Records[0].Code)
	assert.Equal(t, "deallocate", resp.Records[5].Opcode)
	assert.Len(t, resp.Digest, 66)
}

func TestExpandSource(t *testing.T) {
	exprs, err := expandSource(foliotest.Nested, 0)
	require.NoError(t, err)
	require.Len(t, exprs, 7)
	assert.Equal(t, "jump", exprs[0].String())
	assert.Equal(t, "claim: poolId: 3 fee0: 3 fee1: 3", exprs[3].String())

	_, err = expandSource(foliotest.Fanout, 8)
	assert.Equal(t, assembler.ErrExpansionLimit, errors.Root(err))
}
