package commands

import (
	"encoding/hex"
	stdjson "encoding/json"
	"strings"

	"github.com/bytom/folio/compiler"
	"github.com/bytom/folio/compiler/opcode"
	"github.com/bytom/folio/version"
)

type recordResp struct {
	Opcode opcode.Kind `json:"opcode"`
	Code   string      `json:"code"`
}

type programResp struct {
	Layout       string       `json:"layout"`
	Instructions int          `json:"instructions"`
	Records      []recordResp `json:"records"`
	Digest       string       `json:"digest"`
}

func hexString(b []byte) string {
	return "0x" + hex.EncodeToString(b)
}

// formatHex renders one record per line.
func formatHex(prog *compiler.Program) string {
	var b strings.Builder
	for _, r := range prog.Records {
		b.WriteString(hexString(r.Code))
		b.WriteByte('\n')
	}
	return b.String()
}

func formatJSON(prog *compiler.Program) (string, error) {
	resp := programResp{
		Layout:       version.Layout,
		Instructions: prog.Instructions,
		Records:      make([]recordResp, 0, len(prog.Records)),
		Digest:       hexString(prog.Digest[:]),
	}
	for _, r := range prog.Records {
		resp.Records = append(resp.Records, recordResp{Opcode: r.Kind, Code: hexString(r.Code)})
	}

	rawData, err := stdjson.MarshalIndent(resp, "", "  ")
	if err != nil {
		return "", err
	}
	return string(rawData) + "\n", nil
}
