package testutil

import (
	"encoding/hex"
	"strings"

	"github.com/holiman/uint256"

	"github.com/bytom/folio/compiler/opcode"
)

// MustDecodeHexString decodes s, which may be split into space separated
// groups to mirror a record's fields.
func MustDecodeHexString(s string) []byte {
	bytes, err := hex.DecodeString(strings.Join(strings.Fields(s), ""))
	if err != nil {
		panic(err)
	}
	return bytes
}

func MustDecodeQuantity(s string) uint256.Int {
	q, err := opcode.ParseQuantity(s)
	if err != nil {
		panic(err)
	}
	return q
}

func MustDecodeAddress(s string) opcode.Address {
	return opcode.MustParseAddress(s)
}
