package opcode

import (
	"encoding/hex"
	"strings"

	"github.com/bytom/folio/errors"
)

// AddressLength is the size in bytes of an asset or controller address.
const AddressLength = 20

// Address is a 160-bit identifier of a tradable asset or a controller
// account.
type Address [AddressLength]byte

// ParseAddress decodes a 0x-prefixed string of exactly 40 hex digits.
func ParseAddress(s string) (Address, error) {
	var a Address
	if len(s) < 2 || s[0] != '0' || (s[1] != 'x' && s[1] != 'X') {
		return a, errors.WithDetailf(ErrInvalidAddress, "%q lacks the 0x prefix", s)
	}

	digits := s[2:]
	if len(digits) > 2*AddressLength {
		return a, errors.WithDetailf(ErrOverflow, "address %s is wider than 160 bits", s)
	}
	if len(digits) != 2*AddressLength {
		return a, errors.WithDetailf(ErrInvalidAddress, "address %s has %d hex digits, want %d", s, len(digits), 2*AddressLength)
	}

	if _, err := hex.Decode(a[:], []byte(digits)); err != nil {
		return a, errors.WithDetail(ErrInvalidAddress, err.Error())
	}
	return a, nil
}

// MustParseAddress is like ParseAddress but panics on malformed input.
func MustParseAddress(s string) Address {
	a, err := ParseAddress(s)
	if err != nil {
		panic(err)
	}
	return a
}

// Bytes returns a copy of the address bytes.
func (a Address) Bytes() []byte {
	return append([]byte(nil), a[:]...)
}

func (a Address) String() string {
	return "0x" + strings.ToUpper(hex.EncodeToString(a[:]))
}
