// Package opcode defines the instructions understood by the pool virtual
// machine.
package opcode

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/holiman/uint256"

	"github.com/bytom/folio/errors"
)

// pre-define errors
var (
	// ErrOverflow is returned when a value does not fit the field it is
	// destined for.
	ErrOverflow        = errors.New("value exceeds field width")
	ErrInvalidQuantity = errors.New("invalid quantity")
	ErrInvalidAddress  = errors.New("invalid address")
)

// Kind identifies an instruction.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindAllocate
	KindDeallocate
	KindCreatePair
	KindCreatePool
	KindSwap
	KindClaim
	KindJump
)

var kindNames = [...]string{
	KindUnknown:    "unknown",
	KindAllocate:   "allocate",
	KindDeallocate: "deallocate",
	KindCreatePair: "createPair",
	KindCreatePool: "createPool",
	KindSwap:       "swap",
	KindClaim:      "claim",
	KindJump:       "jump",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// MarshalText renders the mnemonic.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Opcode is one instruction with its operands. Values are immutable.
type Opcode interface {
	Kind() Kind
	String() string
}

type (
	Unknown struct{}

	Jump struct{}

	Allocate struct {
		UseMax         uint256.Int
		PoolID         uint256.Int
		DeltaLiquidity uint256.Int
	}

	Deallocate struct {
		UseMax         uint256.Int
		PoolID         uint256.Int
		DeltaLiquidity uint256.Int
	}

	CreatePair struct {
		Token0 Address
		Token1 Address
	}

	CreatePool struct {
		PairID      uint256.Int
		Controller  Address
		PriorityFee uint256.Int
		Fee         uint256.Int
		Vol         uint256.Int
		Dur         uint256.Int
		Jit         uint256.Int
		MaxPrice    uint256.Int
		Price       uint256.Int
	}

	Swap struct {
		UseMax    uint256.Int
		PoolID    uint256.Int
		Amount0   uint256.Int
		Amount1   uint256.Int
		SellAsset uint256.Int
	}

	Claim struct {
		PoolID uint256.Int
		Fee0   uint256.Int
		Fee1   uint256.Int
	}
)

func (Unknown) Kind() Kind    { return KindUnknown }
func (Jump) Kind() Kind       { return KindJump }
func (Allocate) Kind() Kind   { return KindAllocate }
func (Deallocate) Kind() Kind { return KindDeallocate }
func (CreatePair) Kind() Kind { return KindCreatePair }
func (CreatePool) Kind() Kind { return KindCreatePool }
func (Swap) Kind() Kind       { return KindSwap }
func (Claim) Kind() Kind      { return KindClaim }

func (Unknown) String() string { return KindUnknown.String() }
func (Jump) String() string    { return KindJump.String() }

func (op Allocate) String() string {
	return format(KindAllocate, "useMax", &op.UseMax, "poolId", &op.PoolID, "deltaLiquidity", &op.DeltaLiquidity)
}

func (op Deallocate) String() string {
	return format(KindDeallocate, "useMax", &op.UseMax, "poolId", &op.PoolID, "deltaLiquidity", &op.DeltaLiquidity)
}

func (op CreatePair) String() string {
	return format(KindCreatePair, "token0", op.Token0, "token1", op.Token1)
}

func (op CreatePool) String() string {
	return format(KindCreatePool,
		"pairId", &op.PairID,
		"controller", op.Controller,
		"priorityFee", &op.PriorityFee,
		"fee", &op.Fee,
		"vol", &op.Vol,
		"dur", &op.Dur,
		"jit", &op.Jit,
		"maxPrice", &op.MaxPrice,
		"price", &op.Price,
	)
}

func (op Swap) String() string {
	return format(KindSwap, "useMax", &op.UseMax, "poolId", &op.PoolID, "amount0", &op.Amount0, "amount1", &op.Amount1, "sellAsset", &op.SellAsset)
}

func (op Claim) String() string {
	return format(KindClaim, "poolId", &op.PoolID, "fee0", &op.Fee0, "fee1", &op.Fee1)
}

// format renders an instruction in source syntax, so a listing of an
// expanded program can be fed back to the assembler.
func format(kind Kind, keyval ...interface{}) string {
	var b strings.Builder
	b.WriteString(kind.String())
	b.WriteString(":")
	for i := 0; i < len(keyval); i += 2 {
		b.WriteString(" ")
		b.WriteString(keyval[i].(string))
		b.WriteString(": ")
		switch v := keyval[i+1].(type) {
		case *uint256.Int:
			b.WriteString(Decimal(v))
		case Address:
			b.WriteString(v.String())
		}
	}
	return b.String()
}

// Decimal renders n in base 10.
func Decimal(n *uint256.Int) string {
	return n.ToBig().String()
}

// ParseQuantity parses an unsigned base-10 integer of at most 256 bits.
func ParseQuantity(s string) (uint256.Int, error) {
	var q uint256.Int
	n, ok := new(big.Int).SetString(s, 10)
	if !ok || n.Sign() < 0 {
		return q, errors.WithDetailf(ErrInvalidQuantity, "%q is not an unsigned integer", s)
	}

	v, overflow := uint256.FromBig(n)
	if overflow {
		return q, errors.WithDetailf(ErrOverflow, "%s does not fit in 256 bits", s)
	}
	return *v, nil
}
