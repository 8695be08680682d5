// Package codegen encodes expanded folio instructions into the packed
// records executed by the pool virtual machine.
//
// Every record is an unpadded concatenation of big-endian fixed-width
// fields; widths in bits:
//
//	allocate    flag:4 tag=1:4 | poolId:64 | power:8 base:128
//	deallocate  flag:4 tag=3:4 | poolId:64 | power:8 base:128
//	claim       tag=4:8 | poolId:64 | 27:8 | power:8 base:128 (fee0) | power:8 base:128 (fee1)
//	swap        flag:4 tag=5|6:4 | poolId:64 | 27:8 | power:8 base:128 (amount0) | power:8 base:128 (amount1)
//	createPair  tag=12:8 | token0:160 | token1:160
//	createPool  tag=11:8 | pairId:24 | controller:160 | priorityFee:16 | fee:16 | vol:16 | dur:16 | jit:16 |
//	            52:8 | power:8 base:128 (maxPrice) | power:8 base:128 (price)
//
// Amounts are stored decomposed as base * 10^power. Jump and unknown
// instructions produce no record. This layout is a wire contract with the
// virtual machine; its version is version.Layout.
package codegen

import (
	"github.com/holiman/uint256"
	log "github.com/sirupsen/logrus"

	"github.com/bytom/folio/compiler/opcode"
	"github.com/bytom/folio/errors"
)

const logModule = "codegen"

const (
	tagAllocate      byte = 1
	tagDeallocate    byte = 3
	tagClaim         byte = 4
	tagSwap          byte = 5
	tagSwapSellAsset byte = 6
	tagCreatePool    byte = 11
	tagCreatePair    byte = 12

	// reserved pointers the virtual machine expects in front of the amounts
	amountsPointer    byte = 27
	createPoolPointer byte = 52

	powerBits  = 8
	baseBits   = 128
	poolIDBits = 64
	pairIDBits = 24
	paramBits  = 16
)

// Record sizes in bytes.
const (
	AllocateSize   = 1 + 8 + 1 + 16
	DeallocateSize = AllocateSize
	ClaimSize      = 1 + 8 + 1 + 2*(1+16)
	SwapSize       = ClaimSize
	CreatePairSize = 1 + 2*opcode.AddressLength
	CreatePoolSize = 1 + 3 + opcode.AddressLength + 5*2 + 1 + 2*(1+16)
)

// Record is the packed encoding of one instruction.
type Record struct {
	Kind opcode.Kind
	Code []byte
}

// Encode returns one record per instruction of ops, in order. Instructions
// without an encoding are skipped. The first field that does not fit its
// width fails the whole encoding with opcode.ErrOverflow; the error carries
// the instruction's position under the "index" data key.
func Encode(ops []opcode.Opcode) ([]Record, error) {
	records := make([]Record, 0, len(ops))
	skipped := 0
	for i, op := range ops {
		code, err := EncodeOpcode(op)
		if err != nil {
			return nil, errors.WithData(errors.Wrapf(err, "encoding instruction %d (%s)", i, op.Kind()), "index", i)
		}
		if code == nil {
			skipped++
			continue
		}
		records = append(records, Record{Kind: op.Kind(), Code: code})
	}

	log.WithFields(log.Fields{"module": logModule, "records": len(records), "skipped": skipped}).Debug("encoded instructions")
	return records, nil
}

// EncodeOpcode returns the packed record of op, or nil if op has no
// encoding.
func EncodeOpcode(op opcode.Opcode) ([]byte, error) {
	switch op := op.(type) {
	case opcode.Allocate:
		return newBuilder(AllocateSize).
			addNibbles("useMax", &op.UseMax, tagAllocate).
			addUint("poolId", &op.PoolID, poolIDBits).
			addAmount("deltaLiquidity", &op.DeltaLiquidity).
			build()

	case opcode.Deallocate:
		return newBuilder(DeallocateSize).
			addNibbles("useMax", &op.UseMax, tagDeallocate).
			addUint("poolId", &op.PoolID, poolIDBits).
			addAmount("deltaLiquidity", &op.DeltaLiquidity).
			build()

	case opcode.Claim:
		return newBuilder(ClaimSize).
			addByte(tagClaim).
			addUint("poolId", &op.PoolID, poolIDBits).
			addByte(amountsPointer).
			addAmount("fee0", &op.Fee0).
			addAmount("fee1", &op.Fee1).
			build()

	case opcode.Swap:
		tag := tagSwap
		if op.SellAsset.Eq(uint256.NewInt(1)) {
			tag = tagSwapSellAsset
		}
		return newBuilder(SwapSize).
			addNibbles("useMax", &op.UseMax, tag).
			addUint("poolId", &op.PoolID, poolIDBits).
			addByte(amountsPointer).
			addAmount("amount0", &op.Amount0).
			addAmount("amount1", &op.Amount1).
			build()

	case opcode.CreatePair:
		return newBuilder(CreatePairSize).
			addByte(tagCreatePair).
			addAddress(op.Token0).
			addAddress(op.Token1).
			build()

	case opcode.CreatePool:
		return newBuilder(CreatePoolSize).
			addByte(tagCreatePool).
			addUint("pairId", &op.PairID, pairIDBits).
			addAddress(op.Controller).
			addUint("priorityFee", &op.PriorityFee, paramBits).
			addUint("fee", &op.Fee, paramBits).
			addUint("vol", &op.Vol, paramBits).
			addUint("dur", &op.Dur, paramBits).
			addUint("jit", &op.Jit, paramBits).
			addByte(createPoolPointer).
			addAmount("maxPrice", &op.MaxPrice).
			addAmount("price", &op.Price).
			build()
	}

	// TODO: encode jump once jump targets resolve to record offsets.
	return nil, nil
}
