package codegen

import (
	"github.com/holiman/uint256"

	"github.com/bytom/folio/compiler/opcode"
	"github.com/bytom/folio/errors"
)

// builder appends big-endian fixed-width fields to a record. The first
// field that does not fit stops the build.
type builder struct {
	record []byte
	err    error
}

func newBuilder(size int) *builder {
	return &builder{record: make([]byte, 0, size)}
}

// addByte adds a constant byte such as a tag or a reserved pointer.
func (b *builder) addByte(v byte) *builder {
	if b.err == nil {
		b.record = append(b.record, v)
	}
	return b
}

// addNibbles packs a 4-bit flag above a 4-bit tag into one byte.
func (b *builder) addNibbles(field string, high *uint256.Int, tag byte) *builder {
	if b.err != nil {
		return b
	}
	if high.BitLen() > 4 {
		b.err = overflow(field, high, 4)
		return b
	}
	b.record = append(b.record, byte(high.Uint64())<<4|tag&0x0f)
	return b
}

// addUint adds v as a bits wide unsigned integer; bits is a multiple of 8.
func (b *builder) addUint(field string, v *uint256.Int, bits int) *builder {
	if b.err != nil {
		return b
	}
	if v.BitLen() > bits {
		b.err = overflow(field, v, bits)
		return b
	}
	buf := v.Bytes32()
	b.record = append(b.record, buf[32-bits/8:]...)
	return b
}

func (b *builder) addAddress(a opcode.Address) *builder {
	if b.err == nil {
		b.record = append(b.record, a[:]...)
	}
	return b
}

// addAmount adds the decomposed form of v: an 8-bit power of ten followed by
// a 128-bit base.
func (b *builder) addAmount(field string, v *uint256.Int) *builder {
	power, base := Decompose(v)
	if base.BitLen() > baseBits {
		if b.err == nil {
			b.err = overflow(field, v, baseBits)
		}
		return b
	}
	return b.addUint(field, new(uint256.Int).SetUint64(power), powerBits).addUint(field, &base, baseBits)
}

func (b *builder) build() ([]byte, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.record, nil
}

func overflow(field string, v *uint256.Int, bits int) error {
	err := errors.WithDetailf(opcode.ErrOverflow, "%s = %s does not fit in %d bits", field, opcode.Decimal(v), bits)
	return errors.WithData(err, "field", field)
}
