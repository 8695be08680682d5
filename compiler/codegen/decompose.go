package codegen

import (
	"github.com/holiman/uint256"
)

var ten = uint256.NewInt(10)

// Decompose factors n into base * 10^power with base holding no trailing
// decimal zero. Decompose(0) is (0, 0). The factoring is lossless for every
// value; round amounts just get a small base.
func Decompose(n *uint256.Int) (power uint64, base uint256.Int) {
	base.Set(n)
	if base.IsZero() {
		return 0, base
	}

	var r uint256.Int
	for {
		if r.Mod(&base, ten); !r.IsZero() {
			return power, base
		}
		base.Div(&base, ten)
		power++
	}
}

// Recompose returns base * 10^power.
func Recompose(power uint64, base *uint256.Int) *uint256.Int {
	n := new(uint256.Int).Set(base)
	for i := uint64(0); i < power; i++ {
		n.Mul(n, ten)
	}
	return n
}
