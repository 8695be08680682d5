// Package foliotest holds folio programs shared by the compiler tests.
package foliotest

const CreatePair = `macro main { createPair: token0: 0xAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA token1: 0xBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBB }`

const Allocate = `macro main { allocate: useMax: 1 poolId: 5 deltaLiquidity: 2000 }`

const Lifecycle = `
macro setup {
	createPair: token0: 0xAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA token1: 0xBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBB
	createPool:
		pairId: 1
		controller: 0xCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCC
		priorityFee: 10
		fee: 30
		vol: 10000
		dur: 365
		jit: 4
		maxPrice: 20000000000000000000
		price: 1000000000000000000
}

macro provide {
	allocate: useMax: 0 poolId: 4294967553 deltaLiquidity: 1000000000000000000
}

macro main {
	setup
	provide
	swap: useMax: 0 poolId: 4294967553 amount0: 5000 amount1: 123 sellAsset: 1
	claim: poolId: 4294967553 fee0: 100 fee1: 0
	deallocate: useMax: 1 poolId: 4294967553 deltaLiquidity: 0
	jump
}
`

// Nested has main invoke a, a invoke b and b invoke c.
const Nested = `
macro c { claim: poolId: 3 fee0: 3 fee1: 3 }
macro b { unknown c jump }
macro a { allocate: useMax: 0 poolId: 1 deltaLiquidity: 1 b deallocate: useMax: 0 poolId: 1 deltaLiquidity: 1 }
macro main { jump a unknown }
`

const DuplicateMain = `
macro main { jump }
macro main { unknown }
`

const MissingMain = `macro setup { jump }`

const SelfRecursive = `
macro a { jump a }
macro main { a }
`

const MutuallyRecursive = `
macro main { ping }
macro ping { jump pong }
macro pong { unknown ping }
`

const Undefined = `macro main { jump setup }`

// Fanout doubles the instruction count with every level.
const Fanout = `
macro la { jump }
macro lb { la la }
macro lc { lb lb }
macro ld { lc lc }
macro le { ld ld }
macro main { le le }
`

// Vanishing calls a macro with an empty body many times; main expands to
// two instructions.
const Vanishing = `
macro e { }
macro a { e e e e e }
macro main { jump a jump }
`
