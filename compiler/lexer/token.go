package lexer

import "fmt"

// Kind identifies the lexical class of a token.
type Kind uint8

const (
	Error Kind = iota
	EOF

	// opcode mnemonics
	Unknown
	Allocate
	Deallocate
	Claim
	Swap
	CreatePool
	CreatePair
	Jump

	// structure
	Macro
	OpenBrace
	CloseBrace
	Colon

	// parameter names
	PoolID
	Fee0
	Fee1
	UseMax
	DeltaLiquidity
	Amount0
	Amount1
	Token0
	Token1
	PairID
	Controller
	PriorityFee
	Fee
	Vol
	Dur
	Jit
	MaxPrice
	Price
	SellAsset

	// literals
	Literal
	AddressLiteral
	Identifier
)

// keywords maps every exactly-matched lexeme to its kind.
var keywords = map[string]Kind{
	"unknown":        Unknown,
	"allocate":       Allocate,
	"deallocate":     Deallocate,
	"claim":          Claim,
	"swap":           Swap,
	"createPool":     CreatePool,
	"createPair":     CreatePair,
	"jump":           Jump,
	"macro":          Macro,
	"{":              OpenBrace,
	"}":              CloseBrace,
	":":              Colon,
	"poolId":         PoolID,
	"fee0":           Fee0,
	"fee1":           Fee1,
	"useMax":         UseMax,
	"deltaLiquidity": DeltaLiquidity,
	"amount0":        Amount0,
	"amount1":        Amount1,
	"token0":         Token0,
	"token1":         Token1,
	"pairId":         PairID,
	"controller":     Controller,
	"priorityFee":    PriorityFee,
	"fee":            Fee,
	"vol":            Vol,
	"dur":            Dur,
	"jit":            Jit,
	"maxPrice":       MaxPrice,
	"price":          Price,
	"sellAsset":      SellAsset,
}

var kindNames = map[Kind]string{
	Error:          "error",
	EOF:            "end of input",
	Literal:        "decimal literal",
	AddressLiteral: "address literal",
	Identifier:     "identifier",
}

func init() {
	for lexeme, kind := range keywords {
		kindNames[kind] = fmt.Sprintf("%q", lexeme)
	}
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// IsOpcode reports whether k names an instruction.
func (k Kind) IsOpcode() bool {
	return k >= Unknown && k <= Jump
}

// IsParam reports whether k names an instruction parameter.
func (k Kind) IsParam() bool {
	return k >= PoolID && k <= SellAsset
}

// Span is the half-open byte range [Start, End) of a lexeme in the source.
type Span struct {
	Start int
	End   int
}

func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}

// Token is one lexeme of the source text.
type Token struct {
	Kind   Kind
	Lexeme string
	Span   Span
}

func (t Token) String() string {
	if t.Kind == EOF {
		return t.Kind.String()
	}
	return fmt.Sprintf("%s %q", t.Kind, t.Lexeme)
}
