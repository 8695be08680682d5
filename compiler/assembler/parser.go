package assembler

import (
	"strings"

	"github.com/holiman/uint256"

	"github.com/bytom/folio/compiler/lexer"
	"github.com/bytom/folio/compiler/opcode"
	"github.com/bytom/folio/errors"
)

// params lists, in canonical order, the parameters each instruction takes.
var params = map[lexer.Kind][]lexer.Kind{
	lexer.Allocate:   {lexer.UseMax, lexer.PoolID, lexer.DeltaLiquidity},
	lexer.Deallocate: {lexer.UseMax, lexer.PoolID, lexer.DeltaLiquidity},
	lexer.Claim:      {lexer.PoolID, lexer.Fee0, lexer.Fee1},
	lexer.Swap:       {lexer.UseMax, lexer.PoolID, lexer.Amount0, lexer.Amount1, lexer.SellAsset},
	lexer.CreatePair: {lexer.Token0, lexer.Token1},
	lexer.CreatePool: {
		lexer.PairID, lexer.Controller, lexer.PriorityFee, lexer.Fee, lexer.Vol,
		lexer.Dur, lexer.Jit, lexer.MaxPrice, lexer.Price,
	},
}

func isAddressParam(k lexer.Kind) bool {
	return k == lexer.Token0 || k == lexer.Token1 || k == lexer.Controller
}

// arguments holds the parsed values of one instruction, keyed by
// parameter.
type arguments struct {
	quantities map[lexer.Kind]uint256.Int
	addresses  map[lexer.Kind]opcode.Address
}

func (a *arguments) q(k lexer.Kind) uint256.Int {
	return a.quantities[k]
}

type parser struct {
	tokens []lexer.Token
	index  int
}

// Parse reads every macro definition from tokens, which must end with an EOF
// token as produced by lexer.Lex.
func Parse(tokens []lexer.Token) ([]*Macro, error) {
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != lexer.EOF {
		return nil, errors.WithDetail(ErrUnexpectedToken, "token stream is not terminated by end of input")
	}

	p := &parser{tokens: tokens}
	var macros []*Macro
	for p.lookahead().Kind != lexer.EOF {
		m, err := p.parseMacro()
		if err != nil {
			return nil, err
		}
		macros = append(macros, m)
	}
	return macros, nil
}

// lookahead returns the next token. This must exist because EOF is always
// the last token and is never consumed.
func (p *parser) lookahead() lexer.Token {
	return p.tokens[p.index]
}

func (p *parser) expect(kind lexer.Kind) (lexer.Token, error) {
	tok := p.lookahead()
	if tok.Kind != kind {
		return tok, p.unexpected(tok, kind.String())
	}

	p.index++
	return tok, nil
}

func (p *parser) unexpected(tok lexer.Token, want string) error {
	return spanError(ErrUnexpectedToken, tok.Span, "expected %s, found %s", want, tok)
}

func (p *parser) parseMacro() (*Macro, error) {
	if _, err := p.expect(lexer.Macro); err != nil {
		return nil, err
	}
	name, err := p.expect(lexer.Identifier)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.OpenBrace); err != nil {
		return nil, err
	}

	m := &Macro{Name: name.Lexeme, Span: name.Span}
	for p.lookahead().Kind != lexer.CloseBrace {
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		m.Body = append(m.Body, expr)
	}

	p.index++
	return m, nil
}

func (p *parser) parseExpression() (Expression, error) {
	tok := p.lookahead()
	switch {
	case tok.Kind == lexer.Identifier:
		p.index++
		return MacroCall(tok.Lexeme, tok.Span), nil

	case tok.Kind == lexer.Unknown:
		p.index++
		return Instruction(opcode.Unknown{}, tok.Span), nil

	case tok.Kind == lexer.Jump:
		p.index++
		return Instruction(opcode.Jump{}, tok.Span), nil

	case tok.Kind.IsOpcode():
		return p.parseInstruction()
	}

	return Expression{}, p.unexpected(tok, `instruction, macro name or "}"`)
}

func (p *parser) parseInstruction() (Expression, error) {
	head := p.lookahead()
	p.index++
	if _, err := p.expect(lexer.Colon); err != nil {
		return Expression{}, err
	}

	wanted := params[head.Kind]
	args := &arguments{
		quantities: make(map[lexer.Kind]uint256.Int),
		addresses:  make(map[lexer.Kind]opcode.Address),
	}
	seen := make(map[lexer.Kind]bool)
	end := head.Span.End

	for p.lookahead().Kind.IsParam() {
		key := p.lookahead()
		if !containsKind(wanted, key.Kind) {
			return Expression{}, p.unexpected(key, "parameter of "+head.Lexeme+" ("+kindList(wanted)+")")
		}
		if seen[key.Kind] {
			return Expression{}, spanError(ErrUnexpectedToken, key.Span, "parameter %s given twice", key.Lexeme)
		}
		seen[key.Kind] = true
		p.index++

		if _, err := p.expect(lexer.Colon); err != nil {
			return Expression{}, err
		}
		if err := p.parseValue(key.Kind, args); err != nil {
			return Expression{}, err
		}
		end = p.tokens[p.index-1].Span.End
	}

	for _, k := range wanted {
		if !seen[k] {
			return Expression{}, p.unexpected(p.lookahead(), "parameter "+k.String()+" of "+head.Lexeme)
		}
	}

	return Instruction(build(head.Kind, args), lexer.Span{Start: head.Span.Start, End: end}), nil
}

func (p *parser) parseValue(key lexer.Kind, args *arguments) error {
	if isAddressParam(key) {
		tok, err := p.expect(lexer.AddressLiteral)
		if err != nil {
			return err
		}

		addr, err := opcode.ParseAddress(tok.Lexeme)
		if err != nil {
			return literalError(err, tok)
		}
		args.addresses[key] = addr
		return nil
	}

	tok, err := p.expect(lexer.Literal)
	if err != nil {
		return err
	}
	if strings.Contains(tok.Lexeme, ".") {
		return spanError(ErrInvalidLiteral, tok.Span, "fractional literal %s given for integer parameter %s", tok.Lexeme, key)
	}
	if strings.HasPrefix(tok.Lexeme, "-") {
		return spanError(ErrInvalidLiteral, tok.Span, "negative literal %s given for unsigned parameter %s", tok.Lexeme, key)
	}

	q, err := opcode.ParseQuantity(tok.Lexeme)
	if err != nil {
		return literalError(err, tok)
	}
	args.quantities[key] = q
	return nil
}

// literalError keeps overflow as the root and reports every other literal
// failure as ErrInvalidLiteral.
func literalError(err error, tok lexer.Token) error {
	if errors.Root(err) != opcode.ErrOverflow {
		err = errors.Sub(ErrInvalidLiteral, err)
	}
	return errors.WithData(err, "span", tok.Span)
}

func build(kind lexer.Kind, a *arguments) opcode.Opcode {
	switch kind {
	case lexer.Allocate:
		return opcode.Allocate{UseMax: a.q(lexer.UseMax), PoolID: a.q(lexer.PoolID), DeltaLiquidity: a.q(lexer.DeltaLiquidity)}
	case lexer.Deallocate:
		return opcode.Deallocate{UseMax: a.q(lexer.UseMax), PoolID: a.q(lexer.PoolID), DeltaLiquidity: a.q(lexer.DeltaLiquidity)}
	case lexer.Claim:
		return opcode.Claim{PoolID: a.q(lexer.PoolID), Fee0: a.q(lexer.Fee0), Fee1: a.q(lexer.Fee1)}
	case lexer.Swap:
		return opcode.Swap{
			UseMax:    a.q(lexer.UseMax),
			PoolID:    a.q(lexer.PoolID),
			Amount0:   a.q(lexer.Amount0),
			Amount1:   a.q(lexer.Amount1),
			SellAsset: a.q(lexer.SellAsset),
		}
	case lexer.CreatePair:
		return opcode.CreatePair{Token0: a.addresses[lexer.Token0], Token1: a.addresses[lexer.Token1]}
	case lexer.CreatePool:
		return opcode.CreatePool{
			PairID:      a.q(lexer.PairID),
			Controller:  a.addresses[lexer.Controller],
			PriorityFee: a.q(lexer.PriorityFee),
			Fee:         a.q(lexer.Fee),
			Vol:         a.q(lexer.Vol),
			Dur:         a.q(lexer.Dur),
			Jit:         a.q(lexer.Jit),
			MaxPrice:    a.q(lexer.MaxPrice),
			Price:       a.q(lexer.Price),
		}
	}
	return opcode.Unknown{}
}

func containsKind(kinds []lexer.Kind, k lexer.Kind) bool {
	for _, kind := range kinds {
		if kind == k {
			return true
		}
	}
	return false
}

func kindList(kinds []lexer.Kind) string {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return strings.Join(names, ", ")
}
