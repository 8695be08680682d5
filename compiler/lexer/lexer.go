// Package lexer splits folio source text into tokens.
package lexer

import (
	"regexp"
	"unicode/utf8"

	"github.com/bytom/folio/errors"
)

// ErrUnrecognizedToken is returned when no token rule matches the input at
// the current position.
var ErrUnrecognizedToken = errors.New("unrecognized token")

var (
	literalRegexp    = regexp.MustCompile(`^[+-]?([0-9]*[.])?[0-9]+`)
	addressRegexp    = regexp.MustCompile(`^0[xX][a-fA-F0-9]+`)
	identifierRegexp = regexp.MustCompile(`^[a-zA-Z_]+`)
)

// rules are tried in priority order; an earlier rule wins a tie in length.
var rules = []struct {
	kind Kind
	re   *regexp.Regexp
}{
	{AddressLiteral, addressRegexp},
	{Literal, literalRegexp},
	{Identifier, identifierRegexp},
}

// Lexer produces the tokens of one source text. It cannot be rewound; lex
// again with a new Lexer.
type Lexer struct {
	src string
	pos int
}

// NewLexer returns a lexer positioned at the start of src.
func NewLexer(src string) *Lexer {
	return &Lexer{src: src}
}

// Next returns the next token. At end of input it returns an EOF token. On
// input no rule matches it returns an Error token spanning the offending
// character and an error wrapping ErrUnrecognizedToken carrying that span
// under the "span" data key; the lexer does not advance past it.
func (l *Lexer) Next() (Token, error) {
	l.skipWhitespace()
	if l.pos >= len(l.src) {
		return Token{Kind: EOF, Span: Span{l.pos, l.pos}}, nil
	}

	rest := l.src[l.pos:]
	kind, n := Error, 0
	for lexeme, k := range keywords {
		if len(lexeme) > n && len(rest) >= len(lexeme) && rest[:len(lexeme)] == lexeme {
			kind, n = k, len(lexeme)
		}
	}
	for _, rule := range rules {
		if loc := rule.re.FindStringIndex(rest); loc != nil && loc[1] > n {
			kind, n = rule.kind, loc[1]
		}
	}

	if n == 0 {
		_, size := utf8.DecodeRuneInString(rest)
		span := Span{l.pos, l.pos + size}
		err := errors.WithDetailf(ErrUnrecognizedToken, "unexpected character %q at offset %d", rest[:size], l.pos)
		return Token{Kind: Error, Lexeme: rest[:size], Span: span}, errors.WithData(err, "span", span)
	}

	tok := Token{Kind: kind, Lexeme: rest[:n], Span: Span{l.pos, l.pos + n}}
	l.pos += n
	return tok, nil
}

func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.src) {
		switch l.src[l.pos] {
		case ' ', '\t', '\n', '\r', '\f':
			l.pos++
		default:
			return
		}
	}
}

// Lex returns every token of src in order, terminated by an EOF token. It
// stops at the first unrecognized character.
func Lex(src string) ([]Token, error) {
	var tokens []Token
	l := NewLexer(src)
	for {
		tok, err := l.Next()
		if err != nil {
			return nil, err
		}

		tokens = append(tokens, tok)
		if tok.Kind == EOF {
			return tokens, nil
		}
	}
}
