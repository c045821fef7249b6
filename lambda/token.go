package lambda

import (
	"strings"

	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

// Kind is the tag of a Token.
type Kind uint8

const (
	Ident Kind = iota
	Lambda
	Dot
	LParen
	RParen
	LBracket
	RBracket
)

func (k Kind) String() string {
	switch k {
	case Ident:
		return "identifier"
	case Lambda:
		return "λ"
	case Dot:
		return "."
	case LParen:
		return "("
	case RParen:
		return ")"
	case LBracket:
		return "["
	case RBracket:
		return "]"
	}
	panic("unreachable")
}

// Token is a lexical unit. Text is only set for identifiers.
type Token struct {
	Kind Kind
	Text string
}

func (t Token) String() string {
	if t.Kind == Ident {
		return t.Text
	}
	return t.Kind.String()
}

// combinatorSource holds the definitions the reserved letters expand to.
var combinatorSource = map[rune]string{
	'H': `(\f.f(\z.(\x.(\f.f(\z.xxfz)))(\x.(\f.f(\z.xxfz)))fz))`,
	'I': `(\x.x)`,
	'S': `(\xyz.xz(yz))`,
	'K': `(\xy.x)`,
	'B': `(\xyz.x(yz))`,
	'C': `(\xyz.xzy)`,
	'W': `(\xy.xyy)`,
	'M': `(\f.ff)`,
}

// combinators maps each reserved letter to its pre-lexed definition.
var combinators map[rune][]Token

// The definitions contain no reserved letters, so lexing them cannot recurse.
func init() {
	combinators = lo.MapValues(combinatorSource, func(src string, _ rune) []Token {
		toks, err := Scan(src)
		if err != nil {
			panic(err)
		}
		return toks
	})
}

// Reserved returns the letters that expand to combinators, in sorted order.
func Reserved() []rune {
	rs := lo.Keys(combinatorSource)
	slices.Sort(rs)
	return rs
}

func isReserved(r rune) bool {
	_, ok := combinatorSource[r]
	return ok
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func single(k Kind) Token {
	return Token{Kind: k}
}

// Scan splits src into tokens, expanding reserved combinator letters.
// Characters that cannot start a token, whitespace included, are skipped.
func Scan(src string) ([]Token, error) {
	var (
		res     []Token
		escaped strings.Builder
		inName  bool
		start   int
	)
	for i, r := range src {
		if inName {
			if r != ']' {
				escaped.WriteRune(r)
				continue
			}
			if escaped.Len() == 0 {
				return nil, &LexError{Offset: start, Msg: "empty escaped identifier"}
			}
			res = append(res, Token{Kind: Ident, Text: escaped.String()}, single(RBracket))
			escaped.Reset()
			inName = false
			continue
		}
		switch {
		case r == '\\' || r == 'λ':
			res = append(res, single(Lambda))
		case r == '.':
			res = append(res, single(Dot))
		case r == '(':
			res = append(res, single(LParen))
		case r == ')':
			res = append(res, single(RParen))
		case r == '[':
			res = append(res, single(LBracket))
			inName, start = true, i
		case r == ']':
			res = append(res, single(RBracket))
		case isReserved(r):
			res = append(res, combinators[r]...)
		case isLetter(r):
			res = append(res, Token{Kind: Ident, Text: string(r)})
		}
	}
	if inName {
		return nil, &LexError{Offset: start, Msg: "unterminated escaped identifier"}
	}
	return res, nil
}
