package lambda

import "fmt"

type parser struct {
	toks []Token
	pos  int
}

func (p *parser) errorf(format string, args ...any) error {
	return &ParseError{Pos: p.pos, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) current() string {
	if p.pos >= len(p.toks) {
		return "EOF"
	}
	return p.toks[p.pos].String()
}

func (p *parser) next(k Kind) bool {
	return p.pos < len(p.toks) && p.toks[p.pos].Kind == k
}

func (p *parser) skip(k Kind) bool {
	if p.next(k) {
		p.pos++
		return true
	}
	return false
}

func (p *parser) expect(k Kind) error {
	if p.skip(k) {
		return nil
	}
	return p.errorf("expected token %q, got %q", k.String(), p.current())
}

// expression := '\' parameter+ '.' expression | application
func (p *parser) expression() (Term, error) {
	if !p.skip(Lambda) {
		return p.application()
	}
	var params []Var
	for {
		v, err := p.parameter()
		if err != nil {
			return nil, err
		}
		params = append(params, v)
		if p.skip(Dot) {
			break
		}
		if !p.next(Ident) && !p.next(LBracket) {
			return nil, p.errorf("malformed abstraction: expected token \".\", got %q", p.current())
		}
	}
	body, err := p.expression()
	if err != nil {
		return nil, err
	}
	return Curry(params, body), nil
}

// parameter := Identifier | '[' chars ']'
func (p *parser) parameter() (Var, error) {
	switch {
	case p.next(Ident):
		p.pos++
		return Var{p.toks[p.pos-1].Text}, nil
	case p.skip(LBracket):
		return p.escaped()
	}
	return Var{}, p.errorf("parameter is not an identifier: got %q", p.current())
}

// escaped reads the remainder of '[' chars ']'.
func (p *parser) escaped() (Var, error) {
	if !p.next(Ident) {
		return Var{}, p.errorf("expected escaped identifier, got %q", p.current())
	}
	v := Var{p.toks[p.pos].Text}
	p.pos++
	return v, p.expect(RBracket)
}

// application := atom atom*
func (p *parser) application() (Term, error) {
	left, err := p.atom()
	if err != nil {
		return nil, err
	}
	if left == nil {
		return nil, p.errorf("expected term, got %q", p.current())
	}
	for {
		right, err := p.atom()
		if err != nil {
			return nil, err
		}
		if right == nil {
			return left, nil
		}
		left = App{left, right}
	}
}

// atom := '(' expression ')' | '[' chars ']' | '\' expression | Identifier
//
// atom returns a nil Term when the current token cannot start an atom.
func (p *parser) atom() (Term, error) {
	switch {
	case p.skip(LParen):
		t, err := p.expression()
		if err != nil {
			return nil, err
		}
		if err := p.expect(RParen); err != nil {
			return nil, err
		}
		return t, nil
	case p.skip(LBracket):
		v, err := p.escaped()
		if err != nil {
			return nil, err
		}
		return v, nil
	case p.next(Lambda):
		return p.expression()
	case p.next(Ident):
		p.pos++
		return Var{p.toks[p.pos-1].Text}, nil
	}
	return nil, nil
}

// ParseTokens builds a term from a token sequence produced by Scan.
func ParseTokens(toks []Token) (Term, error) {
	p := &parser{toks: toks}
	if len(toks) == 0 {
		return nil, p.errorf("empty input")
	}
	t, err := p.expression()
	if err != nil {
		return nil, err
	}
	if p.pos < len(p.toks) {
		return nil, p.errorf("unexpected token %q", p.current())
	}
	return t, nil
}

// Parse lexes and parses src.
func Parse(src string) (Term, error) {
	toks, err := Scan(src)
	if err != nil {
		return nil, err
	}
	return ParseTokens(toks)
}
