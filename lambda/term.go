package lambda

import "strings"

// Term is a node of the abstract syntax tree. Terms are immutable: rewriting
// always builds new nodes, so subtrees may be shared freely.
type Term interface {
	String() string
	isTerm()
}

// Var is a variable occurrence.
type Var struct {
	Name string
}

// Abs is a single-parameter abstraction.
type Abs struct {
	Param Var
	Body  Term
}

// App applies Fn to Arg.
type App struct {
	Fn  Term
	Arg Term
}

func (Var) isTerm() {}
func (Abs) isTerm() {}
func (App) isTerm() {}

func (v Var) String() string { return Format(v) }
func (a Abs) String() string { return Format(a) }
func (a App) String() string { return Format(a) }

// Curry folds params into nested abstractions around body, innermost last.
func Curry(params []Var, body Term) Term {
	for i := len(params) - 1; i >= 0; i-- {
		body = Abs{params[i], body}
	}
	return body
}

// needsEscape reports whether a name must be bracketed to lex back to itself.
func needsEscape(name string) bool {
	rs := []rune(name)
	return len(rs) != 1 || !isLetter(rs[0]) || isReserved(rs[0])
}

func writeName(buf *strings.Builder, name string) {
	if needsEscape(name) {
		buf.WriteString("[" + name + "]")
		return
	}
	buf.WriteString(name)
}

// Format renders t as text: abstractions print as (λx.body) and applications
// as the bare concatenation of their operands. A name that is not a single
// non-reserved ASCII letter prints in escape brackets ([S_0], [K]).
func Format(t Term) string {
	var buf strings.Builder
	// An item without a term is literal text.
	type item struct {
		t   Term
		lit string
	}
	stack := []item{{t: t}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		switch t := it.t.(type) {
		case nil:
			buf.WriteString(it.lit)
		case Var:
			writeName(&buf, t.Name)
		case Abs:
			buf.WriteString("(λ")
			writeName(&buf, t.Param.Name)
			buf.WriteString(".")
			stack = append(stack, item{lit: ")"}, item{t: t.Body})
		case App:
			stack = append(stack, item{t: t.Arg}, item{t: t.Fn})
		}
	}
	return buf.String()
}
