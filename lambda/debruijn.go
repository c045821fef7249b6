package lambda

import (
	"strconv"
	"strings"
)

// env is a persistent binding environment: each entry records the
// abstraction depth at which name was bound.
type env struct {
	name  string
	level int
	next  *env
}

func (e *env) bind(name string, level int) *env {
	return &env{name, level, e}
}

// index returns the distance from the innermost binder at depth to the
// binder of name.
func (e *env) index(name string, depth int) (int, bool) {
	for ; e != nil; e = e.next {
		if e.name == name {
			return depth - e.level, true
		}
	}
	return 0, false
}

type walkItem struct {
	t     Term
	lit   string
	env   *env
	depth int
}

// DeBruijnString encodes t with binder-relative indices. Abstractions print
// as λ followed by their body and applications as the concatenation of their
// operands, an abstraction operand being parenthesized. A free variable prints
// as one more than the number of enclosing binders. Two terms are alpha
// equivalent exactly when their encodings are equal.
func DeBruijnString(t Term) string {
	var buf strings.Builder
	stack := []walkItem{{t: t}}
	push := func(t Term, e *env, depth int) {
		if _, ok := t.(Abs); ok {
			stack = append(stack, walkItem{lit: ")"}, walkItem{t: t, env: e, depth: depth}, walkItem{lit: "("})
			return
		}
		stack = append(stack, walkItem{t: t, env: e, depth: depth})
	}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		switch t := it.t.(type) {
		case nil:
			buf.WriteString(it.lit)
		case Var:
			i, ok := it.env.index(t.Name, it.depth)
			if !ok {
				i = it.depth + 1
			}
			buf.WriteString(strconv.Itoa(i))
		case Abs:
			buf.WriteString("λ")
			stack = append(stack, walkItem{t: t.Body, env: it.env.bind(t.Param.Name, it.depth+1), depth: it.depth + 1})
		case App:
			push(t.Arg, it.env, it.depth)
			push(t.Fn, it.env, it.depth)
		}
	}
	return buf.String()
}

// TraceString renders the binding structure of t in preorder: "λ " per
// abstraction, "@ " per application and "> i " per variable, where i is the
// De Bruijn index of a bound variable and is omitted for a free one.
func TraceString(t Term) string {
	var buf strings.Builder
	stack := []walkItem{{t: t}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		switch t := it.t.(type) {
		case Var:
			if i, ok := it.env.index(t.Name, it.depth); ok {
				buf.WriteString("> " + strconv.Itoa(i) + " ")
			} else {
				buf.WriteString("> ")
			}
		case Abs:
			buf.WriteString("λ ")
			stack = append(stack, walkItem{t: t.Body, env: it.env.bind(t.Param.Name, it.depth+1), depth: it.depth + 1})
		case App:
			buf.WriteString("@ ")
			stack = append(stack, walkItem{t: t.Arg, env: it.env, depth: it.depth}, walkItem{t: t.Fn, env: it.env, depth: it.depth})
		}
	}
	return buf.String()
}

// AlphaEquivalent reports whether a and b differ only in bound names.
func AlphaEquivalent(a, b Term) bool {
	return DeBruijnString(a) == DeBruijnString(b)
}
