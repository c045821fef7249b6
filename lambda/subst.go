package lambda

import "github.com/samber/lo"

type dir uint8

const (
	dirBody dir = iota
	dirFn
	dirArg
)

// path is a position below a term, stored leaf-first.
type path struct {
	d  dir
	up *path
}

func (p *path) dirs() []dir {
	var n int
	for q := p; q != nil; q = q.up {
		n++
	}
	ds := make([]dir, n)
	for q := p; q != nil; q = q.up {
		n--
		ds[n] = q.d
	}
	return ds
}

func child(t Term, d dir) Term {
	switch d {
	case dirBody:
		return t.(Abs).Body
	case dirFn:
		return t.(App).Fn
	case dirArg:
		return t.(App).Arg
	}
	panic("unreachable")
}

func withChild(t Term, d dir, c Term) Term {
	switch d {
	case dirBody:
		a := t.(Abs)
		a.Body = c
		return a
	case dirFn:
		a := t.(App)
		a.Fn = c
		return a
	case dirArg:
		a := t.(App)
		a.Arg = c
		return a
	}
	panic("unreachable")
}

// replaceAt returns root with the subterm at ds replaced by node.
func replaceAt(root Term, ds []dir, node Term) Term {
	ancestors := make([]Term, len(ds))
	cur := root
	for i, d := range ds {
		ancestors[i] = cur
		cur = child(cur, d)
	}
	for i := len(ds) - 1; i >= 0; i-- {
		node = withChild(ancestors[i], ds[i], node)
	}
	return node
}

// findCapture looks for the first abstraction in abs.Body, in left-first
// preorder, whose parameter occurs free in arg and would therefore capture it.
// Abstractions rebinding abs.Param are not entered.
func findCapture(abs Abs, arg Term) ([]dir, Abs, bool) {
	type visit struct {
		t  Term
		at *path
	}
	stack := []visit{{abs.Body, &path{d: dirBody}}}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		switch t := v.t.(type) {
		case Abs:
			if t.Param.Name == abs.Param.Name {
				continue
			}
			if IsFree(arg, t.Param) {
				return v.at.dirs(), t, true
			}
			stack = append(stack, visit{t.Body, &path{dirBody, v.at}})
		case App:
			stack = append(stack,
				visit{t.Arg, &path{dirArg, v.at}},
				visit{t.Fn, &path{dirFn, v.at}})
		}
	}
	return nil, Abs{}, false
}

// replace substitutes with for every free occurrence of name in t. It does
// not rename binders; callers rule out capture first.
func replace(t Term, name string, with Term) Term {
	type frame struct {
		t     Term
		build bool
	}
	work := []frame{{t: t}}
	var results []Term
	pop := func() Term {
		r := results[len(results)-1]
		results = results[:len(results)-1]
		return r
	}
	for len(work) > 0 {
		f := work[len(work)-1]
		work = work[:len(work)-1]
		if f.build {
			switch t := f.t.(type) {
			case Abs:
				results = append(results, Abs{t.Param, pop()})
			case App:
				arg := pop()
				results = append(results, App{pop(), arg})
			}
			continue
		}
		switch t := f.t.(type) {
		case Var:
			if t.Name == name {
				results = append(results, with)
			} else {
				results = append(results, t)
			}
		case Abs:
			if t.Param.Name == name {
				results = append(results, t)
				continue
			}
			work = append(work, frame{t, true}, frame{t: t.Body})
		case App:
			work = append(work, frame{t, true}, frame{t: t.Arg}, frame{t: t.Fn})
		}
	}
	return results[0]
}

// Substitute performs one beta step on the redex (abs arg): every free
// occurrence of abs.Param in abs.Body is replaced by arg.
//
// In full mode, if a binder inside abs.Body would capture a free variable of
// arg, Substitute instead renames the first such binder to a fresh name and
// returns the pending redex (abs' arg) to be reduced again. Each retry removes
// one unsafe binder, so the renaming terminates. Names minted by s avoid every
// name occurring in abs or arg, even when s has reduced other terms before.
func (s *Session) Substitute(abs Abs, arg Term) Term {
	s.taken = lo.Assign(s.taken, Names(App{abs, arg}))
	return s.substitute(abs, arg)
}

func (s *Session) substitute(abs Abs, arg Term) Term {
	redex := App{abs, arg}
	if s.Mode != Weak {
		if at, inner, ok := findCapture(abs, arg); ok {
			fresh := s.freshVar()
			renamed := Abs{fresh, replace(inner.Body, inner.Param.Name, fresh)}
			res := App{replaceAt(abs, at, renamed), arg}
			s.observe(Alpha, redex, res)
			return res
		}
	}
	res := replace(abs.Body, abs.Param.Name, arg)
	s.observe(Beta, redex, res)
	return res
}
