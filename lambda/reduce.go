package lambda

import "context"

// checkEvery is how many driver iterations pass between context checks.
const checkEvery = 1024

// Reduce reduces t in a fresh session.
func Reduce(t Term, mode Mode) Term {
	return NewSession(mode).Reduce(t)
}

// Reduce rewrites t until no redex remains (in Weak mode: none outside an
// abstraction). It may not terminate. MaxSteps is not enforced.
//
// Both operands of an application are reduced before the application itself
// is inspected, so the order is applicative rather than leftmost-outermost: a
// term whose unused argument diverges diverges here too.
func (s *Session) Reduce(t Term) Term {
	res, _ := s.run(context.Background(), t, false)
	return res
}

// ReduceContext is Reduce bounded by ctx and s.MaxSteps. It returns ctx.Err()
// or ErrStepLimit when a bound is hit.
func (s *Session) ReduceContext(ctx context.Context, t Term) (Term, error) {
	return s.run(ctx, t, true)
}

func (s *Session) run(ctx context.Context, t Term, bounded bool) (Term, error) {
	s.reset(t)
	type task struct {
		t       Term
		combine bool
	}
	work := []task{{t: t}}
	var results []Term
	pop := func() Term {
		r := results[len(results)-1]
		results = results[:len(results)-1]
		return r
	}
	for i := 0; len(work) > 0; i++ {
		if bounded && i%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		tk := work[len(work)-1]
		work = work[:len(work)-1]
		if tk.combine {
			switch t := tk.t.(type) {
			case Abs:
				results = append(results, Abs{t.Param, pop()})
			case App:
				arg := pop()
				fn := pop()
				abs, ok := fn.(Abs)
				if !ok {
					results = append(results, App{fn, arg})
					continue
				}
				if bounded && s.MaxSteps > 0 && s.steps >= s.MaxSteps {
					return nil, ErrStepLimit
				}
				work = append(work, task{t: s.substitute(abs, arg)})
			}
			continue
		}
		switch t := tk.t.(type) {
		case Var:
			results = append(results, t)
		case Abs:
			if s.Mode == Weak {
				results = append(results, t)
				continue
			}
			work = append(work, task{t, true}, task{t: t.Body})
		case App:
			work = append(work, task{t, true}, task{t: t.Arg}, task{t: t.Fn})
		}
	}
	return results[0], nil
}
