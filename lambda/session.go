package lambda

import "strconv"

// Mode selects the reduction discipline.
type Mode uint8

const (
	// Full reduces under abstractions until no redex remains anywhere.
	Full Mode = iota
	// Weak never reduces under an abstraction and skips the capture check
	// during substitution.
	Weak
)

func (m Mode) String() string {
	switch m {
	case Full:
		return "full"
	case Weak:
		return "weak"
	}
	panic("unreachable")
}

// StepKind distinguishes the two kinds of rewrite a session performs.
type StepKind uint8

const (
	// Beta is one substitution of an argument into an abstraction body.
	Beta StepKind = iota
	// Alpha is the renaming of a binder that would capture a free variable.
	Alpha
)

func (k StepKind) String() string {
	switch k {
	case Beta:
		return "BETA REDUCTION"
	case Alpha:
		return "ALPHA CONVERSION"
	}
	panic("unreachable")
}

// Step describes one rewrite. For an Alpha step Result is the retried redex
// with the offending binder renamed.
type Step struct {
	N      int
	Kind   StepKind
	Redex  App
	Result Term
}

// Session holds the state of one top-level reduction. A Session must not be
// used by more than one reduction at a time.
type Session struct {
	Mode Mode

	// MaxSteps bounds the number of rewrites ReduceContext performs. Zero
	// means no bound.
	MaxSteps int

	// Observer, if set, is called after every rewrite.
	Observer func(Step)

	fresh int
	steps int
	taken map[string]bool
}

// NewSession returns a session reducing in the given mode, with no step limit.
func NewSession(mode Mode) *Session {
	return &Session{Mode: mode}
}

// Steps returns the number of rewrites performed by the last reduction.
func (s *Session) Steps() int { return s.steps }

// Renames returns the number of alpha conversions performed by the last reduction.
func (s *Session) Renames() int { return s.fresh }

func (s *Session) reset(t Term) {
	s.fresh, s.steps = 0, 0
	s.taken = Names(t)
}

func pickFreshName(taken map[string]bool, s string) string {
	if taken[s] {
		return pickFreshName(taken, s+"'")
	}
	return s
}

// freshVar mints the next alpha-conversion name. Minted names differ from
// each other by counter and from every input name by construction.
func (s *Session) freshVar() Var {
	name := pickFreshName(s.taken, "S_"+strconv.Itoa(s.fresh))
	s.fresh++
	return Var{name}
}

func (s *Session) observe(kind StepKind, redex App, res Term) {
	s.steps++
	if s.Observer != nil {
		s.Observer(Step{N: s.steps, Kind: kind, Redex: redex, Result: res})
	}
}
