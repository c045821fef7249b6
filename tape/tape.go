// Package tape encodes finite strings as Church lists, the representation a
// Turing-machine tape takes once it is translated into lambda terms.
//
// Over an alphabet a_1..a_n the empty string is λx_1...λx_n.λy.y and the
// string c·w is λx_1...λx_n.λy.x_i(w), where c = a_i.
package tape

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/exp/slices"

	"github.com/smasher164/lambdarw/lambda"
)

var (
	ErrNotInAlphabet = errors.New("symbol is not in alphabet")
	ErrMalformed     = errors.New("term is not a tape")
)

// Alphabet returns the distinct runes of s in sorted order.
func Alphabet(s string) []rune {
	rs := lo.Uniq([]rune(s))
	slices.Sort(rs)
	return rs
}

func symbol(i int) string {
	return "[x_" + strconv.Itoa(i+1) + "]"
}

// Encode returns lambda-calculus source for s over alphabet.
func Encode(s string, alphabet []rune) (string, error) {
	prefix := strings.Join(lo.Times(len(alphabet), func(i int) string {
		return "λ" + symbol(i) + "."
	}), "")
	var buf strings.Builder
	buf.WriteString("(")
	for _, r := range s {
		i := slices.Index(alphabet, r)
		if i < 0 {
			return "", fmt.Errorf("%w: %q", ErrNotInAlphabet, r)
		}
		buf.WriteString(prefix + "λy." + symbol(i) + "(")
	}
	buf.WriteString(prefix + "λy.y)")
	buf.WriteString(strings.Repeat(")", len([]rune(s))))
	return buf.String(), nil
}

// Decode reads a tape over alphabet back from t. Cells are recognized by
// binder position, so renamed binders decode the same.
func Decode(t lambda.Term, alphabet []rune) (string, error) {
	var out []rune
	n := len(alphabet)
	for {
		params := make([]lambda.Var, 0, n+1)
		for len(params) <= n {
			abs, ok := t.(lambda.Abs)
			if !ok {
				return "", fmt.Errorf("%w: cell %d: expected abstraction, got %s", ErrMalformed, len(out), t)
			}
			params = append(params, abs.Param)
			t = abs.Body
		}
		switch body := t.(type) {
		case lambda.Var:
			if body == params[n] {
				return string(out), nil
			}
		case lambda.App:
			if sel, ok := body.Fn.(lambda.Var); ok {
				if i := lastIndex(params, sel); i >= 0 && i < n {
					out = append(out, alphabet[i])
					t = body.Arg
					continue
				}
			}
		}
		return "", fmt.Errorf("%w: cell %d: unexpected body %s", ErrMalformed, len(out), t)
	}
}

// lastIndex finds the innermost binder of v.
func lastIndex(params []lambda.Var, v lambda.Var) int {
	for i := len(params) - 1; i >= 0; i-- {
		if params[i] == v {
			return i
		}
	}
	return -1
}
