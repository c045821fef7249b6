package tape

import (
	"errors"
	"testing"

	"github.com/smasher164/lambdarw/lambda"
)

func TestAlphabet(t *testing.T) {
	if got := string(Alphabet("1011")); got != "01" {
		t.Errorf("Alphabet(1011) = %q, want 01", got)
	}
	if got := Alphabet(""); len(got) != 0 {
		t.Errorf("Alphabet(\"\") = %q, want empty", got)
	}
}

func TestEncode(t *testing.T) {
	tests := []struct {
		s        string
		alphabet string
		want     string
	}{
		{"", "ab", "(λ[x_1].λ[x_2].λy.y)"},
		{"a", "a", "(λ[x_1].λy.[x_1](λ[x_1].λy.y))"},
		{"ba", "ab", "(λ[x_1].λ[x_2].λy.[x_2](λ[x_1].λ[x_2].λy.[x_1](λ[x_1].λ[x_2].λy.y)))"},
	}
	for _, tt := range tests {
		got, err := Encode(tt.s, []rune(tt.alphabet))
		if err != nil {
			t.Errorf("Encode(%q): %v", tt.s, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Encode(%q) = %s, want %s", tt.s, got, tt.want)
		}
	}
}

func TestEncodeNotInAlphabet(t *testing.T) {
	if _, err := Encode("abc", []rune("ab")); !errors.Is(err, ErrNotInAlphabet) {
		t.Errorf("err = %v, want ErrNotInAlphabet", err)
	}
}

func TestRoundTripWeak(t *testing.T) {
	for _, s := range []string{"", "0", "1011", "0110100"} {
		alphabet := Alphabet("01")
		src, err := Encode(s, alphabet)
		if err != nil {
			t.Fatal(err)
		}
		// Select the tape with K and leave it under its binders.
		term, err := lambda.Parse("K" + src + "z")
		if err != nil {
			t.Fatalf("Parse(%s): %v", src, err)
		}
		got, err := Decode(lambda.Reduce(term, lambda.Weak), alphabet)
		if err != nil {
			t.Fatalf("Decode: %v", err)
		}
		if got != s {
			t.Errorf("round trip of %q gave %q", s, got)
		}
	}
}

func TestDecodeRenamedBinders(t *testing.T) {
	term, err := lambda.Parse(`λa.λb.λy.a(λp.λq.λr.q(λa.λb.λy.y))`)
	if err != nil {
		t.Fatal(err)
	}
	got, err := Decode(term, []rune("01"))
	if err != nil {
		t.Fatal(err)
	}
	if got != "01" {
		t.Errorf("Decode = %q, want 01", got)
	}
}

func TestDecodeMalformed(t *testing.T) {
	for _, src := range []string{"x", `λa.λb.a`, `λa.λb.λy.z`, `λa.λb.λy.y(λa.λb.λy.y)`} {
		term, err := lambda.Parse(src)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := Decode(term, []rune("01")); !errors.Is(err, ErrMalformed) {
			t.Errorf("Decode(%s) err = %v, want ErrMalformed", src, err)
		}
	}
}
