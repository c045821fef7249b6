package lambda

import "testing"

func TestDeBruijnString(t *testing.T) {
	tests := []struct{ in, want string }{
		{`(λx.x)`, "λ0"},
		{`(λz.z)`, "λ0"},
		{`(λx.λy.x)`, "λλ1"},
		{`λx.λy.λs.λz.xs(ysz)`, "λλλλ31210"},
		{`(λx.xx)(λx.xx)`, "(λ00)(λ00)"},
		{`(λx.λx.x)(λy.y)`, "(λλ0)(λ0)"},
		{`(λx.x)(λy.y)(λx.λy.x)`, "(λ0)(λ0)(λλ1)"},
		{`x`, "1"},
		{`λx.y`, "λ2"},
		{`λx.(λy.y)x`, "λ(λ0)0"},
	}
	for _, tt := range tests {
		if got := DeBruijnString(mustParse(t, tt.in)); got != tt.want {
			t.Errorf("DeBruijnString(%s) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestTraceString(t *testing.T) {
	tests := []struct{ in, want string }{
		{`x`, "> "},
		{`(\x.x)y`, "@ λ > 0 > "},
		{`\x.\y.xy`, "λ λ @ > 1 > 0 "},
		{`\x.\x.x`, "λ λ > 0 "},
		{`\x.y(\y.xy)`, "λ @ > λ @ > 1 > 0 "},
	}
	for _, tt := range tests {
		if got := TraceString(mustParse(t, tt.in)); got != tt.want {
			t.Errorf("TraceString(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestAlphaEquivalent(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{`\x.x`, `\y.y`, true},
		{`\x.\y.x`, `\a.\b.a`, true},
		{`\x.\y.x`, `\x.\y.y`, false},
		{`(\x.x)y`, `(\z.z)w`, true},
	}
	for _, tt := range tests {
		if got := AlphaEquivalent(mustParse(t, tt.a), mustParse(t, tt.b)); got != tt.want {
			t.Errorf("AlphaEquivalent(%s, %s) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestFormatRoundTrip(t *testing.T) {
	for _, src := range []string{`\x.x`, `(\x.\y.x)[S_0]`, `\[x_1].\y.[x_1]`, `x(\y.y)z`, `[K][I]`} {
		term := mustParse(t, src)
		again := mustParse(t, Format(term))
		if Format(again) != Format(term) {
			t.Errorf("%s: formatted %s, reparsed as %s", src, term, again)
		}
	}
}
