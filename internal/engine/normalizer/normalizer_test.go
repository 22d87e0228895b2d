package normalizer

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"plain", "hello world", "hello world"},
		{"uppercase", "BREAKING News", "breaking news"},
		{"punctuation removed", "Hello, world!", "hello world"},
		{"punctuation inside word", "don't stop", "dont stop"},
		{"digits removed", "Covid19 cases rise 300%", "covid cases rise"},
		{"whitespace collapsed", "  a \t\n  b   ", "a b"},
		{"symbols only", "123 !@# 456", ""},
		{"symbol between spaces", "left - right", "left right"},
		{"accents dropped", "café au lait", "caf au lait"},
		{"non-latin dropped", "news 新闻 today", "news today"},
		{"dotted capital i", "İstanbul", "istanbul"},
		{"kelvin sign", "Kelvin", "kelvin"},
		{"nbsp is whitespace", "a\u00a0b", "a b"},
		{"file separator is whitespace", "a\x1cb", "a b"},
		{"example headline", "Breaking: Prime minister resigns after secret alien invasion", "breaking prime minister resigns after secret alien invasion"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeFoldAccents(t *testing.T) {
	n := New(true)
	tests := []struct {
		input string
		want  string
	}{
		{"café au lait", "cafe au lait"},
		{"Ångström naïve", "angstrom naive"},
		{"plain text", "plain text"},
	}
	for _, tt := range tests {
		if got := n.Normalize(tt.input); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"Government announces free iPhone for every citizen!!",
		"  Scientists   discover new planet similar to Earth ",
		"ÀÉÎ 42 ok",
	}
	for _, in := range inputs {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}
