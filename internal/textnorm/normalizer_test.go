package textnorm

import "testing"

func TestNormalize(t *testing.T) {
	t.Parallel()

	n := New()
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "whitespace only", in: "   \t\n", want: ""},
		{name: "lowercases", in: "HELLO Friend", want: "hello friend"},
		{
			name: "strips digits and punctuation",
			in:   "my order #12345 hasn't arrived!!",
			want: "order hasn arriv",
		},
		{
			name: "drops stopwords and short tokens",
			in:   "I need to check my account balance",
			want: "need check account balanc",
		},
		{
			name: "stems morphological variants together",
			in:   "tracking tracked tracks",
			want: "track track track",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := n.Normalize(tt.in); got != tt.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	t.Parallel()

	n := New()
	inputs := []string{
		"I need to check my account balance today",
		"hello there friend",
		"track my order status and payment invoice",
		"reset the password for my account",
		"HELLO!!! Can you help me???",
	}
	for _, in := range inputs {
		once := n.Normalize(in)
		twice := n.Normalize(once)
		if once != twice {
			t.Fatalf("Normalize not idempotent for %q: %q vs %q", in, once, twice)
		}
	}
}
