package textnorm_test

import (
	"reflect"
	"testing"

	"voice-assistant-nlu/pkg/textnorm"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "Lower and strip punctuation",
			in:   "I need a Room!",
			want: "i need a room",
		},
		{
			name: "Currency symbol kept",
			in:   "$5500, 3 rooms, in london, calculate mortgage",
			want: "$5500 3 rooms in london calculate mortgage",
		},
		{
			name: "Thousands separator kept inside number",
			in:   "around 5,500 dollars",
			want: "around 5,500 dollars",
		},
		{
			name: "Trailing comma dropped",
			in:   "london, please",
			want: "london please",
		},
		{
			name: "Decimal kept",
			in:   "3.5 percent rate",
			want: "3.5 percent rate",
		},
		{
			name: "Whitespace collapsed",
			in:   "  hello    there  ",
			want: "hello there",
		},
		{
			name: "Empty",
			in:   "   ",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := textnorm.Normalize(tt.in)
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTokenize(t *testing.T) {
	tokens := textnorm.Tokenize("Need a room in London")
	want := []string{"need", "a", "room", "in", "london"}

	if len(tokens) != len(want) {
		t.Fatalf("expected %d tokens, got %d", len(want), len(tokens))
	}
	for i, tok := range tokens {
		if tok.Text != want[i] {
			t.Errorf("token %d = %q, want %q", i, tok.Text, want[i])
		}
		if tok.Index != i {
			t.Errorf("token %d has index %d", i, tok.Index)
		}
	}

	// Spans must slice back into the normalized text.
	normalized := textnorm.Normalize("Need a room in London")
	for _, tok := range tokens {
		if normalized[tok.Start:tok.End] != tok.Text {
			t.Errorf("span [%d:%d] = %q, want %q", tok.Start, tok.End, normalized[tok.Start:tok.End], tok.Text)
		}
	}

	if got := textnorm.Tokenize("   "); got != nil {
		t.Errorf("expected nil tokens for blank input, got %v", got)
	}
}

func TestWords(t *testing.T) {
	got := textnorm.Words("Calculate Mortgage!")
	want := []string{"calculate", "mortgage"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Words = %v, want %v", got, want)
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int64
		ok   bool
	}{
		{name: "Dollar prefix", in: "$5500", want: 5500, ok: true},
		{name: "Thousands separator", in: "5,500", want: 5500, ok: true},
		{name: "Both normalize equal", in: "$5,500", want: 5500, ok: true},
		{name: "Pound prefix", in: "£2000", want: 2000, ok: true},
		{name: "K multiplier", in: "5k", want: 5000, ok: true},
		{name: "Currency with k", in: "$5k", want: 5000, ok: true},
		{name: "Decimal k", in: "5.5k", want: 5500, ok: true},
		{name: "Bare integer", in: "3", want: 3, ok: true},
		{name: "Word", in: "rooms", ok: false},
		{name: "Empty", in: "", ok: false},
		{name: "Lonely symbol", in: "$", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := textnorm.ParseAmount(tt.in)
			if ok != tt.ok {
				t.Fatalf("ParseAmount(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("ParseAmount(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}
