package microlog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func collect(t *testing.T, input string) []Token {
	t.Helper()
	l := NewLexer(input)
	var tokens []Token
	for {
		tok, err := l.Next()
		assert.NoError(t, err)
		tokens = append(tokens, tok)
		if tok.Kind == TokenEOF {
			return tokens
		}
	}
}

func TestLexer_Next(t *testing.T) {
	tests := []struct {
		input string
		want  []Token
	}{
		{
			input: "(parent tom X)",
			want: []Token{
				{Kind: TokenLParen, Val: "("},
				{Kind: TokenAtom, Val: "parent"},
				{Kind: TokenAtom, Val: "tom"},
				{Kind: TokenVariable, Val: "X"},
				{Kind: TokenRParen, Val: ")"},
				{Kind: TokenEOF},
			},
		},
		{
			input: "[a 42 -7 3.14 | Rest]",
			want: []Token{
				{Kind: TokenLBracket, Val: "["},
				{Kind: TokenAtom, Val: "a"},
				{Kind: TokenInteger, Val: "42"},
				{Kind: TokenInteger, Val: "-7"},
				{Kind: TokenFloat, Val: "3.14"},
				{Kind: TokenBar, Val: "|"},
				{Kind: TokenVariable, Val: "Rest"},
				{Kind: TokenRBracket, Val: "]"},
				{Kind: TokenEOF},
			},
		},
		{
			input: "(is X (+ 1 2)) % trailing comment",
			want: []Token{
				{Kind: TokenLParen, Val: "("},
				{Kind: TokenAtom, Val: "is"},
				{Kind: TokenVariable, Val: "X"},
				{Kind: TokenLParen, Val: "("},
				{Kind: TokenAtom, Val: "+"},
				{Kind: TokenInteger, Val: "1"},
				{Kind: TokenInteger, Val: "2"},
				{Kind: TokenRParen, Val: ")"},
				{Kind: TokenRParen, Val: ")"},
				{Kind: TokenEOF},
			},
		},
		{
			input: "! =< <> /= _anon",
			want: []Token{
				{Kind: TokenAtom, Val: "!"},
				{Kind: TokenAtom, Val: "=<"},
				{Kind: TokenAtom, Val: "<>"},
				{Kind: TokenAtom, Val: "/="},
				{Kind: TokenVariable, Val: "_anon"},
				{Kind: TokenEOF},
			},
		},
		{
			input: "% only a comment",
			want:  []Token{{Kind: TokenEOF}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, collect(t, tt.input))
		})
	}
}

func TestLexer_Unexpected(t *testing.T) {
	l := NewLexer("{")
	_, err := l.Next()
	assert.Error(t, err)
}
