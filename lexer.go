package microlog

import (
	"fmt"
	"strings"
	"unicode"
)

// TokenKind classifies a token.
type TokenKind int

const (
	// TokenEOF marks the end of input.
	TokenEOF TokenKind = iota
	// TokenLParen is an opening parenthesis.
	TokenLParen
	// TokenRParen is a closing parenthesis.
	TokenRParen
	// TokenLBracket is an opening bracket.
	TokenLBracket
	// TokenRBracket is a closing bracket.
	TokenRBracket
	// TokenBar is the list tail separator.
	TokenBar
	// TokenAtom is a symbolic constant.
	TokenAtom
	// TokenVariable is an identifier starting with an upper-case letter or
	// an underscore.
	TokenVariable
	// TokenInteger is an integer literal.
	TokenInteger
	// TokenFloat is a floating-point literal.
	TokenFloat
)

func (k TokenKind) String() string {
	switch k {
	case TokenEOF:
		return "eof"
	case TokenLParen:
		return "("
	case TokenRParen:
		return ")"
	case TokenLBracket:
		return "["
	case TokenRBracket:
		return "]"
	case TokenBar:
		return "|"
	case TokenAtom:
		return "atom"
	case TokenVariable:
		return "variable"
	case TokenInteger:
		return "integer"
	case TokenFloat:
		return "float"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// Token is a lexical token of the prefix notation.
type Token struct {
	Kind TokenKind
	Val  string
}

func (t Token) String() string {
	if t.Val == "" {
		return t.Kind.String()
	}
	return fmt.Sprintf("%s %q", t.Kind, t.Val)
}

const graphicChars = "#$&*+-./:<=>?@^~\\"

// Lexer tokenizes the prefix notation: parenthesized compounds, bracketed
// lists, identifiers, numbers, graphic atoms and % line comments.
type Lexer struct {
	input []rune
	pos   int
}

// NewLexer creates a lexer over input.
func NewLexer(input string) *Lexer {
	return &Lexer{input: []rune(input)}
}

// Next returns the next token.
func (l *Lexer) Next() (Token, error) {
	l.skip()
	if l.pos >= len(l.input) {
		return Token{Kind: TokenEOF}, nil
	}
	r := l.input[l.pos]
	switch {
	case r == '(':
		l.pos++
		return Token{Kind: TokenLParen, Val: "("}, nil
	case r == ')':
		l.pos++
		return Token{Kind: TokenRParen, Val: ")"}, nil
	case r == '[':
		l.pos++
		return Token{Kind: TokenLBracket, Val: "["}, nil
	case r == ']':
		l.pos++
		return Token{Kind: TokenRBracket, Val: "]"}, nil
	case r == '|':
		l.pos++
		return Token{Kind: TokenBar, Val: "|"}, nil
	case r == '!':
		l.pos++
		return Token{Kind: TokenAtom, Val: "!"}, nil
	case unicode.IsDigit(r):
		return l.number(), nil
	case r == '-' && l.pos+1 < len(l.input) && unicode.IsDigit(l.input[l.pos+1]):
		return l.number(), nil
	case unicode.IsLetter(r) || r == '_':
		return l.identifier(), nil
	case strings.ContainsRune(graphicChars, r):
		return l.graphic(), nil
	default:
		return Token{}, fmt.Errorf("unexpected character %q at position %d", r, l.pos)
	}
}

func (l *Lexer) skip() {
	for l.pos < len(l.input) {
		switch r := l.input[l.pos]; {
		case unicode.IsSpace(r):
			l.pos++
		case r == '%':
			for l.pos < len(l.input) && l.input[l.pos] != '\n' {
				l.pos++
			}
		default:
			return
		}
	}
}

func (l *Lexer) number() Token {
	start := l.pos
	if l.input[l.pos] == '-' {
		l.pos++
	}
	for l.pos < len(l.input) && unicode.IsDigit(l.input[l.pos]) {
		l.pos++
	}
	kind := TokenInteger
	if l.pos+1 < len(l.input) && l.input[l.pos] == '.' && unicode.IsDigit(l.input[l.pos+1]) {
		kind = TokenFloat
		l.pos++
		for l.pos < len(l.input) && unicode.IsDigit(l.input[l.pos]) {
			l.pos++
		}
	}
	return Token{Kind: kind, Val: string(l.input[start:l.pos])}
}

func (l *Lexer) identifier() Token {
	start := l.pos
	for l.pos < len(l.input) && (unicode.IsLetter(l.input[l.pos]) || unicode.IsDigit(l.input[l.pos]) || l.input[l.pos] == '_') {
		l.pos++
	}
	val := string(l.input[start:l.pos])
	if r := l.input[start]; unicode.IsUpper(r) || r == '_' {
		return Token{Kind: TokenVariable, Val: val}
	}
	return Token{Kind: TokenAtom, Val: val}
}

func (l *Lexer) graphic() Token {
	start := l.pos
	for l.pos < len(l.input) && strings.ContainsRune(graphicChars, l.input[l.pos]) {
		l.pos++
	}
	return Token{Kind: TokenAtom, Val: string(l.input[start:l.pos])}
}
