package parser

import (
	"fmt"
	"unicode"
)

type TokenType string

const (
	// Keywords
	TokenLet   TokenType = "LET"
	TokenIf    TokenType = "IF"
	TokenWhile TokenType = "WHILE"
	TokenFree  TokenType = "FREE"
	TokenNand  TokenType = "NAND"
	TokenTrue  TokenType = "TRUE"
	TokenFalse TokenType = "FALSE"

	// Literals & symbols
	TokenIdent     TokenType = "IDENT"
	TokenEqual     TokenType = "="
	TokenSemicolon TokenType = ";"
	TokenLBrace    TokenType = "{"
	TokenRBrace    TokenType = "}"
	TokenLParen    TokenType = "("
	TokenRParen    TokenType = ")"
	TokenEOF       TokenType = "EOF"
)

var keywords = map[string]TokenType{
	"let":   TokenLet,
	"if":    TokenIf,
	"while": TokenWhile,
	"free":  TokenFree,
	"nand":  TokenNand,
	"true":  TokenTrue,
	"false": TokenFalse,
}

// Token is one lexeme with its source position.
type Token struct {
	Type   TokenType
	Lexeme string
	Line   int
	Column int
}

func (t Token) String() string {
	return fmt.Sprintf("[%s] %q", t.Type, t.Lexeme)
}

// Scanner turns FormalLang source into tokens. Line comments start with '#'.
type Scanner struct {
	source   []rune
	tokens   []Token
	start    int
	current  int
	line     int
	column   int
	startCol int
}

// NewScanner prepares a scanner over source.
func NewScanner(source string) *Scanner {
	return &Scanner{source: []rune(source), line: 1, column: 1}
}

// ScanTokens tokenizes the whole input, ending with an EOF token.
func (s *Scanner) ScanTokens() ([]Token, error) {
	for !s.isAtEnd() {
		s.start = s.current
		s.startCol = s.column
		if err := s.scanToken(); err != nil {
			return nil, err
		}
	}
	s.tokens = append(s.tokens, Token{Type: TokenEOF, Line: s.line, Column: s.column})
	return s.tokens, nil
}

func (s *Scanner) scanToken() error {
	ch := s.advance()
	switch ch {
	case ' ', '\t', '\r':
	case '\n':
		s.line++
		s.column = 1
	case '#':
		for !s.isAtEnd() && s.peek() != '\n' {
			s.advance()
		}
	case '=':
		s.addToken(TokenEqual)
	case ';':
		s.addToken(TokenSemicolon)
	case '{':
		s.addToken(TokenLBrace)
	case '}':
		s.addToken(TokenRBrace)
	case '(':
		s.addToken(TokenLParen)
	case ')':
		s.addToken(TokenRParen)
	default:
		if isIdentStart(ch) {
			s.identifier()
			return nil
		}
		return &ParseError{
			Message:  fmt.Sprintf("parser: unexpected character %q", ch),
			Location: SourceLocation{Line: s.line, Column: s.startCol, EndLine: s.line, EndColumn: s.column},
		}
	}
	return nil
}

func (s *Scanner) identifier() {
	for !s.isAtEnd() && isIdentPart(s.peek()) {
		s.advance()
	}
	lexeme := string(s.source[s.start:s.current])
	if keyword, ok := keywords[lexeme]; ok {
		s.addToken(keyword)
		return
	}
	s.addToken(TokenIdent)
}

func (s *Scanner) addToken(tt TokenType) {
	s.tokens = append(s.tokens, Token{
		Type:   tt,
		Lexeme: string(s.source[s.start:s.current]),
		Line:   s.line,
		Column: s.startCol,
	})
}

func (s *Scanner) advance() rune {
	ch := s.source[s.current]
	s.current++
	s.column++
	return ch
}

func (s *Scanner) peek() rune {
	return s.source[s.current]
}

func (s *Scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

func isIdentStart(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch)
}

func isIdentPart(ch rune) bool {
	return isIdentStart(ch) || unicode.IsDigit(ch)
}
