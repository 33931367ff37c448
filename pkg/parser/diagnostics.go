package parser

import "fmt"

// SourceLocation captures a source span for parser diagnostics.
type SourceLocation struct {
	Line      int
	Column    int
	EndLine   int
	EndColumn int
}

// ParseError includes a message plus a best-effort source location.
type ParseError struct {
	Message  string
	Location SourceLocation
}

func (e *ParseError) Error() string {
	return e.Message
}

func errorAt(tok Token, format string, args ...any) *ParseError {
	return &ParseError{
		Message: "parser: " + fmt.Sprintf(format, args...),
		Location: SourceLocation{
			Line:      tok.Line,
			Column:    tok.Column,
			EndLine:   tok.Line,
			EndColumn: tok.Column + len(tok.Lexeme),
		},
	}
}
