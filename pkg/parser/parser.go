// Package parser turns FormalLang source text into the AST consumed by the
// typechecker and interpreter. The grammar is small: statements are
// semicolon-terminated, blocks are braced statement lists folded into
// sequence nodes, and `nand` is the only operator (left-associative).
package parser

import (
	"formallang/interpreter-go/pkg/ast"
)

// Parse tokenizes and parses a complete program. A program is one or more
// statements; the list folds right into SeqStatement nodes so the checker's
// scope threading sees the same shape the interpreter evaluates.
func Parse(source string) (ast.Stmt, error) {
	tokens, err := NewScanner(source).ScanTokens()
	if err != nil {
		return nil, err
	}
	p := &parser{tokens: tokens}
	stmts, err := p.statementList(TokenEOF)
	if err != nil {
		return nil, err
	}
	if !p.check(TokenEOF) {
		return nil, errorAt(p.peek(), "expected end of input, found %q", p.peek().Lexeme)
	}
	return ast.Block(stmts...), nil
}

// ParseExpr parses a single expression, used by the REPL to echo values.
func ParseExpr(source string) (ast.Expr, error) {
	tokens, err := NewScanner(source).ScanTokens()
	if err != nil {
		return nil, err
	}
	p := &parser{tokens: tokens}
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if !p.check(TokenEOF) {
		return nil, errorAt(p.peek(), "expected end of input, found %q", p.peek().Lexeme)
	}
	return expr, nil
}

type parser struct {
	tokens  []Token
	current int
}

// statementList parses statements until the terminator token, requiring at
// least one. Empty programs and empty blocks are rejected: the language has
// no skip statement.
func (p *parser) statementList(until TokenType) ([]ast.Stmt, error) {
	var stmts []ast.Stmt
	for !p.check(until) && !p.check(TokenEOF) {
		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	if len(stmts) == 0 {
		return nil, errorAt(p.peek(), "expected at least one statement")
	}
	return stmts, nil
}

func (p *parser) statement() (ast.Stmt, error) {
	switch {
	case p.match(TokenLet):
		return p.declStatement()
	case p.match(TokenIf):
		return p.guardedStatement(true)
	case p.match(TokenWhile):
		return p.guardedStatement(false)
	case p.match(TokenFree):
		return p.freeStatement()
	case p.check(TokenIdent):
		return p.assignStatement()
	default:
		return nil, errorAt(p.peek(), "expected statement, found %q", p.peek().Lexeme)
	}
}

func (p *parser) declStatement() (ast.Stmt, error) {
	keyword := p.previous()
	name, err := p.consume(TokenIdent, "expected variable name after 'let'")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(TokenEqual, "expected '=' after variable name"); err != nil {
		return nil, err
	}
	value, err := p.expression()
	if err != nil {
		return nil, err
	}
	end, err := p.consume(TokenSemicolon, "expected ';' after declaration")
	if err != nil {
		return nil, err
	}
	stmt := ast.Decl(name.Lexeme, value)
	ast.SetSpan(stmt, spanBetween(keyword, end))
	return stmt, nil
}

func (p *parser) assignStatement() (ast.Stmt, error) {
	target := p.advance()
	if _, err := p.consume(TokenEqual, "expected '=' after %q", target.Lexeme); err != nil {
		return nil, err
	}
	value, err := p.expression()
	if err != nil {
		return nil, err
	}
	end, err := p.consume(TokenSemicolon, "expected ';' after assignment")
	if err != nil {
		return nil, err
	}
	stmt := ast.Assign(target.Lexeme, value)
	ast.SetSpan(stmt, spanBetween(target, end))
	return stmt, nil
}

func (p *parser) guardedStatement(isIf bool) (ast.Stmt, error) {
	keyword := p.previous()
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(TokenLBrace, "expected '{' after condition"); err != nil {
		return nil, err
	}
	body, err := p.statementList(TokenRBrace)
	if err != nil {
		return nil, err
	}
	end, err := p.consume(TokenRBrace, "expected '}' after block")
	if err != nil {
		return nil, err
	}
	var stmt ast.Stmt
	if isIf {
		stmt = ast.If(cond, ast.Block(body...))
	} else {
		stmt = ast.While(cond, ast.Block(body...))
	}
	ast.SetSpan(stmt, spanBetween(keyword, end))
	return stmt, nil
}

func (p *parser) freeStatement() (ast.Stmt, error) {
	keyword := p.previous()
	name, err := p.consume(TokenIdent, "expected variable name after 'free'")
	if err != nil {
		return nil, err
	}
	end, err := p.consume(TokenSemicolon, "expected ';' after free")
	if err != nil {
		return nil, err
	}
	stmt := ast.Free(name.Lexeme)
	ast.SetSpan(stmt, spanBetween(keyword, end))
	return stmt, nil
}

// expression parses a left-associative chain of `nand` applications.
func (p *parser) expression() (ast.Expr, error) {
	left, err := p.primary()
	if err != nil {
		return nil, err
	}
	for p.match(TokenNand) {
		right, err := p.primary()
		if err != nil {
			return nil, err
		}
		combined := ast.Nand(left, right)
		ast.SetSpan(combined, joinSpans(left.Span(), right.Span()))
		left = combined
	}
	return left, nil
}

func (p *parser) primary() (ast.Expr, error) {
	switch {
	case p.match(TokenTrue):
		return literalAt(p.previous(), true), nil
	case p.match(TokenFalse):
		return literalAt(p.previous(), false), nil
	case p.match(TokenIdent):
		tok := p.previous()
		expr := ast.ID(tok.Lexeme)
		ast.SetSpan(expr, spanBetween(tok, tok))
		return expr, nil
	case p.match(TokenLParen):
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(TokenRParen, "expected ')' after expression"); err != nil {
			return nil, err
		}
		return expr, nil
	default:
		return nil, errorAt(p.peek(), "expected expression, found %q", p.peek().Lexeme)
	}
}

func literalAt(tok Token, value bool) ast.Expr {
	expr := ast.Bool(value)
	ast.SetSpan(expr, spanBetween(tok, tok))
	return expr
}

func spanBetween(start, end Token) ast.Span {
	return ast.Span{
		Line:      start.Line,
		Column:    start.Column,
		EndLine:   end.Line,
		EndColumn: end.Column + len(end.Lexeme),
	}
}

func joinSpans(a, b ast.Span) ast.Span {
	return ast.Span{Line: a.Line, Column: a.Column, EndLine: b.EndLine, EndColumn: b.EndColumn}
}

func (p *parser) match(tt TokenType) bool {
	if p.check(tt) {
		p.advance()
		return true
	}
	return false
}

func (p *parser) check(tt TokenType) bool {
	return p.peek().Type == tt
}

func (p *parser) consume(tt TokenType, format string, args ...any) (Token, error) {
	if p.check(tt) {
		return p.advance(), nil
	}
	return Token{}, errorAt(p.peek(), format, args...)
}

func (p *parser) advance() Token {
	tok := p.tokens[p.current]
	if tok.Type != TokenEOF {
		p.current++
	}
	return tok
}

func (p *parser) peek() Token {
	return p.tokens[p.current]
}

func (p *parser) previous() Token {
	return p.tokens[p.current-1]
}
