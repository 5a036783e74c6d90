package parser

import (
	"fmt"

	"go.creack.net/calc/lexer"
)

// ParseErrorKind discriminates the ways an expression can fail to parse.
type ParseErrorKind int

const (
	UnexpectedToken ParseErrorKind = iota
	UnmatchedParenthesis
	UnexpectedEndOfInput
)

func (k ParseErrorKind) String() string {
	switch k {
	case UnexpectedToken:
		return "unexpected token"
	case UnmatchedParenthesis:
		return "unmatched parenthesis"
	case UnexpectedEndOfInput:
		return "unexpected end of input"
	}
	return fmt.Sprintf("unknown(%d)", int(k))
}

// ParseError is the typed failure for input that lexes but doesn't parse.
type ParseError struct {
	Kind  ParseErrorKind
	Token lexer.Token
}

func (e *ParseError) Error() string {
	if e.Kind == UnexpectedEndOfInput {
		return fmt.Sprintf("parse: %s", e.Kind)
	}
	return fmt.Sprintf("parse: %s %s", e.Kind, e.Token)
}

func (p *parser) errUnexpected() error {
	if p.curToken.Type == lexer.TokEOF {
		return &ParseError{Kind: UnexpectedEndOfInput, Token: p.curToken}
	}
	return &ParseError{Kind: UnexpectedToken, Token: p.curToken}
}
