package lexer

import "fmt"

// Error is the typed failure for input that doesn't lex.
type Error struct {
	Msg  string
	Pos  int
	Line int
}

func (e *Error) Error() string {
	return fmt.Sprintf("lex: %s", e.Msg)
}

// Err converts an error token to a typed *Error. Nil for any other token.
func (t Token) Err() error {
	if t.Type != TokError {
		return nil
	}
	return &Error{Msg: t.Value, Pos: t.Pos, Line: t.Line}
}
