package lexer

import "fmt"

// ErrorKind classifies the subcategories of SyntaxError.
type ErrorKind int

const (
	UnexpectedCharacter ErrorKind = iota
	InvalidSpread
	InvalidNumberLeadingZero
	InvalidNumberExpectedDigit
	InvalidEscapeSequence
	InvalidCharacterInString
	UnterminatedString
	EmptyInput
	ArgumentOutOfRange
)

var errorKindMessages = map[ErrorKind]string{
	UnexpectedCharacter:        "unexpected character",
	InvalidSpread:              "invalid token, expected \"...\"",
	InvalidNumberLeadingZero:   "invalid number, unexpected digit after 0",
	InvalidNumberExpectedDigit: "invalid number, expected digit",
	InvalidEscapeSequence:      "invalid character escape sequence",
	InvalidCharacterInString:   "invalid character inside string",
	UnterminatedString:         "unterminated string",
	EmptyInput:                 "source text must not be empty",
	ArgumentOutOfRange:         "argument must be at least 1",
}

// SyntaxError is the single error type the lexer returns, parameterized
// by Kind. Line and Column describe the byte offset at which the
// offending construct was recognized.
type SyntaxError struct {
	Kind    ErrorKind
	Line    int
	Column  int
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error (%d:%d): %s", e.Line, e.Column, e.Message)
}

func newSyntaxError(kind ErrorKind, line, column int) *SyntaxError {
	return &SyntaxError{Kind: kind, Line: line, Column: column, Message: errorKindMessages[kind]}
}

func newSyntaxErrorf(kind ErrorKind, line, column int, format string, args ...interface{}) *SyntaxError {
	return &SyntaxError{Kind: kind, Line: line, Column: column, Message: fmt.Sprintf(format, args...)}
}
