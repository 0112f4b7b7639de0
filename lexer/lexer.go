// Package lexer implements the GraphQL lexical analyzer: a single-pass,
// allocation-free byte-cursor scanner over an immutable source buffer.
// Callers repeatedly invoke Advance; each call advances the cursor past
// one token and updates the lexer's exported state (Kind, Start, End,
// Value, Line, Column, FloatFormat) to describe it.
package lexer

import "github.com/vertexql/graphql/token"

// Lexer holds all state for a single scan over a source buffer. It is
// not safe for concurrent use, is not restartable, and does not
// outlive the buffer it was constructed over.
type Lexer struct {
	data   []byte
	length int
	pos    int // cursor: byte index of the next byte to inspect

	kind        token.Kind
	start       int
	end         int
	value       []byte
	floatFormat token.FloatFormat

	pp position
}

// New constructs a Lexer over data. data must be non-empty; New does
// not copy it and the returned Lexer borrows it for its entire
// lifetime.
func New(data []byte) (*Lexer, error) {
	if len(data) == 0 {
		return nil, newSyntaxError(EmptyInput, 1, 1)
	}
	return &Lexer{
		data:   data,
		length: len(data),
		kind:   token.StartOfFile,
		pp:     newPosition(),
	}, nil
}

// Kind returns the kind of the current token.
func (l *Lexer) Kind() token.Kind { return l.kind }

// Start returns the byte offset of the current token's first byte.
func (l *Lexer) Start() int { return l.start }

// End returns the byte offset that closes the current token's span.
// For most kinds it is the offset immediately past the token; for a
// String it is the offset of the closing quote, and for a BlockString
// it is the offset of the last byte of the closing triple quote.
func (l *Lexer) End() int { return l.end }

// Position returns the cursor: the byte offset of the next byte the
// scanner will inspect.
func (l *Lexer) Position() int { return l.pos }

// Line returns the 1-indexed line number of the current token's start.
func (l *Lexer) Line() int { return l.pp.line }

// Column returns the 1-indexed column of the current token's start.
func (l *Lexer) Column() int { return l.pp.column }

// LineStart returns the byte offset of the first byte of the current
// token's line.
func (l *Lexer) LineStart() int { return l.pp.lineStart }

// Value returns the current token's payload. It is empty for
// punctuators and EndOfFile, and is a view into the source buffer
// valid only until the next call to Advance.
func (l *Lexer) Value() []byte { return l.value }

// FloatFormat returns the float-literal shape of the current token.
// It is token.NoFloatFormat for every token kind other than Float.
func (l *Lexer) FloatFormat() token.FloatFormat { return l.floatFormat }

// IsEndOfStream reports whether the cursor has reached the end of the
// buffer.
func (l *Lexer) IsEndOfStream() bool { return l.pos >= l.length }

// Token returns an immutable snapshot of the current token, for
// consumers (such as a parser) that want to hold onto it across a
// subsequent Advance call.
func (l *Lexer) Token() token.Token {
	return token.Token{
		Kind:        l.kind,
		Start:       l.start,
		End:         l.end,
		Value:       l.value,
		Line:        l.pp.line,
		Column:      l.pp.column,
		FloatFormat: l.floatFormat,
	}
}

// SetNewLine lets a higher layer (a block-string indentation
// post-processor, for instance) record one additional line break to
// be applied on the next Advance's whitespace skip.
func (l *Lexer) SetNewLine() {
	l.pp.pendingNewLines++
}

// SetNewLineN is the parameterized form of SetNewLine. n must be at
// least 1.
func (l *Lexer) SetNewLineN(n int) error {
	if n < 1 {
		return newSyntaxErrorf(ArgumentOutOfRange, l.pp.line, l.pp.column, "argument must be at least 1, got %d", n)
	}
	l.pp.pendingNewLines += n
	return nil
}

// UpdateColumn recomputes Column from Position and LineStart. Useful
// after a caller has repositioned the cursor through means other than
// Advance.
func (l *Lexer) UpdateColumn() {
	l.pp.column = l.pp.columnAt(l.pos)
}

// Advance scans the next token. It returns true when a real token was
// produced and false exactly when the terminal EndOfFile token is
// produced (or has already been produced, further calls are
// idempotent). A non-nil error means the source contains a malformed
// construct; the scan does not self-recover from it.
func (l *Lexer) Advance() (bool, error) {
	if l.kind == token.EndOfFile {
		return false, nil
	}

	l.floatFormat = token.NoFloatFormat

	if l.pos == 0 {
		l.skipBOM()
	}

	l.skipIgnored()

	line, column := l.pp.snapshot(l.pos)

	if l.pos >= l.length {
		l.kind = token.EndOfFile
		l.start = l.pos
		l.end = l.pos
		l.value = nil
		l.pp.line, l.pp.column = line, column
		return false, nil
	}

	b := l.data[l.pos]
	switch {
	case isPunctuator[b]:
		if err := l.scanPunctuator(line, column); err != nil {
			return false, err
		}
	case isLetterOrUnderscore[b]:
		l.scanName(line, column)
	case isDigitOrMinus[b]:
		if err := l.scanNumber(line, column); err != nil {
			return false, err
		}
	case b == byteHash:
		l.scanComment(line, column)
	case b == byteQuote:
		if err := l.scanStringOrBlockString(line, column); err != nil {
			return false, err
		}
	default:
		return false, newSyntaxError(UnexpectedCharacter, line, column)
	}

	return true, nil
}

// skipBOM skips a UTF-8 BOM (EF BB BF) or the leading two bytes of a
// UTF-16 BOM (FE FF) at the very start of the buffer. Only called when
// Position is 0.
func (l *Lexer) skipBOM() {
	if l.length >= 3 && l.data[0] == 0xEF && l.data[1] == 0xBB && l.data[2] == 0xBF {
		l.pos = 3
		return
	}
	if l.length >= 2 && l.data[0] == 0xFE && l.data[1] == 0xFF {
		l.pos = 2
	}
}

// skipIgnored consumes whitespace, commas, and line terminators,
// updating position state, and flushes any pendingNewLines left by a
// block string scanned during the previous token.
func (l *Lexer) skipIgnored() {
	l.pp.flushPending(l.pos)
	for l.pos < l.length {
		switch l.data[l.pos] {
		case byteSpace, byteTab, byteComma:
			l.pos++
		case byteNewLine:
			l.pos++
			l.pp.advanceLine(l.pos)
		case byteReturn:
			l.pos++
			if l.pos < l.length && l.data[l.pos] == byteNewLine {
				l.pos++
			}
			l.pp.advanceLine(l.pos)
		default:
			return
		}
	}
}

// hasTripleQuoteAt reports whether three consecutive '"' bytes begin
// at offset o, used for both the block-string open/close lookahead.
// Written without a variadic helper so it stays allocation-free on the
// hot path.
func (l *Lexer) hasTripleQuoteAt(o int) bool {
	return o+2 < l.length &&
		l.data[o] == byteQuote && l.data[o+1] == byteQuote && l.data[o+2] == byteQuote
}

// hasEscapedTripleQuoteAt reports whether the escaped-triple-quote
// sequence \""" begins at offset o.
func (l *Lexer) hasEscapedTripleQuoteAt(o int) bool {
	return o+3 < l.length &&
		l.data[o] == byteBackslash && l.data[o+1] == byteQuote &&
		l.data[o+2] == byteQuote && l.data[o+3] == byteQuote
}

// hasSpreadAt reports whether three consecutive '.' bytes begin at
// offset o.
func (l *Lexer) hasSpreadAt(o int) bool {
	return o+2 < l.length &&
		l.data[o] == byteDot && l.data[o+1] == byteDot && l.data[o+2] == byteDot
}

// scanPunctuator recognizes a single-byte punctuator, or the three-byte
// Spread ("...") when the byte under the cursor is a dot.
func (l *Lexer) scanPunctuator(line, column int) error {
	start := l.pos
	b := l.data[l.pos]

	if b == byteDot {
		if !l.hasSpreadAt(l.pos) {
			return newSyntaxError(InvalidSpread, line, column)
		}
		l.kind = token.Spread
		l.start = start
		l.end = start + 3
		l.value = nil
		l.pos += 3
		l.pp.line, l.pp.column = line, column
		return nil
	}

	l.kind = punctuatorKind[b]
	l.start = start
	l.end = start + 1
	l.value = nil
	l.pos++
	l.pp.line, l.pp.column = line, column
	return nil
}

// scanName recognizes [_A-Za-z][_0-9A-Za-z]*.
func (l *Lexer) scanName(line, column int) {
	start := l.pos
	l.pos++
	for l.pos < l.length && isLetterOrDigitOrUnderscore[l.data[l.pos]] {
		l.pos++
	}
	l.kind = token.Name
	l.start = start
	l.end = l.pos
	l.value = l.data[start:l.pos]
	l.pp.line, l.pp.column = line, column
}

// scanNumber recognizes an optionally negative integer, with an
// optional fractional part and an optional exponent part.
func (l *Lexer) scanNumber(line, column int) error {
	start := l.pos

	if l.data[l.pos] == byteMinus {
		l.pos++
	}
	if l.pos >= l.length || !isDigit[l.data[l.pos]] {
		return newSyntaxError(InvalidNumberExpectedDigit, line, column)
	}

	if l.data[l.pos] == byteZero {
		l.pos++
		if l.pos < l.length && isDigit[l.data[l.pos]] {
			return newSyntaxError(InvalidNumberLeadingZero, line, column)
		}
	} else {
		for l.pos < l.length && isDigit[l.data[l.pos]] {
			l.pos++
		}
	}

	kind := token.Integer
	format := token.NoFloatFormat

	if l.pos < l.length && l.data[l.pos] == byteDot {
		l.pos++
		if l.pos >= l.length || !isDigit[l.data[l.pos]] {
			return newSyntaxError(InvalidNumberExpectedDigit, line, column)
		}
		for l.pos < l.length && isDigit[l.data[l.pos]] {
			l.pos++
		}
		kind = token.Float
		format = token.FixedPoint
	}

	if l.pos < l.length && (l.data[l.pos] == byteE || l.data[l.pos] == byteBigE) {
		l.pos++
		if l.pos < l.length && (l.data[l.pos] == bytePlus || l.data[l.pos] == byteMinus) {
			l.pos++
		}
		if l.pos >= l.length || !isDigit[l.data[l.pos]] {
			return newSyntaxError(InvalidNumberExpectedDigit, line, column)
		}
		for l.pos < l.length && isDigit[l.data[l.pos]] {
			l.pos++
		}
		kind = token.Float
		format = token.Exponential
	}

	l.kind = kind
	l.start = start
	l.end = l.pos
	l.value = l.data[start:l.pos]
	l.floatFormat = format
	l.pp.line, l.pp.column = line, column
	return nil
}

// scanComment recognizes a '#'-introduced comment, trimming leading
// '#', space and tab bytes from Value until the first non-trim byte is
// seen. Trimming repeated leading '#' bytes is intentional: it lets
// "##"-style banner comments read the same as a plain one.
func (l *Lexer) scanComment(line, column int) {
	start := l.pos
	l.pos++ // consume the introductory '#'

	trimming := true
	valueStart := l.pos

	for l.pos < l.length && !isControlCharacter[l.data[l.pos]] {
		b := l.data[l.pos]
		if trimming && (b == byteHash || b == byteSpace || b == byteTab) {
			l.pos++
			valueStart = l.pos
			continue
		}
		trimming = false
		l.pos++
	}

	l.kind = token.Comment
	l.start = start
	l.end = l.pos
	l.value = l.data[valueStart:l.pos]
	l.pp.line, l.pp.column = line, column
}

// scanStringOrBlockString dispatches to the block-string or
// single-line string recognizer based on a three-quote lookahead.
func (l *Lexer) scanStringOrBlockString(line, column int) error {
	if l.hasTripleQuoteAt(l.pos) {
		return l.scanBlockString(line, column)
	}
	return l.scanString(line, column)
}

// scanString recognizes a "-delimited single-line string.
//
// A raw LF/CR inside the literal exits this recognizer without
// emitting an error and without consuming the terminator, so Advance
// returns with Kind, Start, End, Value, Line and Column unchanged from
// the previous call (FloatFormat has already been cleared by Advance). This mirrors observed, non-conforming behavior rather than
// fixing it; a caller that wants strict conformance should treat an
// unchanged token as cause to raise its own UnterminatedString.
func (l *Lexer) scanString(line, column int) error {
	start := l.pos
	l.pos++ // consume opening quote
	valueStart := l.pos

	for {
		if l.pos >= l.length {
			return newSyntaxError(UnterminatedString, line, column)
		}
		b := l.data[l.pos]

		if b == byteQuote {
			l.kind = token.String
			l.start = start
			l.end = l.pos
			l.value = l.data[valueStart:l.pos]
			l.pos++
			l.pp.line, l.pp.column = line, column
			return nil
		}
		if b == byteNewLine || b == byteReturn {
			return nil
		}
		if isControlCharacter[b] {
			return newSyntaxError(InvalidCharacterInString, line, column)
		}
		if b == byteBackslash {
			l.pos++
			if l.pos >= l.length {
				return newSyntaxError(UnterminatedString, line, column)
			}
			if !isEscapeCharacter[l.data[l.pos]] {
				return newSyntaxError(InvalidEscapeSequence, line, column)
			}
			l.pos++
			continue
		}
		l.pos++
	}
}

// scanBlockString recognizes a """-delimited block string.
func (l *Lexer) scanBlockString(line, column int) error {
	start := l.pos
	l.pos += 3 // consume opening """

	for {
		if l.pos >= l.length {
			return newSyntaxError(UnterminatedString, line, column)
		}

		if l.hasEscapedTripleQuoteAt(l.pos) {
			l.pos += 4
			continue
		}
		if l.hasTripleQuoteAt(l.pos) {
			end := l.pos + 2
			l.kind = token.BlockString
			l.start = start
			l.end = end
			l.value = l.data[start+3 : l.pos]
			l.pos += 3
			l.pp.line, l.pp.column = line, column
			return nil
		}

		b := l.data[l.pos]
		switch {
		case b == byteNewLine:
			l.pp.pendingNewLines++
			l.pos++
		case b == byteReturn:
			l.pp.pendingNewLines++
			l.pos++
			if l.pos < l.length && l.data[l.pos] == byteNewLine {
				l.pos++
			}
		case isControlCharacterNoNewLine[b]:
			return newSyntaxError(InvalidCharacterInString, line, column)
		default:
			l.pos++
		}
	}
}
