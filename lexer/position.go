package lexer

// position tracks line/column bookkeeping for the lexer. It is kept
// as its own leaf, embedded in Lexer, rather than folded into the
// scanner core, so the bookkeeping rules (line increments, lineStart
// resets, pending-newline flushes from block strings) live in one
// place.
type position struct {
	line            int
	lineStart       int
	column          int
	pendingNewLines int
}

func newPosition() position {
	return position{line: 1, lineStart: 0, column: 1}
}

// advanceLine records a line terminator ending immediately before the
// byte at offset next.
func (p *position) advanceLine(next int) {
	p.line++
	p.lineStart = next
}

// flushPending applies newlines accumulated by the block-string
// recognizer. Those increments must land before the next whitespace
// skip, or a token following a block string reports the wrong line.
func (p *position) flushPending(cursor int) {
	if p.pendingNewLines == 0 {
		return
	}
	p.line += p.pendingNewLines
	p.lineStart = cursor
	p.pendingNewLines = 0
}

// columnAt derives the 1-indexed column of byte offset o from the
// current lineStart.
func (p *position) columnAt(o int) int {
	return 1 + o - p.lineStart
}

// snapshot captures line/column for a token starting at offset o.
func (p *position) snapshot(o int) (line, column int) {
	return p.line, p.columnAt(o)
}
