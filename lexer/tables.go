package lexer

import "github.com/vertexql/graphql/token"

// Byte constants fixed by the external interface.
const (
	byteHash      = 0x23 // #
	byteQuote     = 0x22 // "
	byteBackslash = 0x5C // \
	byteDot       = 0x2E // .
	byteMinus     = 0x2D // -
	bytePlus      = 0x2B // +
	byteZero      = 0x30 // 0
	byteE         = 0x65 // e
	byteBigE      = 0x45 // E
	byteSpace     = 0x20
	byteTab       = 0x09
	byteComma     = 0x2C
	byteNewLine   = 0x0A
	byteReturn    = 0x0D
)

var (
	isPunctuator                [256]bool
	punctuatorKind              [256]token.Kind
	isDigit                     [256]bool
	isDigitOrMinus              [256]bool
	isLetterOrUnderscore        [256]bool
	isLetterOrDigitOrUnderscore [256]bool
	isEscapeCharacter           [256]bool
	isControlCharacter          [256]bool
	isControlCharacterNoNewLine [256]bool
)

func init() {
	singleBytePunctuators := map[byte]token.Kind{
		'!': token.Bang,
		'$': token.Dollar,
		'&': token.Ampersand,
		'(': token.LParen,
		')': token.RParen,
		':': token.Colon,
		'=': token.Equal,
		'@': token.At,
		'[': token.LBracket,
		']': token.RBracket,
		'{': token.LBrace,
		'|': token.Pipe,
		'}': token.RBrace,
	}
	for b, k := range singleBytePunctuators {
		isPunctuator[b] = true
		punctuatorKind[b] = k
	}
	// '.' participates in the Spread production but is not resolved
	// through punctuatorKind (the spread recognizer owns it).
	isPunctuator[byteDot] = true

	for b := byte('0'); b <= '9'; b++ {
		isDigit[b] = true
		isDigitOrMinus[b] = true
		isLetterOrDigitOrUnderscore[b] = true
	}
	isDigitOrMinus[byteMinus] = true

	for b := byte('A'); b <= 'Z'; b++ {
		isLetterOrUnderscore[b] = true
		isLetterOrDigitOrUnderscore[b] = true
	}
	for b := byte('a'); b <= 'z'; b++ {
		isLetterOrUnderscore[b] = true
		isLetterOrDigitOrUnderscore[b] = true
	}
	isLetterOrUnderscore['_'] = true
	isLetterOrDigitOrUnderscore['_'] = true

	for _, b := range []byte{'"', '\\', '/', 'b', 'f', 'n', 'r', 't', 'u'} {
		isEscapeCharacter[b] = true
	}

	for b := 0; b < 0x20; b++ {
		if b == byteTab {
			continue
		}
		isControlCharacter[b] = true
	}
	isControlCharacter[0x7F] = true

	isControlCharacterNoNewLine = isControlCharacter
	isControlCharacterNoNewLine[byteNewLine] = false
	isControlCharacterNoNewLine[byteReturn] = false
}
