package internal

import (
	"strings"

	"go.uber.org/zap"
)

// Lexer tokenizes template source into a token stream. It tracks a
// single contextDepth counter rather than a delimiter stack: the
// grammar only ever nests "{...}" context blocks, which have no named
// open/close tokens to match, so a bare '{' is legal only directly
// after a tag's ')' and a bare '}' is legal only while contextDepth>0.
type Lexer struct {
	source string
	pos    int
	line   int
	column int
	logger *zap.Logger

	contextDepth int
}

// NewLexer creates a lexer over source. A nil logger is replaced with
// zap.NewNop(), matching the rest of this package's logging convention.
func NewLexer(source string, logger *zap.Logger) *Lexer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Lexer{source: source, pos: 0, line: 1, column: 1, logger: logger}
}

// Tokenize scans the whole source and returns its token stream, or the
// first SyntaxError encountered.
func (l *Lexer) Tokenize() ([]Token, error) {
	var tokens []Token
	justClosedTagHeader := false

	for !l.isAtEnd() {
		switch {
		case l.matchStr("%%"):
			pos := l.currentPosition()
			l.advanceN(2)
			tokens = append(tokens, newTextToken("%", pos))
			justClosedTagHeader = false

		case l.peek() == charPercent:
			headerTokens, err := l.scanTagHeader()
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, headerTokens...)
			justClosedTagHeader = true
			continue

		case l.matchStr("{{"):
			pos := l.currentPosition()
			l.advanceN(2)
			tokens = append(tokens, newTextToken("{", pos))
			justClosedTagHeader = false

		case l.peek() == charLBrace:
			pos := l.currentPosition()
			if !justClosedTagHeader {
				return nil, l.errorAt(pos, ErrMsgUnknownEscape)
			}
			l.advance()
			tokens = append(tokens, newToken(TokenContextOpen, pos))
			l.contextDepth++
			justClosedTagHeader = false

		// Inside a context a '}' always closes it, so "}}" there closes
		// two contexts rather than producing a literal '}'.
		case l.contextDepth == 0 && l.matchStr("}}"):
			pos := l.currentPosition()
			l.advanceN(2)
			tokens = append(tokens, newTextToken("}", pos))
			justClosedTagHeader = false

		case l.peek() == charRBrace:
			pos := l.currentPosition()
			if l.contextDepth == 0 {
				return nil, l.errorAt(pos, ErrMsgUnexpectedCloser)
			}
			l.advance()
			tokens = append(tokens, newToken(TokenContextClose, pos))
			l.contextDepth--
			justClosedTagHeader = false

		default:
			tokens = append(tokens, l.scanText())
			justClosedTagHeader = false
		}
	}

	if l.contextDepth > 0 {
		return nil, l.errorAt(l.currentPosition(), ErrMsgUnclosedContext)
	}

	tokens = append(tokens, newToken(TokenEOF, l.currentPosition()))
	return tokens, nil
}

// scanText consumes a maximal run of characters that are not '%', '{'
// or '}', per the rawtext production.
func (l *Lexer) scanText() Token {
	start := l.currentPosition()
	var sb strings.Builder
	for !l.isAtEnd() {
		ch := l.peek()
		if ch == charPercent || ch == charLBrace || ch == charRBrace {
			break
		}
		sb.WriteByte(l.advance())
	}
	return newTextToken(sb.String(), start)
}

// scanTagHeader scans "%" (ident ".")? ident "(" arglist? ")", i.e.
// everything up to and including the closing paren of a tag.
func (l *Lexer) scanTagHeader() ([]Token, error) {
	var tokens []Token

	pos := l.currentPosition()
	l.advance() // consume '%'
	tokens = append(tokens, newToken(TokenPercent, pos))

	firstIdent, err := l.scanIdent()
	if err != nil {
		return nil, err
	}
	tokens = append(tokens, firstIdent)

	if l.peek() == charDot {
		pos := l.currentPosition()
		l.advance()
		tokens = append(tokens, newToken(TokenDot, pos))
		secondIdent, err := l.scanIdent()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, secondIdent)
	}

	l.skipInsignificantWhitespace()
	if l.peek() != charLParen {
		return nil, l.errorAt(l.currentPosition(), ErrMsgMissingOpenParen)
	}
	lpPos := l.currentPosition()
	l.advance()
	tokens = append(tokens, newToken(TokenLParen, lpPos))

	argTokens, err := l.scanArgList()
	if err != nil {
		return nil, err
	}
	tokens = append(tokens, argTokens...)

	l.skipInsignificantWhitespace()
	if l.peek() != charRParen {
		return nil, l.errorAt(l.currentPosition(), ErrMsgExpectedCloseParen)
	}
	rpPos := l.currentPosition()
	l.advance()
	tokens = append(tokens, newToken(TokenRParen, rpPos))

	return tokens, nil
}

// scanArgList scans a comma-separated argument list up to (but not
// including) the closing paren. Whitespace around commas/equals/values
// is insignificant here.
func (l *Lexer) scanArgList() ([]Token, error) {
	var tokens []Token

	l.skipInsignificantWhitespace()
	if l.peek() == charRParen {
		return tokens, nil
	}

	for {
		l.skipInsignificantWhitespace()
		argTokens, err := l.scanArgument()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, argTokens...)

		l.skipInsignificantWhitespace()
		if l.peek() != charComma {
			break
		}
		pos := l.currentPosition()
		l.advance()
		tokens = append(tokens, newToken(TokenComma, pos))
	}

	return tokens, nil
}

// scanArgument scans either "ident = value" or a bare value. The ident
// lookahead is resolved by scanning an identifier first and checking
// for a following '='; if absent, the identifier must itself be a bool
// literal used as a bare value (parser-level concern).
func (l *Lexer) scanArgument() ([]Token, error) {
	if isIdentStart(l.peek()) {
		save := *l
		ident, err := l.scanIdent()
		if err != nil {
			return nil, err
		}
		l.skipInsignificantWhitespace()
		if l.peek() == charEquals {
			pos := l.currentPosition()
			l.advance()
			l.skipInsignificantWhitespace()
			valueTokens, err := l.scanValue()
			if err != nil {
				return nil, err
			}
			return append([]Token{ident, newToken(TokenEquals, pos)}, valueTokens...), nil
		}
		*l = save
	}
	return l.scanValue()
}

// scanValue scans a single integer, string, or bool-as-ident literal.
func (l *Lexer) scanValue() ([]Token, error) {
	switch {
	case l.peek() == charSingleQuote:
		tok, err := l.scanString()
		if err != nil {
			return nil, err
		}
		return []Token{tok}, nil
	case l.peek() == charMinus || isDigit(l.peek()):
		return []Token{l.scanInteger()}, nil
	case isIdentStart(l.peek()):
		tok, err := l.scanIdent()
		if err != nil {
			return nil, err
		}
		return []Token{tok}, nil
	default:
		return nil, l.errorAt(l.currentPosition(), ErrMsgExpectedValue)
	}
}

func (l *Lexer) scanIdent() (Token, error) {
	start := l.currentPosition()
	if !isIdentStart(l.peek()) {
		return Token{}, l.errorAt(start, ErrMsgExpectedIdent)
	}
	var sb strings.Builder
	sb.WriteByte(l.advance())
	for !l.isAtEnd() && isIdentCont(l.peek()) {
		sb.WriteByte(l.advance())
	}
	return newIdentToken(sb.String(), start), nil
}

func (l *Lexer) scanInteger() Token {
	start := l.currentPosition()
	var sb strings.Builder
	if l.peek() == charMinus {
		sb.WriteByte(l.advance())
	}
	for !l.isAtEnd() && isDigit(l.peek()) {
		sb.WriteByte(l.advance())
	}
	return newIntegerToken(parseInt64(sb.String()), start)
}

func (l *Lexer) scanString() (Token, error) {
	start := l.currentPosition()
	l.advance() // opening quote
	var sb strings.Builder
	for {
		if l.isAtEnd() {
			return Token{}, l.errorAt(start, ErrMsgUnclosedString)
		}
		ch := l.peek()
		if ch == charBackslash && l.peekAt(1) == charSingleQuote {
			l.advance()
			l.advance()
			sb.WriteByte(charSingleQuote)
			continue
		}
		if ch == charSingleQuote {
			l.advance()
			break
		}
		sb.WriteByte(l.advance())
	}
	return newStringToken(sb.String(), start), nil
}

// skipInsignificantWhitespace skips spaces/tabs/newlines inside an
// arglist, where the grammar marks whitespace insignificant.
func (l *Lexer) skipInsignificantWhitespace() {
	for !l.isAtEnd() {
		switch l.peek() {
		case charSpace, charTab, charNewline, charCarriageRet:
			l.advance()
		default:
			return
		}
	}
}

func isIdentStart(ch byte) bool {
	return ch >= 'A' && ch <= 'Z' || ch >= 'a' && ch <= 'z'
}

func isIdentCont(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch) || ch == '_'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func parseInt64(s string) int64 {
	neg := false
	i := 0
	if len(s) > 0 && s[0] == charMinus {
		neg = true
		i = 1
	}
	var n int64
	for ; i < len(s); i++ {
		n = n*10 + int64(s[i]-'0')
	}
	if neg {
		n = -n
	}
	return n
}

// --- low-level scanning primitives ---

func (l *Lexer) isAtEnd() bool {
	return l.pos >= len(l.source)
}

func (l *Lexer) peek() byte {
	if l.isAtEnd() {
		return 0
	}
	return l.source[l.pos]
}

func (l *Lexer) peekAt(offset int) byte {
	if l.pos+offset >= len(l.source) {
		return 0
	}
	return l.source[l.pos+offset]
}

func (l *Lexer) matchStr(s string) bool {
	return strings.HasPrefix(l.source[l.pos:], s)
}

func (l *Lexer) advance() byte {
	ch := l.source[l.pos]
	l.pos++
	if ch == charNewline {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return ch
}

func (l *Lexer) advanceN(n int) {
	for i := 0; i < n; i++ {
		l.advance()
	}
}

func (l *Lexer) currentPosition() Position {
	return Position{Offset: l.pos, Line: l.line, Column: l.column}
}

func (l *Lexer) errorAt(pos Position, message string) *SyntaxError {
	return newSyntaxError(pos, message)
}
