package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenTypes(tokens []Token) []TokenType {
	types := make([]TokenType, len(tokens))
	for i, tok := range tokens {
		types[i] = tok.Type
	}
	return types
}

func TestLexerPlainText(t *testing.T) {
	tokens, err := NewLexer("hello world", nil).Tokenize()
	require.NoError(t, err)
	require.Equal(t, []TokenType{TokenText, TokenEOF}, tokenTypes(tokens))
	assert.Equal(t, "hello world", tokens[0].Text)
}

func TestLexerEscapes(t *testing.T) {
	tokens, err := NewLexer("%% {{ }}", nil).Tokenize()
	require.NoError(t, err)
	require.Len(t, tokens, 6)
	assert.Equal(t, "%", tokens[0].Text)
	assert.Equal(t, " ", tokens[1].Text)
	assert.Equal(t, "{", tokens[2].Text)
	assert.Equal(t, " ", tokens[3].Text)
	assert.Equal(t, "}", tokens[4].Text)
}

func TestLexerSimpleTag(t *testing.T) {
	tokens, err := NewLexer("%Upper()", nil).Tokenize()
	require.NoError(t, err)
	require.Equal(t, []TokenType{
		TokenPercent, TokenIdent, TokenLParen, TokenRParen, TokenEOF,
	}, tokenTypes(tokens))
	assert.Equal(t, "Upper", tokens[1].Text)
}

func TestLexerQualifiedTagWithContext(t *testing.T) {
	tokens, err := NewLexer("%path.Filename(){name}", nil).Tokenize()
	require.NoError(t, err)
	require.Equal(t, []TokenType{
		TokenPercent, TokenIdent, TokenDot, TokenIdent, TokenLParen, TokenRParen,
		TokenContextOpen, TokenText, TokenContextClose, TokenEOF,
	}, tokenTypes(tokens))
	assert.Equal(t, "path", tokens[1].Text)
	assert.Equal(t, "Filename", tokens[3].Text)
	assert.Equal(t, "name", tokens[7].Text)
}

func TestLexerArguments(t *testing.T) {
	tokens, err := NewLexer("%Tag(1, -2, 'a\\'b', true, width=10)", nil).Tokenize()
	require.NoError(t, err)

	var ints []int64
	var strs []string
	for _, tok := range tokens {
		switch tok.Type {
		case TokenInteger:
			ints = append(ints, tok.Int)
		case TokenString:
			strs = append(strs, tok.Text)
		}
	}
	assert.Equal(t, []int64{1, -2, 10}, ints)
	assert.Equal(t, []string{"a'b"}, strs)
}

func TestLexerUnclosedString(t *testing.T) {
	_, err := NewLexer("%Tag('oops)", nil).Tokenize()
	require.Error(t, err)
	var synErr *SyntaxError
	require.ErrorAs(t, err, &synErr)
	assert.Equal(t, ErrMsgUnclosedString, synErr.Message)
}

func TestLexerUnexpectedCloser(t *testing.T) {
	_, err := NewLexer("plain } text", nil).Tokenize()
	require.Error(t, err)
	var synErr *SyntaxError
	require.ErrorAs(t, err, &synErr)
	assert.Equal(t, ErrMsgUnexpectedCloser, synErr.Message)
}

func TestLexerUnclosedContext(t *testing.T) {
	_, err := NewLexer("%Upper(){abc", nil).Tokenize()
	require.Error(t, err)
	var synErr *SyntaxError
	require.ErrorAs(t, err, &synErr)
	assert.Equal(t, ErrMsgUnclosedContext, synErr.Message)
}

func TestLexerBareBraceWithoutTagIsError(t *testing.T) {
	_, err := NewLexer("text { more", nil).Tokenize()
	require.Error(t, err)
	var synErr *SyntaxError
	require.ErrorAs(t, err, &synErr)
	assert.Equal(t, ErrMsgUnknownEscape, synErr.Message)
}

func TestLexerMissingOpenParen(t *testing.T) {
	_, err := NewLexer("%Upper", nil).Tokenize()
	require.Error(t, err)
	var synErr *SyntaxError
	require.ErrorAs(t, err, &synErr)
	assert.Equal(t, ErrMsgMissingOpenParen, synErr.Message)
}

func TestLexerPositionTracking(t *testing.T) {
	tokens, err := NewLexer("ab\ncd", nil).Tokenize()
	require.NoError(t, err)
	require.Len(t, tokens, 2)
	assert.Equal(t, 1, tokens[0].Pos.Line)
	assert.Equal(t, 1, tokens[0].Pos.Column)
}
