package internal

import "go.uber.org/zap"

// Parser turns a token stream into an unbound pattern tree. It has no
// knowledge of the tag registry: a TagPlaceholderNode carries only the
// raw name/category/arguments the lexer saw.
type Parser struct {
	tokens []Token
	pos    int
	logger *zap.Logger
}

// NewParser creates a parser over an already-lexed token stream.
func NewParser(tokens []Token, logger *zap.Logger) *Parser {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Parser{tokens: tokens, logger: logger}
}

// Parse consumes the whole token stream and returns the top-level
// pattern, a flat ordered sequence of RawTextNode/TagPlaceholderNode.
func (p *Parser) Parse() ([]Node, error) {
	nodes, err := p.parseElements(false)
	if err != nil {
		return nil, err
	}
	if p.current().Type != TokenEOF {
		return nil, newSyntaxError(p.current().Pos, ErrMsgUnexpectedEOF)
	}
	return nodes, nil
}

// parseElements consumes element* until EOF, or until a TokenContextClose
// when stopAtContextClose is true — in which case the close token itself
// is consumed before returning.
func (p *Parser) parseElements(stopAtContextClose bool) ([]Node, error) {
	var nodes []Node
	for {
		tok := p.current()
		switch tok.Type {
		case TokenEOF:
			if stopAtContextClose {
				return nil, newSyntaxError(tok.Pos, ErrMsgUnclosedContext)
			}
			return nodes, nil
		case TokenContextClose:
			if !stopAtContextClose {
				return nil, newSyntaxError(tok.Pos, ErrMsgUnexpectedCloser)
			}
			p.advance()
			return nodes, nil
		case TokenText:
			p.advance()
			nodes = append(nodes, NewRawTextNode(tok.Text, tok.Pos))
		case TokenPercent:
			node, err := p.parseTag()
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, node)
		default:
			return nil, newSyntaxError(tok.Pos, ErrMsgUnexpectedCloser)
		}
	}
}

// parseTag consumes "%" (ident ".")? ident "(" arglist? ")" context?
// starting with the current token positioned on TokenPercent.
func (p *Parser) parseTag() (Node, error) {
	startPos := p.current().Pos
	p.advance() // consume '%'

	first, err := p.expectIdent()
	if err != nil {
		return nil, err
	}

	category := ""
	name := first.Text
	if p.current().Type == TokenDot {
		p.advance()
		second, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		category = first.Text
		name = second.Text
	}

	if p.current().Type != TokenLParen {
		return nil, newSyntaxError(p.current().Pos, ErrMsgMissingOpenParen)
	}
	p.advance()

	positional, keyword, err := p.parseArgList()
	if err != nil {
		return nil, err
	}

	if p.current().Type != TokenRParen {
		return nil, newSyntaxError(p.current().Pos, ErrMsgExpectedCloseParen)
	}
	p.advance()

	node := NewTagPlaceholderNode(category, name, positional, keyword, startPos)

	if p.current().Type == TokenContextOpen {
		p.advance()
		context, err := p.parseElements(true)
		if err != nil {
			return nil, err
		}
		node.HasContext = true
		node.Context = context
	}

	return node, nil
}

// parseArgList consumes a comma-separated argument list up to (not
// including) the closing paren, enforcing that no positional argument
// follows a keyword argument and that no keyword name repeats.
func (p *Parser) parseArgList() ([]Value, []KeywordArg, error) {
	var positional []Value
	var keyword []KeywordArg
	seenKeyword := false
	seenNames := map[string]bool{}

	if p.current().Type == TokenRParen {
		return positional, keyword, nil
	}

	for {
		isKeyword := p.current().Type == TokenIdent && p.peekAhead(1).Type == TokenEquals
		if isKeyword {
			nameTok := p.current()
			p.advance() // ident
			p.advance() // '='
			if seenNames[nameTok.Text] {
				return nil, nil, newSyntaxError(nameTok.Pos, ErrMsgDuplicateKeyword)
			}
			seenNames[nameTok.Text] = true
			seenKeyword = true
			val, err := p.parseValue()
			if err != nil {
				return nil, nil, err
			}
			keyword = append(keyword, KeywordArg{Name: nameTok.Text, Value: val})
		} else {
			if seenKeyword {
				return nil, nil, newSyntaxError(p.current().Pos, ErrMsgPositionalAfterKw)
			}
			val, err := p.parseValue()
			if err != nil {
				return nil, nil, err
			}
			positional = append(positional, val)
		}

		if p.current().Type != TokenComma {
			break
		}
		p.advance()
	}

	return positional, keyword, nil
}

// parseValue consumes a single integer, string, or bool literal. Bool
// literals lex as TokenIdent ("true"/"false"); any other identifier in
// value position is a syntax error.
func (p *Parser) parseValue() (Value, error) {
	tok := p.current()
	switch tok.Type {
	case TokenString:
		p.advance()
		return Value{Kind: StringValue, Str: tok.Text}, nil
	case TokenInteger:
		p.advance()
		return Value{Kind: IntValue, Int: tok.Int}, nil
	case TokenIdent:
		if tok.Text == litTrue {
			p.advance()
			return Value{Kind: BoolValue, Bool: true}, nil
		}
		if tok.Text == litFalse {
			p.advance()
			return Value{Kind: BoolValue, Bool: false}, nil
		}
		return Value{}, newSyntaxError(tok.Pos, ErrMsgExpectedValue)
	default:
		return Value{}, newSyntaxError(tok.Pos, ErrMsgExpectedValue)
	}
}

func (p *Parser) expectIdent() (Token, error) {
	tok := p.current()
	if tok.Type != TokenIdent {
		return Token{}, newSyntaxError(tok.Pos, ErrMsgExpectedIdent)
	}
	p.advance()
	return tok, nil
}

func (p *Parser) current() Token {
	return p.tokens[p.pos]
}

func (p *Parser) peekAhead(n int) Token {
	idx := p.pos + n
	if idx >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[idx]
}

func (p *Parser) advance() Token {
	tok := p.tokens[p.pos]
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return tok
}
