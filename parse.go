package tempren

import (
	"go.uber.org/zap"

	"github.com/nemerle/tempren/internal"
)

// Parse lexes and parses source into an unbound Pattern. Parse is a
// pure function of source: it never touches the registry or the
// filesystem.
func Parse(source string, logger *zap.Logger) (Pattern, error) {
	tokens, err := internal.NewLexer(source, logger).Tokenize()
	if err != nil {
		return nil, toPublicSyntaxError(err)
	}

	nodes, err := internal.NewParser(tokens, logger).Parse()
	if err != nil {
		return nil, toPublicSyntaxError(err)
	}

	return Pattern(convertNodes(nodes)), nil
}

func toPublicSyntaxError(err error) error {
	if synErr, ok := err.(*internal.SyntaxError); ok {
		return NewTemplateSyntaxError(synErr.Message, Position(synErr.Pos))
	}
	return err
}

func convertNodes(nodes []internal.Node) []Node {
	out := make([]Node, len(nodes))
	for i, n := range nodes {
		out[i] = convertNode(n)
	}
	return out
}

func convertNode(n internal.Node) Node {
	switch v := n.(type) {
	case *internal.RawTextNode:
		return RawText{Text: v.Text}
	case *internal.TagPlaceholderNode:
		return &TagPlaceholder{
			Pos:        Position(v.Pos()),
			Category:   v.Category,
			Name:       v.Name,
			Args:       convertArguments(v.Positional, v.Keyword),
			HasContext: v.HasContext,
			Context:    convertNodes(v.Context),
		}
	default:
		panic("tempren: unknown internal node type")
	}
}

func convertArguments(positional []internal.Value, keyword []internal.KeywordArg) Arguments {
	args := Arguments{
		Positional: make([]Value, len(positional)),
		Keyword:    make(map[string]Value, len(keyword)),
	}
	for i, v := range positional {
		args.Positional[i] = convertValue(v)
	}
	for _, kw := range keyword {
		args.Keyword[kw.Name] = convertValue(kw.Value)
	}
	return args
}

func convertValue(v internal.Value) Value {
	switch v.Kind {
	case internal.IntValue:
		return Value{Kind: IntValue, Int: v.Int}
	case internal.BoolValue:
		return Value{Kind: BoolValue, Bool: v.Bool}
	default:
		return Value{Kind: StringValue, Str: v.Str}
	}
}
