package tempren

// Position locates a point in the original template source.
type Position struct {
	Offset int
	Line   int
	Column int
}

// Node is one element of a pattern tree, unbound or bound. RawText is
// shared between both trees unchanged; TagPlaceholder only exists in
// the unbound tree and TagInstance only in the bound one.
type Node interface {
	node()
}

// RawText is a literal run of characters between tags.
type RawText struct {
	Text string
}

func (RawText) node() {}

// TagPlaceholder is an unresolved %category.name(args){context} tag,
// as produced by Parse.
type TagPlaceholder struct {
	Pos        Position
	Category   string // "" when the tag name was unqualified
	Name       string
	Args       Arguments
	HasContext bool
	Context    []Node // nil unless HasContext
}

func (*TagPlaceholder) node() {}

// TagInstance is a TagPlaceholder resolved and configured against a
// Registry, as produced by Registry.Bind.
type TagInstance struct {
	Tag        Tag
	Name       string // the name it was resolved under, for error messages
	HasContext bool
	Context    []Node
}

func (*TagInstance) node() {}

// Pattern is a parsed, unbound template: an ordered sequence of
// RawText and TagPlaceholder nodes.
type Pattern []Node

// BoundPattern is a Pattern whose TagPlaceholder nodes have all been
// resolved into TagInstance nodes by Registry.Bind. It is not safe to
// bind a BoundPattern a second time — the Node values are reused, not
// copied.
type BoundPattern []Node
