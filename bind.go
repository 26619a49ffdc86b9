package tempren

// Bind walks an unbound Pattern and resolves every TagPlaceholder
// against the registry, producing a BoundPattern ready for Evaluate.
// Binding is deterministic and side-effect-free beyond each tag's own
// Configure call.
func (r *Registry) Bind(pattern Pattern) (BoundPattern, error) {
	bound, err := r.bindNodes([]Node(pattern))
	if err != nil {
		return nil, err
	}
	return BoundPattern(bound), nil
}

func (r *Registry) bindNodes(nodes []Node) ([]Node, error) {
	out := make([]Node, len(nodes))
	for i, n := range nodes {
		bound, err := r.bindNode(n)
		if err != nil {
			return nil, err
		}
		out[i] = bound
	}
	return out, nil
}

func (r *Registry) bindNode(n Node) (Node, error) {
	switch v := n.(type) {
	case RawText:
		return v, nil
	case *TagPlaceholder:
		return r.bindTag(v)
	default:
		panic("tempren: cannot bind an already-bound node")
	}
}

func (r *Registry) bindTag(placeholder *TagPlaceholder) (Node, error) {
	factory, err := r.resolve(placeholder.Category, placeholder.Name)
	if err != nil {
		return nil, err
	}

	tag, err := factory(placeholder.Args)
	if err != nil {
		return nil, NewConfigurationError(placeholder.Name, err)
	}

	if err := checkContextCompatibility(tag, placeholder); err != nil {
		return nil, err
	}

	var context []Node
	if placeholder.HasContext {
		context, err = r.bindNodes(placeholder.Context)
		if err != nil {
			return nil, err
		}
	}

	return &TagInstance{
		Tag:        tag,
		Name:       placeholder.Name,
		HasContext: placeholder.HasContext,
		Context:    context,
	}, nil
}

func checkContextCompatibility(tag Tag, placeholder *TagPlaceholder) error {
	switch tag.RequireContext() {
	case ContextRequired:
		if !placeholder.HasContext || len(placeholder.Context) == 0 {
			return NewContextMissingError(placeholder.Name)
		}
	case ContextForbidden:
		if placeholder.HasContext {
			return NewContextForbiddenError(placeholder.Name)
		}
	case ContextOptional:
		// either is allowed
	}
	return nil
}
