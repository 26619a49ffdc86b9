package tempren

import "strings"

// Evaluate walks a bound pattern and produces its string output for a
// single file. Evaluation is left-to-right, depth-first on context:
// an outer tag's context subtree is fully evaluated before the outer
// tag's Process is invoked.
func Evaluate(pattern BoundPattern, file *File) (string, error) {
	return evaluateNodes([]Node(pattern), file)
}

func evaluateNodes(nodes []Node, file *File) (string, error) {
	var sb strings.Builder
	for _, n := range nodes {
		s, err := evaluateNode(n, file)
		if err != nil {
			return "", err
		}
		sb.WriteString(s)
	}
	return sb.String(), nil
}

func evaluateNode(n Node, file *File) (string, error) {
	switch v := n.(type) {
	case RawText:
		return v.Text, nil
	case *TagInstance:
		var ctxStr *string
		if v.HasContext {
			s, err := evaluateNodes(v.Context, file)
			if err != nil {
				return "", err
			}
			ctxStr = &s
		}
		out, err := v.Tag.Process(file, ctxStr)
		if err != nil {
			return "", NewTagEvaluationError(v.Name, file, err)
		}
		return out, nil
	default:
		panic("tempren: cannot evaluate an unbound node")
	}
}
