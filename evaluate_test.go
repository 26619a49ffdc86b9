package tempren

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bindSource(t *testing.T, source string, r *Registry) BoundPattern {
	t.Helper()
	pattern, err := Parse(source, nil)
	require.NoError(t, err)
	bound, err := r.Bind(pattern)
	require.NoError(t, err)
	return bound
}

func TestEvaluateEscapes(t *testing.T) {
	r := NewRegistry(nil)
	bound := bindSource(t, "%% {{ }}", r)
	out, err := Evaluate(bound, NewFile("/in", "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "% { }", out)
}

func TestEvaluateContextPassedToOuterTag(t *testing.T) {
	r := NewRegistry(nil)
	cat, _ := r.RegisterCategory("Test")
	outer := newMockTag(ContextRequired)
	inner := newMockTag(ContextForbidden)
	inner.output = "INNER"
	require.NoError(t, cat.Register("Outer", mockFactory(outer)))
	require.NoError(t, cat.Register("Inner", mockFactory(inner)))

	bound := bindSource(t, "%Outer(){%Inner()}", r)
	out, err := Evaluate(bound, NewFile("/in", "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "INNER", out)
}

func TestEvaluateTagEvaluationErrorWrapped(t *testing.T) {
	r := NewRegistry(nil)
	cat, _ := r.RegisterCategory("Test")
	tag := &erroringTag{}
	require.NoError(t, cat.Register("Boom", mockFactory2(tag)))

	bound := bindSource(t, "%Boom()", r)
	_, err := Evaluate(bound, NewFile("/in", "a.txt"))
	assert.Error(t, err)
}

func TestEvaluateIsDeterministic(t *testing.T) {
	r := NewRegistry(nil)
	cat, _ := r.RegisterCategory("Test")
	require.NoError(t, cat.Register("Mock", mockFactory(newMockTag(ContextOptional))))

	bound := bindSource(t, "prefix-%Mock()", r)
	file := NewFile("/in", "a.txt")
	first, err := Evaluate(bound, file)
	require.NoError(t, err)
	second, err := Evaluate(bound, file)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

type erroringTag struct{}

func (erroringTag) RequireContext() ContextRequirement { return ContextForbidden }
func (erroringTag) Configure(Arguments) error           { return nil }
func (erroringTag) Process(*File, *string) (string, error) {
	return "", assertErr
}

var assertErr = &mockEvalError{"boom"}

type mockEvalError struct{ msg string }

func (e *mockEvalError) Error() string { return e.msg }

func mockFactory2(tag Tag) TagFactory {
	return func(args Arguments) (Tag, error) {
		return tag, nil
	}
}
