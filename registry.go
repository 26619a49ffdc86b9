package tempren

import (
	"regexp"
	"sort"
	"sync"

	"go.uber.org/zap"
)

var tagShortNamePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]*$`)

// TagFactory constructs and configures a Tag from its placeholder's
// literal arguments. Returned errors are wrapped by Registry.Bind as
// ConfigurationError.
type TagFactory func(args Arguments) (Tag, error)

// TagCategory is a named mapping from tag short-name to factory. Tag
// short names are case-sensitive and must match [A-Za-z][A-Za-z0-9]*.
type TagCategory struct {
	name       string
	mu         sync.RWMutex
	factories  map[string]TagFactory
	order      []string
}

func newTagCategory(name string) *TagCategory {
	return &TagCategory{name: name, factories: make(map[string]TagFactory)}
}

// Register adds a tag factory under the given short name.
func (c *TagCategory) Register(name string, factory TagFactory) error {
	if name == "" {
		return NewInvalidTagNameError(c.name, name)
	}
	if !tagShortNamePattern.MatchString(name) {
		return NewInvalidTagNameError(c.name, name)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.factories[name]; exists {
		return NewDuplicateTagError(c.name, name)
	}
	c.factories[name] = factory
	c.order = append(c.order, name)
	return nil
}

func (c *TagCategory) get(name string) (TagFactory, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	f, ok := c.factories[name]
	return f, ok
}

// Names returns this category's tag short names in registration order.
func (c *TagCategory) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, len(c.order))
	copy(names, c.order)
	return names
}

// TagDescriptor identifies one registered tag for listing purposes.
type TagDescriptor struct {
	Category string
	Name     string
}

// Registry is the ordered mapping from category name to TagCategory,
// built once at startup (built-ins first, then optional plugin
// categories) and read-only for the rest of the job's lifetime.
type Registry struct {
	mu         sync.RWMutex
	categories map[string]*TagCategory
	order      []string
	logger     *zap.Logger
}

// NewRegistry creates an empty registry. A nil logger defaults to
// zap.NewNop().
func NewRegistry(logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{categories: make(map[string]*TagCategory), logger: logger}
}

// RegisterCategory creates and returns a new, empty category. It is an
// error to register the same category name twice.
func (r *Registry) RegisterCategory(name string) (*TagCategory, error) {
	if name == "" {
		return nil, registryValidationError(ErrMsgEmptyCategoryName, name, "")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.categories[name]; exists {
		r.logger.Warn("category already registered", zap.String(MetaKeyCategory, name))
		return nil, NewDuplicateCategoryError(name)
	}

	cat := newTagCategory(name)
	r.categories[name] = cat
	r.order = append(r.order, name)
	r.logger.Debug("category registered", zap.String(MetaKeyCategory, name))
	return cat, nil
}

// Categories returns registered category names in registration order.
func (r *Registry) Categories() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// List returns every registered tag, category-major in registration
// order, name sorted within a category.
func (r *Registry) List() []TagDescriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []TagDescriptor
	for _, catName := range r.order {
		cat := r.categories[catName]
		names := cat.Names()
		sort.Strings(names)
		for _, n := range names {
			out = append(out, TagDescriptor{Category: catName, Name: n})
		}
	}
	return out
}

// resolve looks up a tag factory. When category is non-empty the
// lookup is exact. When category is empty, every category's factories
// are searched by bare name; zero matches is UnknownTagError, more
// than one is AmbiguousTagError.
func (r *Registry) resolve(category, name string) (TagFactory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if category != "" {
		cat, ok := r.categories[category]
		if !ok {
			return nil, NewUnknownTagError(category + "." + name)
		}
		factory, ok := cat.get(name)
		if !ok {
			return nil, NewUnknownTagError(category + "." + name)
		}
		return factory, nil
	}

	var found TagFactory
	var candidates []string
	for _, catName := range r.order {
		cat := r.categories[catName]
		if factory, ok := cat.get(name); ok {
			found = factory
			candidates = append(candidates, catName)
		}
	}

	switch len(candidates) {
	case 0:
		return nil, NewUnknownTagError(name)
	case 1:
		return found, nil
	default:
		return nil, NewAmbiguousTagError(name, candidates)
	}
}

// NewInvalidTagNameError is raised when a tag short name is empty or
// does not match [A-Za-z][A-Za-z0-9]*.
func NewInvalidTagNameError(category, name string) error {
	msg := ErrMsgEmptyTagShortName
	if name != "" {
		msg = ErrMsgInvalidTagShortName
	}
	return registryValidationError(msg, category, name)
}
