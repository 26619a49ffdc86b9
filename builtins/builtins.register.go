package builtins

import "github.com/nemerle/tempren"

// Category names built-in tags are registered under. A bare tag name
// like %Filename() resolves through any category, so these only
// matter when a template disambiguates with %path.Filename().
const (
	CategoryText = "text"
	CategoryPath = "path"
	CategoryFS   = "fs"
)

// Register wires every built-in tag into registry: Upper/Lower under
// "text", Filename/Ext/Count under "path", Size under "fs".
func Register(registry *tempren.Registry) error {
	text, err := registry.RegisterCategory(CategoryText)
	if err != nil {
		return err
	}
	if err := text.Register("Upper", NewUpperTag); err != nil {
		return err
	}
	if err := text.Register("Lower", NewLowerTag); err != nil {
		return err
	}

	path, err := registry.RegisterCategory(CategoryPath)
	if err != nil {
		return err
	}
	if err := path.Register("Filename", NewFilenameTag); err != nil {
		return err
	}
	if err := path.Register("Ext", NewExtTag); err != nil {
		return err
	}
	if err := path.Register("Count", NewCountTag); err != nil {
		return err
	}

	fs, err := registry.RegisterCategory(CategoryFS)
	if err != nil {
		return err
	}
	if err := fs.Register("Size", NewSizeTag); err != nil {
		return err
	}

	return nil
}
