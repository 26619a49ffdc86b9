package tempren

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/itsatony/go-cuserr"
)

// NewTemplateSyntaxError wraps a parser/lexer syntax error with its
// source position.
func NewTemplateSyntaxError(message string, pos Position) error {
	return cuserr.NewValidationError(ErrCodeParse, ErrMsgTemplateSyntax).
		WithMetadata(MetaKeyLine, strconv.Itoa(pos.Line)).
		WithMetadata(MetaKeyColumn, strconv.Itoa(pos.Column)).
		WithMetadata(MetaKeyOffset, strconv.Itoa(pos.Offset)).
		WithMetadata("message", message)
}

// NewUnknownTagError is raised by the binder when a placeholder's name
// resolves to nothing in the registry. The tag name is folded into
// the message itself, not left in metadata alone, since it is the one
// piece of this error a caller's stderr output is contractually
// required to contain.
func NewUnknownTagError(name string) error {
	return cuserr.NewNotFoundError(MetaKeyTag, fmt.Sprintf("%s: %s", ErrMsgUnknownTag, name)).
		WithMetadata(MetaKeyTag, name)
}

// NewAmbiguousTagError is raised when an unqualified tag name matches
// more than one category.
func NewAmbiguousTagError(name string, candidates []string) error {
	return cuserr.NewValidationError(ErrCodeBind, ErrMsgAmbiguousTag).
		WithMetadata(MetaKeyTag, name).
		WithMetadata(MetaKeyCandidates, strings.Join(candidates, ","))
}

// NewConfigurationError wraps a failure from a tag's Configure method,
// preserving the original cause.
func NewConfigurationError(tagName string, cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeBind, ErrMsgConfiguration).
		WithMetadata(MetaKeyTag, tagName)
}

// NewContextMissingError is raised when a ContextRequired tag was
// bound without a context subtree.
func NewContextMissingError(tagName string) error {
	return cuserr.NewValidationError(ErrCodeBind, ErrMsgContextMissing).
		WithMetadata(MetaKeyTag, tagName)
}

// NewContextForbiddenError is raised when a ContextForbidden tag was
// bound with a context subtree.
func NewContextForbiddenError(tagName string) error {
	return cuserr.NewValidationError(ErrCodeBind, ErrMsgContextForbidden).
		WithMetadata(MetaKeyTag, tagName)
}

// NewTagEvaluationError wraps an error raised from a tag's Process
// method during evaluation.
func NewTagEvaluationError(tagName string, file *File, cause error) error {
	err := cuserr.WrapStdError(cause, ErrCodeEval, ErrMsgTagEvaluation).
		WithMetadata(MetaKeyTag, tagName)
	if file != nil {
		err = err.WithMetadata(MetaKeyFile, file.RelativePath)
	}
	return err
}

// NewFileNotFoundError is raised by a renamer when its source does
// not exist.
func NewFileNotFoundError(path string) error {
	return cuserr.NewNotFoundError(MetaKeyPath, ErrMsgFileNotFound).
		WithMetadata(MetaKeyPath, path)
}

// NewFileExistsError is raised by a renamer on a destination
// collision.
func NewFileExistsError(path string) error {
	return cuserr.NewValidationError(ErrCodeFS, ErrMsgFileExists).
		WithMetadata(MetaKeyPath, path)
}

// NewInvalidDestinationError is raised when a destination's parent
// directory does not exist and the renamer in use does not create it.
func NewInvalidDestinationError(path string) error {
	return cuserr.NewValidationError(ErrCodeFS, ErrMsgInvalidDestination).
		WithMetadata(MetaKeyPath, path)
}

// NewIOError wraps an unexpected OS failure from the gatherer or
// renamer.
func NewIOError(path string, cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeFS, ErrMsgIO).
		WithMetadata(MetaKeyPath, path)
}

// NewDuplicateCategoryError is raised when Registry.RegisterCategory
// sees a category name already in use.
func NewDuplicateCategoryError(category string) error {
	return cuserr.NewValidationError(ErrCodeRegistry, ErrMsgDuplicateCategory).
		WithMetadata(MetaKeyCategory, category)
}

// NewDuplicateTagError is raised when a category already has a
// factory registered under a given short name.
func NewDuplicateTagError(category, name string) error {
	return cuserr.NewValidationError(ErrCodeRegistry, ErrMsgDuplicateTagInCat).
		WithMetadata(MetaKeyCategory, category).
		WithMetadata(MetaKeyTag, name)
}

// registryValidationError builds a generic registry validation error
// carrying the category/name that triggered it.
func registryValidationError(message, category, name string) error {
	return cuserr.NewValidationError(ErrCodeRegistry, message).
		WithMetadata(MetaKeyCategory, category).
		WithMetadata(MetaKeyTag, name)
}
