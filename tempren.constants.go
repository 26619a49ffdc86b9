package tempren

// Literal constants shared across the package. No magic strings.
const (
	litTrue  = "true"
	litFalse = "false"
)

// Error message constants. All error text flowing through errors.go is
// built from these, never an inline literal.
const (
	ErrMsgTemplateSyntax      = "template syntax error"
	ErrMsgUnknownTag          = "unknown tag"
	ErrMsgAmbiguousTag        = "ambiguous tag name"
	ErrMsgConfiguration       = "tag configuration failed"
	ErrMsgContextMissing      = "tag requires a context but none was given"
	ErrMsgContextForbidden    = "tag forbids a context but one was given"
	ErrMsgTagEvaluation       = "tag evaluation failed"
	ErrMsgFileNotFound        = "file does not exist"
	ErrMsgFileExists          = "destination already exists"
	ErrMsgInvalidDestination  = "invalid destination path"
	ErrMsgIO                  = "unexpected filesystem error"
	ErrMsgDuplicateCategory   = "category already registered"
	ErrMsgDuplicateTagInCat   = "tag name already registered in category"
	ErrMsgEmptyCategoryName   = "category name cannot be empty"
	ErrMsgEmptyTagShortName   = "tag short name cannot be empty"
	ErrMsgInvalidTagShortName = "tag short name must match [A-Za-z][A-Za-z0-9]*"
)

// Error code constants for categorization, mirrored into cuserr.CustomError.
const (
	ErrCodeParse   = "TEMPREN_PARSE"
	ErrCodeBind    = "TEMPREN_BIND"
	ErrCodeEval    = "TEMPREN_EVAL"
	ErrCodeFS      = "TEMPREN_FS"
	ErrCodeRegistry = "TEMPREN_REGISTRY"
)

// Metadata key constants attached to cuserr errors via WithMetadata.
const (
	MetaKeyLine      = "line"
	MetaKeyColumn    = "column"
	MetaKeyOffset    = "offset"
	MetaKeyTag       = "tag"
	MetaKeyCategory  = "category"
	MetaKeyCandidates = "candidates"
	MetaKeyCause     = "cause"
	MetaKeyPath      = "path"
	MetaKeyFile      = "file"
)
