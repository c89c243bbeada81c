package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyUsername    = errors.New("username is required")
	ErrEmptyPassword    = errors.New("password is required")
	ErrEmptyTitle       = errors.New("title is required")
	ErrEmptySectionName = errors.New("section name is required")
	ErrEmptyName        = errors.New("name is required")
	ErrEmptyURL         = errors.New("url is required")
	ErrInvalidURL       = errors.New("url must be absolute")
	ErrInvalidSlug      = errors.New("slug may contain only lowercase letters, digits and dashes")
	ErrInvalidDirection = errors.New("direction must be up or down")
	ErrInvalidID        = errors.New("invalid id")
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")
)
