package errors

import (
	"errors"
	"fmt"
)

var (
	ErrValidation         = errors.New("validation failed")
	ErrImageRequired      = fmt.Errorf("%w: image required", ErrValidation)
	ErrImageTooLarge      = fmt.Errorf("%w: image too large", ErrValidation)
	ErrInvalidPrice       = fmt.Errorf("%w: invalid price", ErrValidation)
	ErrMissingFields      = fmt.Errorf("%w: missing required fields", ErrValidation)
	ErrNotFound           = errors.New("not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrStorageUnavailable = errors.New("storage unavailable")
)
