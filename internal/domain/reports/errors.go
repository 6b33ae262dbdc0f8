package reports

import (
	"errors"
	"fmt"

	"github.com/AntrikshRawat/DocAI-Muj-hackx-3.0/internal/domain/crypto"
)

var (
	// ErrValidation is wrapped by every input rejection
	ErrValidation = errors.New("validation error")

	// ErrEmptyPayload is returned for a zero-length report
	ErrEmptyPayload = fmt.Errorf("%w: payload is empty", ErrValidation)

	// ErrPayloadTooLarge is returned when a report exceeds the configured maximum size
	ErrPayloadTooLarge = fmt.Errorf("%w: payload too large", ErrValidation)

	// ErrUnsupportedMediaType is returned when neither the content type nor the extension is allowed
	ErrUnsupportedMediaType = fmt.Errorf("%w: unsupported media type", ErrValidation)

	// ErrMissingField is returned when required report metadata is absent
	ErrMissingField = fmt.Errorf("%w: missing required field", ErrValidation)

	// ErrNotFound is returned when no report exists for an id
	ErrNotFound = errors.New("report not found")

	// ErrAuthenticationFailure is returned when a stored report fails verification
	ErrAuthenticationFailure = crypto.ErrAuthenticationFailure

	// ErrStorageUnavailable is returned when the record store cannot be reached
	ErrStorageUnavailable = errors.New("report storage unavailable")

	// ErrDuplicateKey is returned when a record id is already taken
	ErrDuplicateKey = errors.New("report id already exists")
)
