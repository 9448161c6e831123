package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidPage        = errors.New("invalid page parameter")
	ErrInvalidPageSize    = errors.New("invalid page size parameter")
	ErrRecordNotFound     = errors.New("record not found")
	ErrTripNotFound       = errors.New("trip not found")
	ErrSlugTaken          = errors.New("slug already in use")
	ErrCountryCodeTaken   = errors.New("country code already in use")
	ErrDatabaseError      = errors.New("database error")
	ErrStorageError       = errors.New("storage error")
	ErrReorderFailed      = errors.New("reorder failed")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrUnsupportedMedia   = errors.New("unsupported media type")
	ErrFileTooLarge       = errors.New("file too large")
)

// FieldError describes one rejected input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is returned before any side effect when input fails its
// constraints. It unwraps to ErrInvalidInput.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Message: message}}}
}

// FromBindingError converts a gin binding/decoding error into a ValidationError.
func FromBindingError(err error) *ValidationError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := &ValidationError{Fields: make([]FieldError, 0, len(verrs))}
		for _, fe := range verrs {
			out.Fields = append(out.Fields, FieldError{
				Field:   fieldPath(fe.Namespace()),
				Message: describeTag(fe),
			})
		}
		return out
	}
	return NewValidationError("body", err.Error())
}

// fieldPath drops the leading struct name: "ReorderRequest.Items[0].ID" -> "Items[0].ID".
func fieldPath(ns string) string {
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func describeTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "uuid", "uuid4":
		return "must be a valid UUID"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "min":
		return fmt.Sprintf("must have at least %s element(s) or characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "email":
		return "must be a valid email"
	case "len":
		return fmt.Sprintf("must have length %s", fe.Param())
	case "gtefield":
		return "must not be before " + fe.Param()
	default:
		return "failed " + fe.Tag() + " check"
	}
}
