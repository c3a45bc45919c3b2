package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind phân loại lỗi để map sang HTTP status
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindConflict
	KindValidation
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindValidation:
		return "validation"
	default:
		return "internal"
	}
}

// AppError là base error dùng chung cho tất cả domains
type AppError struct {
	Kind    Kind
	Code    string // Error code duy nhất (VD: "ROL_NOT_FOUND")
	Message string // Human-readable message trả về client
	Err     error  // Underlying error
}

// Error implements error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap allows error wrapping compatibility
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches by code so sentinel comparisons work across factory calls.
func (e *AppError) Is(target error) bool {
	var t *AppError
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code && e.Kind == t.Kind
}

// ============================================
// FACTORY FUNCTIONS
// ============================================

func NotFound(code, message string) *AppError {
	return &AppError{Kind: KindNotFound, Code: code, Message: message}
}

func Conflict(code, message string) *AppError {
	return &AppError{Kind: KindConflict, Code: code, Message: message}
}

func Validation(code, message string) *AppError {
	return &AppError{Kind: KindValidation, Code: code, Message: message}
}

// Internal wraps an unexpected failure; the message never leaks err.
func Internal(code string, err error) *AppError {
	return &AppError{
		Kind:    KindInternal,
		Code:    code,
		Message: "Error interno del servidor",
		Err:     err,
	}
}

// Wrap gắn underlying error vào một AppError có sẵn mà không thay đổi Kind/Code
func Wrap(e *AppError, err error) *AppError {
	return &AppError{Kind: e.Kind, Code: e.Code, Message: e.Message, Err: err}
}

// ============================================
// HELPERS
// ============================================

// From extracts the AppError from err, treating anything else as internal.
func From(err error) *AppError {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal("INTERNAL_ERROR", err)
}

func KindOf(err error) Kind {
	if err == nil {
		return KindInternal
	}
	return From(err).Kind
}

func IsNotFound(err error) bool {
	return err != nil && KindOf(err) == KindNotFound
}

func IsConflict(err error) bool {
	return err != nil && KindOf(err) == KindConflict
}

func IsValidation(err error) bool {
	return err != nil && KindOf(err) == KindValidation
}

// HTTPStatus maps an error to its response status.
// Conflicts are reported as 400 to keep the legacy client contract.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict, KindValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
