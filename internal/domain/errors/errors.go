package errors

import (
	"net/http"

	"ridingcourse/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Is lets copies made by WithDetails match the predefined error they came from.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == e.errorCode && t.message == e.message
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"사용자를 찾을 수 없어요.",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"이미 가입된 이메일이에요.",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"이메일 또는 비밀번호가 올바르지 않아요.",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"로그인이 필요해요.",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"비밀번호 처리 중 오류가 발생했어요.",
		"",
	)

	// Link parser errors
	ErrLinkNotRecognized = NewBaseError(
		http.StatusBadRequest,
		"LINK_NOT_RECOGNIZED",
		"네이버 지도 공유 링크를 인식하지 못했어요.",
		"",
	)

	ErrMissingDestination = NewBaseError(
		http.StatusBadRequest,
		"MISSING_DESTINATION",
		"도착지 좌표가 없어요.",
		"",
	)

	// Route-related errors
	ErrRouteNotFound = NewBaseError(
		http.StatusNotFound,
		"ROUTE_NOT_FOUND",
		"코스를 찾을 수 없어요.",
		"",
	)

	ErrRouteOwnershipViolation = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"작성자만 수정하거나 삭제할 수 있어요.",
		"",
	)

	ErrRouteHasNoLink = NewBaseError(
		http.StatusNotFound,
		"ROUTE_LINK_NOT_FOUND",
		"코스에 공유 링크가 없어요.",
		"",
	)

	// Comment-related errors
	ErrCommentNotFound = NewBaseError(
		http.StatusNotFound,
		"COMMENT_NOT_FOUND",
		"댓글을 찾을 수 없어요.",
		"",
	)

	// Photo-related errors
	ErrPhotoTooLarge = NewBaseError(
		http.StatusRequestEntityTooLarge,
		"PHOTO_TOO_LARGE",
		"사진 용량이 너무 커요.",
		"",
	)

	ErrPhotoInvalidType = NewBaseError(
		http.StatusBadRequest,
		"PHOTO_INVALID_TYPE",
		"이미지 파일만 올릴 수 있어요.",
		"",
	)

	ErrPhotoUploadFailed = NewBaseError(
		http.StatusInternalServerError,
		"PHOTO_UPLOAD_FAILED",
		"사진 업로드에 실패했어요.",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"입력값을 확인해 주세요.",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"데이터베이스 트랜잭션에 실패했어요.",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"서버 내부 오류가 발생했어요.",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"접근 권한이 없어요.",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"리소스를 찾을 수 없어요.",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"리소스 충돌이 발생했어요.",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "데이터베이스 실행에 실패했어요."
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}
