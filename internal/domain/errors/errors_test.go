package errors

import (
	"net/http"
	"testing"

	"ridingcourse/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetailsMatchesSentinel(t *testing.T) {
	err := errors.Wrap(ErrValidationFailed.WithDetails("title is required"), "create route")

	assert.ErrorIs(t, err, ErrValidationFailed)
	assert.NotErrorIs(t, err, ErrRouteNotFound)

	var appErr AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	assert.Equal(t, "title is required", appErr.Details())
	assert.Empty(t, ErrValidationFailed.Details())
}

func TestBaseError_SameCodeDifferentMessage(t *testing.T) {
	assert.NotErrorIs(t, ErrRouteOwnershipViolation, ErrForbidden)
	assert.Equal(t, ErrForbidden.ErrorCode(), ErrRouteOwnershipViolation.ErrorCode())
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "failed to list routes")

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.Contains(t, err.Error(), "connection reset")
}
