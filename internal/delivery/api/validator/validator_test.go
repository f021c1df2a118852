package validator

import (
	"testing"

	domainerrors "ridingcourse/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type point struct {
	Lat float64 `json:"lat" validate:"gte=-90,lte=90"`
}

type sample struct {
	Email   string  `json:"email" validate:"required,email"`
	Surface string  `json:"surface" validate:"omitempty,oneof=unknown good rough"`
	Points  []point `json:"points" validate:"dive"`
	Limit   int     `query:"limit" validate:"max=100"`
}

func TestValidate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&sample{Email: "a@b.co", Points: []point{{Lat: 37}}}))

	err := v.Validate(&sample{Email: "nope", Surface: "gravel", Points: []point{{Lat: 91}}, Limit: 500})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), "email must be a valid email")
	assert.Contains(t, appErr.Details(), "surface must be one of [unknown good rough]")
	assert.Contains(t, appErr.Details(), "points[0].lat failed lte=90")
	assert.Contains(t, appErr.Details(), "limit failed max=100")
}
