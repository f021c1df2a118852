package handler

import (
	domainerrors "ridingcourse/internal/domain/errors"
	"ridingcourse/internal/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// pathID parses the :id path parameter.
func pathID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("invalid id: " + c.Param("id"))
	}

	return id, nil
}

// bindAndValidate binds the request into input and runs the registered validator.
func bindAndValidate(c echo.Context, input any) error {
	if err := c.Bind(input); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
