package handler

import (
	"net/http"

	"ridingcourse/internal/delivery/api/response"
	domainerrors "ridingcourse/internal/domain/errors"
	"ridingcourse/internal/errors"
	"ridingcourse/internal/infra/metrics"
	"ridingcourse/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// Normalization outcomes recorded on link_normalizations_total.
const (
	outcomeOK                 = "ok"
	outcomeNotRecognized      = "not_recognized"
	outcomeMissingDestination = "missing_destination"
	outcomeError              = "error"
	sourceNone                = "none"
)

// LinkHandlerParams holds dependencies for LinkHandler, injected by Fx.
type LinkHandlerParams struct {
	fx.In

	LinkUC  usecase.LinkUsecase
	Metrics *metrics.Metrics
}

// LinkHandler exposes the map link normalizer.
type LinkHandler struct {
	linkUC  usecase.LinkUsecase
	metrics *metrics.Metrics
}

func NewLinkHandler(params LinkHandlerParams) *LinkHandler {
	return &LinkHandler{
		linkUC:  params.LinkUC,
		metrics: params.Metrics,
	}
}

// Parse handles POST /api/routes/parse.
func (h *LinkHandler) Parse(c echo.Context) error {
	var input usecase.ParseLinkInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	result, err := h.linkUC.ParseLink(c.Request().Context(), &input)
	if err != nil {
		h.metrics.LinkNormalizations.WithLabelValues(sourceNone, failureOutcome(err)).Inc()

		return errors.WithStack(err)
	}

	h.metrics.LinkNormalizations.WithLabelValues(string(result.Source()), outcomeOK).Inc()

	return response.Success(c, http.StatusOK, result)
}

func failureOutcome(err error) string {
	var appErr domainerrors.AppError
	if !errors.As(err, &appErr) {
		return outcomeError
	}

	switch appErr.ErrorCode() {
	case domainerrors.ErrLinkNotRecognized.ErrorCode():
		return outcomeNotRecognized
	case domainerrors.ErrMissingDestination.ErrorCode():
		return outcomeMissingDestination
	default:
		return outcomeError
	}
}
