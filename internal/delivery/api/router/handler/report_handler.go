package handler

import (
	"net/http"

	"ridingcourse/internal/delivery/api/middleware"
	"ridingcourse/internal/delivery/api/response"
	"ridingcourse/internal/errors"
	"ridingcourse/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ReportHandlerParams holds dependencies for ReportHandler, injected by Fx.
type ReportHandlerParams struct {
	fx.In

	ReportUC usecase.ReportUsecase
}

// ReportHandler files moderation reports. Anonymous reports are accepted.
type ReportHandler struct {
	reportUC usecase.ReportUsecase
}

func NewReportHandler(params ReportHandlerParams) *ReportHandler {
	return &ReportHandler{reportUC: params.ReportUC}
}

func (h *ReportHandler) Route(c echo.Context) error {
	routeID, err := pathID(c)
	if err != nil {
		return err
	}

	var input usecase.ReportInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	report, err := h.reportUC.ReportRoute(c.Request().Context(), middleware.GetOptionalUserID(c), routeID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toReportView(report))
}

func (h *ReportHandler) Comment(c echo.Context) error {
	commentID, err := pathID(c)
	if err != nil {
		return err
	}

	var input usecase.ReportInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	report, err := h.reportUC.ReportComment(c.Request().Context(), middleware.GetOptionalUserID(c), commentID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toReportView(report))
}
