package handler

import (
	"net/http"
	"testing"

	domainerrors "ridingcourse/internal/domain/errors"
	"ridingcourse/internal/domain/entity"
	mockUsecase "ridingcourse/internal/mocks/usecase"
	"ridingcourse/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestReportHandler(t *testing.T) {
	userID := uuid.New()
	targetID := uuid.New()
	reportUC := mockUsecase.NewMockReportUsecase(t)
	h := NewReportHandler(ReportHandlerParams{ReportUC: reportUC})

	e := newTestEcho()
	e.POST("/reports/route/:id", h.Route)
	e.POST("/reports/comment/:id", h.Comment, asUser(userID))

	input := &usecase.ReportInput{Reason: "spam", Detail: "광고"}

	reportUC.EXPECT().
		ReportRoute(mock.Anything, (*uuid.UUID)(nil), targetID, input).
		Return(&entity.Report{ID: uuid.New(), TargetType: entity.ReportTargetRoute, TargetID: targetID, Reason: "spam"}, nil)
	reportUC.EXPECT().
		ReportComment(mock.Anything, &userID, targetID, input).
		Return(&entity.Report{ID: uuid.New(), TargetType: entity.ReportTargetComment, TargetID: targetID, UserID: &userID, Reason: "spam"}, nil)

	rec := doJSON(e, http.MethodPost, "/reports/route/"+targetID.String(), `{"reason":"spam","detail":"광고"}`)
	assertStatus(t, rec, http.StatusCreated)
	assert.Equal(t, "route", decodeData[ReportView](t, rec).TargetType)

	rec = doJSON(e, http.MethodPost, "/reports/comment/"+targetID.String(), `{"reason":"spam","detail":"광고"}`)
	assertStatus(t, rec, http.StatusCreated)
	assert.Equal(t, "comment", decodeData[ReportView](t, rec).TargetType)
}

func TestReportHandler_RequiresReason(t *testing.T) {
	h := NewReportHandler(ReportHandlerParams{ReportUC: mockUsecase.NewMockReportUsecase(t)})
	e := newTestEcho()
	e.POST("/reports/route/:id", h.Route)

	rec := doJSON(e, http.MethodPost, "/reports/route/"+uuid.NewString(), `{"detail":"x"}`)

	assertStatus(t, rec, http.StatusBadRequest)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), decodeErrorCode(t, rec))
}
