package usecase

import (
	"context"

	"ridingcourse/internal/domain/entity"

	"github.com/google/uuid"
)

// ReportInput is the body of an abuse report.
type ReportInput struct {
	Reason string `json:"reason" validate:"required,max=50"`
	Detail string `json:"detail" validate:"max=2000"`
}

// ReportUsecase files reports against routes and comments. reporterID is nil for anonymous reports.
type ReportUsecase interface {
	ReportRoute(ctx context.Context, reporterID *uuid.UUID, routeID uuid.UUID, input *ReportInput) (*entity.Report, error)
	ReportComment(ctx context.Context, reporterID *uuid.UUID, commentID uuid.UUID, input *ReportInput) (*entity.Report, error)
}
