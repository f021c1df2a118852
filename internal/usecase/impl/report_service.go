package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "ridingcourse/internal/delivery/context"
	"ridingcourse/internal/domain/entity"
	domainerrors "ridingcourse/internal/domain/errors"
	"ridingcourse/internal/domain/repository"
	"ridingcourse/internal/errors"
	"ridingcourse/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const maxReasonLength = 50

type reportService struct {
	routeRepo   repository.RouteRepository
	commentRepo repository.CommentRepository
	reportRepo  repository.ReportRepository
	logger      *slog.Logger
}

// ReportServiceParams holds dependencies for ReportService, injected by Fx.
type ReportServiceParams struct {
	fx.In

	RouteRepo   repository.RouteRepository
	CommentRepo repository.CommentRepository
	ReportRepo  repository.ReportRepository
	Logger      *slog.Logger
}

// NewReportService creates the report usecase.
func NewReportService(params ReportServiceParams) usecase.ReportUsecase {
	return &reportService{
		routeRepo:   params.RouteRepo,
		commentRepo: params.CommentRepo,
		reportRepo:  params.ReportRepo,
		logger:      params.Logger,
	}
}

func (srv *reportService) ReportRoute(ctx context.Context, reporterID *uuid.UUID, routeID uuid.UUID, input *usecase.ReportInput) (*entity.Report, error) {
	if err := ensureRouteExists(ctx, srv.routeRepo, routeID); err != nil {
		return nil, err
	}

	return srv.file(ctx, entity.ReportTargetRoute, routeID, reporterID, input)
}

func (srv *reportService) ReportComment(ctx context.Context, reporterID *uuid.UUID, commentID uuid.UUID, input *usecase.ReportInput) (*entity.Report, error) {
	if _, err := srv.commentRepo.FindByID(ctx, commentID); err != nil {
		if errors.Is(err, repository.ErrCommentNotFound) {
			return nil, domainerrors.ErrCommentNotFound
		}

		return nil, errors.Wrap(err, "failed to find comment")
	}

	return srv.file(ctx, entity.ReportTargetComment, commentID, reporterID, input)
}

func (srv *reportService) file(ctx context.Context, target entity.ReportTarget, targetID uuid.UUID, reporterID *uuid.UUID, input *usecase.ReportInput) (*entity.Report, error) {
	reason := strings.TrimSpace(input.Reason)
	if reason == "" || len([]rune(reason)) > maxReasonLength {
		return nil, domainerrors.ErrValidationFailed.WithDetails("reason must be 1 to 50 characters")
	}

	report := &entity.Report{
		TargetType: target,
		TargetID:   targetID,
		UserID:     reporterID,
		Reason:     reason,
		Detail:     strings.TrimSpace(input.Detail),
	}
	if err := srv.reportRepo.Create(ctx, report); err != nil {
		return nil, errors.Wrap(err, "failed to create report")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Report filed",
		slog.String("target", string(target)),
		slog.Any("targetID", targetID),
		slog.String("reason", reason),
	)

	return report, nil
}
