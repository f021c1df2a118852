package postgres

import (
	"context"

	"ridingcourse/internal/domain/entity"
	domainerrors "ridingcourse/internal/domain/errors"
	"ridingcourse/internal/domain/repository"
	"ridingcourse/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository is the constructor for reportRepository.
func NewReportRepository(db *gorm.DB) repository.ReportRepository {
	return &reportRepository{db: db}
}

func (repo *reportRepository) Create(ctx context.Context, report *entity.Report) error {
	reportM := &model.ReportModel{
		ID:         report.ID,
		TargetType: string(report.TargetType),
		TargetID:   report.TargetID,
		UserID:     report.UserID,
		Reason:     report.Reason,
		Detail:     report.Detail,
	}
	if err := repo.db.WithContext(ctx).Create(reportM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create report")
	}

	report.ID = reportM.ID
	report.CreatedAt = reportM.CreatedAt

	return nil
}
