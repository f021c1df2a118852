package repository

import (
	"context"

	"ridingcourse/internal/domain/entity"
)

// ReportRepository persists abuse reports.
type ReportRepository interface {
	Create(ctx context.Context, report *entity.Report) error
}
