package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BookmarkModel mirrors the 'bookmarks' table.
type BookmarkModel struct {
	RouteID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (BookmarkModel) TableName() string {
	return "bookmarks"
}

// ReportModel mirrors the 'reports' table.
type ReportModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	TargetType string     `gorm:"type:varchar(20);not null;index:idx_reports_target"`
	TargetID   uuid.UUID  `gorm:"type:uuid;not null;index:idx_reports_target"`
	UserID     *uuid.UUID `gorm:"type:uuid"`
	Reason     string     `gorm:"type:varchar(50);not null"`
	Detail     string     `gorm:"type:text;not null;default:''"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReportModel) TableName() string {
	return "reports"
}

func (m *ReportModel) BeforeCreate(_ *gorm.DB) error {
	return assignID(&m.ID)
}

// All lists every model in migration order.
func All() []any {
	return []any{
		&UserModel{},
		&AuthenticationModel{},
		&RouteModel{},
		&RoutePointModel{},
		&RouteLikeModel{},
		&RouteOpenEventModel{},
		&RouteDailyOpensModel{},
		&RoutePhotoModel{},
		&CommentModel{},
		&CommentLikeModel{},
		&BookmarkModel{},
		&ReportModel{},
	}
}
