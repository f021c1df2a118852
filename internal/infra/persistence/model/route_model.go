package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RouteModel mirrors the 'routes' table.
type RouteModel struct {
	ID       uuid.UUID  `gorm:"type:uuid;primaryKey"`
	AuthorID *uuid.UUID `gorm:"type:uuid;index"`

	Title   string `gorm:"type:varchar(200);not null"`
	Summary string `gorm:"type:text;not null;default:''"`
	Region1 string `gorm:"type:varchar(100);index;not null;default:''"`
	Region2 string `gorm:"type:varchar(100);not null;default:''"`

	LengthKm    *float64
	DurationMin *int

	StarsScenery    int    `gorm:"not null;default:3"`
	StarsDifficulty int    `gorm:"not null;default:3"`
	Surface         string `gorm:"type:varchar(20);not null;default:'unknown'"`
	Traffic         string `gorm:"type:varchar(20);not null;default:'unknown'"`
	Speedbump       int    `gorm:"not null;default:0"`
	Enforcement     int    `gorm:"not null;default:0"`
	Signal          int    `gorm:"not null;default:0"`
	TagsBitmask     int64  `gorm:"not null;default:0;index"`

	OpenURL string `gorm:"type:text;not null"`
	NmapURL string `gorm:"type:text;not null;default:''"`

	LikeCount    int `gorm:"not null;default:0"`
	CommentCount int `gorm:"not null;default:0"`
	OpenCount    int `gorm:"not null;default:0"`

	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time

	Points []RoutePointModel `gorm:"foreignKey:RouteID"`
}

// TableName explicitly sets the table name for GORM.
func (RouteModel) TableName() string {
	return "routes"
}

func (m *RouteModel) BeforeCreate(_ *gorm.DB) error {
	return assignID(&m.ID)
}

// RoutePointModel mirrors the 'route_points' table. (route_id, seq) is unique.
type RoutePointModel struct {
	RouteID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq     int       `gorm:"primaryKey;autoIncrement:false"`
	Lat     float64   `gorm:"not null"`
	Lng     float64   `gorm:"not null"`
	Name    string    `gorm:"type:varchar(200);not null;default:''"`
	Type    string    `gorm:"type:varchar(20);not null"`
}

// TableName explicitly sets the table name for GORM.
func (RoutePointModel) TableName() string {
	return "route_points"
}

// RouteLikeModel mirrors the 'likes' table.
type RouteLikeModel struct {
	RouteID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RouteLikeModel) TableName() string {
	return "likes"
}

// RouteOpenEventModel mirrors the 'route_open_events' table.
type RouteOpenEventModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	RouteID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	UserID    *uuid.UUID `gorm:"type:uuid"`
	UserAgent string     `gorm:"type:varchar(300);not null;default:''"`
	Referrer  string     `gorm:"type:varchar(300);not null;default:''"`
	Platform  string     `gorm:"type:varchar(50);not null;default:''"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RouteOpenEventModel) TableName() string {
	return "route_open_events"
}

func (m *RouteOpenEventModel) BeforeCreate(_ *gorm.DB) error {
	return assignID(&m.ID)
}

// RoutePhotoModel mirrors the 'route_photos' table.
type RoutePhotoModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	RouteID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	AuthorID    *uuid.UUID `gorm:"type:uuid"`
	Key         string     `gorm:"type:varchar(300);not null"`
	URL         string     `gorm:"type:text;not null"`
	ContentType string     `gorm:"type:varchar(100);not null"`
	SizeBytes   int64      `gorm:"not null"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (RoutePhotoModel) TableName() string {
	return "route_photos"
}

func (m *RoutePhotoModel) BeforeCreate(_ *gorm.DB) error {
	return assignID(&m.ID)
}

// RouteDailyOpensModel mirrors the 'route_daily_opens' table.
type RouteDailyOpensModel struct {
	RouteID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Day       time.Time `gorm:"type:date;primaryKey"`
	Platform  string    `gorm:"type:varchar(50);primaryKey"`
	Opens     int       `gorm:"not null;default:0"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RouteDailyOpensModel) TableName() string {
	return "route_daily_opens"
}
