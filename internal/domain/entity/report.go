package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReportTarget names what a report is about.
type ReportTarget string

const (
	ReportTargetRoute   ReportTarget = "route"
	ReportTargetComment ReportTarget = "comment"
)

// Report is an abuse report filed against a route or a comment.
type Report struct {
	ID         uuid.UUID
	TargetType ReportTarget
	TargetID   uuid.UUID
	UserID     *uuid.UUID // nil when filed anonymously.
	Reason     string
	Detail     string
	CreatedAt  time.Time
}
