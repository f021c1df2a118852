package handler

import (
	"time"

	"ridingcourse/internal/domain/entity"

	"github.com/google/uuid"
)

// UserView is the public shape of a user.
type UserView struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	CreatedAt   time.Time `json:"created_at"`
}

func toUserView(u *entity.User) *UserView {
	return &UserView{
		ID:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		CreatedAt:   u.CreatedAt,
	}
}

// RoutePointView is one ordered point of a route.
type RoutePointView struct {
	Seq  int     `json:"seq"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
	Name string  `json:"name,omitempty"`
	Type string  `json:"type"`
}

// RouteView is the public shape of a route. Points is omitted in listings.
type RouteView struct {
	ID              uuid.UUID        `json:"id"`
	AuthorID        *uuid.UUID       `json:"author_id"`
	Title           string           `json:"title"`
	Summary         string           `json:"summary"`
	Region1         string           `json:"region1"`
	Region2         string           `json:"region2"`
	LengthKm        *float64         `json:"length_km"`
	DurationMin     *int             `json:"duration_min"`
	StarsScenery    int              `json:"stars_scenery"`
	StarsDifficulty int              `json:"stars_difficulty"`
	Surface         string           `json:"surface"`
	Traffic         string           `json:"traffic"`
	Speedbump       int              `json:"speedbump"`
	Enforcement     int              `json:"enforcement"`
	Signal          int              `json:"signal"`
	TagsBitmask     int64            `json:"tags_bitmask"`
	OpenURL         string           `json:"open_url"`
	NmapURL         string           `json:"nmap_url,omitempty"`
	LikeCount       int              `json:"like_count"`
	CommentCount    int              `json:"comment_count"`
	OpenCount       int              `json:"open_count"`
	Points          []RoutePointView `json:"points,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

func toRouteView(r *entity.Route) *RouteView {
	view := &RouteView{
		ID:              r.ID,
		AuthorID:        r.AuthorID,
		Title:           r.Title,
		Summary:         r.Summary,
		Region1:         r.Region1,
		Region2:         r.Region2,
		LengthKm:        r.LengthKm,
		DurationMin:     r.DurationMin,
		StarsScenery:    r.StarsScenery,
		StarsDifficulty: r.StarsDifficulty,
		Surface:         string(r.Surface),
		Traffic:         string(r.Traffic),
		Speedbump:       r.Speedbump,
		Enforcement:     r.Enforcement,
		Signal:          r.Signal,
		TagsBitmask:     r.TagsBitmask,
		OpenURL:         r.OpenURL,
		NmapURL:         r.NmapURL,
		LikeCount:       r.LikeCount,
		CommentCount:    r.CommentCount,
		OpenCount:       r.OpenCount,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}

	if len(r.Points) > 0 {
		view.Points = make([]RoutePointView, len(r.Points))
		for i, p := range r.Points {
			view.Points[i] = RoutePointView{Seq: p.Seq, Lat: p.Lat, Lng: p.Lng, Name: p.Name, Type: string(p.Type)}
		}
	}

	return view
}

func toRouteViews(routes []*entity.Route) []*RouteView {
	views := make([]*RouteView, len(routes))
	for i, r := range routes {
		views[i] = toRouteView(r)
	}

	return views
}

// CommentView is the public shape of a comment.
type CommentView struct {
	ID        uuid.UUID `json:"id"`
	RouteID   uuid.UUID `json:"route_id"`
	AuthorID  uuid.UUID `json:"author_id"`
	Content   string    `json:"content"`
	LikeCount int       `json:"like_count"`
	LikedByMe bool      `json:"liked_by_me"`
	CreatedAt time.Time `json:"created_at"`
}

func toCommentView(c *entity.Comment) *CommentView {
	return &CommentView{
		ID:        c.ID,
		RouteID:   c.RouteID,
		AuthorID:  c.AuthorID,
		Content:   c.Content,
		LikeCount: c.LikeCount,
		LikedByMe: c.LikedByMe,
		CreatedAt: c.CreatedAt,
	}
}

// PhotoView is the public shape of a route photo.
type PhotoView struct {
	ID          uuid.UUID `json:"id"`
	RouteID     uuid.UUID `json:"route_id"`
	URL         string    `json:"url"`
	ContentType string    `json:"content_type"`
	SizeBytes   int64     `json:"size_bytes"`
	CreatedAt   time.Time `json:"created_at"`
}

func toPhotoView(p *entity.RoutePhoto) *PhotoView {
	return &PhotoView{
		ID:          p.ID,
		RouteID:     p.RouteID,
		URL:         p.URL,
		ContentType: p.ContentType,
		SizeBytes:   p.SizeBytes,
		CreatedAt:   p.CreatedAt,
	}
}

// ReportView acknowledges a filed report.
type ReportView struct {
	ID         uuid.UUID `json:"id"`
	TargetType string    `json:"target_type"`
	TargetID   uuid.UUID `json:"target_id"`
	Reason     string    `json:"reason"`
	CreatedAt  time.Time `json:"created_at"`
}

func toReportView(r *entity.Report) *ReportView {
	return &ReportView{
		ID:         r.ID,
		TargetType: string(r.TargetType),
		TargetID:   r.TargetID,
		Reason:     r.Reason,
		CreatedAt:  r.CreatedAt,
	}
}

// DailyOpensView is one row of a route's open statistics.
type DailyOpensView struct {
	Day      string `json:"day"` // YYYY-MM-DD, UTC.
	Platform string `json:"platform"`
	Opens    int    `json:"opens"`
}

func toDailyOpensView(r *entity.RouteDailyOpens) *DailyOpensView {
	return &DailyOpensView{
		Day:      r.Day.Format(time.DateOnly),
		Platform: r.Platform,
		Opens:    r.Opens,
	}
}
