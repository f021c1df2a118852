package service

import (
	"context"
	"time"
)

// RouteOpenedEvent is published whenever a route is opened in the map app.
type RouteOpenedEvent struct {
	RequestID string    `json:"request_id,omitempty"`
	EventID   string    `json:"event_id"`
	RouteID   string    `json:"route_id"`
	UserID    string    `json:"user_id,omitempty"`
	Platform  string    `json:"platform,omitempty"`
	OpenCount int       `json:"open_count"`
	OpenedAt  time.Time `json:"opened_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	PublishRouteOpened(ctx context.Context, event *RouteOpenedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
