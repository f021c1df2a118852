package usecase

import (
	"context"

	"ridingcourse/internal/deeplink"
)

// ParseLinkInput is a pasted map-sharing link. Lenient overrides the configured mode when set.
type ParseLinkInput struct {
	Raw     string `json:"raw" validate:"max=8192"`
	Lenient *bool  `json:"lenient,omitempty"`
}

// LinkUsecase normalizes shared map links.
type LinkUsecase interface {
	// ParseLink fails with ErrLinkNotRecognized (strict mode only) or ErrMissingDestination.
	ParseLink(ctx context.Context, input *ParseLinkInput) (*deeplink.NormalizedRoute, error)
}
