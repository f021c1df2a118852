package service

import (
	"context"

	"ridingcourse/internal/deeplink"
)

// LinkNormalizer turns a shared map link into a NormalizedRoute.
type LinkNormalizer interface {
	NormalizeWithMode(ctx context.Context, raw string, mode deeplink.Mode) (*deeplink.NormalizedRoute, error)
}
