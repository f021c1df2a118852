package impl

import (
	"context"
	"log/slog"
	"strings"

	"ridingcourse/config"
	"ridingcourse/internal/deeplink"
	deliverycontext "ridingcourse/internal/delivery/context"
	domainerrors "ridingcourse/internal/domain/errors"
	"ridingcourse/internal/domain/service"
	"ridingcourse/internal/errors"
	"ridingcourse/internal/usecase"

	"go.uber.org/fx"
)

type linkService struct {
	normalizer service.LinkNormalizer
	lenient    bool
	logger     *slog.Logger
}

// LinkServiceParams holds dependencies for LinkService, injected by Fx.
type LinkServiceParams struct {
	fx.In

	Normalizer service.LinkNormalizer
	Config     *config.Config
	Logger     *slog.Logger
}

// NewLinkService creates the link parsing usecase.
func NewLinkService(params LinkServiceParams) usecase.LinkUsecase {
	lenient := false
	if params.Config != nil && params.Config.LinkParser != nil {
		lenient = params.Config.LinkParser.Lenient
	}

	return &linkService{
		normalizer: params.Normalizer,
		lenient:    lenient,
		logger:     params.Logger,
	}
}

func (srv *linkService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ParseLink maps the engine's typed failures onto application errors.
func (srv *linkService) ParseLink(ctx context.Context, input *usecase.ParseLinkInput) (*deeplink.NormalizedRoute, error) {
	mode := deeplink.ModeStrict
	lenient := srv.lenient
	if input.Lenient != nil {
		lenient = *input.Lenient
	}
	if lenient {
		mode = deeplink.ModeLenient
	}

	result, err := srv.normalizer.NormalizeWithMode(ctx, input.Raw, mode)
	if err == nil {
		srv.log(ctx).Debug("Link normalized",
			slog.String("source", string(result.Source())),
			slog.Int("waypoints", len(result.Waypoints)),
		)

		return result, nil
	}

	var classErr *deeplink.ClassificationError
	if errors.As(err, &classErr) {
		srv.log(ctx).Info("Link not recognized", slog.Int("length", len(input.Raw)))

		return nil, domainerrors.ErrLinkNotRecognized.WithDetails(truncate(strings.TrimSpace(input.Raw), 200))
	}

	var missingErr *deeplink.MissingDestinationError
	if errors.As(err, &missingErr) {
		srv.log(ctx).Info("Link has no destination", slog.String("field", missingErr.Field))

		return nil, domainerrors.ErrMissingDestination.WithDetails(missingErr.Error())
	}

	return nil, errors.Wrap(err, "failed to normalize link")
}

// truncate cuts s to at most n runes.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}

	return string(runes[:n])
}
