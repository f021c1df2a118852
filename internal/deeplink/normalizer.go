package deeplink

import (
	"context"
	"log/slog"
	"strings"
	"time"
)

const (
	DefaultAppName          = "com.ridingcourse.app"
	DefaultShortlinkTimeout = 3 * time.Second
)

// Resolver expands a shortlink by following its redirects.
type Resolver interface {
	Resolve(ctx context.Context, shortURL string, timeout time.Duration) (string, error)
}

// Mode selects how a ClassificationError is surfaced.
type Mode int

const (
	// ModeStrict returns ClassificationError to the caller.
	ModeStrict Mode = iota
	// ModeLenient replaces ClassificationError with a source=unknown placeholder.
	ModeLenient
)

// Normalizer runs the classify, decode and re-encode pipeline. It holds no mutable
// state and is safe for concurrent use.
type Normalizer struct {
	appName          string
	resolver         Resolver
	shortlinkTimeout time.Duration
	mode             Mode
	logger           *slog.Logger
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithAppName sets the appname parameter appended to canonical links.
func WithAppName(appName string) Option {
	return func(n *Normalizer) {
		if appName != "" {
			n.appName = appName
		}
	}
}

// WithResolver enables shortlink expansion bounded by timeout.
func WithResolver(resolver Resolver, timeout time.Duration) Option {
	return func(n *Normalizer) {
		n.resolver = resolver
		if timeout > 0 {
			n.shortlinkTimeout = timeout
		}
	}
}

// WithMode sets the default mode used by Normalize.
func WithMode(mode Mode) Option {
	return func(n *Normalizer) {
		n.mode = mode
	}
}

// WithLogger sets the logger used for shortlink fallbacks.
func WithLogger(logger *slog.Logger) Option {
	return func(n *Normalizer) {
		if logger != nil {
			n.logger = logger
		}
	}
}

// New creates a Normalizer. Without a resolver every shortlink degrades to the web-short fallback.
func New(opts ...Option) *Normalizer {
	n := &Normalizer{
		appName:          DefaultAppName,
		shortlinkTimeout: DefaultShortlinkTimeout,
		mode:             ModeStrict,
		logger:           slog.Default(),
	}
	for _, opt := range opts {
		opt(n)
	}

	return n
}

// Normalize normalizes raw using the configured default mode.
func (n *Normalizer) Normalize(ctx context.Context, raw string) (*NormalizedRoute, error) {
	return n.NormalizeWithMode(ctx, raw, n.mode)
}

// NormalizeWithMode normalizes raw. It fails only with ClassificationError (strict mode)
// or MissingDestinationError; every other malformed input degrades to a best-effort result.
func (n *Normalizer) NormalizeWithMode(ctx context.Context, raw string, mode Mode) (*NormalizedRoute, error) {
	link, err := Classify(raw)
	if err != nil {
		if mode == ModeLenient {
			return n.unknown(raw, err), nil
		}

		return nil, err
	}

	switch link.Dialect {
	case DialectNmap:
		return decodeSchema(link, SourceNmap, raw, n.appName)
	case DialectIntent:
		return decodeSchema(link, SourceIntent, raw, n.appName)
	case DialectWebDirections:
		return decodeWebDirections(link.Text, link.Variant, raw), nil
	case DialectShortlink:
		return n.resolveShortlink(ctx, link.Text, raw), nil
	default:
		return bestEffort(SourceWeb, link.Text, raw), nil
	}
}

// resolveShortlink never fails: any resolver error or unexpected expansion
// yields the web-short fallback that still opens the shared link.
func (n *Normalizer) resolveShortlink(ctx context.Context, shortURL, raw string) *NormalizedRoute {
	if n.resolver == nil {
		return bestEffort(SourceWebShort, shortURL, raw)
	}

	expanded, err := n.resolver.Resolve(ctx, shortURL, n.shortlinkTimeout)
	if err != nil {
		n.logger.DebugContext(ctx, "Shortlink resolution failed",
			slog.String("url", shortURL),
			slog.Any("error", err),
		)

		return bestEffort(SourceWebShort, shortURL, raw)
	}

	expanded = strings.TrimSpace(expanded)
	variant, ok := matchWebDirections(expanded)
	if !ok {
		n.logger.DebugContext(ctx, "Shortlink expanded to an unsupported URL",
			slog.String("url", shortURL),
			slog.String("expanded", expanded),
		)

		return bestEffort(SourceWebShort, shortURL, raw)
	}

	result := decodeWebDirections(expanded, variant, raw)
	result.OpenURL = shortURL
	result.Meta[MetaExpandedURL] = expanded

	return result
}

func (n *Normalizer) unknown(raw string, cause error) *NormalizedRoute {
	result := bestEffort(SourceUnknown, strings.TrimSpace(raw), raw)
	result.Meta[MetaError] = cause.Error()

	return result
}
