// Package shortlink expands naver.me shortlinks over HTTP behind a circuit breaker.
package shortlink

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"ridingcourse/config"
	"ridingcourse/internal/deeplink"
	"ridingcourse/internal/domain/service"
	"ridingcourse/internal/errors"
	"ridingcourse/internal/infra/metrics"

	"github.com/sony/gobreaker/v2"
	"go.uber.org/fx"
)

const (
	maxRedirects = 10
	userAgent    = "ridingcourse-linkparser/1.0"
)

var errTooManyRedirects = errors.New("stopped after 10 redirects")

// StatusError reports a final response with a 4xx or 5xx status.
type StatusError struct {
	StatusCode int
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("shortlink %s answered %d", e.URL, e.StatusCode)
}

// HTTPResolver implements deeplink.Resolver. A single attempt is made per call.
type HTTPResolver struct {
	client  *http.Client
	breaker *gobreaker.CircuitBreaker[string]
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// NewHTTPResolver builds a resolver whose breaker trips after FailureThreshold consecutive failures.
// m may be nil.
func NewHTTPResolver(breaker config.BreakerConfig, m *metrics.Metrics, logger *slog.Logger) *HTTPResolver {
	r := &HTTPResolver{
		client: &http.Client{
			CheckRedirect: func(_ *http.Request, via []*http.Request) error {
				if len(via) >= maxRedirects {
					return errTooManyRedirects
				}

				return nil
			},
		},
		metrics: m,
		logger:  logger,
	}

	threshold := breaker.FailureThreshold
	if threshold == 0 {
		threshold = 5
	}

	r.breaker = gobreaker.NewCircuitBreaker[string](gobreaker.Settings{
		Name:        "naver-shortlink",
		MaxRequests: breaker.MaxRequests,
		Interval:    breaker.Interval,
		Timeout:     breaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		// A 4xx means the link is bad and a caller cancel means nobody is
		// waiting; neither says the upstream is down.
		IsSuccessful: func(err error) bool {
			if errors.Is(err, context.Canceled) {
				return true
			}

			var statusErr *StatusError
			if errors.As(err, &statusErr) {
				return statusErr.StatusCode < http.StatusInternalServerError
			}

			return err == nil
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("Shortlink circuit breaker changed state",
				slog.String("name", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	return r
}

// Resolve returns the URL reached after following the shortlink's redirects within timeout.
func (r *HTTPResolver) Resolve(ctx context.Context, shortURL string, timeout time.Duration) (string, error) {
	if timeout <= 0 {
		timeout = deeplink.DefaultShortlinkTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	expanded, err := r.breaker.Execute(func() (string, error) {
		return r.expand(ctx, shortURL)
	})
	r.observe(start, err)

	if err != nil {
		return "", err
	}

	return expanded, nil
}

// State reports the breaker state.
func (r *HTTPResolver) State() gobreaker.State {
	return r.breaker.State()
}

func (r *HTTPResolver) expand(ctx context.Context, shortURL string) (string, error) {
	resp, err := r.do(ctx, http.MethodHead, shortURL)
	if err != nil {
		return "", err
	}
	if resp.StatusCode == http.StatusMethodNotAllowed || resp.StatusCode == http.StatusNotImplemented {
		resp, err = r.do(ctx, http.MethodGet, shortURL)
		if err != nil {
			return "", err
		}
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return "", &StatusError{StatusCode: resp.StatusCode, URL: shortURL}
	}

	return resp.Request.URL.String(), nil
}

// do sends one request and discards the body; only the final URL and status are used.
func (r *HTTPResolver) do(ctx context.Context, method, target string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, target, nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
	_ = resp.Body.Close()

	return resp, nil
}

func (r *HTTPResolver) observe(start time.Time, err error) {
	if r.metrics == nil {
		return
	}

	outcome := metrics.ShortlinkResolved
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		outcome = metrics.ShortlinkBreakerOpen
	case err != nil:
		outcome = metrics.ShortlinkFailed
	}

	r.metrics.ShortlinkResolutions.WithLabelValues(outcome).Inc()
	r.metrics.ShortlinkDuration.Observe(time.Since(start).Seconds())
}

// NewNormalizer builds the normalization engine with this resolver and the link parser settings.
func NewNormalizer(cfg *config.Config, resolver *HTTPResolver, logger *slog.Logger) *deeplink.Normalizer {
	parser := cfg.LinkParser

	mode := deeplink.ModeStrict
	if parser.Lenient {
		mode = deeplink.ModeLenient
	}

	return deeplink.New(
		deeplink.WithAppName(parser.AppName),
		deeplink.WithResolver(resolver, parser.ShortlinkTimeout),
		deeplink.WithMode(mode),
		deeplink.WithLogger(logger),
	)
}

func newResolver(cfg *config.Config, m *metrics.Metrics, logger *slog.Logger) *HTTPResolver {
	return NewHTTPResolver(cfg.LinkParser.Breaker, m, logger)
}

// Module provides the resolver and the normalizer built on it.
var Module = fx.Options(
	fx.Provide(newResolver),
	fx.Provide(fx.Annotate(NewNormalizer, fx.As(new(service.LinkNormalizer)))),
)
