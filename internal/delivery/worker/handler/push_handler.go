// Package handler contains the Pub/Sub push handlers of the event worker.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"ridingcourse/config"
	deliverycontext "ridingcourse/internal/delivery/context"
	"ridingcourse/internal/domain/constants"
	domainerrors "ridingcourse/internal/domain/errors"
	"ridingcourse/internal/domain/service"
	"ridingcourse/internal/errors"
	"ridingcourse/internal/infra/metrics"
	"ridingcourse/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// TokenVerifier checks the OIDC token Pub/Sub attaches to authenticated push requests.
type TokenVerifier func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler folds route open events into the daily statistics.
type PushHandler struct {
	verifyPushAuth bool
	verifyToken    TokenVerifier
	logger         *slog.Logger
	statsUC        usecase.RouteStatsUsecase
	metrics        *metrics.Metrics
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config  *config.Config
	Logger  *slog.Logger
	StatsUC usecase.RouteStatsUsecase
	Metrics *metrics.Metrics
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Only real Google push subscriptions sign their requests.
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		verifyToken:    idtoken.Validate,
		logger:         params.Logger,
		statsUC:        params.StatsUC,
		metrics:        params.Metrics,
	}
}

// HandlePush acknowledges with 2xx unless the failure is worth a redelivery.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	if eventType := pushMsg.Message.Attributes[constants.AttributeEventType]; eventType != "" && eventType != constants.EventTypeRouteOpened {
		h.logger.Info("[Worker] Skipping unsupported event type",
			slog.String("event_type", eventType),
			slog.String("message_id", pushMsg.Message.MessageID),
		)
		h.metrics.OpenEvents.WithLabelValues(metrics.OpenEventDropped).Inc()

		return c.NoContent(http.StatusOK)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.RouteOpenedEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse route opened event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Carry the originating API request_id into the worker logs.
	requestID := h.extractRequestID(ctx, &pushMsg, &event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	opens, err := h.statsUC.RecordOpened(ctx, &event)
	if err != nil {
		retryable := isRetryable(err)
		reqLogger.Error("[Worker] Failed to record route open",
			slog.String("event_id", event.EventID),
			slog.String("route_id", event.RouteID),
			slog.Any("error", err),
			slog.Bool("retryable", retryable),
		)

		// 503 makes Pub/Sub redeliver; 200 drops a message that can never succeed.
		if retryable {
			h.metrics.OpenEvents.WithLabelValues(metrics.OpenEventRetry).Inc()

			return c.NoContent(http.StatusServiceUnavailable)
		}
		h.metrics.OpenEvents.WithLabelValues(metrics.OpenEventDropped).Inc()

		return c.NoContent(http.StatusOK)
	}

	h.metrics.OpenEvents.WithLabelValues(metrics.OpenEventRecorded).Inc()
	reqLogger.Info("[Worker] Route open recorded",
		slog.String("event_id", event.EventID),
		slog.String("route_id", event.RouteID),
		slog.Int("day_opens", opens),
	)

	return c.NoContent(http.StatusOK)
}

// extractRequestID prefers message attributes, then the event payload, then the
// X-Request-Id of the push request, and finally generates one.
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.RouteOpenedEvent) string {
	if requestID := pushMsg.Message.Attributes[constants.AttributeRequestID]; requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// isRetryable treats client-side AppErrors as permanent and everything else as transient.
func isRetryable(err error) bool {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode() >= http.StatusInternalServerError
	}

	return true
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience is the push endpoint URL.
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := scheme + "://" + req.Host + req.URL.Path

	payload, err := h.verifyToken(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
