package handler

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ridingcourse/config"
	deliverycontext "ridingcourse/internal/delivery/context"
	"ridingcourse/internal/domain/constants"
	domainerrors "ridingcourse/internal/domain/errors"
	"ridingcourse/internal/domain/service"
	"ridingcourse/internal/errors"
	"ridingcourse/internal/infra/metrics"
	mockusecase "ridingcourse/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

type pushFixture struct {
	handler *PushHandler
	statsUC *mockusecase.MockRouteStatsUsecase
	metrics *metrics.Metrics
}

func newPushFixture(t *testing.T, cfg *config.Config) *pushFixture {
	t.Helper()

	if cfg == nil {
		cfg = &config.Config{}
		cfg.Env.Env = constants.EnvDevelop
	}

	statsUC := mockusecase.NewMockRouteStatsUsecase(t)
	m := metrics.NewMetrics()

	return &pushFixture{
		handler: NewPushHandler(PushHandlerParams{
			Config:  cfg,
			Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
			StatsUC: statsUC,
			Metrics: m,
		}),
		statsUC: statsUC,
		metrics: m,
	}
}

func pushBody(t *testing.T, event *service.RouteOpenedEvent, attrs map[string]string) []byte {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = attrs
	msg.Message.MessageID = "msg-1"
	msg.Subscription = "projects/p/subscriptions/route-opened"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return body
}

func (f *pushFixture) do(body []byte, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for key, values := range header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	rec := httptest.NewRecorder()

	c := echo.New().NewContext(req, rec)
	_ = f.handler.HandlePush(c)

	return rec
}

func (f *pushFixture) outcome(name string) float64 {
	return testutil.ToFloat64(f.metrics.OpenEvents.WithLabelValues(name))
}

func sampleEvent() *service.RouteOpenedEvent {
	return &service.RouteOpenedEvent{
		RequestID: "req-from-event",
		EventID:   "evt-1",
		RouteID:   "0b7f6c1e-4b7e-4f3a-9f59-2f3c8d0a1b2c",
		Platform:  "ios",
		OpenCount: 3,
		OpenedAt:  time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestHandlePush_Recorded(t *testing.T) {
	f := newPushFixture(t, nil)

	attrs := map[string]string{
		constants.AttributeEventType: constants.EventTypeRouteOpened,
		constants.AttributeRequestID: "req-from-attrs",
	}
	f.statsUC.EXPECT().
		RecordOpened(mock.Anything, mock.MatchedBy(func(e *service.RouteOpenedEvent) bool {
			return e.EventID == "evt-1" && e.Platform == "ios"
		})).
		Run(func(ctx context.Context, _ *service.RouteOpenedEvent) {
			assert.Equal(t, "req-from-attrs", deliverycontext.GetRequestIDFromContext(ctx))
		}).
		Return(1, nil).
		Once()

	rec := f.do(pushBody(t, sampleEvent(), attrs), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), f.outcome(metrics.OpenEventRecorded))
}

func TestHandlePush_Failures(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		outcome string
	}{
		{
			name:    "missing route is dropped",
			err:     errors.WithStack(domainerrors.ErrRouteNotFound),
			code:    http.StatusOK,
			outcome: metrics.OpenEventDropped,
		},
		{
			name:    "invalid payload is dropped",
			err:     domainerrors.ErrValidationFailed.WithDetails("route_id"),
			code:    http.StatusOK,
			outcome: metrics.OpenEventDropped,
		},
		{
			name:    "database outage is retried",
			err:     errors.New("connection refused"),
			code:    http.StatusServiceUnavailable,
			outcome: metrics.OpenEventRetry,
		},
		{
			name:    "internal app error is retried",
			err:     domainerrors.ErrInternalError,
			code:    http.StatusServiceUnavailable,
			outcome: metrics.OpenEventRetry,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newPushFixture(t, nil)
			f.statsUC.EXPECT().RecordOpened(mock.Anything, mock.Anything).Return(0, tt.err).Once()

			rec := f.do(pushBody(t, sampleEvent(), nil), nil)

			assert.Equal(t, tt.code, rec.Code)
			assert.Equal(t, float64(1), f.outcome(tt.outcome))
		})
	}
}

func TestHandlePush_MalformedMessages(t *testing.T) {
	notJSON := base64.StdEncoding.EncodeToString([]byte("{not json"))

	tests := []struct {
		name string
		body string
	}{
		{name: "invalid envelope", body: "{"},
		{name: "invalid base64", body: `{"message":{"data":"!!!"}}`},
		{name: "invalid event", body: `{"message":{"data":"` + notJSON + `"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newPushFixture(t, nil)

			rec := f.do([]byte(tt.body), nil)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandlePush_SkipsOtherEventTypes(t *testing.T) {
	f := newPushFixture(t, nil)

	attrs := map[string]string{constants.AttributeEventType: "route.deleted"}
	rec := f.do(pushBody(t, sampleEvent(), attrs), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), f.outcome(metrics.OpenEventDropped))
}

func TestHandlePush_GoogleAuth(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = constants.EnvProduction

	tests := []struct {
		name   string
		header http.Header
		issuer string
		err    error
		code   int
	}{
		{name: "missing header", code: http.StatusUnauthorized},
		{
			name:   "not a bearer token",
			header: http.Header{echo.HeaderAuthorization: {"Basic abc"}},
			code:   http.StatusUnauthorized,
		},
		{
			name:   "invalid token",
			header: http.Header{echo.HeaderAuthorization: {"Bearer bad"}},
			err:    errors.New("signature mismatch"),
			code:   http.StatusUnauthorized,
		},
		{
			name:   "foreign issuer",
			header: http.Header{echo.HeaderAuthorization: {"Bearer token"}},
			issuer: "https://evil.example.com",
			code:   http.StatusUnauthorized,
		},
		{
			name:   "valid token",
			header: http.Header{echo.HeaderAuthorization: {"Bearer token"}},
			issuer: "https://accounts.google.com",
			code:   http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newPushFixture(t, cfg)
			require.True(t, f.handler.verifyPushAuth)

			f.handler.verifyToken = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
				assert.Equal(t, "http://example.com/push", audience)
				if tt.err != nil {
					return nil, tt.err
				}

				return &idtoken.Payload{Issuer: tt.issuer, Claims: map[string]any{"email_verified": true}}, nil
			}
			if tt.code == http.StatusOK {
				f.statsUC.EXPECT().RecordOpened(mock.Anything, mock.Anything).Return(1, nil).Once()
			}

			rec := f.do(pushBody(t, sampleEvent(), nil), tt.header)

			assert.Equal(t, tt.code, rec.Code)
		})
	}
}

func TestNewPushHandler_AuthOnlyForGoogleOutsideDevelop(t *testing.T) {
	local := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}}
	local.Env.Env = constants.EnvProduction
	assert.False(t, newPushFixture(t, local).handler.verifyPushAuth)

	dev := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	dev.Env.Env = constants.EnvDevelop
	assert.False(t, newPushFixture(t, dev).handler.verifyPushAuth)
}

func TestExtractRequestID(t *testing.T) {
	h := &PushHandler{}
	event := sampleEvent()

	var msg PubSubMessage
	msg.Message.Attributes = map[string]string{constants.AttributeRequestID: "attr"}
	assert.Equal(t, "attr", h.extractRequestID(context.Background(), &msg, event))

	msg.Message.Attributes = nil
	assert.Equal(t, "req-from-event", h.extractRequestID(context.Background(), &msg, event))

	event.RequestID = ""
	ctx := deliverycontext.WithRequestID(context.Background(), "ctx")
	assert.Equal(t, "ctx", h.extractRequestID(ctx, &msg, event))

	assert.NotEmpty(t, h.extractRequestID(context.Background(), &msg, event))
}
