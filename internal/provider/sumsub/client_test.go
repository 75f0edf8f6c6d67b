package sumsub_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tatyana-ilieva/lev-holdings/internal/apperrors"
	"github.com/tatyana-ilieva/lev-holdings/internal/clock"
	"github.com/tatyana-ilieva/lev-holdings/internal/metrics"
	"github.com/tatyana-ilieva/lev-holdings/internal/models"
	"github.com/tatyana-ilieva/lev-holdings/internal/provider/sumsub"
)

var fixedNow = time.Unix(1700000000, 0)

func newClient(baseURL, webhookSecret string) *sumsub.Client {
	return sumsub.New(sumsub.Config{
		BaseURL:            baseURL,
		AppToken:           "app-token",
		SecretKey:          "secret",
		WebhookSecret:      webhookSecret,
		LevelName:          "basic-kyc-level",
		ExternalUserPrefix: "lev_",
	}, clock.NewMock(fixedNow))
}

func TestSubmit_SignsRequest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/resources/accessTokens", r.URL.Path)
		assert.Equal(t, "lev_wallet1", r.URL.Query().Get("userId"))
		assert.Equal(t, "basic-kyc-level", r.URL.Query().Get("levelName"))
		assert.Equal(t, "app-token", r.Header.Get("X-App-Token"))
		assert.Equal(t, "1700000000", r.Header.Get("X-App-Access-Ts"))

		expected := sumsub.Sign("secret", "1700000000"+http.MethodPost+r.URL.RequestURI()+string(body))
		assert.Equal(t, expected, r.Header.Get("X-App-Access-Sig"))

		_ = json.NewEncoder(w).Encode(map[string]string{"token": "tok-1", "userId": "lev_wallet1"})
	}))
	defer server.Close()

	token, err := newClient(server.URL, "").Submit(context.Background(), "wallet1")

	require.NoError(t, err)
	assert.Equal(t, "tok-1", token.Token)
	assert.Equal(t, "lev_wallet1", token.UserID)
	assert.False(t, token.Demo)
}

func TestSubmit_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"description":"Invalid signature","code":401}`))
	}))
	defer server.Close()

	_, err := newClient(server.URL, "").Submit(context.Background(), "wallet1")

	assert.True(t, errors.Is(err, apperrors.ErrUpstreamUnavailable))
}

func TestRequestOutcomeFollowsStatus(t *testing.T) {
	tests := []struct {
		name      string
		operation string
		status    int
		outcome   string
	}{
		{name: "submit rejected", operation: "submit", status: http.StatusUnauthorized, outcome: "error"},
		{name: "submit accepted", operation: "submit", status: http.StatusOK, outcome: "ok"},
		{name: "poll unknown applicant", operation: "poll", status: http.StatusNotFound, outcome: "ok"},
		{name: "poll forbidden", operation: "poll", status: http.StatusForbidden, outcome: "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(`{}`))
			}))
			defer server.Close()
			counter := metrics.ProviderRequestsTotal.WithLabelValues(tt.operation, tt.outcome)
			before := testutil.ToFloat64(counter)

			client := newClient(server.URL, "")
			if tt.operation == "submit" {
				_, _ = client.Submit(context.Background(), "wallet1")
			} else {
				_, _ = client.PollStatus(context.Background(), "wallet1")
			}

			assert.Equal(t, before+1, testutil.ToFloat64(counter))
		})
	}
}

func TestSubmit_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close()

	_, err := newClient(server.URL, "").Submit(context.Background(), "wallet1")

	assert.True(t, errors.Is(err, apperrors.ErrUpstreamUnavailable))
}

func TestPollStatus(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		expected models.VerificationStatus
	}{
		{name: "approved", status: 200, body: `{"review":{"reviewStatus":"completed","reviewResult":{"reviewAnswer":"GREEN"}}}`, expected: models.StatusCompleted},
		{name: "rejected", status: 200, body: `{"review":{"reviewStatus":"completed","reviewResult":{"reviewAnswer":"RED"}}}`, expected: models.StatusFailed},
		{name: "on hold", status: 200, body: `{"review":{"reviewStatus":"onHold"}}`, expected: models.StatusOnHold},
		{name: "pending", status: 200, body: `{"review":{"reviewStatus":"pending"}}`, expected: models.StatusProcessing},
		{name: "unknown applicant", status: 404, body: `{"description":"not found"}`, expected: models.StatusNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, "/resources/applicants/-;externalUserId=lev_wallet1/one", r.URL.Path)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			status, err := newClient(server.URL, "").PollStatus(context.Background(), "wallet1")

			require.NoError(t, err)
			assert.Equal(t, tt.expected, status)
		})
	}
}

func TestPollStatus_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	_, err := newClient(server.URL, "").PollStatus(context.Background(), "wallet1")

	assert.True(t, errors.Is(err, apperrors.ErrUpstreamUnavailable))
}

func TestParseWebhook(t *testing.T) {
	body := []byte(`{"type":"applicantReviewed","externalUserId":"lev_wallet1","reviewResult":{"reviewAnswer":"GREEN"}}`)

	t.Run("without secret", func(t *testing.T) {
		event, err := newClient("http://unused", "").ParseWebhook(http.Header{}, body)

		require.NoError(t, err)
		assert.Equal(t, models.WebhookApplicantReviewed, event.Type)
		assert.Equal(t, "lev_wallet1", event.ExternalUserID)
		assert.Equal(t, models.ReviewAnswerGreen, event.ReviewResult.ReviewAnswer)
	})

	t.Run("valid digest", func(t *testing.T) {
		header := http.Header{}
		header.Set("X-Payload-Digest", sumsub.Sign("hook-secret", string(body)))

		_, err := newClient("http://unused", "hook-secret").ParseWebhook(header, body)

		assert.NoError(t, err)
	})

	t.Run("bad digest", func(t *testing.T) {
		header := http.Header{}
		header.Set("X-Payload-Digest", "deadbeef")

		_, err := newClient("http://unused", "hook-secret").ParseWebhook(header, body)

		assert.True(t, errors.Is(err, apperrors.ErrUnauthorized))
	})

	t.Run("malformed body", func(t *testing.T) {
		_, err := newClient("http://unused", "").ParseWebhook(http.Header{}, []byte("{"))

		assert.True(t, errors.Is(err, apperrors.ErrInvalidArgument))
	})
}
