package sumsub

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/tatyana-ilieva/lev-holdings/internal/apperrors"
	"github.com/tatyana-ilieva/lev-holdings/internal/clock"
	"github.com/tatyana-ilieva/lev-holdings/internal/metrics"
	"github.com/tatyana-ilieva/lev-holdings/internal/models"
	"github.com/tatyana-ilieva/lev-holdings/internal/provider"
)

const (
	headerAppToken      = "X-App-Token"
	headerAccessSig     = "X-App-Access-Sig"
	headerAccessTs      = "X-App-Access-Ts"
	headerPayloadDigest = "X-Payload-Digest"

	reviewStatusCompleted = "completed"
	reviewStatusOnHold    = "onHold"
)

type Config struct {
	BaseURL            string
	AppToken           string
	SecretKey          string
	WebhookSecret      string
	LevelName          string
	ExternalUserPrefix string
	Timeout            time.Duration
}

// Client talks to the Sumsub REST API. Requests are signed with
// HMAC-SHA256 over timestamp, method, path and body.
type Client struct {
	cfg        Config
	httpClient *http.Client
	clock      clock.Clock
}

func New(cfg Config, clk clock.Clock) *Client {
	cfg.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/")
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: timeout},
		clock:      clk,
	}
}

type accessTokenResponse struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
}

type applicantResponse struct {
	ID     string `json:"id"`
	Review struct {
		ReviewStatus string `json:"reviewStatus"`
		ReviewResult struct {
			ReviewAnswer string `json:"reviewAnswer"`
		} `json:"reviewResult"`
	} `json:"review"`
}

type errorResponse struct {
	Description string `json:"description"`
	Code        int    `json:"code"`
}

func (c *Client) Submit(ctx context.Context, walletID string) (*provider.AccessToken, error) {
	externalUserID := provider.ExternalUserID(c.cfg.ExternalUserPrefix, walletID)
	query := url.Values{}
	query.Set("userId", externalUserID)
	query.Set("levelName", c.cfg.LevelName)
	path := "/resources/accessTokens?" + query.Encode()

	body, err := json.Marshal(map[string]string{
		"externalUserId": externalUserID,
		"levelName":      c.cfg.LevelName,
	})
	if err != nil {
		return nil, apperrors.Internal("encoding token request: %v", err)
	}

	var out accessTokenResponse
	status, err := c.do(ctx, http.MethodPost, path, body, &out)
	c.count("submit", status, err)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, apperrors.UpstreamUnavailable("sumsub returned %d for access token", status)
	}

	return &provider.AccessToken{Token: out.Token, UserID: out.UserID}, nil
}

func (c *Client) PollStatus(ctx context.Context, walletID string) (models.VerificationStatus, error) {
	externalUserID := provider.ExternalUserID(c.cfg.ExternalUserPrefix, walletID)
	path := "/resources/applicants/-;externalUserId=" + url.PathEscape(externalUserID) + "/one"

	var out applicantResponse
	status, err := c.do(ctx, http.MethodGet, path, nil, &out)
	c.count("poll", status, err, http.StatusNotFound)
	if err != nil {
		return "", err
	}

	switch status {
	case http.StatusOK:
		return mapReview(out.Review.ReviewStatus, out.Review.ReviewResult.ReviewAnswer), nil
	case http.StatusNotFound:
		return models.StatusNone, nil
	default:
		return "", apperrors.UpstreamUnavailable("sumsub returned %d for applicant", status)
	}
}

// ParseWebhook checks X-Payload-Digest when a webhook secret is configured.
func (c *Client) ParseWebhook(header http.Header, body []byte) (*models.WebhookEvent, error) {
	if c.cfg.WebhookSecret != "" {
		digest := header.Get(headerPayloadDigest)
		if digest == "" || !hmac.Equal([]byte(strings.ToLower(digest)), []byte(Sign(c.cfg.WebhookSecret, string(body)))) {
			return nil, apperrors.Unauthorized("invalid webhook digest")
		}
	}

	var event models.WebhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return nil, apperrors.InvalidArgument("malformed webhook body: %v", err)
	}
	return &event, nil
}

func mapReview(reviewStatus, reviewAnswer string) models.VerificationStatus {
	switch reviewStatus {
	case reviewStatusCompleted:
		switch reviewAnswer {
		case models.ReviewAnswerGreen:
			return models.StatusCompleted
		case models.ReviewAnswerRed:
			return models.StatusFailed
		}
		return models.StatusProcessing
	case reviewStatusOnHold:
		return models.StatusOnHold
	default:
		return models.StatusProcessing
	}
}

// do sends a signed request and decodes a 200 body into out. Non-200
// statuses other than 5xx are returned to the caller to interpret.
func (c *Client) do(ctx context.Context, method, path string, body []byte, out interface{}) (int, error) {
	ts := strconv.FormatInt(c.clock.Now().Unix(), 10)

	req, err := http.NewRequestWithContext(ctx, method, c.cfg.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return 0, apperrors.Internal("building sumsub request: %v", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(headerAppToken, c.cfg.AppToken)
	req.Header.Set(headerAccessTs, ts)
	req.Header.Set(headerAccessSig, Sign(c.cfg.SecretKey, ts+method+path+string(body)))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, apperrors.UpstreamUnavailable("calling sumsub: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return 0, apperrors.UpstreamUnavailable("reading sumsub response: %v", err)
	}

	if resp.StatusCode >= http.StatusInternalServerError {
		return resp.StatusCode, apperrors.UpstreamUnavailable("sumsub returned %d", resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		var apiErr errorResponse
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Description != "" {
			logrus.WithField("status", resp.StatusCode).Warnf("Sumsub error: %s", apiErr.Description)
		}
		return resp.StatusCode, nil
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return resp.StatusCode, apperrors.UpstreamUnavailable("decoding sumsub response: %v", err)
	}
	return resp.StatusCode, nil
}

// count records a call as ok only for 200 or one of the statuses the
// operation treats as an answer.
func (c *Client) count(operation string, status int, err error, answers ...int) {
	outcome := "error"
	if err == nil && (status == http.StatusOK || slices.Contains(answers, status)) {
		outcome = "ok"
	}
	metrics.ProviderRequestsTotal.WithLabelValues(operation, outcome).Inc()
}

// Sign returns the lowercase hex HMAC-SHA256 of payload.
func Sign(secret, payload string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}

var _ provider.Provider = (*Client)(nil)
