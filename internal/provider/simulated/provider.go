package simulated

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/tatyana-ilieva/lev-holdings/internal/apperrors"
	"github.com/tatyana-ilieva/lev-holdings/internal/clock"
	"github.com/tatyana-ilieva/lev-holdings/internal/models"
	"github.com/tatyana-ilieva/lev-holdings/internal/provider"
)

// Provider fakes a verification backend. Every applicant is approved
// ReviewAfter after its first Submit.
type Provider struct {
	Clock              clock.Clock
	ReviewAfter        time.Duration
	ExternalUserPrefix string

	mu        sync.Mutex
	submitted map[string]time.Time
}

func New(clk clock.Clock, reviewAfter time.Duration, externalUserPrefix string) *Provider {
	return &Provider{
		Clock:              clk,
		ReviewAfter:        reviewAfter,
		ExternalUserPrefix: externalUserPrefix,
		submitted:          make(map[string]time.Time),
	}
}

func (p *Provider) Submit(_ context.Context, walletID string) (*provider.AccessToken, error) {
	walletID = strings.TrimSpace(walletID)
	if walletID == "" {
		return nil, apperrors.InvalidArgument("wallet address required")
	}

	now := p.Clock.Now()
	p.mu.Lock()
	if _, ok := p.submitted[walletID]; !ok {
		p.submitted[walletID] = now
	}
	p.mu.Unlock()

	return &provider.AccessToken{
		Token:  DemoToken(now),
		UserID: provider.ExternalUserID(p.ExternalUserPrefix, walletID),
		Demo:   true,
	}, nil
}

func (p *Provider) PollStatus(_ context.Context, walletID string) (models.VerificationStatus, error) {
	p.mu.Lock()
	submittedAt, ok := p.submitted[strings.TrimSpace(walletID)]
	p.mu.Unlock()

	if !ok {
		return models.StatusNone, nil
	}
	if p.Clock.Now().Sub(submittedAt) >= p.ReviewAfter {
		return models.StatusCompleted, nil
	}
	return models.StatusProcessing, nil
}

// ParseWebhook decodes the body without any authentication.
func (p *Provider) ParseWebhook(_ http.Header, body []byte) (*models.WebhookEvent, error) {
	var event models.WebhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return nil, apperrors.InvalidArgument("malformed webhook body: %v", err)
	}
	return &event, nil
}

// DemoToken formats the placeholder widget token handed out without a real provider.
func DemoToken(now time.Time) string {
	return fmt.Sprintf("DEMO_TOKEN_%d", now.UnixMilli())
}

var _ provider.Provider = (*Provider)(nil)
