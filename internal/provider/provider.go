package provider

import (
	"context"
	"net/http"
	"strings"

	"github.com/tatyana-ilieva/lev-holdings/internal/models"
)

// AccessToken authorizes the front end's verification widget for one applicant.
type AccessToken struct {
	Token  string
	UserID string
	// Demo is set when the token did not come from a real provider.
	Demo bool
}

// Provider is an identity-verification backend.
type Provider interface {
	// Submit registers the wallet as an applicant and returns a widget token.
	Submit(ctx context.Context, walletID string) (*AccessToken, error)
	// PollStatus asks the provider for the applicant's current review state.
	PollStatus(ctx context.Context, walletID string) (models.VerificationStatus, error)
	// ParseWebhook authenticates and decodes a callback body.
	ParseWebhook(header http.Header, body []byte) (*models.WebhookEvent, error)
}

// ExternalUserID is the applicant id the provider knows a wallet by.
func ExternalUserID(prefix, walletID string) string {
	return prefix + strings.TrimSpace(walletID)
}
