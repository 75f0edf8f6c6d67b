package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/tatyana-ilieva/lev-holdings/internal/apperrors"
	"github.com/tatyana-ilieva/lev-holdings/internal/clock"
	"github.com/tatyana-ilieva/lev-holdings/internal/metrics"
	"github.com/tatyana-ilieva/lev-holdings/internal/models"
)

const verificationMethodSumsub = "sumsub_kyc"

// StatusWriter is the slice of StatusService the webhook path needs.
type StatusWriter interface {
	SetStatus(ctx context.Context, walletID string, status models.VerificationStatus, payload *models.VerificationPayload) (*models.VerificationRecord, error)
}

// CredentialIssuer produces a credential for a freshly approved wallet.
type CredentialIssuer interface {
	Issue(ctx context.Context, walletID string, payload *models.VerificationPayload) *models.Credential
}

type WebhookService struct {
	Statuses           StatusWriter
	Issuer             CredentialIssuer
	Clock              clock.Clock
	Random             RandomSource
	ExternalUserPrefix string
}

func NewWebhookService(statuses StatusWriter, issuer CredentialIssuer, clk clock.Clock, rnd RandomSource, externalUserPrefix string) *WebhookService {
	return &WebhookService{
		Statuses:           statuses,
		Issuer:             issuer,
		Clock:              clk,
		Random:             rnd,
		ExternalUserPrefix: externalUserPrefix,
	}
}

// WalletIDFromExternalUserID strips the applicant prefix the wallet was
// registered with at the provider.
func WalletIDFromExternalUserID(prefix, externalUserID string) (string, error) {
	externalUserID = strings.TrimSpace(externalUserID)
	if !strings.HasPrefix(externalUserID, prefix) {
		return "", apperrors.InvalidArgument("invalid externalUserId format: %q", externalUserID)
	}
	walletID := strings.TrimPrefix(externalUserID, prefix)
	if walletID == "" {
		return "", apperrors.InvalidArgument("externalUserId %q carries no wallet", externalUserID)
	}
	return walletID, nil
}

// Process applies a provider event to the wallet's verification record.
//
// The only error a caller should surface as a client error is an
// InvalidArgument for an unparseable externalUserId; in that case nothing is
// written. Unknown event types are logged and reported as processed.
func (s *WebhookService) Process(ctx context.Context, event *models.WebhookEvent) (processed bool, err error) {
	defer func() {
		metrics.WebhooksTotal.WithLabelValues(eventTypeLabel(event), strconv.FormatBool(processed)).Inc()
	}()

	if event == nil {
		return false, apperrors.InvalidArgument("empty webhook event")
	}

	walletID, err := WalletIDFromExternalUserID(s.ExternalUserPrefix, event.ExternalUserID)
	if err != nil {
		return false, err
	}

	log := logrus.WithFields(logrus.Fields{
		"wallet":       walletID,
		"type":         event.Type,
		"applicant_id": event.ApplicantID,
		"answer":       event.ReviewResult.ReviewAnswer,
	})

	status, ok := WebhookTransition(event.Type, event.ReviewResult.ReviewAnswer)
	if !ok {
		log.Warn("Ignoring unhandled webhook type")
		return true, nil
	}

	now := s.Clock.Now().UTC()
	payload := s.payloadFor(walletID, status, event.ReviewResult, now)

	if _, err := s.Statuses.SetStatus(ctx, walletID, status, payload); err != nil {
		log.Errorf("Error applying webhook: %s", err.Error())
		return false, apperrors.Internal("applying %s for %s: %v", event.Type, walletID, err)
	}

	if status == models.StatusCompleted {
		credential := s.Issuer.Issue(ctx, walletID, payload)
		log.WithField("mint", credential.Mint).Info("Issued credential for approved applicant")
	}

	log.WithField("status", status).Info("Webhook processed")
	return true, nil
}

func (s *WebhookService) payloadFor(walletID string, status models.VerificationStatus, review models.ReviewResult, now time.Time) *models.VerificationPayload {
	switch status {
	case models.StatusCompleted:
		country := review.Country
		if country == "" {
			country = placeholderCountry
		}
		return &models.VerificationPayload{
			WalletAddress:      walletID,
			ComplianceScore:    ReviewComplianceScore(review.ReviewAnswer, s.Random),
			Country:            country,
			VerifiedAt:         &now,
			ReviewAnswer:       review.ReviewAnswer,
			VerificationMethod: verificationMethodSumsub,
		}
	case models.StatusFailed:
		return &models.VerificationPayload{
			WalletAddress: walletID,
			RejectedAt:    &now,
			ReviewAnswer:  review.ReviewAnswer,
			RejectLabels:  review.RejectLabels,
			RejectType:    review.ReviewRejectType,
		}
	default:
		return nil
	}
}

func eventTypeLabel(event *models.WebhookEvent) string {
	if event == nil {
		return "none"
	}
	switch event.Type {
	case models.WebhookApplicantReviewed, models.WebhookApplicantPending, models.WebhookApplicantOnHold:
		return event.Type
	default:
		return "other"
	}
}
