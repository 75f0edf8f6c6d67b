package service

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/tatyana-ilieva/lev-holdings/internal/models"
)

const (
	progressCeiling = 90

	complianceScoreFloor  = 950
	complianceScoreSpread = 50
	reviewBaseScore       = 900
	reviewApprovalBonus   = 50
	maxComplianceScore    = 1000

	placeholderCountry = "US"
)

// RandomSource supplies the randomness behind placeholder data.
type RandomSource interface {
	IntN(n int) int
	Float64() float64
}

type globalRandom struct{}

func (globalRandom) IntN(n int) int   { return rand.IntN(n) }
func (globalRandom) Float64() float64 { return rand.Float64() }

// DefaultRandom returns a RandomSource backed by the math/rand/v2 global generator.
func DefaultRandom() RandomSource {
	return globalRandom{}
}

// CompletionDue reports whether a processing record has been waiting longer
// than after and should be reported as completed.
func CompletionDue(record *models.VerificationRecord, now time.Time, after time.Duration) bool {
	if record == nil || record.Status != models.StatusProcessing {
		return false
	}
	return now.Sub(record.LastTransitionAt) > after
}

// Progress maps elapsed processing time onto 0..90.
func Progress(elapsed, completeAfter time.Duration) int {
	if elapsed <= 0 || completeAfter <= 0 {
		return 0
	}
	p := int(float64(elapsed) / float64(completeAfter) * progressCeiling)
	return min(progressCeiling, p)
}

func EstimatedSecondsRemaining(elapsed, autoCompleteAfter time.Duration) int {
	if elapsed < 0 {
		elapsed = 0
	}
	remaining := int(autoCompleteAfter/time.Second) - int(elapsed/time.Second)
	return max(0, remaining)
}

// PlaceholderPayload builds the demo result that stands in for a real
// provider review. The compliance score is in [950, 1000).
func PlaceholderPayload(walletID string, now time.Time, rnd RandomSource) *models.VerificationPayload {
	verifiedAt := now.UTC()
	return &models.VerificationPayload{
		WalletAddress:   walletID,
		Documents:       []string{"government_id", "selfie_with_liveness"},
		ComplianceScore: complianceScoreFloor + rnd.IntN(complianceScoreSpread),
		Country:         placeholderCountry,
		AgeVerified:     true,
		AMLStatus:       "clear",
		RiskLevel:       "low",
		VerifiedAt:      &verifiedAt,
	}
}

// ReviewComplianceScore scores a provider review: approvals land in [950, 1000).
func ReviewComplianceScore(reviewAnswer string, rnd RandomSource) int {
	score := reviewBaseScore
	if reviewAnswer == models.ReviewAnswerGreen {
		score += reviewApprovalBonus
	}
	score += rnd.IntN(complianceScoreSpread)
	return min(maxComplianceScore, score)
}

// WebhookTransition returns the status a provider event drives the record to.
// ok is false for event types that cause no transition.
func WebhookTransition(eventType, reviewAnswer string) (status models.VerificationStatus, ok bool) {
	switch eventType {
	case models.WebhookApplicantReviewed:
		switch reviewAnswer {
		case models.ReviewAnswerGreen:
			return models.StatusCompleted, true
		case models.ReviewAnswerRed:
			return models.StatusFailed, true
		default:
			return models.StatusProcessing, true
		}
	case models.WebhookApplicantPending:
		return models.StatusProcessing, true
	case models.WebhookApplicantOnHold:
		return models.StatusOnHold, true
	default:
		return "", false
	}
}

// sleepContext blocks for d or until ctx is done.
func sleepContext(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}
