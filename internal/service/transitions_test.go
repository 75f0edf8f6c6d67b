package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tatyana-ilieva/lev-holdings/internal/models"
	"github.com/tatyana-ilieva/lev-holdings/internal/service"
)

func TestProgress(t *testing.T) {
	tests := []struct {
		elapsed time.Duration
		want    int
	}{
		{elapsed: -time.Second, want: 0},
		{elapsed: 0, want: 0},
		{elapsed: 5 * time.Second, want: 45},
		{elapsed: 10 * time.Second, want: 90},
		{elapsed: time.Minute, want: 90},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, service.Progress(tt.elapsed, 10*time.Second), "elapsed %v", tt.elapsed)
	}
}

func TestEstimatedSecondsRemaining(t *testing.T) {
	assert.Equal(t, 15, service.EstimatedSecondsRemaining(0, 15*time.Second))
	assert.Equal(t, 12, service.EstimatedSecondsRemaining(3500*time.Millisecond, 15*time.Second))
	assert.Equal(t, 11, service.EstimatedSecondsRemaining(4*time.Second, 15*time.Second))
	assert.Equal(t, 0, service.EstimatedSecondsRemaining(20*time.Second, 15*time.Second))
}

func TestCompletionDue(t *testing.T) {
	record := &models.VerificationRecord{Status: models.StatusProcessing, LastTransitionAt: start}

	assert.False(t, service.CompletionDue(nil, start, 10*time.Second))
	assert.False(t, service.CompletionDue(record, start.Add(10*time.Second), 10*time.Second))
	assert.True(t, service.CompletionDue(record, start.Add(10*time.Second+time.Nanosecond), 10*time.Second))

	record.Status = models.StatusOnHold
	assert.False(t, service.CompletionDue(record, start.Add(time.Hour), 10*time.Second))
}

func TestReviewComplianceScore(t *testing.T) {
	assert.Equal(t, 999, service.ReviewComplianceScore(models.ReviewAnswerGreen, fixedRandom{n: 49}))
	assert.Equal(t, 950, service.ReviewComplianceScore(models.ReviewAnswerGreen, fixedRandom{n: 0}))
	assert.Equal(t, 920, service.ReviewComplianceScore("YELLOW", fixedRandom{n: 20}))
}

func TestWebhookTransition(t *testing.T) {
	tests := []struct {
		eventType string
		answer    string
		want      models.VerificationStatus
		ok        bool
	}{
		{models.WebhookApplicantReviewed, models.ReviewAnswerGreen, models.StatusCompleted, true},
		{models.WebhookApplicantReviewed, models.ReviewAnswerRed, models.StatusFailed, true},
		{models.WebhookApplicantReviewed, "", models.StatusProcessing, true},
		{models.WebhookApplicantPending, "", models.StatusProcessing, true},
		{models.WebhookApplicantOnHold, "", models.StatusOnHold, true},
		{"applicantCreated", models.ReviewAnswerGreen, "", false},
	}
	for _, tt := range tests {
		got, ok := service.WebhookTransition(tt.eventType, tt.answer)
		assert.Equal(t, tt.ok, ok, tt.eventType)
		assert.Equal(t, tt.want, got, tt.eventType)
	}
}
