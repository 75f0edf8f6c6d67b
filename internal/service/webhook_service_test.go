package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tatyana-ilieva/lev-holdings/internal/apperrors"
	"github.com/tatyana-ilieva/lev-holdings/internal/clock"
	"github.com/tatyana-ilieva/lev-holdings/internal/models"
	"github.com/tatyana-ilieva/lev-holdings/internal/service"
	"github.com/tatyana-ilieva/lev-holdings/internal/service/mocks"
)

func newWebhookService(t *testing.T) (*service.WebhookService, *mocks.MockStatusWriter, *mocks.MockCredentialIssuer) {
	statuses := mocks.NewMockStatusWriter(t)
	issuer := mocks.NewMockCredentialIssuer(t)
	svc := service.NewWebhookService(statuses, issuer, clock.NewMock(start), fixedRandom{n: 10}, models.DefaultExternalUserPrefix)
	return svc, statuses, issuer
}

func reviewed(externalUserID, answer string) *models.WebhookEvent {
	return &models.WebhookEvent{
		Type:           models.WebhookApplicantReviewed,
		ExternalUserID: externalUserID,
		ReviewResult:   models.ReviewResult{ReviewAnswer: answer},
	}
}

func TestWalletIDFromExternalUserID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "prefixed", input: "lev_9xQeWvG816bUx9EPjHmaT23yvVM2ZWbrrpZb9PusVFin", want: "9xQeWvG816bUx9EPjHmaT23yvVM2ZWbrrpZb9PusVFin"},
		{name: "missing prefix", input: "9xQeWvG816bUx9EPjHmaT23yvVM2ZWbrrpZb9PusVFin", wantErr: true},
		{name: "prefix only", input: "lev_", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "prefix not at start", input: "user_lev_abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := service.WalletIDFromExternalUserID("lev_", tt.input)
			if tt.wantErr {
				assert.True(t, errors.Is(err, apperrors.ErrInvalidArgument))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProcess_ApprovedCompletesAndIssuesOnce(t *testing.T) {
	svc, statuses, issuer := newWebhookService(t)
	event := reviewed("lev_W1", models.ReviewAnswerGreen)
	event.ReviewResult.Country = "DE"

	statuses.EXPECT().SetStatus(mock.Anything, "W1", models.StatusCompleted, mock.MatchedBy(func(p *models.VerificationPayload) bool {
		return p.ComplianceScore == 960 && p.Country == "DE" && p.VerifiedAt != nil &&
			p.ReviewAnswer == models.ReviewAnswerGreen && p.VerificationMethod == "sumsub_kyc"
	})).Return(&models.VerificationRecord{WalletID: "W1", Status: models.StatusCompleted}, nil).Once()
	issuer.EXPECT().Issue(mock.Anything, "W1", mock.AnythingOfType("*models.VerificationPayload")).
		Return(&models.Credential{Mint: "mint-1"}).Once()

	processed, err := svc.Process(context.Background(), event)

	require.NoError(t, err)
	assert.True(t, processed)
}

func TestProcess_ApprovedDefaultsCountry(t *testing.T) {
	svc, statuses, issuer := newWebhookService(t)

	statuses.EXPECT().SetStatus(mock.Anything, "W1", models.StatusCompleted, mock.MatchedBy(func(p *models.VerificationPayload) bool {
		return p.Country == "US"
	})).Return(&models.VerificationRecord{}, nil).Once()
	issuer.EXPECT().Issue(mock.Anything, "W1", mock.Anything).Return(&models.Credential{}).Once()

	_, err := svc.Process(context.Background(), reviewed("lev_W1", models.ReviewAnswerGreen))

	require.NoError(t, err)
}

func TestProcess_RejectedFailsWithoutIssuance(t *testing.T) {
	svc, statuses, issuer := newWebhookService(t)
	event := reviewed("lev_W1", models.ReviewAnswerRed)
	event.ReviewResult.RejectLabels = []string{"DOCUMENT_PAGE_MISSING", "SELFIE_MISMATCH"}
	event.ReviewResult.ReviewRejectType = "RETRY"

	statuses.EXPECT().SetStatus(mock.Anything, "W1", models.StatusFailed, mock.MatchedBy(func(p *models.VerificationPayload) bool {
		return len(p.RejectLabels) == 2 && p.RejectType == "RETRY" && p.RejectedAt != nil
	})).Return(&models.VerificationRecord{}, nil).Once()

	processed, err := svc.Process(context.Background(), event)

	require.NoError(t, err)
	assert.True(t, processed)
	issuer.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything, mock.Anything)
}

func TestProcess_Transitions(t *testing.T) {
	tests := []struct {
		name   string
		event  *models.WebhookEvent
		status models.VerificationStatus
	}{
		{name: "reviewed with other answer", event: reviewed("lev_W1", "YELLOW"), status: models.StatusProcessing},
		{name: "pending", event: &models.WebhookEvent{Type: models.WebhookApplicantPending, ExternalUserID: "lev_W1"}, status: models.StatusProcessing},
		{name: "on hold", event: &models.WebhookEvent{Type: models.WebhookApplicantOnHold, ExternalUserID: "lev_W1"}, status: models.StatusOnHold},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, statuses, issuer := newWebhookService(t)
			statuses.EXPECT().SetStatus(mock.Anything, "W1", tt.status, (*models.VerificationPayload)(nil)).
				Return(&models.VerificationRecord{}, nil).Once()

			processed, err := svc.Process(context.Background(), tt.event)

			require.NoError(t, err)
			assert.True(t, processed)
			issuer.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestProcess_UnknownTypeIsNoop(t *testing.T) {
	svc, statuses, issuer := newWebhookService(t)

	processed, err := svc.Process(context.Background(), &models.WebhookEvent{Type: "applicantCreated", ExternalUserID: "lev_W1"})

	require.NoError(t, err)
	assert.True(t, processed)
	statuses.AssertNotCalled(t, "SetStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	issuer.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything, mock.Anything)
}

func TestProcess_MissingPrefixRejectedWithoutMutation(t *testing.T) {
	svc, statuses, issuer := newWebhookService(t)

	processed, err := svc.Process(context.Background(), reviewed("W1", models.ReviewAnswerGreen))

	assert.False(t, processed)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidArgument))
	statuses.AssertNotCalled(t, "SetStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	issuer.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything, mock.Anything)
}

func TestProcess_StoreFailureNotProcessed(t *testing.T) {
	svc, statuses, issuer := newWebhookService(t)
	statuses.EXPECT().SetStatus(mock.Anything, "W1", models.StatusCompleted, mock.Anything).
		Return(nil, apperrors.Internal("db down")).Once()

	processed, err := svc.Process(context.Background(), reviewed("lev_W1", models.ReviewAnswerGreen))

	assert.False(t, processed)
	assert.True(t, errors.Is(err, apperrors.ErrInternal))
	issuer.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything, mock.Anything)
}

func TestProcess_ApprovalSettlesRecordAgainstPendingTimer(t *testing.T) {
	f := newStatusFixture(t)
	issuer := mocks.NewMockCredentialIssuer(t)
	issuer.EXPECT().Issue(mock.Anything, "W1", mock.Anything).Return(&models.Credential{Mint: "m"}).Once()
	webhooks := service.NewWebhookService(f.svc, issuer, f.clock, fixedRandom{n: 5}, "lev_")
	ctx := context.Background()

	_, err := f.svc.SetStatus(ctx, "W1", models.StatusProcessing, nil)
	require.NoError(t, err)
	_, err = webhooks.Process(ctx, reviewed("lev_W1", models.ReviewAnswerGreen))
	require.NoError(t, err)

	f.clock.Add(time.Minute)
	assert.False(t, f.store.awaitCAS(t).saved)

	stored, err := f.store.Get(ctx, "W1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, stored.Status)
	assert.Equal(t, uint64(2), stored.Generation)
	assert.Equal(t, 955, stored.Payload.ComplianceScore)
	assert.Equal(t, "sumsub_kyc", stored.Payload.VerificationMethod)
}
