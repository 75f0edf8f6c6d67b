package handlers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/tatyana-ilieva/lev-holdings/internal/apperrors"
	"github.com/tatyana-ilieva/lev-holdings/internal/handlers"
	"github.com/tatyana-ilieva/lev-holdings/internal/handlers/mocks"
	"github.com/tatyana-ilieva/lev-holdings/internal/models"
	"github.com/tatyana-ilieva/lev-holdings/internal/models/dto"
)

func statusRouter(svc handlers.StatusService) *gin.Engine {
	h := handlers.NewStatusHandler(svc)
	r := gin.New()
	r.GET("/api/check-verification-status", h.GetStatus)
	r.POST("/api/check-verification-status", h.SetStatus)
	return r
}

func TestGetStatus_MissingWallet(t *testing.T) {
	svc := mocks.NewMockStatusService(t)

	w := perform(t, statusRouter(svc), http.MethodGet, "/api/check-verification-status", nil)

	assertStatus(t, http.StatusBadRequest, w)
	assert.Equal(t, "Wallet address required", decode(t, w)["error"])
	svc.AssertNotCalled(t, "GetStatus", mock.Anything, mock.Anything)
}

func TestGetStatus_Processing(t *testing.T) {
	svc := mocks.NewMockStatusService(t)
	progress, remaining := 45, 10
	svc.EXPECT().GetStatus(mock.Anything, "W1").Return(&dto.StatusView{
		Status:                 models.StatusProcessing,
		Message:                "Document verification in progress",
		Progress:               &progress,
		EstimatedTimeRemaining: &remaining,
	}, nil).Once()

	w := perform(t, statusRouter(svc), http.MethodGet, "/api/check-verification-status?wallet=W1", nil)

	assertStatus(t, http.StatusOK, w)
	body := decode(t, w)
	assert.Equal(t, "processing", body["status"])
	assert.Equal(t, float64(45), body["progress"])
	assert.Equal(t, float64(10), body["estimatedTimeRemaining"])
	assert.NotContains(t, body, "verificationData")
}

func TestGetStatus_InternalErrorIsHidden(t *testing.T) {
	svc := mocks.NewMockStatusService(t)
	svc.EXPECT().GetStatus(mock.Anything, "W1").Return(nil, apperrors.Internal("pq: connection refused")).Once()

	w := perform(t, statusRouter(svc), http.MethodGet, "/api/check-verification-status?wallet=W1", nil)

	assertStatus(t, http.StatusInternalServerError, w)
	assert.Equal(t, "internal server error", decode(t, w)["error"])
}

func TestSetStatus(t *testing.T) {
	svc := mocks.NewMockStatusService(t)
	svc.EXPECT().SetStatus(mock.Anything, "W1", models.StatusProcessing, (*models.VerificationPayload)(nil)).
		Return(&models.VerificationRecord{}, nil).Once()

	w := perform(t, statusRouter(svc), http.MethodPost, "/api/check-verification-status", map[string]string{"wallet": " W1 ", "status": "Processing"})

	assertStatus(t, http.StatusOK, w)
	body := decode(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Status updated to processing", body["message"])
}

func TestSetStatus_MissingFields(t *testing.T) {
	svc := mocks.NewMockStatusService(t)

	w := perform(t, statusRouter(svc), http.MethodPost, "/api/check-verification-status", map[string]string{"wallet": "W1"})

	assertStatus(t, http.StatusBadRequest, w)
	svc.AssertNotCalled(t, "SetStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSetStatus_InvalidStatus(t *testing.T) {
	svc := mocks.NewMockStatusService(t)
	svc.EXPECT().SetStatus(mock.Anything, "W1", models.VerificationStatus("approved"), mock.Anything).
		Return(nil, apperrors.InvalidArgument(`unknown status "approved"`)).Once()

	w := perform(t, statusRouter(svc), http.MethodPost, "/api/check-verification-status", map[string]string{"wallet": "W1", "status": "approved"})

	assertStatus(t, http.StatusBadRequest, w)
	assert.Contains(t, decode(t, w)["error"], "unknown status")
}

