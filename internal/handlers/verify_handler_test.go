package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/tatyana-ilieva/lev-holdings/internal/handlers"
	"github.com/tatyana-ilieva/lev-holdings/internal/handlers/mocks"
	"github.com/tatyana-ilieva/lev-holdings/internal/models/dto"
)

const validWallet = "9WzDXwBbmkg8ZTbNMqUxvQRAyrZzDsGYdLVL9zYtAWWM"

func verifyRouter(svc handlers.VerifyService) *gin.Engine {
	h := handlers.NewVerifyHandler(svc, func(address string) bool { return address == validWallet })
	r := gin.New()
	r.GET("/api/verify", h.Health)
	r.POST("/api/verify", h.Verify)
	return r
}

func TestVerifyHealth(t *testing.T) {
	svc := mocks.NewMockVerifyService(t)
	svc.EXPECT().Health().Return(&dto.HealthResponse{Status: "healthy", Service: "LEV Holdings Verification API", Version: "1.0.0", Timestamp: time.Now()}).Once()

	w := perform(t, verifyRouter(svc), http.MethodGet, "/api/verify", nil)

	assertStatus(t, http.StatusOK, w)
	assert.Equal(t, "healthy", decode(t, w)["status"])
}

func TestVerify_Actions(t *testing.T) {
	t.Run("verify", func(t *testing.T) {
		svc := mocks.NewMockVerifyService(t)
		svc.EXPECT().Verify(mock.Anything, validWallet).Return(&dto.VerifyResponse{Success: true, Verified: true, Message: "Identity verification completed successfully"}).Once()

		w := perform(t, verifyRouter(svc), http.MethodPost, "/api/verify", map[string]string{"walletAddress": validWallet, "action": "verify"})

		assertStatus(t, http.StatusOK, w)
		assert.Equal(t, true, decode(t, w)["verified"])
	})

	t.Run("check", func(t *testing.T) {
		svc := mocks.NewMockVerifyService(t)
		svc.EXPECT().Check(mock.Anything, validWallet).Return(&dto.CheckResponse{Success: true, WalletAddress: validWallet}).Once()

		w := perform(t, verifyRouter(svc), http.MethodPost, "/api/verify", map[string]string{"walletAddress": validWallet, "action": "CHECK"})

		assertStatus(t, http.StatusOK, w)
		body := decode(t, w)
		assert.Equal(t, false, body["hasCredential"])
		assert.Nil(t, body["credentialType"])
	})
}

func TestVerify_Rejections(t *testing.T) {
	tests := []struct {
		name string
		body map[string]string
		code string
	}{
		{name: "missing wallet", body: map[string]string{"action": "verify"}, code: "MISSING_WALLET"},
		{name: "invalid wallet", body: map[string]string{"walletAddress": "not-a-key", "action": "verify"}, code: "INVALID_WALLET"},
		{name: "invalid action", body: map[string]string{"walletAddress": validWallet, "action": "delete"}, code: "INVALID_ACTION"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockVerifyService(t)

			w := perform(t, verifyRouter(svc), http.MethodPost, "/api/verify", tt.body)

			assertStatus(t, http.StatusBadRequest, w)
			assert.Equal(t, tt.code, decode(t, w)["code"])
		})
	}
}
