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

func credentialRouter(svc handlers.CredentialService) *gin.Engine {
	h := handlers.NewCredentialHandler(svc)
	r := gin.New()
	r.POST("/api/mint-credential-nft", h.Mint)
	r.GET("/api/verify-credential", h.Lookup)
	return r
}

func TestMint(t *testing.T) {
	svc := mocks.NewMockCredentialService(t)
	svc.EXPECT().Issue(mock.Anything, "W1", mock.MatchedBy(func(p *models.VerificationPayload) bool {
		return p != nil && p.ComplianceScore == 97
	})).Return(&models.Credential{Success: true, Mint: "MintAddr", ComplianceScore: 97, Real: true}).Once()

	w := perform(t, credentialRouter(svc), http.MethodPost, "/api/mint-credential-nft", map[string]interface{}{
		"walletAddress":    "W1",
		"verificationData": map[string]interface{}{"complianceScore": 97},
	})

	assertStatus(t, http.StatusOK, w)
	body := decode(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "MintAddr", body["mint"])
}

func TestMint_MissingWallet(t *testing.T) {
	svc := mocks.NewMockCredentialService(t)

	w := perform(t, credentialRouter(svc), http.MethodPost, "/api/mint-credential-nft", map[string]string{"walletAddress": "  "})

	assertStatus(t, http.StatusBadRequest, w)
	assert.Equal(t, "Wallet address required", decode(t, w)["error"])
	svc.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything, mock.Anything)
}

func TestLookup(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		svc := mocks.NewMockCredentialService(t)
		svc.EXPECT().Lookup(mock.Anything, "W1").Return(&dto.CredentialLookup{
			Verified:      false,
			WalletAddress: "W1",
			Message:       "No credential found for this wallet",
		}, false, nil).Once()

		w := perform(t, credentialRouter(svc), http.MethodGet, "/api/verify-credential?wallet=W1", nil)

		assertStatus(t, http.StatusNotFound, w)
		body := decode(t, w)
		assert.Equal(t, false, body["verified"])
		assert.Equal(t, "W1", body["walletAddress"])
	})

	t.Run("found", func(t *testing.T) {
		svc := mocks.NewMockCredentialService(t)
		svc.EXPECT().Lookup(mock.Anything, "W1").Return(&dto.CredentialLookup{
			Verified:      true,
			WalletAddress: "W1",
			CredentialID:  "MintAddr",
			Status:        "active",
		}, true, nil).Once()

		w := perform(t, credentialRouter(svc), http.MethodGet, "/api/verify-credential?wallet=W1", nil)

		assertStatus(t, http.StatusOK, w)
		assert.Equal(t, "MintAddr", decode(t, w)["credentialId"])
	})

	t.Run("registry failure", func(t *testing.T) {
		svc := mocks.NewMockCredentialService(t)
		svc.EXPECT().Lookup(mock.Anything, "W1").Return(nil, false, apperrors.Internal("registry down")).Once()

		w := perform(t, credentialRouter(svc), http.MethodGet, "/api/verify-credential?wallet=W1", nil)

		assertStatus(t, http.StatusInternalServerError, w)
	})

	t.Run("missing wallet", func(t *testing.T) {
		svc := mocks.NewMockCredentialService(t)

		w := perform(t, credentialRouter(svc), http.MethodGet, "/api/verify-credential", nil)

		assertStatus(t, http.StatusBadRequest, w)
	})
}
