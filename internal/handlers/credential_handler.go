package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/tatyana-ilieva/lev-holdings/internal/models"
	"github.com/tatyana-ilieva/lev-holdings/internal/models/dto"
)

type CredentialService interface {
	Issue(ctx context.Context, walletID string, payload *models.VerificationPayload) *models.Credential
	Lookup(ctx context.Context, walletID string) (*dto.CredentialLookup, bool, error)
}

type CredentialHandler struct {
	Service CredentialService
}

func NewCredentialHandler(s CredentialService) *CredentialHandler {
	return &CredentialHandler{Service: s}
}

// POST /api/mint-credential-nft
func (h *CredentialHandler) Mint(c *gin.Context) {
	var req dto.MintCredentialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: errWalletRequired})
		return
	}
	req.Sanitize()
	if req.WalletAddress == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: errWalletRequired})
		return
	}

	c.JSON(http.StatusOK, h.Service.Issue(c.Request.Context(), req.WalletAddress, req.VerificationData))
}

// GET /api/verify-credential?wallet=
func (h *CredentialHandler) Lookup(c *gin.Context) {
	wallet := c.Query("wallet")
	if wallet == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: errWalletRequired})
		return
	}

	lookup, found, err := h.Service.Lookup(c.Request.Context(), wallet)
	if err != nil {
		logrus.Errorf("Error verifying credential: %s", err.Error())
		respondError(c, err)
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, lookup)
		return
	}
	c.JSON(http.StatusOK, lookup)
}
