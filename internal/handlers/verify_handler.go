package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tatyana-ilieva/lev-holdings/internal/models/dto"
)

const (
	codeMissingWallet = "MISSING_WALLET"
	codeInvalidWallet = "INVALID_WALLET"
	codeInvalidAction = "INVALID_ACTION"
)

type VerifyService interface {
	Health() *dto.HealthResponse
	Verify(ctx context.Context, walletAddress string) *dto.VerifyResponse
	Check(ctx context.Context, walletAddress string) *dto.CheckResponse
}

type VerifyHandler struct {
	Service     VerifyService
	ValidWallet func(address string) bool
}

func NewVerifyHandler(s VerifyService, validWallet func(address string) bool) *VerifyHandler {
	return &VerifyHandler{Service: s, ValidWallet: validWallet}
}

// GET /api/verify
func (h *VerifyHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, h.Service.Health())
}

// POST /api/verify
func (h *VerifyHandler) Verify(c *gin.Context) {
	var req dto.VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
		return
	}
	req.Sanitize()

	if req.WalletAddress == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Wallet address is required", Code: codeMissingWallet})
		return
	}
	if !h.ValidWallet(req.WalletAddress) {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid wallet address format", Code: codeInvalidWallet})
		return
	}

	ctx := c.Request.Context()
	switch req.Action {
	case dto.ActionVerify:
		c.JSON(http.StatusOK, h.Service.Verify(ctx, req.WalletAddress))
	case dto.ActionCheck:
		c.JSON(http.StatusOK, h.Service.Check(ctx, req.WalletAddress))
	default:
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: `Invalid action. Use "verify" or "check"`, Code: codeInvalidAction})
	}
}
