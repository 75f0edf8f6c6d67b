package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/tatyana-ilieva/lev-holdings/internal/models/dto"
)

type TokenService interface {
	CreateToken(ctx context.Context, walletID string) (*dto.TokenResponse, error)
}

type TokenHandler struct {
	Service TokenService
}

func NewTokenHandler(s TokenService) *TokenHandler {
	return &TokenHandler{Service: s}
}

// POST /api/create-sumsub-token
func (h *TokenHandler) CreateToken(c *gin.Context) {
	var req dto.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: errWalletRequired})
		return
	}
	req.Sanitize()

	token, err := h.Service.CreateToken(c.Request.Context(), req.WalletAddress)
	if err != nil {
		logrus.Errorf("Error creating access token: %s", err.Error())
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, token)
}
