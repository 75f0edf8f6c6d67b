package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/tatyana-ilieva/lev-holdings/internal/models"
	"github.com/tatyana-ilieva/lev-holdings/internal/models/dto"
)

type StatusService interface {
	GetStatus(ctx context.Context, walletID string) (*dto.StatusView, error)
	SetStatus(ctx context.Context, walletID string, status models.VerificationStatus, payload *models.VerificationPayload) (*models.VerificationRecord, error)
}

type StatusHandler struct {
	Service StatusService
}

func NewStatusHandler(s StatusService) *StatusHandler {
	return &StatusHandler{Service: s}
}

// GET /api/check-verification-status?wallet=
func (h *StatusHandler) GetStatus(c *gin.Context) {
	wallet := c.Query("wallet")
	if wallet == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: errWalletRequired})
		return
	}

	view, err := h.Service.GetStatus(c.Request.Context(), wallet)
	if err != nil {
		logrus.Errorf("Error checking verification status: %s", err.Error())
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// POST /api/check-verification-status
func (h *StatusHandler) SetStatus(c *gin.Context) {
	var req dto.SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Wallet and status required"})
		return
	}
	req.Sanitize()

	if _, err := h.Service.SetStatus(c.Request.Context(), req.Wallet, models.VerificationStatus(req.Status), nil); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SetStatusResponse{
		Success: true,
		Message: fmt.Sprintf("Status updated to %s", req.Status),
	})
}
