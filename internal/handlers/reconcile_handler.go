package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/tatyana-ilieva/lev-holdings/internal/models/dto"
)

type ReconcileService interface {
	Reconcile(ctx context.Context, walletID string) (*dto.ReconcileResponse, error)
}

type ReconcileHandler struct {
	Service ReconcileService
}

func NewReconcileHandler(s ReconcileService) *ReconcileHandler {
	return &ReconcileHandler{Service: s}
}

// POST /api/verification/reconcile
func (h *ReconcileHandler) Reconcile(c *gin.Context) {
	var req dto.ReconcileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: errWalletRequired})
		return
	}
	req.Sanitize()

	result, err := h.Service.Reconcile(c.Request.Context(), req.WalletAddress)
	if err != nil {
		logrus.Errorf("Error reconciling verification: %s", err.Error())
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
