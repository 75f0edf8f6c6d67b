package dto

import (
	"strings"
	"time"

	"github.com/tatyana-ilieva/lev-holdings/internal/models"
)

// StatusView is what a status poll returns; which fields are set depends on Status.
type StatusView struct {
	Status                 models.VerificationStatus   `json:"status"`
	Wallet                 string                      `json:"wallet,omitempty"`
	LastChecked            *time.Time                  `json:"lastChecked,omitempty"`
	Message                string                      `json:"message,omitempty"`
	EstimatedTimeRemaining *int                        `json:"estimatedTimeRemaining,omitempty"`
	Progress               *int                        `json:"progress,omitempty"`
	VerificationData       *models.VerificationPayload `json:"verificationData,omitempty"`
	CompletedAt            *time.Time                  `json:"completedAt,omitempty"`
}

type SetStatusRequest struct {
	Wallet string `json:"wallet" binding:"required"`
	Status string `json:"status" binding:"required"`
}

func (r *SetStatusRequest) Sanitize() {
	r.Wallet = strings.TrimSpace(r.Wallet)
	r.Status = strings.ToLower(strings.TrimSpace(r.Status))
}

type SetStatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type ReconcileResponse struct {
	Wallet   string                    `json:"wallet"`
	Provider models.VerificationStatus `json:"providerStatus"`
	Stored   models.VerificationStatus `json:"storedStatus"`
	Applied  bool                      `json:"applied"`
}

type WebhookAck struct {
	Received  bool      `json:"received"`
	Processed bool      `json:"processed"`
	Timestamp time.Time `json:"timestamp"`
	Error     string    `json:"error,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

type ReconcileRequest struct {
	WalletAddress string `json:"walletAddress" binding:"required"`
}

func (r *ReconcileRequest) Sanitize() {
	r.WalletAddress = strings.TrimSpace(r.WalletAddress)
}
