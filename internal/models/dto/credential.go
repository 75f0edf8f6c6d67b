package dto

import (
	"strings"
	"time"

	"github.com/tatyana-ilieva/lev-holdings/internal/models"
)

type MintCredentialRequest struct {
	WalletAddress    string                      `json:"walletAddress" binding:"required"`
	VerificationData *models.VerificationPayload `json:"verificationData"`
}

func (r *MintCredentialRequest) Sanitize() {
	r.WalletAddress = strings.TrimSpace(r.WalletAddress)
}

// CredentialLookup is either a verified-credential envelope or a not-found one.
type CredentialLookup struct {
	Verified          bool                  `json:"verified"`
	WalletAddress     string                `json:"walletAddress"`
	CredentialID      string                `json:"credentialId,omitempty"`
	IssuedAt          *time.Time            `json:"issuedAt,omitempty"`
	ComplianceScore   int                   `json:"complianceScore,omitempty"`
	Status            string                `json:"status,omitempty"`
	Issuer            string                `json:"issuer,omitempty"`
	VerificationLevel string                `json:"verificationLevel,omitempty"`
	Attributes        *CredentialAttributes `json:"attributes,omitempty"`
	Message           string                `json:"message,omitempty"`
	Suggestion        string                `json:"suggestion,omitempty"`
}

type CredentialAttributes struct {
	Country            string `json:"country"`
	AgeVerified        bool   `json:"ageVerified"`
	DocumentType       string `json:"documentType"`
	LivenessCheck      bool   `json:"livenessCheck"`
	AMLScreening       bool   `json:"amlScreening"`
	VerificationMethod string `json:"verificationMethod"`
}

type TokenRequest struct {
	WalletAddress string `json:"walletAddress" binding:"required"`
}

func (r *TokenRequest) Sanitize() {
	r.WalletAddress = strings.TrimSpace(r.WalletAddress)
}

type TokenResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
	UserID  string `json:"userId"`
	Demo    bool   `json:"demo,omitempty"`
	Error   string `json:"error,omitempty"`
	Details string `json:"details,omitempty"`
}
