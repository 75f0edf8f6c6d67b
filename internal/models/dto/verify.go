package dto

import (
	"strings"
	"time"
)

const (
	ActionVerify = "verify"
	ActionCheck  = "check"
)

type VerifyRequest struct {
	WalletAddress string `json:"walletAddress"`
	Action        string `json:"action"`
}

func (r *VerifyRequest) Sanitize() {
	r.WalletAddress = strings.TrimSpace(r.WalletAddress)
	r.Action = strings.ToLower(strings.TrimSpace(r.Action))
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
	Timestamp time.Time `json:"timestamp"`
}

type VerifyResponse struct {
	Success    bool            `json:"success"`
	Verified   bool            `json:"verified"`
	Credential *MockCredential `json:"credential,omitempty"`
	Message    string          `json:"message"`
	Timestamp  time.Time       `json:"timestamp"`
}

type MockCredential struct {
	WalletAddress     string                   `json:"walletAddress"`
	CredentialID      string                   `json:"credentialId"`
	Issuer            string                   `json:"issuer"`
	IssuedAt          time.Time                `json:"issuedAt"`
	Status            string                   `json:"status"`
	CredentialType    string                   `json:"credentialType"`
	VerificationLevel string                   `json:"verificationLevel"`
	Attributes        MockCredentialAttributes `json:"attributes"`
}

type MockCredentialAttributes struct {
	HasKYC           bool      `json:"hasKYC"`
	VerificationTier string    `json:"verificationTier"`
	LastVerified     time.Time `json:"lastVerified"`
}

type CheckResponse struct {
	Success        bool      `json:"success"`
	WalletAddress  string    `json:"walletAddress"`
	HasCredential  bool      `json:"hasCredential"`
	CredentialType *string   `json:"credentialType"`
	LastChecked    time.Time `json:"lastChecked"`
}
