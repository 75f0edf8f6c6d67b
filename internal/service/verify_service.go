package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/tatyana-ilieva/lev-holdings/internal/clock"
	"github.com/tatyana-ilieva/lev-holdings/internal/models"
	"github.com/tatyana-ilieva/lev-holdings/internal/models/dto"
)

const (
	serviceName    = "LEV Holdings Verification API"
	serviceVersion = "1.0.0"

	verifiedThreshold      = 0.2
	hasCredentialThreshold = 0.3

	credentialTypeDigitalIdentity = "Digital Identity"
)

// VerifyService backs the partner-facing demo API. Its answers are random
// stand-ins for an on-chain credential query.
type VerifyService struct {
	Clock       clock.Clock
	Random      RandomSource
	VerifyDelay time.Duration
	CheckDelay  time.Duration
}

func NewVerifyService(clk clock.Clock, rnd RandomSource, verifyDelay, checkDelay time.Duration) *VerifyService {
	return &VerifyService{
		Clock:       clk,
		Random:      rnd,
		VerifyDelay: verifyDelay,
		CheckDelay:  checkDelay,
	}
}

func (s *VerifyService) Health() *dto.HealthResponse {
	return &dto.HealthResponse{
		Status:    "active",
		Service:   serviceName,
		Version:   serviceVersion,
		Timestamp: s.Clock.Now().UTC(),
	}
}

// ValidWallet reports whether address is a base58 Solana public key.
func ValidWallet(address string) bool {
	_, err := solana.PublicKeyFromBase58(address)
	return err == nil
}

// Verify reports a mock credential for about 80% of calls.
func (s *VerifyService) Verify(ctx context.Context, walletAddress string) *dto.VerifyResponse {
	sleepContext(ctx, s.VerifyDelay)
	now := s.Clock.Now().UTC()

	if s.Random.Float64() <= verifiedThreshold {
		return &dto.VerifyResponse{
			Success:   true,
			Verified:  false,
			Message:   "No valid credential found for this wallet",
			Timestamp: now,
		}
	}

	return &dto.VerifyResponse{
		Success:  true,
		Verified: true,
		Credential: &dto.MockCredential{
			WalletAddress:     walletAddress,
			CredentialID:      fmt.Sprintf("LEV_%d", now.UnixMilli()),
			Issuer:            models.CredentialIssuer,
			IssuedAt:          now,
			Status:            "VERIFIED",
			CredentialType:    credentialTypeDigitalIdentity,
			VerificationLevel: "KYC_COMPLETE",
			Attributes: dto.MockCredentialAttributes{
				HasKYC:           true,
				VerificationTier: "STANDARD",
				LastVerified:     now,
			},
		},
		Message:   "Credential verified successfully",
		Timestamp: now,
	}
}

// Check reports credential presence for about 70% of calls.
func (s *VerifyService) Check(ctx context.Context, walletAddress string) *dto.CheckResponse {
	sleepContext(ctx, s.CheckDelay)

	response := &dto.CheckResponse{
		Success:       true,
		WalletAddress: walletAddress,
		LastChecked:   s.Clock.Now().UTC(),
	}
	if s.Random.Float64() > hasCredentialThreshold {
		credentialType := credentialTypeDigitalIdentity
		response.HasCredential = true
		response.CredentialType = &credentialType
	}
	return response
}
