package service

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/tatyana-ilieva/lev-holdings/internal/apperrors"
	"github.com/tatyana-ilieva/lev-holdings/internal/models/dto"
	"github.com/tatyana-ilieva/lev-holdings/internal/provider"
)

const demoFallbackError = "Real Sumsub failed - using demo token"

// TokenService hands out verification widget tokens. When the primary
// provider fails, the fallback provider's token is returned flagged as demo.
type TokenService struct {
	Primary  provider.Provider
	Fallback provider.Provider
}

func NewTokenService(primary, fallback provider.Provider) *TokenService {
	return &TokenService{
		Primary:  primary,
		Fallback: fallback,
	}
}

func (s *TokenService) CreateToken(ctx context.Context, walletID string) (*dto.TokenResponse, error) {
	walletID = strings.TrimSpace(walletID)
	if walletID == "" {
		return nil, apperrors.InvalidArgument("wallet address required")
	}

	token, err := s.Primary.Submit(ctx, walletID)
	if err == nil {
		return &dto.TokenResponse{Success: true, Token: token.Token, UserID: token.UserID, Demo: token.Demo}, nil
	}
	if s.Fallback == nil {
		return nil, err
	}

	logrus.WithField("wallet", walletID).Warnf("Provider token failed, using demo token: %s", err.Error())
	demo, fallbackErr := s.Fallback.Submit(ctx, walletID)
	if fallbackErr != nil {
		return nil, apperrors.Internal("fallback token for %s: %v", walletID, fallbackErr)
	}
	return &dto.TokenResponse{
		Success: true,
		Token:   demo.Token,
		UserID:  demo.UserID,
		Demo:    true,
		Error:   demoFallbackError,
		Details: err.Error(),
	}, nil
}
