package service

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/tatyana-ilieva/lev-holdings/internal/apperrors"
	"github.com/tatyana-ilieva/lev-holdings/internal/models"
	"github.com/tatyana-ilieva/lev-holdings/internal/models/dto"
)

// StatusPoller asks the verification provider for an applicant's status.
type StatusPoller interface {
	PollStatus(ctx context.Context, walletID string) (models.VerificationStatus, error)
}

// StatusReader reads the stored record without any time-driven side effects.
type StatusReader interface {
	Get(ctx context.Context, walletID string) (*models.VerificationRecord, error)
}

// ReconcileService pulls the provider's view of an applicant and applies it
// locally. It recovers wallets whose webhook was lost.
type ReconcileService struct {
	Store    StatusReader
	Statuses StatusWriter
	Provider StatusPoller
}

func NewReconcileService(store StatusReader, statuses StatusWriter, poller StatusPoller) *ReconcileService {
	return &ReconcileService{
		Store:    store,
		Statuses: statuses,
		Provider: poller,
	}
}

func (s *ReconcileService) Reconcile(ctx context.Context, walletID string) (*dto.ReconcileResponse, error) {
	walletID = strings.TrimSpace(walletID)
	if walletID == "" {
		return nil, apperrors.InvalidArgument("wallet address required")
	}

	record, err := s.Store.Get(ctx, walletID)
	if err != nil {
		return nil, apperrors.Internal("reading status for %s: %v", walletID, err)
	}
	stored := models.StatusNone
	if record != nil {
		stored = record.Status
	}

	remote, err := s.Provider.PollStatus(ctx, walletID)
	if err != nil {
		return nil, err
	}

	response := &dto.ReconcileResponse{Wallet: walletID, Provider: remote, Stored: stored}
	if remote == stored || remote == models.StatusNone {
		return response, nil
	}

	if _, err := s.Statuses.SetStatus(ctx, walletID, remote, nil); err != nil {
		return nil, err
	}
	response.Applied = true

	logrus.WithFields(logrus.Fields{
		"wallet":   walletID,
		"stored":   stored,
		"provider": remote,
	}).Info("Reconciled verification status")
	return response, nil
}
