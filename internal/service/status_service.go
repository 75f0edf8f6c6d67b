package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/tatyana-ilieva/lev-holdings/internal/apperrors"
	"github.com/tatyana-ilieva/lev-holdings/internal/clock"
	"github.com/tatyana-ilieva/lev-holdings/internal/metrics"
	"github.com/tatyana-ilieva/lev-holdings/internal/models"
	"github.com/tatyana-ilieva/lev-holdings/internal/models/dto"
)

const autoCompleteTimeout = 5 * time.Second

// StatusStore defines persistence for verification records.
// Save assigns the record its next generation. SaveIfGeneration writes only
// when the stored generation still equals the given one and reports whether
// it did.
type StatusStore interface {
	Get(ctx context.Context, walletID string) (*models.VerificationRecord, error)
	Save(ctx context.Context, record *models.VerificationRecord) error
	SaveIfGeneration(ctx context.Context, record *models.VerificationRecord, generation uint64) (bool, error)
}

// Publisher defines the interface for publishing events to Kafka topics.
type Publisher interface {
	Publish(ctx context.Context, topic string, message interface{}) error
}

// PendingLister finds records by status.
type PendingLister interface {
	ListByStatus(ctx context.Context, status models.VerificationStatus) ([]models.VerificationRecord, error)
}

type Timing struct {
	// ViewCompleteAfter is how long a poll waits before reporting a processing record as completed.
	ViewCompleteAfter time.Duration
	// AutoCompleteAfter is the delay of the background completion scheduled on entering processing.
	AutoCompleteAfter time.Duration
}

// StatusService owns the verification state machine: status reads with
// time-driven completion and status writes with deferred auto-completion.
type StatusService struct {
	Store     StatusStore
	Publisher Publisher
	Clock     clock.Clock
	Random    RandomSource
	Timing    Timing
}

func NewStatusService(store StatusStore, publisher Publisher, clk clock.Clock, rnd RandomSource, timing Timing) *StatusService {
	return &StatusService{
		Store:     store,
		Publisher: publisher,
		Clock:     clk,
		Random:    rnd,
		Timing:    timing,
	}
}

// GetStatus reports the current verification status of a wallet.
//
// A wallet with no record is reported as none. A processing record older than
// ViewCompleteAfter is completed on the spot with a placeholder payload; the
// write is conditional on the record's generation so a concurrent webhook
// result is never overwritten.
func (s *StatusService) GetStatus(ctx context.Context, walletID string) (*dto.StatusView, error) {
	walletID = strings.TrimSpace(walletID)
	if walletID == "" {
		return nil, apperrors.InvalidArgument("wallet address required")
	}

	record, err := s.load(ctx, walletID)
	if err != nil {
		return nil, err
	}

	now := s.Clock.Now()
	if CompletionDue(record, now, s.Timing.ViewCompleteAfter) {
		completed := s.completedRecord(walletID, now)
		saved, err := s.Store.SaveIfGeneration(ctx, completed, record.Generation)
		if err != nil {
			return nil, apperrors.Internal("completing verification for %s: %v", walletID, err)
		}
		if saved {
			s.afterWrite(ctx, completed, "poll")
			logrus.WithField("wallet", walletID).Info("Verification completed on poll")
			metrics.StatusChecksTotal.WithLabelValues(string(models.StatusCompleted)).Inc()
			return &dto.StatusView{
				Status:           models.StatusCompleted,
				VerificationData: completed.Payload,
				CompletedAt:      &now,
			}, nil
		}

		// Lost the race against another writer; report what it wrote.
		record, err = s.load(ctx, walletID)
		if err != nil {
			return nil, err
		}
	}

	view := s.view(walletID, record, now)
	metrics.StatusChecksTotal.WithLabelValues(string(view.Status)).Inc()
	return view, nil
}

// SetStatus overwrites the wallet's record and stamps its transition time.
// Entering processing schedules a completion after AutoCompleteAfter that
// only applies if nothing else has written the record in between.
func (s *StatusService) SetStatus(ctx context.Context, walletID string, status models.VerificationStatus, payload *models.VerificationPayload) (*models.VerificationRecord, error) {
	walletID = strings.TrimSpace(walletID)
	if walletID == "" {
		return nil, apperrors.InvalidArgument("wallet address required")
	}
	if !status.IsValid() {
		return nil, apperrors.InvalidArgument("unknown status %q", status)
	}

	record := &models.VerificationRecord{
		WalletID:         walletID,
		Status:           status,
		Payload:          payload,
		LastTransitionAt: s.Clock.Now(),
	}
	if err := s.Store.Save(ctx, record); err != nil {
		return nil, apperrors.Internal("saving status for %s: %v", walletID, err)
	}

	s.afterWrite(ctx, record, "set")
	logrus.WithFields(logrus.Fields{
		"wallet":     walletID,
		"status":     status,
		"generation": record.Generation,
	}).Info("Updated verification status")

	if status == models.StatusProcessing {
		s.scheduleAutoComplete(walletID, record.Generation, s.Timing.AutoCompleteAfter)
	}

	return record, nil
}

// ResumePending re-arms auto-completion for records left in processing by a
// previous process. Each timer keeps the record's stored generation, so it
// still yields to any write that lands first.
func (s *StatusService) ResumePending(ctx context.Context, lister PendingLister) (int, error) {
	records, err := lister.ListByStatus(ctx, models.StatusProcessing)
	if err != nil {
		return 0, apperrors.Internal("listing pending verifications: %v", err)
	}

	now := s.Clock.Now()
	for _, record := range records {
		remaining := s.Timing.AutoCompleteAfter - now.Sub(record.LastTransitionAt)
		s.scheduleAutoComplete(record.WalletID, record.Generation, max(0, remaining))
	}
	return len(records), nil
}

func (s *StatusService) scheduleAutoComplete(walletID string, generation uint64, delay time.Duration) {
	s.Clock.AfterFunc(delay, func() {
		ctx, cancel := context.WithTimeout(context.Background(), autoCompleteTimeout)
		defer cancel()
		s.autoComplete(ctx, walletID, generation)
	})
}

func (s *StatusService) autoComplete(ctx context.Context, walletID string, generation uint64) {
	log := logrus.WithFields(logrus.Fields{"wallet": walletID, "generation": generation})

	completed := s.completedRecord(walletID, s.Clock.Now())
	saved, err := s.Store.SaveIfGeneration(ctx, completed, generation)
	if err != nil {
		log.Errorf("Error auto-completing verification: %s", err.Error())
		return
	}
	if !saved {
		log.Debug("Skipping auto-complete, record changed since it was scheduled")
		return
	}

	s.afterWrite(ctx, completed, "auto_complete")
	log.Info("Auto-completed verification")
}

func (s *StatusService) completedRecord(walletID string, now time.Time) *models.VerificationRecord {
	return &models.VerificationRecord{
		WalletID:         walletID,
		Status:           models.StatusCompleted,
		Payload:          PlaceholderPayload(walletID, now, s.Random),
		LastTransitionAt: now,
	}
}

func (s *StatusService) load(ctx context.Context, walletID string) (*models.VerificationRecord, error) {
	record, err := s.Store.Get(ctx, walletID)
	if err != nil {
		return nil, apperrors.Internal("reading status for %s: %v", walletID, err)
	}
	return record, nil
}

func (s *StatusService) view(walletID string, record *models.VerificationRecord, now time.Time) *dto.StatusView {
	if record == nil {
		return &dto.StatusView{Status: models.StatusNone, Wallet: walletID, LastChecked: &now}
	}

	if record.Status == models.StatusProcessing {
		elapsed := now.Sub(record.LastTransitionAt)
		remaining := EstimatedSecondsRemaining(elapsed, s.Timing.AutoCompleteAfter)
		progress := Progress(elapsed, s.Timing.ViewCompleteAfter)
		return &dto.StatusView{
			Status:                 models.StatusProcessing,
			Message:                "Document verification in progress",
			EstimatedTimeRemaining: &remaining,
			Progress:               &progress,
		}
	}

	view := &dto.StatusView{Status: record.Status, Wallet: walletID, LastChecked: &now}
	if record.Status.IsTerminal() {
		view.VerificationData = record.Payload
		if view.VerificationData == nil && record.Status == models.StatusCompleted {
			view.VerificationData = PlaceholderPayload(walletID, record.LastTransitionAt, s.Random)
		}
	}
	return view
}

func (s *StatusService) afterWrite(ctx context.Context, record *models.VerificationRecord, source string) {
	metrics.StatusTransitionsTotal.WithLabelValues(string(record.Status), source).Inc()

	event := models.StatusChangedEvent{
		EventID:    uuid.NewString(),
		WalletID:   record.WalletID,
		Status:     record.Status,
		Generation: record.Generation,
		Source:     source,
		ChangedAt:  record.LastTransitionAt,
	}
	if err := s.Publisher.Publish(ctx, models.StatusChangedTopic, event); err != nil {
		logrus.WithField("wallet", record.WalletID).Errorf("Error publishing status change: %s", err.Error())
	}
}
