package memory

import (
	"context"
	"sync"
	"time"

	"github.com/tatyana-ilieva/lev-holdings/internal/models"
)

// Store keeps verification records in process memory. Records live as long
// as the process does.
type Store struct {
	mu      sync.RWMutex
	records map[string]models.VerificationRecord
}

func New() *Store {
	return &Store{records: make(map[string]models.VerificationRecord)}
}

func (s *Store) Get(_ context.Context, walletID string) (*models.VerificationRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.records[walletID]
	if !ok {
		return nil, nil
	}
	return &record, nil
}

func (s *Store) Save(_ context.Context, record *models.VerificationRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.write(record, s.records[record.WalletID].Generation)
	return nil
}

func (s *Store) SaveIfGeneration(_ context.Context, record *models.VerificationRecord, generation uint64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.records[record.WalletID]
	if !ok || current.Generation != generation {
		return false, nil
	}
	s.write(record, generation)
	return true, nil
}

// write must be called with mu held.
func (s *Store) write(record *models.VerificationRecord, previous uint64) {
	now := time.Now()
	record.Generation = previous + 1
	record.UpdatedAt = now
	if existing, ok := s.records[record.WalletID]; ok {
		record.CreatedAt = existing.CreatedAt
	} else {
		record.CreatedAt = now
	}
	s.records[record.WalletID] = *record
}

func (s *Store) ListByStatus(_ context.Context, status models.VerificationStatus) ([]models.VerificationRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.VerificationRecord
	for _, record := range s.records {
		if record.Status == status {
			out = append(out, record)
		}
	}
	return out, nil
}
