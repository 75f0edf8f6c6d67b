package posgrest

import (
	"context"
	"time"

	"github.com/tatyana-ilieva/lev-holdings/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StatusRepository stores verification records in PostgreSQL. Every write
// bumps the row's generation inside the same statement.
type StatusRepository struct {
	db      *gorm.DB
	records *repository[models.VerificationRecord]
}

func NewStatusRepository(db *gorm.DB) *StatusRepository {
	return &StatusRepository{
		db:      db,
		records: New[models.VerificationRecord](db),
	}
}

func (r *StatusRepository) Get(ctx context.Context, walletID string) (*models.VerificationRecord, error) {
	return r.records.GetByID(ctx, walletID)
}

// Save upserts the record. On insert the column default starts the
// generation at 1; on conflict it is incremented.
func (r *StatusRepository) Save(ctx context.Context, record *models.VerificationRecord) error {
	now := time.Now()
	record.Generation = 0
	record.CreatedAt = now
	record.UpdatedAt = now

	return r.db.WithContext(ctx).
		Clauses(
			clause.OnConflict{
				Columns: []clause.Column{{Name: "id"}},
				DoUpdates: clause.Assignments(map[string]interface{}{
					"status":             record.Status,
					"payload":            record.Payload,
					"last_transition_at": record.LastTransitionAt,
					"updated_at":         now,
					"generation":         gorm.Expr("verification_records.generation + 1"),
				}),
			},
			clause.Returning{},
		).
		Create(record).Error
}

func (r *StatusRepository) SaveIfGeneration(ctx context.Context, record *models.VerificationRecord, generation uint64) (bool, error) {
	now := time.Now()
	result := r.db.WithContext(ctx).
		Model(&models.VerificationRecord{}).
		Where("id = ? AND generation = ?", record.WalletID, generation).
		Updates(map[string]interface{}{
			"status":             record.Status,
			"payload":            record.Payload,
			"last_transition_at": record.LastTransitionAt,
			"updated_at":         now,
			"generation":         gorm.Expr("generation + 1"),
		})
	if result.Error != nil {
		return false, result.Error
	}
	if result.RowsAffected != 1 {
		return false, nil
	}

	record.Generation = generation + 1
	record.UpdatedAt = now
	return true, nil
}

// ListByStatus returns every record currently in the given status.
func (r *StatusRepository) ListByStatus(ctx context.Context, status models.VerificationStatus) ([]models.VerificationRecord, error) {
	return r.records.GetBy(ctx, "status = ?", status)
}
