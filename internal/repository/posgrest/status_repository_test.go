package posgrest_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tatyana-ilieva/lev-holdings/internal/models"
	"github.com/tatyana-ilieva/lev-holdings/internal/repository/posgrest"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newRepository(t *testing.T) (*posgrest.StatusRepository, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	t.Cleanup(func() { assert.NoError(t, mock.ExpectationsWereMet()) })
	return posgrest.NewStatusRepository(db), mock
}

func TestStatusRepository_SaveUpsertsAndBumpsGeneration(t *testing.T) {
	repo, mock := newRepository(t)
	mock.ExpectQuery(`INSERT INTO "verification_records" .* ON CONFLICT \("id"\) DO UPDATE SET .*"generation"=verification_records\.generation \+ 1.* RETURNING`).
		WillReturnRows(sqlmock.NewRows([]string{"generation"}).AddRow(3))

	record := &models.VerificationRecord{WalletID: "w1", Status: models.StatusOnHold, Generation: 7, LastTransitionAt: time.Now()}
	err := repo.Save(context.Background(), record)

	require.NoError(t, err)
	assert.Equal(t, uint64(3), record.Generation)
	assert.False(t, record.UpdatedAt.IsZero())
}

func TestStatusRepository_SaveIfGeneration(t *testing.T) {
	const update = `UPDATE "verification_records" SET "generation"=generation \+ 1,.* WHERE \(?id = \$\d+ AND generation = \$\d+`

	t.Run("matching generation", func(t *testing.T) {
		repo, mock := newRepository(t)
		mock.ExpectExec(update).
			WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), "completed", sqlmock.AnyArg(), "w1", int64(4)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		record := &models.VerificationRecord{
			WalletID:         "w1",
			Status:           models.StatusCompleted,
			Payload:          &models.VerificationPayload{ComplianceScore: 960},
			LastTransitionAt: time.Now(),
		}
		saved, err := repo.SaveIfGeneration(context.Background(), record, 4)

		require.NoError(t, err)
		assert.True(t, saved)
		assert.Equal(t, uint64(5), record.Generation)
	})

	t.Run("stale or missing record", func(t *testing.T) {
		repo, mock := newRepository(t)
		mock.ExpectExec(update).
			WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), "completed", sqlmock.AnyArg(), "w1", int64(4)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		record := &models.VerificationRecord{
			WalletID:         "w1",
			Status:           models.StatusCompleted,
			Payload:          &models.VerificationPayload{ComplianceScore: 960},
			LastTransitionAt: time.Now(),
		}
		saved, err := repo.SaveIfGeneration(context.Background(), record, 4)

		require.NoError(t, err)
		assert.False(t, saved)
		assert.Equal(t, uint64(0), record.Generation)
	})
}

func TestStatusRepository_Get(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		repo, mock := newRepository(t)
		mock.ExpectQuery(`SELECT \* FROM "verification_records" WHERE id = \$1`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "status", "generation"}))

		record, err := repo.Get(context.Background(), "w1")

		require.NoError(t, err)
		assert.Nil(t, record)
	})

	t.Run("found", func(t *testing.T) {
		repo, mock := newRepository(t)
		mock.ExpectQuery(`SELECT \* FROM "verification_records" WHERE id = \$1`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "status", "payload", "generation"}).
				AddRow("w1", "completed", []byte(`{"complianceScore":960,"country":"US"}`), 2))

		record, err := repo.Get(context.Background(), "w1")

		require.NoError(t, err)
		require.NotNil(t, record)
		assert.Equal(t, models.StatusCompleted, record.Status)
		assert.Equal(t, uint64(2), record.Generation)
		require.NotNil(t, record.Payload)
		assert.Equal(t, 960, record.Payload.ComplianceScore)
	})
}

func TestStatusRepository_ListByStatus(t *testing.T) {
	repo, mock := newRepository(t)
	mock.ExpectQuery(`SELECT \* FROM "verification_records" WHERE status = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "status", "generation"}).
			AddRow("w1", "processing", 1).
			AddRow("w3", "processing", 4))

	records, err := repo.ListByStatus(context.Background(), models.StatusProcessing)

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "w3", records[1].WalletID)
	assert.Equal(t, uint64(4), records[1].Generation)
}
