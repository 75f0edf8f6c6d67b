package database

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/tatyana-ilieva/lev-holdings/internal/models"
	"gorm.io/gorm"
)

// SeedVerifications creates demo wallets in each settled state so the status
// endpoint has something to show in local development. Existing rows are left
// untouched.
func SeedVerifications(db *gorm.DB) error {
	now := time.Now().UTC()
	records := []models.VerificationRecord{
		{
			WalletID:         "demo-wallet-completed",
			Status:           models.StatusCompleted,
			LastTransitionAt: now,
			Payload: &models.VerificationPayload{
				WalletAddress:      "demo-wallet-completed",
				Documents:          []string{"passport", "selfie"},
				ComplianceScore:    960,
				Country:            "US",
				AgeVerified:        true,
				AMLStatus:          "clear",
				RiskLevel:          "low",
				VerifiedAt:         &now,
				ReviewAnswer:       models.ReviewAnswerGreen,
				VerificationMethod: "sumsub_kyc",
			},
		},
		{
			WalletID:         "demo-wallet-failed",
			Status:           models.StatusFailed,
			LastTransitionAt: now,
			Payload: &models.VerificationPayload{
				WalletAddress: "demo-wallet-failed",
				RejectedAt:    &now,
				ReviewAnswer:  models.ReviewAnswerRed,
				RejectLabels:  []string{"DOCUMENT_PAGE_MISSING"},
				RejectType:    "RETRY",
			},
		},
		{
			WalletID:         "demo-wallet-on-hold",
			Status:           models.StatusOnHold,
			LastTransitionAt: now,
		},
	}

	for _, record := range records {
		result := db.Where(models.VerificationRecord{WalletID: record.WalletID}).FirstOrCreate(&record)
		if result.Error != nil {
			return result.Error
		}
	}

	logrus.Info("Verification records seeded")
	return nil
}
