package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

type VerificationStatus string

const (
	StatusNone       VerificationStatus = "none"
	StatusProcessing VerificationStatus = "processing"
	StatusOnHold     VerificationStatus = "on_hold"
	StatusCompleted  VerificationStatus = "completed"
	StatusFailed     VerificationStatus = "failed"
	StatusError      VerificationStatus = "error"
)

func (s VerificationStatus) IsValid() bool {
	switch s {
	case StatusNone, StatusProcessing, StatusOnHold, StatusCompleted, StatusFailed, StatusError:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the demo flow defines no transition out of s.
func (s VerificationStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// VerificationRecord is the single stored state of a wallet's verification.
// Generation is bumped on every write and lets deferred work detect that the
// record it was scheduled for has since been replaced.
type VerificationRecord struct {
	WalletID         string               `json:"walletId" gorm:"primaryKey;column:id"`
	Status           VerificationStatus   `json:"status" gorm:"size:20;not null;index"`
	Payload          *VerificationPayload `json:"payload,omitempty" gorm:"type:jsonb"`
	Generation       uint64               `json:"generation" gorm:"not null;default:1"`
	LastTransitionAt time.Time            `json:"lastTransitionAt" gorm:"not null"`
	CreatedAt        time.Time            `json:"createdAt"`
	UpdatedAt        time.Time            `json:"updatedAt"`
}

func (VerificationRecord) TableName() string {
	return "verification_records"
}

// VerificationPayload is the data attached to completed and failed records.
type VerificationPayload struct {
	WalletAddress      string     `json:"walletAddress,omitempty"`
	Documents          []string   `json:"documents,omitempty"`
	ComplianceScore    int        `json:"complianceScore,omitempty"`
	Country            string     `json:"country,omitempty"`
	AgeVerified        bool       `json:"ageVerified,omitempty"`
	AMLStatus          string     `json:"amlStatus,omitempty"`
	RiskLevel          string     `json:"riskLevel,omitempty"`
	VerifiedAt         *time.Time `json:"verifiedAt,omitempty"`
	RejectedAt         *time.Time `json:"rejectedAt,omitempty"`
	ReviewAnswer       string     `json:"reviewAnswer,omitempty"`
	RejectLabels       []string   `json:"rejectLabels,omitempty"`
	RejectType         string     `json:"rejectType,omitempty"`
	VerificationMethod string     `json:"verificationMethod,omitempty"`
}

func (p VerificationPayload) Value() (driver.Value, error) {
	return json.Marshal(p)
}

func (p *VerificationPayload) Scan(value interface{}) error {
	var raw []byte
	switch v := value.(type) {
	case nil:
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported payload type %T", value)
	}
	return json.Unmarshal(raw, p)
}
