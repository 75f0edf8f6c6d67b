package models

import "time"

const (
	StatusChangedTopic    = "verification.status.changed"
	CredentialIssuedTopic = "credentials.issued"
	WebhookDLQTopic       = "kyc.webhooks.dlq"
)

type StatusChangedEvent struct {
	EventID    string             `json:"event_id"`
	WalletID   string             `json:"wallet_id"`
	Status     VerificationStatus `json:"status"`
	Generation uint64             `json:"generation"`
	Source     string             `json:"source"`
	ChangedAt  time.Time          `json:"changed_at"`
}

type CredentialIssuedEvent struct {
	EventID         string    `json:"event_id"`
	WalletID        string    `json:"wallet_id"`
	Mint            string    `json:"mint"`
	ComplianceScore int       `json:"compliance_score"`
	Network         string    `json:"network"`
	Real            bool      `json:"real"`
	IssuedAt        time.Time `json:"issued_at"`
}

type DLQMessage struct {
	OriginalTopic string    `json:"original_topic"`
	Key           string    `json:"key"`
	Value         string    `json:"value"`
	Reason        string    `json:"reason"`
	Timestamp     time.Time `json:"timestamp"`
	Attempts      int       `json:"attempts"`
}

func (e StatusChangedEvent) PartitionKey() string { return e.WalletID }

func (e CredentialIssuedEvent) PartitionKey() string { return e.WalletID }

func (m DLQMessage) PartitionKey() string { return m.Key }
