package models

const (
	// WebhookTopic carries raw provider callbacks relayed through the broker.
	WebhookTopic = "kyc.webhooks"
)
