package models

const (
	WebhookApplicantReviewed = "applicantReviewed"
	WebhookApplicantPending  = "applicantPending"
	WebhookApplicantOnHold   = "applicantOnHold"

	ReviewAnswerGreen = "GREEN"
	ReviewAnswerRed   = "RED"

	DefaultExternalUserPrefix = "lev_"
)

// WebhookEvent is the callback payload sent by the verification provider.
type WebhookEvent struct {
	Type           string       `json:"type"`
	ExternalUserID string       `json:"externalUserId"`
	ApplicantID    string       `json:"applicantId,omitempty"`
	InspectionID   string       `json:"inspectionId,omitempty"`
	ApplicantType  string       `json:"applicantType,omitempty"`
	CorrelationID  string       `json:"correlationId,omitempty"`
	ReviewStatus   string       `json:"reviewStatus,omitempty"`
	ReviewResult   ReviewResult `json:"reviewResult"`
}

type ReviewResult struct {
	ReviewAnswer      string   `json:"reviewAnswer"`
	RejectLabels      []string `json:"rejectLabels,omitempty"`
	ReviewRejectType  string   `json:"reviewRejectType,omitempty"`
	ModerationComment string   `json:"moderationComment,omitempty"`
	Country           string   `json:"country,omitempty"`
}
