package response_models

import "github.com/google/uuid"

type ApplicationResponse struct {
	ID                  uuid.UUID `json:"id"`
	AccountID           uuid.UUID `json:"accountId"`
	FirstName           string    `json:"firstName"`
	LastName            string    `json:"lastName"`
	Email               string    `json:"email"`
	Status              string    `json:"status"`
	CertificateFileName string    `json:"certificateFileName"`
	AppliedAt           int64     `json:"appliedAt"`
	ApprovedAt          *int64    `json:"approvedAt,omitempty"`
	RejectedAt          *int64    `json:"rejectedAt,omitempty"`
	RejectionReason     *string   `json:"rejectionReason,omitempty"`
}

// ReviewResult separates the primary outcome from best-effort side effects:
// warnings report notification failures that did not fail the review itself.
type ReviewResult struct {
	Status   string   `json:"status"`
	Warnings []string `json:"warnings,omitempty"`
}

type CertificateURLResponse struct {
	URL       string `json:"url"`
	ExpiresIn int64  `json:"expiresInSeconds"`
}
