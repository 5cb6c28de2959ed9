package db_models

import "github.com/google/uuid"

type ApplicationStatus string

const (
	AppStatusPending  ApplicationStatus = "pending"
	AppStatusApproved ApplicationStatus = "approved"
	AppStatusRejected ApplicationStatus = "rejected"
)

type NutritionistApplication struct {
	BaseModel
	AccountID uuid.UUID `gorm:"index"`
	FirstName string
	LastName  string
	Email     string `gorm:"uniqueIndex"`
	DateOfBirth string

	// Object key in the certificate bucket, never a public URL. Signed URLs
	// are minted on demand.
	CertificateObject   string
	CertificateFileName string

	Status     ApplicationStatus `gorm:"default:pending;index"`
	AppliedAt  int64
	ApprovedAt *int64
	RejectedAt *int64
	RejectionReason *string

	Account Account `gorm:"foreignKey:AccountID"`
}
