package db_models

const (
	WorkflowAdminCreation = "admin_creation"
)

// EmailVerification is a single-use verification token tied to an email and a
// workflow tag. The most recently created row per (email, workflow_type) is
// the authoritative one.
type EmailVerification struct {
	BaseModel
	Token        string `gorm:"uniqueIndex"`
	Email        string `gorm:"index:idx_email_workflow"`
	WorkflowType string `gorm:"index:idx_email_workflow"`
	Verified     bool   `gorm:"default:false"`
	VerifiedAt   *int64
	ResentAt     *int64
}
