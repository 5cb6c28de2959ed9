package db_models

import (
	"gorm.io/datatypes"
)

type AccountRole string

const (
	RoleBasic        AccountRole = "basic"
	RolePremium      AccountRole = "premium"
	RoleNutritionist AccountRole = "nutritionist"
	RoleAdmin        AccountRole = "admin"
)

type AccountStatus string

const (
	StatusActive                   AccountStatus = "Active"
	StatusInactive                 AccountStatus = "Inactive"
	StatusPendingEmailVerification AccountStatus = "PendingEmailVerification"
)

type Account struct {
	BaseModel
	DisplayName  string
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string
	DateOfBirth  string

	Role      AccountRole   `gorm:"default:basic;index"`
	Status    AccountStatus `gorm:"default:Active"`
	IsPremium bool          `gorm:"default:false"`
	Points    int64         `gorm:"default:0"`

	// Claim grants embedded into issued tokens. Kept in sync with Role by the
	// identity service; the account row is the source of truth.
	Claims datatypes.JSON `gorm:"type:jsonb;default:'{}'"`

	Disabled bool `gorm:"default:false"`

	// Unix seconds; tokens issued before this moment are rejected.
	SessionsRevokedAt int64 `gorm:"default:0"`
}
