package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type SubscriptionStatus string

const (
	SubStatusActive   SubscriptionStatus = "active"
	SubStatusExpired  SubscriptionStatus = "expired"
	SubStatusCanceled SubscriptionStatus = "canceled"
)

// Subscription rows are written by the billing pipeline; this subsystem only
// reads and aggregates them.
type Subscription struct {
	BaseModel
	AccountID uuid.UUID `gorm:"index"`
	PlanCode  string    `gorm:"index"`

	Status   SubscriptionStatus `gorm:"index"`
	StartsAt int64              `gorm:"not null"`
	EndsAt   int64              `gorm:"not null"`

	PaymentMethod string

	Metadata datatypes.JSON `gorm:"type:jsonb;default:'{}'"`

	Account Account `gorm:"foreignKey:AccountID"`
}
