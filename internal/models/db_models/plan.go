package db_models

import (
	"github.com/lib/pq"
)

const PlanCodePremium = "premium"

type Plan struct {
	BaseModel
	Code        string `gorm:"uniqueIndex"` // e.g. "premium"
	Name        string
	Description *string
	PriceMinor  int64          // 999 = $9.99
	Currency    string         `gorm:"size:3"`
	Features    pq.StringArray `gorm:"type:text[]"` // flat list, unique values, ordered
	IsActive    bool           `gorm:"default:true"`
}
