package db_models

type RewardKind string

const (
	RewardKindBasic   RewardKind = "basic"
	RewardKindPremium RewardKind = "premium"
)

// Reward is a tagged union over the two catalogs: basic rewards carry a
// quantity, premium rewards carry a discount. PointsNeeded is common.
// Name is the catalog key, unique within a kind and immutable after creation.
type Reward struct {
	BaseModel
	Kind         RewardKind `gorm:"type:varchar(16);uniqueIndex:idx_kind_name;index"`
	Name         string     `gorm:"uniqueIndex:idx_kind_name"`
	Quantity     int64
	Discount     int64
	PointsNeeded int64
}
