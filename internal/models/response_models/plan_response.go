package response_models

import "github.com/google/uuid"

type PlanResponse struct {
	ID         uuid.UUID `json:"id"`
	Code       string    `json:"code"`
	Name       string    `json:"name"`
	PriceMinor int64     `json:"priceMinor"`
	Currency   string    `json:"currency"`
	Features   []string  `json:"features"`
	IsActive   bool      `json:"isActive"`
}

type RewardResponse struct {
	ID           uuid.UUID `json:"id"`
	Kind         string    `json:"kind"`
	Name         string    `json:"name"`
	Quantity     int64     `json:"quantity,omitempty"`
	Discount     int64     `json:"discount,omitempty"`
	PointsNeeded int64     `json:"pointsNeeded"`
}
