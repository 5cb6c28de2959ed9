package request_models

type AddBasicRewardRequest struct {
	Name         string `json:"name" binding:"required"`
	Quantity     int64  `json:"quantity" binding:"required,gt=0"`
	PointsNeeded int64  `json:"pointsNeeded" binding:"required,gt=0"`
}

type AddPremiumRewardRequest struct {
	Reward       string `json:"reward" binding:"required"`
	Discount     int64  `json:"discount" binding:"required,gt=0"`
	PointsNeeded int64  `json:"pointsNeeded" binding:"required,gt=0"`
}

// EditRewardRequest updates the mutable fields only; the catalog key is
// immutable after creation.
type EditRewardRequest struct {
	Quantity     *int64 `json:"quantity"`
	Discount     *int64 `json:"discount"`
	PointsNeeded *int64 `json:"pointsNeeded"`
}
