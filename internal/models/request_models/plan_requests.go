package request_models

type UpdatePriceRequest struct {
	PriceMinor int64 `json:"priceMinor"`
}

type AddFeatureRequest struct {
	Feature string `json:"feature" binding:"required"`
}

type UpdateFeatureRequest struct {
	OldFeature string `json:"oldFeature" binding:"required"`
	NewFeature string `json:"newFeature" binding:"required"`
}

type DeleteFeatureRequest struct {
	Feature string `json:"feature" binding:"required"`
}

type SuggestCopyRequest struct {
	Section string `json:"section" binding:"required"`
}
