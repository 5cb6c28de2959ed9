package response_models

// SitePreview mirrors what the marketing site renders from live config, so an
// admin can check the numbers before publishing.
type SitePreview struct {
	PlanName          string           `json:"planName"`
	PriceMinor        int64            `json:"priceMinor"`
	Currency          string           `json:"currency"`
	Features          []string         `json:"features"`
	BasicRewards      []RewardResponse `json:"basicRewards"`
	PremiumRewards    []RewardResponse `json:"premiumRewards"`
	NutritionistCount int64            `json:"nutritionistCount"`
}

type CopySuggestion struct {
	Section string `json:"section"`
	Copy    string `json:"copy"`
}
