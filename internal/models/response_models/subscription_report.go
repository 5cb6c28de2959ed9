package response_models

import "github.com/google/uuid"

type SubscriptionReport struct {
	Total    int64 `json:"total"`
	Active   int64 `json:"active"`
	Expired  int64 `json:"expired"`
	Canceled int64 `json:"canceled"`

	Recent []RecentSubscription `json:"recent"`
}

type RecentSubscription struct {
	ID            uuid.UUID `json:"id"`
	AccountID     uuid.UUID `json:"accountId"`
	PlanCode      string    `json:"planCode"`
	Status        string    `json:"status"`
	StartsAt      int64     `json:"startsAt"`
	EndsAt        int64     `json:"endsAt"`
	PaymentMethod string    `json:"paymentMethod"`
}
