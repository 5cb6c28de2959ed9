package response_models

import "github.com/google/uuid"

type AccountResponse struct {
	ID          uuid.UUID `json:"id"`
	DisplayName string    `json:"displayName"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	Status      string    `json:"status"`
	IsPremium   bool      `json:"isPremium"`
	Points      int64     `json:"points"`
	Disabled    bool      `json:"disabled"`
	CreatedAt   int64     `json:"createdAt"`
}

type LoginResponse struct {
	Token   string `json:"token"`
	IsAdmin bool   `json:"isAdmin"`
}

type InviteAdminResponse struct {
	VerificationLink string `json:"verificationLink"`
}
