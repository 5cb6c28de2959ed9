package response_models

type VerificationStatusResponse struct {
	Verified bool `json:"verified"`
}
