package request_models

type SendVerificationRequest struct {
	Email        string `json:"email" binding:"required,email"`
	WorkflowType string `json:"workflowType"`
}

type ResendVerificationRequest struct {
	Email        string `json:"email" binding:"required,email"`
	WorkflowType string `json:"workflowType"`
}
