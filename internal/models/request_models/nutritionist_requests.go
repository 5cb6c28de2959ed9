package request_models

// SubmitApplicationRequest is bound from multipart form fields; the
// certificate file itself travels as the "certificate" form file.
type SubmitApplicationRequest struct {
	FirstName string `form:"firstName" binding:"required"`
	LastName  string `form:"lastName" binding:"required"`
	Email     string `form:"email" binding:"required,email"`
	DOB       string `form:"dob"`
}

type RejectApplicationRequest struct {
	RejectionReason string `json:"rejectionReason"`
}
