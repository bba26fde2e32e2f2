package verify_password

// VerifyPasswordRequest HTTP request model
type VerifyPasswordRequest struct {
	Password string `json:"password"`
}

// VerifyPasswordResponse HTTP response model
type VerifyPasswordResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
