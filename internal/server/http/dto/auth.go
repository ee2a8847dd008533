package dto

// LoginRequest describes username/password payload.
type LoginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

type LoginResponse struct {
	Success bool `json:"success"`
}

type CheckAuthResponse struct {
	Authenticated bool `json:"authenticated"`
}
