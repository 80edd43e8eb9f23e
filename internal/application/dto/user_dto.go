package dto

// DemoLoginRequest body de POST /api/auth/demo-login (sólo development).
type DemoLoginRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// UserResponse identidad autenticada.
type UserResponse struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	CanEdit bool   `json:"can_edit"`
}

// LoginResponse token emitido junto al usuario.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
