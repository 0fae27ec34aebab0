package auth

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	// Role is the portal the client wants to enter. When set, login fails
	// unless the account actually holds that role.
	Role string `json:"role" binding:"omitempty,oneof=admin employee"`
}

type AuthResponse struct {
	ID          string   `json:"id"`
	Email       string   `json:"email"`
	Name        string   `json:"name"`
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
}
