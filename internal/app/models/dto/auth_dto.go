package dto

// RegisterRequest is the payload for registering students and lecturers
type RegisterRequest struct {
	ID         string  `json:"id" binding:"required" example:"S2021001"`
	Name       string  `json:"name" binding:"required" example:"Ada Lovelace"`
	Password   string  `json:"password" binding:"required" example:"s3cretpass"`
	Role       string  `json:"role" binding:"required" example:"student" enums:"student,lecturer"`
	Major      *string `json:"major,omitempty" example:"Computer Science"`
	Department *string `json:"department,omitempty" example:"Engineering"`
	PhotoURL   *string `json:"photoUrl,omitempty"`
}

// LoginRequest is the payload for logging in any account type
type LoginRequest struct {
	ID       string `json:"id" binding:"required" example:"S2021001"`
	Password string `json:"password" binding:"required" example:"s3cretpass"`
}

// LoginResponse carries the authenticated profile and an access token
type LoginResponse struct {
	ID         string  `json:"id" example:"S2021001"`
	Name       string  `json:"name" example:"Ada Lovelace"`
	Role       string  `json:"role" example:"student"`
	Major      *string `json:"major,omitempty"`
	Department *string `json:"department,omitempty"`
	PhotoURL   *string `json:"photoUrl,omitempty"`
	Token      string  `json:"token"`
	ExpiresIn  int     `json:"expiresIn" example:"43200"`
}

// RegisterResponse confirms a successful registration
type RegisterResponse struct {
	OK bool   `json:"ok" example:"true"`
	ID string `json:"id" example:"S2021001"`
}
