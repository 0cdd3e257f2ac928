package dto

// CreateUserRequest is the admin payload for creating a user record directly
type CreateUserRequest struct {
	ID         string  `json:"id" binding:"required" example:"S2021002"`
	Name       string  `json:"name" binding:"required" example:"Grace Hopper"`
	Password   string  `json:"password" binding:"required"`
	Role       string  `json:"role" binding:"required" example:"student" enums:"student,lecturer"`
	Major      *string `json:"major,omitempty"`
	Department *string `json:"department,omitempty"`
	PhotoURL   *string `json:"photoUrl,omitempty"`
}

// UpdateUserRequest carries the editable user fields. Only non-nil
// fields are applied; password is re-hashed before storage.
type UpdateUserRequest struct {
	Name       *string `json:"name,omitempty"`
	Department *string `json:"department,omitempty"`
	Major      *string `json:"major,omitempty"`
	PhotoURL   *string `json:"photo_url,omitempty"`
	Password   *string `json:"password,omitempty"`
}

// ResetPasswordRequest is the admin payload for resetting a user's password
type ResetPasswordRequest struct {
	NewPassword string `json:"newPassword" binding:"required"`
}
