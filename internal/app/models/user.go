package models

import (
	"time"
)

// User defines the user model based on the 'users' table.
// The ID is externally assigned (institutional ID), not generated.
type User struct {
	ID         string    `json:"id" db:"id" example:"S2021001"`
	Name       string    `json:"name" db:"name" example:"Ada Lovelace"`
	Password   string    `json:"-" db:"password"` // bcrypt hash, excluded from JSON
	Role       Role      `json:"role" db:"role" example:"student"`
	Major      *string   `json:"major,omitempty" db:"major" example:"Computer Science"`
	Department *string   `json:"department,omitempty" db:"department" example:"Engineering"`
	PhotoURL   *string   `json:"photoUrl,omitempty" db:"photo_url"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at"`
}

// Admin defines the administrator model based on the 'admins' table.
// Admins are a separate record set and are checked first during login.
type Admin struct {
	AdminID  string `json:"id" db:"admin_id"`
	Name     string `json:"name" db:"name"`
	Password string `json:"-" db:"password"` // bcrypt hash
}
