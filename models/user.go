package models

import "time"

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

// DefaultColor is assigned when a registration omits a color.
const DefaultColor = "#3b82f6"

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	FamilyID     uint      `gorm:"not null;index" json:"family_id"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Name         string    `gorm:"not null" json:"name"`
	Color        string    `gorm:"default:#3b82f6" json:"color"`
	Role         Role      `gorm:"not null;default:member" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// UserResponse is the safe response format for users
type UserResponse struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Role  Role   `json:"role"`
}

func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
		Color: u.Color,
		Role:  u.Role,
	}
}
