package models

import "time"

type Family struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"not null" json:"name"`
	InviteCode string    `gorm:"uniqueIndex;not null" json:"invite_code"`
	CreatedAt  time.Time `json:"created_at"`
}

// FamilyResponse is the family shape embedded in auth responses.
type FamilyResponse struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	InviteCode string `json:"inviteCode"`
}

func (f *Family) ToResponse() FamilyResponse {
	return FamilyResponse{
		ID:         f.ID,
		Name:       f.Name,
		InviteCode: f.InviteCode,
	}
}
