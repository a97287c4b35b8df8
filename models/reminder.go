package models

import "time"

type Reminder struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	FamilyID    uint      `gorm:"not null;index" json:"family_id"`
	UserID      uint      `gorm:"not null" json:"user_id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `json:"description"`
	RemindAt    string    `gorm:"not null" json:"remind_at"`
	RepeatType  string    `json:"repeat_type"`
	Sent        bool      `gorm:"default:false" json:"sent"`
	CreatedAt   time.Time `json:"created_at"`
}

type ReminderInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	RemindAt    string `json:"remindAt"`
	RepeatType  string `json:"repeatType"`
	UserID      uint   `json:"userId"`
}

type ReminderResponse struct {
	ID          uint      `json:"id"`
	FamilyID    uint      `json:"family_id"`
	UserID      uint      `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	RemindAt    string    `json:"remind_at"`
	RepeatType  string    `json:"repeat_type"`
	Sent        bool      `json:"sent"`
	CreatedAt   time.Time `json:"created_at"`
	UserName    string    `json:"user_name"`
	UserColor   string    `json:"user_color"`
}

// ValidRepeatType accepts the empty string (one-shot) plus the three
// recurrence kinds.
func ValidRepeatType(t string) bool {
	switch t {
	case "", "daily", "weekly", "monthly":
		return true
	}
	return false
}
