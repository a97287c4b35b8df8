package models

import "time"

// Event is a dated calendar entry assigned to one family member.
// EventDate is "YYYY-MM-DD" and EventTime "HH:MM", stored as text so
// SQLite's strftime can filter by month/year.
type Event struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	FamilyID    uint      `gorm:"not null;index" json:"family_id"`
	UserID      uint      `gorm:"not null" json:"user_id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `json:"description"`
	EventDate   string    `gorm:"not null" json:"event_date"`
	EventTime   string    `json:"event_time"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type EventInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	EventDate   string `json:"eventDate"`
	EventTime   string `json:"eventTime"`
	UserID      uint   `json:"userId"`
}

// EventResponse joins the assignee's display fields onto the row.
type EventResponse struct {
	ID          uint      `json:"id"`
	FamilyID    uint      `json:"family_id"`
	UserID      uint      `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	EventDate   string    `json:"event_date"`
	EventTime   string    `json:"event_time"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	UserName    string    `json:"user_name"`
	UserColor   string    `json:"user_color"`
}
