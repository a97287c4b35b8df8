package models

import "time"

type Todo struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	FamilyID  uint      `gorm:"not null;index" json:"family_id"`
	UserID    uint      `gorm:"not null" json:"user_id"`
	Task      string    `gorm:"not null" json:"task"`
	Completed bool      `gorm:"default:false" json:"completed"`
	DueDate   string    `json:"due_date"`
	CreatedAt time.Time `json:"created_at"`
}

type TodoInput struct {
	Task      string `json:"task"`
	Completed bool   `json:"completed"`
	DueDate   string `json:"dueDate"`
	UserID    uint   `json:"userId"`
}

type TodoToggle struct {
	Completed bool `json:"completed"`
}

type TodoResponse struct {
	ID        uint      `json:"id"`
	FamilyID  uint      `json:"family_id"`
	UserID    uint      `json:"user_id"`
	Task      string    `json:"task"`
	Completed bool      `json:"completed"`
	DueDate   string    `json:"due_date"`
	CreatedAt time.Time `json:"created_at"`
	UserName  string    `json:"user_name"`
	UserColor string    `json:"user_color"`
}
