package models

import "time"

type ShoppingList struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	FamilyID  uint      `gorm:"not null;index" json:"family_id"`
	Name      string    `gorm:"not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// ShoppingItem has no family_id of its own; tenancy flows through the
// parent list.
type ShoppingItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ListID    uint      `gorm:"not null;index" json:"list_id"`
	Text      string    `gorm:"not null" json:"text"`
	Checked   bool      `gorm:"default:false" json:"checked"`
	AddedBy   *uint     `json:"added_by"`
	CreatedAt time.Time `json:"created_at"`
}

type ShoppingListInput struct {
	Name string `json:"name"`
}

type ShoppingItemInput struct {
	Text string `json:"text"`
}

type ShoppingItemToggle struct {
	Checked bool `json:"checked"`
}

// ShoppingListResponse carries the item counters computed at read time.
type ShoppingListResponse struct {
	ID           uint      `json:"id"`
	FamilyID     uint      `json:"family_id"`
	Name         string    `json:"name"`
	CreatedAt    time.Time `json:"created_at"`
	ItemCount    int       `json:"item_count"`
	CheckedCount int       `json:"checked_count"`
}

type ShoppingItemResponse struct {
	ID          uint      `json:"id"`
	ListID      uint      `json:"list_id"`
	Text        string    `json:"text"`
	Checked     bool      `json:"checked"`
	AddedBy     *uint     `json:"added_by"`
	CreatedAt   time.Time `json:"created_at"`
	AddedByName *string   `json:"added_by_name"`
}
