package models

import "time"

// Meal is a recurring weekly slot, not a dated instance.
type Meal struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	FamilyID  uint      `gorm:"not null;index" json:"family_id"`
	DayOfWeek string    `gorm:"not null" json:"day_of_week"`
	Meal      string    `gorm:"not null" json:"meal"`
	RecipeURL string    `json:"recipe_url"`
	CreatedAt time.Time `json:"created_at"`
}

type MealInput struct {
	DayOfWeek string `json:"dayOfWeek"`
	Meal      string `json:"meal"`
	RecipeURL string `json:"recipeUrl"`
}

// Weekdays is the fixed set of valid day_of_week labels, in planner order.
var Weekdays = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// WeekdayOrder is the ORDER BY expression giving the Monday-first sequence.
const WeekdayOrder = `CASE day_of_week
	WHEN 'Monday' THEN 1
	WHEN 'Tuesday' THEN 2
	WHEN 'Wednesday' THEN 3
	WHEN 'Thursday' THEN 4
	WHEN 'Friday' THEN 5
	WHEN 'Saturday' THEN 6
	WHEN 'Sunday' THEN 7
	END`

func ValidWeekday(day string) bool {
	for _, d := range Weekdays {
		if d == day {
			return true
		}
	}
	return false
}
