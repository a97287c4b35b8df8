package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"familyhub/database"
	"familyhub/middleware"
	"familyhub/models"
)

// ListMeals returns the family's weekly meal plan in Monday-first order
func ListMeals(c *fiber.Ctx) error {
	familyID := middleware.GetFamilyID(c)

	var meals []models.Meal
	result := database.DB.
		Where("family_id = ?", familyID).
		Order(models.WeekdayOrder).
		Find(&meals)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch meals",
		})
	}

	return c.JSON(meals)
}

// CreateMeal adds a meal to one of the seven weekday slots
func CreateMeal(c *fiber.Ctx) error {
	familyID := middleware.GetFamilyID(c)

	var input models.MealInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if input.DayOfWeek == "" || input.Meal == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Day and meal name are required",
		})
	}
	if !models.ValidWeekday(input.DayOfWeek) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid day of week",
		})
	}

	meal := models.Meal{
		FamilyID:  familyID,
		DayOfWeek: input.DayOfWeek,
		Meal:      input.Meal,
		RecipeURL: input.RecipeURL,
	}

	if result := database.DB.Create(&meal); result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to add meal",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(meal)
}

// UpdateMeal overwrites a meal slot
func UpdateMeal(c *fiber.Ctx) error {
	familyID := middleware.GetFamilyID(c)
	mealID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid meal ID",
		})
	}

	var meal models.Meal
	if result := database.DB.Where("id = ? AND family_id = ?", mealID, familyID).First(&meal); result.Error != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Meal not found",
		})
	}

	var input models.MealInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if input.DayOfWeek == "" || input.Meal == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Day and meal name are required",
		})
	}
	if !models.ValidWeekday(input.DayOfWeek) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid day of week",
		})
	}

	meal.DayOfWeek = input.DayOfWeek
	meal.Meal = input.Meal
	meal.RecipeURL = input.RecipeURL

	if result := database.DB.Save(&meal); result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update meal",
		})
	}

	return c.JSON(meal)
}

// DeleteMeal removes a meal slot
func DeleteMeal(c *fiber.Ctx) error {
	familyID := middleware.GetFamilyID(c)
	mealID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid meal ID",
		})
	}

	var meal models.Meal
	if result := database.DB.Where("id = ? AND family_id = ?", mealID, familyID).First(&meal); result.Error != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Meal not found",
		})
	}

	if result := database.DB.Delete(&meal); result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete meal",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
