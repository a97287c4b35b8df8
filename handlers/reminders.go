package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"familyhub/database"
	"familyhub/middleware"
	"familyhub/models"
)

// ListReminders returns the family's reminders ordered by remind_at.
// Delivery of due reminders is out of scope here; the sent flag is written
// by whatever dispatches them.
func ListReminders(c *fiber.Ctx) error {
	familyID := middleware.GetFamilyID(c)

	var reminders []models.ReminderResponse
	result := database.DB.Model(&models.Reminder{}).
		Select("reminders.*, users.name AS user_name, users.color AS user_color").
		Joins("JOIN users ON users.id = reminders.user_id").
		Where("reminders.family_id = ?", familyID).
		Order("reminders.remind_at").
		Scan(&reminders)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch reminders",
		})
	}

	return c.JSON(reminders)
}

// CreateReminder creates a reminder, assigned to the caller by default
func CreateReminder(c *fiber.Ctx) error {
	familyID := middleware.GetFamilyID(c)
	userID := middleware.GetUserID(c)

	var input models.ReminderInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if input.Title == "" || input.RemindAt == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Title and remind time are required",
		})
	}
	if !models.ValidRepeatType(input.RepeatType) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid repeat type",
		})
	}

	if input.UserID == 0 {
		input.UserID = userID
	}

	reminder := models.Reminder{
		FamilyID:    familyID,
		UserID:      input.UserID,
		Title:       input.Title,
		Description: input.Description,
		RemindAt:    input.RemindAt,
		RepeatType:  input.RepeatType,
	}

	if result := database.DB.Create(&reminder); result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create reminder",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(reminder)
}

// UpdateReminder overwrites the full mutable field set of a reminder
func UpdateReminder(c *fiber.Ctx) error {
	familyID := middleware.GetFamilyID(c)
	reminderID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid reminder ID",
		})
	}

	var reminder models.Reminder
	if result := database.DB.Where("id = ? AND family_id = ?", reminderID, familyID).First(&reminder); result.Error != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Reminder not found",
		})
	}

	var input models.ReminderInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if input.Title == "" || input.RemindAt == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Title and remind time are required",
		})
	}
	if !models.ValidRepeatType(input.RepeatType) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid repeat type",
		})
	}

	reminder.Title = input.Title
	reminder.Description = input.Description
	reminder.RemindAt = input.RemindAt
	reminder.RepeatType = input.RepeatType
	if input.UserID != 0 {
		reminder.UserID = input.UserID
	}

	if result := database.DB.Save(&reminder); result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update reminder",
		})
	}

	return c.JSON(reminder)
}

// DeleteReminder removes a reminder from the caller's family
func DeleteReminder(c *fiber.Ctx) error {
	familyID := middleware.GetFamilyID(c)
	reminderID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid reminder ID",
		})
	}

	var reminder models.Reminder
	if result := database.DB.Where("id = ? AND family_id = ?", reminderID, familyID).First(&reminder); result.Error != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Reminder not found",
		})
	}

	if result := database.DB.Delete(&reminder); result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete reminder",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
