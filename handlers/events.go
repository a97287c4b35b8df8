package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"familyhub/database"
	"familyhub/middleware"
	"familyhub/models"
)

// ListEvents returns the family's events with assignee name/color,
// optionally filtered to one month via ?month=&year=
func ListEvents(c *fiber.Ctx) error {
	familyID := middleware.GetFamilyID(c)
	month := c.Query("month")
	year := c.Query("year")

	query := database.DB.Model(&models.Event{}).
		Select("events.*, users.name AS user_name, users.color AS user_color").
		Joins("JOIN users ON users.id = events.user_id").
		Where("events.family_id = ?", familyID)

	if month != "" && year != "" {
		if len(month) == 1 {
			month = "0" + month
		}
		query = query.Where("strftime('%m', event_date) = ? AND strftime('%Y', event_date) = ?", month, year)
	}

	var events []models.EventResponse
	if result := query.Order("event_date, event_time").Scan(&events); result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch events",
		})
	}

	return c.JSON(events)
}

// CreateEvent creates a new event, assigned to the caller unless the
// request names another family member
func CreateEvent(c *fiber.Ctx) error {
	familyID := middleware.GetFamilyID(c)
	userID := middleware.GetUserID(c)

	var input models.EventInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if input.Title == "" || input.EventDate == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Title and date are required",
		})
	}

	if input.UserID == 0 {
		input.UserID = userID
	}

	event := models.Event{
		FamilyID:    familyID,
		UserID:      input.UserID,
		Title:       input.Title,
		Description: input.Description,
		EventDate:   input.EventDate,
		EventTime:   input.EventTime,
	}

	if result := database.DB.Create(&event); result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create event",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(event)
}

// UpdateEvent overwrites the full mutable field set of an event
func UpdateEvent(c *fiber.Ctx) error {
	familyID := middleware.GetFamilyID(c)
	eventID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid event ID",
		})
	}

	var event models.Event
	if result := database.DB.Where("id = ? AND family_id = ?", eventID, familyID).First(&event); result.Error != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Event not found",
		})
	}

	var input models.EventInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if input.Title == "" || input.EventDate == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Title and date are required",
		})
	}

	event.Title = input.Title
	event.Description = input.Description
	event.EventDate = input.EventDate
	event.EventTime = input.EventTime
	if input.UserID != 0 {
		event.UserID = input.UserID
	}

	if result := database.DB.Save(&event); result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update event",
		})
	}

	return c.JSON(event)
}

// DeleteEvent removes an event from the caller's family
func DeleteEvent(c *fiber.Ctx) error {
	familyID := middleware.GetFamilyID(c)
	eventID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid event ID",
		})
	}

	var event models.Event
	if result := database.DB.Where("id = ? AND family_id = ?", eventID, familyID).First(&event); result.Error != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Event not found",
		})
	}

	if result := database.DB.Delete(&event); result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete event",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
