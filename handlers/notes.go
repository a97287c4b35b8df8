package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"familyhub/database"
	"familyhub/middleware"
	"familyhub/models"
)

// ListNotes returns the family's notes, newest first, with author name/color
func ListNotes(c *fiber.Ctx) error {
	familyID := middleware.GetFamilyID(c)

	var notes []models.NoteResponse
	result := database.DB.Model(&models.Note{}).
		Select("notes.*, users.name AS user_name, users.color AS user_color").
		Joins("JOIN users ON users.id = notes.user_id").
		Where("notes.family_id = ?", familyID).
		Order("notes.created_at DESC").
		Scan(&notes)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch notes",
		})
	}

	return c.JSON(notes)
}

// CreateNote creates a note owned by the caller
func CreateNote(c *fiber.Ctx) error {
	familyID := middleware.GetFamilyID(c)
	userID := middleware.GetUserID(c)

	var input models.NoteInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if input.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Note title is required",
		})
	}

	note := models.Note{
		FamilyID: familyID,
		UserID:   userID,
		Title:    input.Title,
		Content:  input.Content,
	}

	if result := database.DB.Create(&note); result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create note",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(note)
}

// UpdateNote overwrites a note's title and content
func UpdateNote(c *fiber.Ctx) error {
	familyID := middleware.GetFamilyID(c)
	noteID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid note ID",
		})
	}

	var note models.Note
	if result := database.DB.Where("id = ? AND family_id = ?", noteID, familyID).First(&note); result.Error != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Note not found",
		})
	}

	var input models.NoteInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if input.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Note title is required",
		})
	}

	note.Title = input.Title
	note.Content = input.Content

	if result := database.DB.Save(&note); result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update note",
		})
	}

	return c.JSON(note)
}

// DeleteNote removes a note from the caller's family
func DeleteNote(c *fiber.Ctx) error {
	familyID := middleware.GetFamilyID(c)
	noteID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid note ID",
		})
	}

	var note models.Note
	if result := database.DB.Where("id = ? AND family_id = ?", noteID, familyID).First(&note); result.Error != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Note not found",
		})
	}

	if result := database.DB.Delete(&note); result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete note",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
