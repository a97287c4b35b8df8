package handlers

import (
	"github.com/gofiber/fiber/v2"

	"familyhub/database"
	"familyhub/middleware"
	"familyhub/models"
)

// GetFamilyInfo returns the caller's family, invite code included
func GetFamilyInfo(c *fiber.Ctx) error {
	familyID := middleware.GetFamilyID(c)

	var family models.Family
	if result := database.DB.First(&family, familyID); result.Error != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Family not found",
		})
	}

	return c.JSON(family)
}

// ListFamilyMembers returns all members of the caller's family
func ListFamilyMembers(c *fiber.Ctx) error {
	familyID := middleware.GetFamilyID(c)

	var members []models.User
	if result := database.DB.Where("family_id = ?", familyID).Order("created_at").Find(&members); result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch family members",
		})
	}

	responses := make([]models.UserResponse, len(members))
	for i, m := range members {
		responses[i] = m.ToResponse()
	}

	return c.JSON(responses)
}
