package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"familyhub/database"
	"familyhub/middleware"
	"familyhub/models"
)

// ListShoppingLists returns the family's lists with item/checked counters
// computed from the child items
func ListShoppingLists(c *fiber.Ctx) error {
	familyID := middleware.GetFamilyID(c)

	var lists []models.ShoppingListResponse
	result := database.DB.Model(&models.ShoppingList{}).
		Select(`shopping_lists.*,
			(SELECT COUNT(*) FROM shopping_items WHERE list_id = shopping_lists.id) AS item_count,
			(SELECT COUNT(*) FROM shopping_items WHERE list_id = shopping_lists.id AND checked = true) AS checked_count`).
		Where("shopping_lists.family_id = ?", familyID).
		Order("shopping_lists.created_at DESC").
		Scan(&lists)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch shopping lists",
		})
	}

	return c.JSON(lists)
}

// CreateShoppingList creates a new empty list
func CreateShoppingList(c *fiber.Ctx) error {
	familyID := middleware.GetFamilyID(c)

	var input models.ShoppingListInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if input.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "List name is required",
		})
	}

	list := models.ShoppingList{
		FamilyID: familyID,
		Name:     input.Name,
	}

	if result := database.DB.Create(&list); result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create list",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(models.ShoppingListResponse{
		ID:        list.ID,
		FamilyID:  list.FamilyID,
		Name:      list.Name,
		CreatedAt: list.CreatedAt,
	})
}

// findFamilyList resolves a list id within the caller's family. Items carry
// no family_id themselves, so every item operation goes through here.
func findFamilyList(c *fiber.Ctx, listID uint64) (*models.ShoppingList, error) {
	familyID := middleware.GetFamilyID(c)

	var list models.ShoppingList
	if result := database.DB.Where("id = ? AND family_id = ?", listID, familyID).First(&list); result.Error != nil {
		return nil, result.Error
	}
	return &list, nil
}

// ListShoppingItems returns a list's items, unchecked first, with the name
// of whoever added each one
func ListShoppingItems(c *fiber.Ctx) error {
	listID, err := strconv.ParseUint(c.Params("listId"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid list ID",
		})
	}

	if _, err := findFamilyList(c, listID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "List not found",
		})
	}

	var items []models.ShoppingItemResponse
	result := database.DB.Model(&models.ShoppingItem{}).
		Select("shopping_items.*, users.name AS added_by_name").
		Joins("LEFT JOIN users ON users.id = shopping_items.added_by").
		Where("shopping_items.list_id = ?", listID).
		Order("shopping_items.checked, shopping_items.created_at").
		Scan(&items)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch items",
		})
	}

	return c.JSON(items)
}

// AddShoppingItem appends an item to one of the family's lists
func AddShoppingItem(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	listID, err := strconv.ParseUint(c.Params("listId"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid list ID",
		})
	}

	if _, err := findFamilyList(c, listID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "List not found",
		})
	}

	var input models.ShoppingItemInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if input.Text == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Item text is required",
		})
	}

	item := models.ShoppingItem{
		ListID:  uint(listID),
		Text:    input.Text,
		AddedBy: &userID,
	}

	if result := database.DB.Create(&item); result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to add item",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(item)
}

// findFamilyItem resolves an item through its parent list's family scope.
func findFamilyItem(c *fiber.Ctx, itemID uint64) (*models.ShoppingItem, error) {
	var item models.ShoppingItem
	if result := database.DB.First(&item, itemID); result.Error != nil {
		return nil, result.Error
	}
	if _, err := findFamilyList(c, uint64(item.ListID)); err != nil {
		return nil, err
	}
	return &item, nil
}

// ToggleShoppingItem updates only the checked flag of an item
func ToggleShoppingItem(c *fiber.Ctx) error {
	itemID, err := strconv.ParseUint(c.Params("itemId"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid item ID",
		})
	}

	item, err := findFamilyItem(c, itemID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Item not found",
		})
	}

	var input models.ShoppingItemToggle
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if result := database.DB.Model(item).Update("checked", input.Checked); result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update item",
		})
	}

	return c.JSON(item)
}

// DeleteShoppingItem removes a single item
func DeleteShoppingItem(c *fiber.Ctx) error {
	itemID, err := strconv.ParseUint(c.Params("itemId"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid item ID",
		})
	}

	item, err := findFamilyItem(c, itemID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Item not found",
		})
	}

	if result := database.DB.Delete(item); result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete item",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteShoppingList removes a list together with all of its items in one
// transaction, so a failure cannot orphan items
func DeleteShoppingList(c *fiber.Ctx) error {
	listID, err := strconv.ParseUint(c.Params("listId"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid list ID",
		})
	}

	list, err := findFamilyList(c, listID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "List not found",
		})
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if result := tx.Where("list_id = ?", list.ID).Delete(&models.ShoppingItem{}); result.Error != nil {
			return result.Error
		}
		return tx.Delete(list).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete list",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
