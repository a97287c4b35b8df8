package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"familyhub/database"
	"familyhub/middleware"
	"familyhub/models"
)

// ListTodos returns the family's tasks with assignee name/color, open tasks
// first, then by due date and creation time
func ListTodos(c *fiber.Ctx) error {
	familyID := middleware.GetFamilyID(c)

	var todos []models.TodoResponse
	result := database.DB.Model(&models.Todo{}).
		Select("todos.*, users.name AS user_name, users.color AS user_color").
		Joins("JOIN users ON users.id = todos.user_id").
		Where("todos.family_id = ?", familyID).
		Order("todos.completed, todos.due_date, todos.created_at").
		Scan(&todos)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch todos",
		})
	}

	return c.JSON(todos)
}

// CreateTodo creates a new task, assigned to the caller by default
func CreateTodo(c *fiber.Ctx) error {
	familyID := middleware.GetFamilyID(c)
	userID := middleware.GetUserID(c)

	var input models.TodoInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if input.Task == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Task is required",
		})
	}

	if input.UserID == 0 {
		input.UserID = userID
	}

	todo := models.Todo{
		FamilyID: familyID,
		UserID:   input.UserID,
		Task:     input.Task,
		DueDate:  input.DueDate,
	}

	if result := database.DB.Create(&todo); result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create todo",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(todo)
}

// UpdateTodo overwrites the full mutable field set of a task
func UpdateTodo(c *fiber.Ctx) error {
	familyID := middleware.GetFamilyID(c)
	todoID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid todo ID",
		})
	}

	var todo models.Todo
	if result := database.DB.Where("id = ? AND family_id = ?", todoID, familyID).First(&todo); result.Error != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Todo not found",
		})
	}

	var input models.TodoInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if input.Task == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Task is required",
		})
	}

	todo.Task = input.Task
	todo.Completed = input.Completed
	todo.DueDate = input.DueDate
	if input.UserID != 0 {
		todo.UserID = input.UserID
	}

	if result := database.DB.Save(&todo); result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update todo",
		})
	}

	return c.JSON(todo)
}

// ToggleTodo updates only the completed flag of a task
func ToggleTodo(c *fiber.Ctx) error {
	familyID := middleware.GetFamilyID(c)
	todoID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid todo ID",
		})
	}

	var todo models.Todo
	if result := database.DB.Where("id = ? AND family_id = ?", todoID, familyID).First(&todo); result.Error != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Todo not found",
		})
	}

	var input models.TodoToggle
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if result := database.DB.Model(&todo).Update("completed", input.Completed); result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update todo",
		})
	}

	return c.JSON(todo)
}

// DeleteTodo removes a task from the caller's family
func DeleteTodo(c *fiber.Ctx) error {
	familyID := middleware.GetFamilyID(c)
	todoID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid todo ID",
		})
	}

	var todo models.Todo
	if result := database.DB.Where("id = ? AND family_id = ?", todoID, familyID).First(&todo); result.Error != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Todo not found",
		})
	}

	if result := database.DB.Delete(&todo); result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete todo",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
