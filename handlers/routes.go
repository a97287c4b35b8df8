package handlers

import (
	"github.com/gofiber/fiber/v2"

	"familyhub/middleware"
)

// RegisterRoutes mounts the full API surface on app. Tests use the same
// routing as the server binary.
func RegisterRoutes(app *fiber.App) {
	api := app.Group("/api")

	api.Get("/health", Health)

	// Public auth routes
	auth := api.Group("/auth")
	auth.Post("/register", Register)
	auth.Post("/join", Join)
	auth.Post("/login", Login)

	// Everything below requires a valid bearer token
	protected := api.Group("", middleware.AuthRequired())

	family := protected.Group("/family")
	family.Get("/info", GetFamilyInfo)
	family.Get("/members", ListFamilyMembers)

	events := protected.Group("/events")
	events.Get("/", ListEvents)
	events.Post("/", CreateEvent)
	events.Put("/:id", UpdateEvent)
	events.Delete("/:id", DeleteEvent)

	shopping := protected.Group("/shopping")
	shopping.Get("/", ListShoppingLists)
	shopping.Post("/", CreateShoppingList)
	shopping.Get("/:listId/items", ListShoppingItems)
	shopping.Post("/:listId/items", AddShoppingItem)
	shopping.Patch("/items/:itemId", ToggleShoppingItem)
	shopping.Delete("/items/:itemId", DeleteShoppingItem)
	shopping.Delete("/:listId", DeleteShoppingList)

	todos := protected.Group("/todos")
	todos.Get("/", ListTodos)
	todos.Post("/", CreateTodo)
	todos.Put("/:id", UpdateTodo)
	todos.Patch("/:id", ToggleTodo)
	todos.Delete("/:id", DeleteTodo)

	meals := protected.Group("/meals")
	meals.Get("/", ListMeals)
	meals.Post("/", CreateMeal)
	meals.Put("/:id", UpdateMeal)
	meals.Delete("/:id", DeleteMeal)

	notes := protected.Group("/notes")
	notes.Get("/", ListNotes)
	notes.Post("/", CreateNote)
	notes.Put("/:id", UpdateNote)
	notes.Delete("/:id", DeleteNote)

	reminders := protected.Group("/reminders")
	reminders.Get("/", ListReminders)
	reminders.Post("/", CreateReminder)
	reminders.Put("/:id", UpdateReminder)
	reminders.Delete("/:id", DeleteReminder)
}
