package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"familyhub/models"
)

func TestRemindersOrderedByRemindAt(t *testing.T) {
	app := setupApp(t)
	jan := registerFamily(t, app, "Kowalski", "jan@example.com", "secret1", "Jan")

	resp, raw := doJSON(t, app, "POST", "/api/reminders", jan.Token, map[string]string{
		"title":    "Przegląd auta",
		"remindAt": "2024-06-01T10:00",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, "create failed: %s", raw)

	doJSON(t, app, "POST", "/api/reminders", jan.Token, map[string]string{
		"title":      "Leki",
		"remindAt":   "2024-05-01T08:00",
		"repeatType": "daily",
	})

	_, raw = doJSON(t, app, "GET", "/api/reminders", jan.Token, nil)
	var reminders []models.ReminderResponse
	decodeJSON(t, raw, &reminders)
	require.Len(t, reminders, 2)
	assert.Equal(t, "Leki", reminders[0].Title)
	assert.Equal(t, "daily", reminders[0].RepeatType)
	assert.False(t, reminders[0].Sent)
	assert.Equal(t, "Przegląd auta", reminders[1].Title)
	assert.Equal(t, "Jan", reminders[1].UserName)
}

func TestReminderValidation(t *testing.T) {
	app := setupApp(t)
	jan := registerFamily(t, app, "Kowalski", "jan@example.com", "secret1", "Jan")

	resp, _ := doJSON(t, app, "POST", "/api/reminders", jan.Token, map[string]string{"title": "No time"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = doJSON(t, app, "POST", "/api/reminders", jan.Token, map[string]string{"remindAt": "2024-05-01T08:00"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = doJSON(t, app, "POST", "/api/reminders", jan.Token, map[string]string{
		"title":      "Bad repeat",
		"remindAt":   "2024-05-01T08:00",
		"repeatType": "yearly",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestReminderUpdateDeleteTenancy(t *testing.T) {
	app := setupApp(t)
	jan := registerFamily(t, app, "Kowalski", "jan@example.com", "secret1", "Jan")
	ewa := registerFamily(t, app, "Nowak", "ewa@example.com", "secret2", "Ewa")

	_, raw := doJSON(t, app, "POST", "/api/reminders", jan.Token, map[string]string{
		"title":    "Dentysta",
		"remindAt": "2024-07-01T12:00",
	})
	var reminder models.Reminder
	decodeJSON(t, raw, &reminder)

	resp, raw := doJSON(t, app, "PUT", fmt.Sprintf("/api/reminders/%d", reminder.ID), jan.Token, map[string]string{
		"title":      "Dentysta - przełożone",
		"remindAt":   "2024-07-08T12:00",
		"repeatType": "monthly",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeJSON(t, raw, &reminder)
	assert.Equal(t, "Dentysta - przełożone", reminder.Title)
	assert.Equal(t, "monthly", reminder.RepeatType)

	resp, _ = doJSON(t, app, "PUT", fmt.Sprintf("/api/reminders/%d", reminder.ID), ewa.Token, map[string]string{
		"title":    "Hacked",
		"remindAt": "2024-07-08T12:00",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = doJSON(t, app, "DELETE", fmt.Sprintf("/api/reminders/%d", reminder.ID), ewa.Token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = doJSON(t, app, "DELETE", fmt.Sprintf("/api/reminders/%d", reminder.ID), jan.Token, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}
