package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"familyhub/models"
)

func TestEventMonthFilter(t *testing.T) {
	app := setupApp(t)
	jan := registerFamily(t, app, "Kowalski", "jan@example.com", "secret1", "Jan")

	resp, raw := doJSON(t, app, "POST", "/api/events", jan.Token, map[string]string{
		"title":     "Lekarz",
		"eventDate": "2024-05-10",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, "create failed: %s", raw)

	_, raw = doJSON(t, app, "POST", "/api/events", jan.Token, map[string]string{
		"title":     "Urodziny",
		"eventDate": "2024-06-01",
	})

	resp, raw = doJSON(t, app, "GET", "/api/events?month=05&year=2024", jan.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var events []models.EventResponse
	decodeJSON(t, raw, &events)
	require.Len(t, events, 1)
	assert.Equal(t, "Lekarz", events[0].Title)
	assert.Equal(t, "Jan", events[0].UserName)

	// Single-digit month is zero-padded before filtering.
	_, raw = doJSON(t, app, "GET", "/api/events?month=5&year=2024", jan.Token, nil)
	decodeJSON(t, raw, &events)
	require.Len(t, events, 1)
	assert.Equal(t, "Lekarz", events[0].Title)

	// Unfiltered listing is ordered by date.
	_, raw = doJSON(t, app, "GET", "/api/events", jan.Token, nil)
	decodeJSON(t, raw, &events)
	require.Len(t, events, 2)
	assert.Equal(t, "Lekarz", events[0].Title)
	assert.Equal(t, "Urodziny", events[1].Title)
}

func TestEventValidation(t *testing.T) {
	app := setupApp(t)
	jan := registerFamily(t, app, "Kowalski", "jan@example.com", "secret1", "Jan")

	resp, _ := doJSON(t, app, "POST", "/api/events", jan.Token, map[string]string{
		"title": "No date",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = doJSON(t, app, "POST", "/api/events", jan.Token, map[string]string{
		"eventDate": "2024-05-10",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestEventUpdateOverwritesFields(t *testing.T) {
	app := setupApp(t)
	jan := registerFamily(t, app, "Kowalski", "jan@example.com", "secret1", "Jan")

	_, raw := doJSON(t, app, "POST", "/api/events", jan.Token, map[string]string{
		"title":       "Lekarz",
		"description": "kontrola",
		"eventDate":   "2024-05-10",
		"eventTime":   "09:30",
	})
	var event models.Event
	decodeJSON(t, raw, &event)

	resp, raw := doJSON(t, app, "PUT", fmt.Sprintf("/api/events/%d", event.ID), jan.Token, map[string]string{
		"title":     "Dentysta",
		"eventDate": "2024-05-12",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated models.Event
	decodeJSON(t, raw, &updated)
	assert.Equal(t, "Dentysta", updated.Title)
	assert.Equal(t, "2024-05-12", updated.EventDate)
	// Full overwrite clears fields the request omitted.
	assert.Empty(t, updated.Description)
	assert.Empty(t, updated.EventTime)
}

func TestEventCrossTenantIsolation(t *testing.T) {
	app := setupApp(t)
	jan := registerFamily(t, app, "Kowalski", "jan@example.com", "secret1", "Jan")
	ewa := registerFamily(t, app, "Nowak", "ewa@example.com", "secret2", "Ewa")

	_, raw := doJSON(t, app, "POST", "/api/events", jan.Token, map[string]string{
		"title":     "Lekarz",
		"eventDate": "2024-05-10",
	})
	var event models.Event
	decodeJSON(t, raw, &event)

	// Guessing the id from another family reads nothing...
	_, raw = doJSON(t, app, "GET", "/api/events", ewa.Token, nil)
	var events []models.EventResponse
	decodeJSON(t, raw, &events)
	assert.Empty(t, events)

	// ...and cannot mutate the row.
	resp, _ := doJSON(t, app, "PUT", fmt.Sprintf("/api/events/%d", event.ID), ewa.Token, map[string]string{
		"title":     "Hacked",
		"eventDate": "2024-05-10",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = doJSON(t, app, "DELETE", fmt.Sprintf("/api/events/%d", event.ID), ewa.Token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// The owner still sees the original row.
	_, raw = doJSON(t, app, "GET", "/api/events", jan.Token, nil)
	decodeJSON(t, raw, &events)
	require.Len(t, events, 1)
	assert.Equal(t, "Lekarz", events[0].Title)
}

func TestEventDelete(t *testing.T) {
	app := setupApp(t)
	jan := registerFamily(t, app, "Kowalski", "jan@example.com", "secret1", "Jan")

	_, raw := doJSON(t, app, "POST", "/api/events", jan.Token, map[string]string{
		"title":     "Lekarz",
		"eventDate": "2024-05-10",
	})
	var event models.Event
	decodeJSON(t, raw, &event)

	resp, _ := doJSON(t, app, "DELETE", fmt.Sprintf("/api/events/%d", event.ID), jan.Token, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	_, raw = doJSON(t, app, "GET", "/api/events", jan.Token, nil)
	var events []models.EventResponse
	decodeJSON(t, raw, &events)
	assert.Empty(t, events)
}
