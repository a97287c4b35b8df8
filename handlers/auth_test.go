package handlers

import (
	"net/http"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var inviteCodePattern = regexp.MustCompile(`^[A-Z0-9]{6}$`)

func TestRegisterCreatesFamilyWithInviteCode(t *testing.T) {
	app := setupApp(t)

	auth := registerFamily(t, app, "Kowalski", "jan@example.com", "secret1", "Jan")

	assert.NotEmpty(t, auth.Token)
	assert.Regexp(t, inviteCodePattern, auth.Family.InviteCode)
	assert.Equal(t, "Kowalski", auth.Family.Name)
	assert.Equal(t, "jan@example.com", auth.User.Email)
	assert.Equal(t, "admin", string(auth.User.Role))
	assert.Equal(t, "#3b82f6", auth.User.Color)
}

func TestRegisterValidation(t *testing.T) {
	app := setupApp(t)

	cases := []struct {
		name string
		body map[string]string
	}{
		{"missing family name", map[string]string{"email": "a@b.com", "password": "secret1", "name": "A"}},
		{"missing email", map[string]string{"familyName": "F", "password": "secret1", "name": "A"}},
		{"missing name", map[string]string{"familyName": "F", "email": "a@b.com", "password": "secret1"}},
		{"short password", map[string]string{"familyName": "F", "email": "a@b.com", "password": "12345", "name": "A"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, raw := doJSON(t, app, "POST", "/api/auth/register", "", tc.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			errorMessage(t, raw)
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	app := setupApp(t)

	registerFamily(t, app, "Kowalski", "jan@example.com", "secret1", "Jan")

	resp, raw := doJSON(t, app, "POST", "/api/auth/register", "", map[string]string{
		"familyName": "Nowak",
		"email":      "jan@example.com",
		"password":   "secret2",
		"name":       "Janek",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	errorMessage(t, raw)
}

func TestJoinAttachesToSameFamily(t *testing.T) {
	app := setupApp(t)

	jan := registerFamily(t, app, "Kowalski", "jan@example.com", "secret1", "Jan")

	// Lowercase input must be accepted.
	anna := joinFamily(t, app, strings.ToLower(jan.Family.InviteCode), "anna@example.com", "secret2", "Anna")

	assert.Equal(t, jan.Family.ID, anna.Family.ID)
	assert.Equal(t, "member", string(anna.User.Role))
	assert.Equal(t, jan.Family.InviteCode, anna.Family.InviteCode)
}

func TestJoinUnknownInviteCode(t *testing.T) {
	app := setupApp(t)

	resp, raw := doJSON(t, app, "POST", "/api/auth/join", "", map[string]string{
		"inviteCode": "ZZZZZZ",
		"email":      "anna@example.com",
		"password":   "secret2",
		"name":       "Anna",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	errorMessage(t, raw)
}

func TestLoginDoesNotLeakWhichFieldWasWrong(t *testing.T) {
	app := setupApp(t)

	registerFamily(t, app, "Kowalski", "jan@example.com", "secret1", "Jan")

	respWrongPass, rawWrongPass := doJSON(t, app, "POST", "/api/auth/login", "", map[string]string{
		"email":    "jan@example.com",
		"password": "wrong-password",
	})
	respNoUser, rawNoUser := doJSON(t, app, "POST", "/api/auth/login", "", map[string]string{
		"email":    "nobody@example.com",
		"password": "secret1",
	})

	assert.Equal(t, http.StatusUnauthorized, respWrongPass.StatusCode)
	assert.Equal(t, http.StatusUnauthorized, respNoUser.StatusCode)
	assert.Equal(t, errorMessage(t, rawWrongPass), errorMessage(t, rawNoUser))
}

func TestLoginReturnsUserAndFamily(t *testing.T) {
	app := setupApp(t)

	reg := registerFamily(t, app, "Kowalski", "jan@example.com", "secret1", "Jan")

	resp, raw := doJSON(t, app, "POST", "/api/auth/login", "", map[string]string{
		"email":    "jan@example.com",
		"password": "secret1",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var auth AuthResponse
	decodeJSON(t, raw, &auth)
	assert.NotEmpty(t, auth.Token)
	assert.Equal(t, reg.User.ID, auth.User.ID)
	assert.Equal(t, reg.Family.ID, auth.Family.ID)
	assert.Equal(t, reg.Family.InviteCode, auth.Family.InviteCode)
}
