package handlers

import "strings"

// isUniqueViolation reports whether err is a SQLite UNIQUE constraint
// failure (duplicate email, invite-code collision).
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint")
}
