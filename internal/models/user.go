package models

import (
	"strings"
	"time"
)

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	IsStaff   bool      `json:"isStaff"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FullName composes a display name from the account's first/last name.
// Kept pure so view construction can be tested without persistence.
func FullName(first, last string) string {
	return strings.TrimSpace(first + " " + last)
}
