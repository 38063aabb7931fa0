package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const DefaultContactStage = "Discovery"

type Contact struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Stage           string `json:"stage"`
	LastContactedOn string `json:"lastContactedOn"`
}

type ContactInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// NewContact builds a contact from caller input. Name and email are trimmed
// and must be non-empty; stage and lastContactedOn take their defaults.
func NewContact(input ContactInput, now time.Time) (Contact, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return Contact{}, &ValidationError{Field: "name"}
	}
	email := strings.TrimSpace(input.Email)
	if email == "" {
		return Contact{}, &ValidationError{Field: "email"}
	}

	return Contact{
		ID:              uuid.NewString(),
		Name:            name,
		Email:           email,
		Phone:           strings.TrimSpace(input.Phone),
		Stage:           DefaultContactStage,
		LastContactedOn: FormatTimestamp(now),
	}, nil
}
