package domain

import (
	"errors"
	"strings"
)

// Character aggregate errors
var (
	ErrCharacterNotFound = errors.New("character not found")
	ErrNotCharacterOwner = errors.New("character not found or not owned by user")
)

// Inventory errors
var (
	ErrItemNotFound      = errors.New("item not found")
	ErrInvalidItemDelta  = errors.New("item quantity change must be a non-zero integer")
	ErrRemoveDeltaNotNeg = errors.New("removal delta must be negative")
)

// Spellbook errors
var (
	ErrSpellNotFound = errors.New("spell not found")
)

// Skill errors
var (
	ErrSkillNotFound           = errors.New("skill not found")
	ErrSkillProficiencyMissing = errors.New("character has no proficiency in this skill")
)

// FieldError is one failed validation check.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates every failed check of a candidate character.
// Checks never short-circuit, so a caller can show the user all problems
// with one submission at once. Fields keeps check order.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Message
	}
	return strings.Join(msgs, "; ")
}

// Add records a failed check.
func (e *ValidationError) Add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// HasErrors reports whether any check failed.
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}
