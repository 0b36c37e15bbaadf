package models

import (
	"fmt"
	"strings"
)

// ParseError reports a birthdate that is unset or not a valid calendar date.
type ParseError struct {
	Value string // the raw birthdate text, possibly empty
	Err   error
}

func (e *ParseError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("parse birthdate: %v", e.Err)
	}
	return fmt.Sprintf("parse birthdate %q: %v", e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// MissingFieldError reports required fields that were unset when a derived
// operation needed them. Fields holds the lowercase field names, in the
// order username, email, bio, birthdate.
type MissingFieldError struct {
	Fields []string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Fields, ", "))
}
