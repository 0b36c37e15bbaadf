package models

import (
	"fmt"
	"strings"
	"time"
)

// BirthdateLayout is the calendar-date layout stored in User.Birthdate.
const BirthdateLayout = "2006-01-02"

// Roles assignable to a user. New users default to RoleEndUser.
const (
	RoleEndUser = "end user"
	RoleAdmin   = "admin"
)

// daysPerYear is the deliberate 365-day-year approximation used by Age.
// Expected ages elsewhere in the system were derived under it, so it stays
// a truncated division rather than a calendar-aware computation.
const daysPerYear = 365

// User represents an end user in the system.
// It maps to the `users` table in SQLite. Fields are assigned individually
// after construction; the derived methods below never mutate the receiver.
type User struct {
	ID        int64  `db:"id" json:"id"`
	PublicID  string `db:"public_id" json:"public_id"`
	Username  string `db:"username" json:"username"`
	Email     string `db:"email" json:"email"`
	Bio       string `db:"bio" json:"bio"`
	Birthdate string `db:"birthdate" json:"birthdate"`
	Role      string `db:"role" json:"role"`
}

// Age returns whole years elapsed between now and the user's birthdate,
// computed as elapsed days divided by 365 with integer truncation.
// The current date is supplied by the caller so the result is deterministic.
// Returns a *ParseError when Birthdate is unset or not a calendar date.
func (u *User) Age(now time.Time) (int, error) {
	if strings.TrimSpace(u.Birthdate) == "" {
		return 0, &ParseError{Value: u.Birthdate, Err: fmt.Errorf("birthdate is not set")}
	}
	birth, err := time.Parse(BirthdateLayout, u.Birthdate)
	if err != nil {
		return 0, &ParseError{Value: u.Birthdate, Err: err}
	}
	days := int(now.Sub(birth).Hours() / 24)
	return days / daysPerYear, nil
}

// AboutMe renders the user's self-description:
//
//	"{username_lowercased} ({age}): {bio}. Reach me at: {email}"
//
// All of Username, Email, Bio and Birthdate must be set; otherwise a
// *MissingFieldError naming every absent field is returned. An unparseable
// birthdate surfaces as the same *ParseError Age would return.
func (u *User) AboutMe(now time.Time) (string, error) {
	var missing []string
	if u.Username == "" {
		missing = append(missing, "username")
	}
	if u.Email == "" {
		missing = append(missing, "email")
	}
	if u.Bio == "" {
		missing = append(missing, "bio")
	}
	if u.Birthdate == "" {
		missing = append(missing, "birthdate")
	}
	if len(missing) > 0 {
		return "", &MissingFieldError{Fields: missing}
	}
	age, err := u.Age(now)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s (%d): %s. Reach me at: %s", strings.ToLower(u.Username), age, u.Bio, u.Email), nil
}
