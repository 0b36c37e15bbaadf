package models

import (
	"errors"
	"testing"
	"time"
)

// fixedNow is the frozen current date used across derived-operation tests.
var fixedNow = time.Date(2020, time.July, 1, 0, 0, 0, 0, time.UTC)

func TestUser_Age_TruncatedYears(t *testing.T) {
	u := &User{Birthdate: "1981-01-01"}
	age, err := u.Age(fixedNow)
	if err != nil {
		t.Fatalf("Age: %v", err)
	}
	if age != 39 {
		t.Fatalf("Age = %d, want 39", age)
	}
}

func TestUser_Age_UnsetBirthdate(t *testing.T) {
	u := &User{}
	_, err := u.Age(fixedNow)
	if err == nil {
		t.Fatalf("expected error for unset birthdate")
	}
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ParseError, got %T: %v", err, err)
	}
}

func TestUser_Age_UnparseableBirthdate(t *testing.T) {
	u := &User{Birthdate: "19th of April"}
	_, err := u.Age(fixedNow)
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ParseError, got %T: %v", err, err)
	}
	if pe.Value != "19th of April" {
		t.Fatalf("ParseError.Value = %q", pe.Value)
	}
}

func TestUser_AboutMe_ExactFormat(t *testing.T) {
	u := &User{
		Username:  "Alice",
		Email:     "alice@example.com",
		Bio:       "A bit about me",
		Birthdate: "1981-01-01",
	}
	got, err := u.AboutMe(fixedNow)
	if err != nil {
		t.Fatalf("AboutMe: %v", err)
	}
	want := "alice (39): A bit about me. Reach me at: alice@example.com"
	if got != want {
		t.Fatalf("AboutMe = %q, want %q", got, want)
	}
}

func TestUser_AboutMe_LowercasesUsername(t *testing.T) {
	u := &User{
		Username:  "JOE",
		Email:     "joe@example.com",
		Bio:       "hi",
		Birthdate: "1981-01-01",
	}
	got, err := u.AboutMe(fixedNow)
	if err != nil {
		t.Fatalf("AboutMe: %v", err)
	}
	if got[:3] != "joe" {
		t.Fatalf("username not lowercased: %q", got)
	}
}

func TestUser_AboutMe_MissingFields(t *testing.T) {
	u := &User{Username: "Alice", Birthdate: "1981-01-01"}
	_, err := u.AboutMe(fixedNow)
	if err == nil {
		t.Fatalf("expected error for missing fields")
	}
	var mf *MissingFieldError
	if !errors.As(err, &mf) {
		t.Fatalf("expected *MissingFieldError, got %T: %v", err, err)
	}
	if len(mf.Fields) != 2 || mf.Fields[0] != "email" || mf.Fields[1] != "bio" {
		t.Fatalf("unexpected missing fields: %v", mf.Fields)
	}

	// Each required field absent on its own must also fail.
	complete := User{Username: "a", Email: "e", Bio: "b", Birthdate: "1981-01-01"}
	for _, clear := range []func(*User){
		func(u *User) { u.Username = "" },
		func(u *User) { u.Email = "" },
		func(u *User) { u.Bio = "" },
		func(u *User) { u.Birthdate = "" },
	} {
		c := complete
		clear(&c)
		if _, err := c.AboutMe(fixedNow); err == nil {
			t.Fatalf("expected MissingFieldError for %+v", c)
		}
	}
}

func TestUser_AboutMe_UnparseableBirthdatePropagates(t *testing.T) {
	u := &User{Username: "a", Email: "e", Bio: "b", Birthdate: "not-a-date"}
	_, err := u.AboutMe(fixedNow)
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ParseError, got %T: %v", err, err)
	}
}

func TestUser_DerivedMethodsDoNotMutate(t *testing.T) {
	u := &User{Username: "Alice", Email: "a@e", Bio: "b", Birthdate: "1981-01-01"}
	before := *u
	if _, err := u.Age(fixedNow); err != nil {
		t.Fatalf("Age: %v", err)
	}
	if _, err := u.AboutMe(fixedNow); err != nil {
		t.Fatalf("AboutMe: %v", err)
	}
	if *u != before {
		t.Fatalf("derived methods mutated the record: %+v != %+v", *u, before)
	}
}
