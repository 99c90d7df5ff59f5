// Package models defines the records persisted by the server.
package models

import "time"

// User is an account of the back office. Username is unique.
type User struct {
	ID           int64
	Username     string
	Email        string
	FirstName    string
	LastName     string
	PasswordHash []byte
	CreatedAt    time.Time
}

// FullName joins first and last name, falling back to the username.
func (u *User) FullName() string {
	switch {
	case u.FirstName != "" && u.LastName != "":
		return u.FirstName + " " + u.LastName
	case u.FirstName != "":
		return u.FirstName
	case u.LastName != "":
		return u.LastName
	default:
		return u.Username
	}
}

// Profile holds the public details of a User. Exactly one exists per user;
// it is created together with the account.
type Profile struct {
	ID         int64
	UserID     int64
	JobTitle   string
	Picture    string
	About      string
	Facebook   string
	Instagram  string
	Twitter    string
	Linkedin   string
	CreatedAt  time.Time
	LastUpdate time.Time
}
