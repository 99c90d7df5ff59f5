package models

import "time"

// TeamMember places a user's profile on the public welcome page.
// The profile link is cleared when the profile is removed; such members are
// no longer listed.
type TeamMember struct {
	ID        int64
	ProfileID *int64
	Position  int
	CreatedAt time.Time

	// Filled from the linked profile and user when listing.
	Name      string
	JobTitle  string
	Picture   string
	About     string
	Facebook  string
	Instagram string
	Twitter   string
	Linkedin  string
}

// ContactMessage is a submission of the public contact form.
type ContactMessage struct {
	ID        int64
	Name      string
	Email     string
	Subject   string
	Message   string
	CreatedAt time.Time
}
