package forms

import (
	"regexp"

	"github.com/dmitrijs2005/catalogkeeper/internal/server/models"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const (
	MsgBadCredentials  = "The username and/or password you specified are not correct."
	MsgUsernameTaken   = "A user with that username already exists."
	MsgCurrentPassword = "Please type your current password."
)

var usernameRe = regexp.MustCompile(`^[\w.@+-]+$`)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
			return usernameRe.MatchString(fl.Field().String())
		})
	}
}

type LoginForm struct {
	Login    string `form:"login" binding:"required"`
	Password string `form:"password" binding:"required"`
	Next     string `form:"next"`
}

func (f *LoginForm) Fields() []Field {
	return []Field{{"login", "Username"}, {"password", "Password"}}
}

type SignupForm struct {
	Username  string `form:"username" binding:"required,max=150,username"`
	Email     string `form:"email" binding:"omitempty,email"`
	Password1 string `form:"password1" binding:"required,min=8"`
	Password2 string `form:"password2" binding:"required,eqfield=Password1"`
}

func (f *SignupForm) Fields() []Field {
	return []Field{{"username", "Username"}, {"email", "E-mail"}, {"password1", "Password"}, {"password2", "Password (again)"}}
}

type PasswordChangeForm struct {
	OldPassword string `form:"oldpassword" binding:"required"`
	Password1   string `form:"password1" binding:"required,min=8"`
	Password2   string `form:"password2" binding:"required,eqfield=Password1"`
}

func (f *PasswordChangeForm) Fields() []Field {
	return []Field{{"oldpassword", "Current Password"}, {"password1", "New Password"}, {"password2", "New Password (again)"}}
}

// ProfileForm edits the public profile. The picture upload is handled by
// the caller under the key ProfilePictureField.
type ProfileForm struct {
	JobTitle  string `form:"job_title" binding:"required,max=100"`
	About     string `form:"about" binding:"max=250"`
	Facebook  string `form:"facebook" binding:"omitempty,url"`
	Instagram string `form:"instagram" binding:"omitempty,url"`
	Twitter   string `form:"twitter" binding:"omitempty,url"`
	Linkedin  string `form:"linkedin" binding:"omitempty,url"`
}

const ProfilePictureField = "profile_pic"

func (f *ProfileForm) Fields() []Field {
	return []Field{{ProfilePictureField, "Profile pic"}, {"job_title", "Job title"}, {"about", "About"},
		{"facebook", "Facebook"}, {"instagram", "Instagram"}, {"twitter", "Twitter"}, {"linkedin", "Linkedin"}}
}

func (f *ProfileForm) Fill(p *models.Profile) {
	f.JobTitle, f.About = p.JobTitle, p.About
	f.Facebook, f.Instagram, f.Twitter, f.Linkedin = p.Facebook, p.Instagram, p.Twitter, p.Linkedin
}

func (f *ProfileForm) Apply(p *models.Profile) {
	p.JobTitle, p.About = f.JobTitle, f.About
	p.Facebook, p.Instagram, p.Twitter, p.Linkedin = f.Facebook, f.Instagram, f.Twitter, f.Linkedin
}

// UserUpdateForm edits the account fields shown on the profile page. It is
// submitted together with ProfileForm.
type UserUpdateForm struct {
	Username  string `form:"username" binding:"required,max=150,username"`
	FirstName string `form:"first_name" binding:"max=150"`
	LastName  string `form:"last_name" binding:"max=150"`
	Email     string `form:"email" binding:"omitempty,email"`
}

func (f *UserUpdateForm) Fields() []Field {
	return []Field{{"username", "Username"}, {"first_name", "First name"}, {"last_name", "Last name"}, {"email", "Email address"}}
}

func (f *UserUpdateForm) Fill(u *models.User) {
	f.Username, f.FirstName, f.LastName, f.Email = u.Username, u.FirstName, u.LastName, u.Email
}

func (f *UserUpdateForm) Apply(u *models.User) {
	u.Username, u.FirstName, u.LastName, u.Email = f.Username, f.FirstName, f.LastName, f.Email
}

type ContactForm struct {
	Name    string `form:"name" binding:"required,max=100"`
	Email   string `form:"email" binding:"required,email"`
	Subject string `form:"subject" binding:"required,max=150"`
	Message string `form:"message" binding:"required"`
}

func (f *ContactForm) Fields() []Field {
	return []Field{{"name", "Name"}, {"email", "Email"}, {"subject", "Subject"}, {"message", "Message"}}
}

func (f *ContactForm) ContactMessage() *models.ContactMessage {
	return &models.ContactMessage{Name: f.Name, Email: f.Email, Subject: f.Subject, Message: f.Message}
}
