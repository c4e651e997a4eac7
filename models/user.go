package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Username  string `gorm:"uniqueIndex;size:64" json:"username"`
	Email     string `gorm:"uniqueIndex;size:128" json:"email"`
	Password  string `json:"-"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Bio       string `json:"bio"`
	Image     string `json:"image"`
}

// Profile is the public author projection embedded in article and comment
// responses. It must never carry the email or the password hash.
type Profile struct {
	Username  string `json:"username"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Bio       string `json:"bio"`
	Image     string `json:"image"`
}

func (u *User) Profile() Profile {
	return Profile{
		Username:  u.Username,
		Firstname: u.Firstname,
		Lastname:  u.Lastname,
		Bio:       u.Bio,
		Image:     u.Image,
	}
}
