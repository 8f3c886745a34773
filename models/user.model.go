package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Username       string `gorm:"unique;not null" json:"username"`
	Email          string `gorm:"unique;not null" json:"email"`
	Password       string `gorm:"not null" json:"-"` // bcrypt hash, never serialized
	Bio            string `gorm:"type:text;default:''" json:"bio"`
	ProfilePicture string `gorm:"default:''" json:"profilePicture"`
	IsAdmin        bool   `gorm:"default:false" json:"isAdmin"`
}
