package entity

import "github.com/adventboard/backend/pkg/enum"

type UserRole string

var (
	RoleAdmin = enum.New(UserRole("Admin"))
	RoleUser  = enum.New(UserRole("User"))
)

var AdminRoles = []UserRole{RoleAdmin}

type User struct {
	Base
	Email        string `gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string `gorm:"not null"`
	IsAdmin      bool   `gorm:"not null;default:false"`
}

func (u User) Role() UserRole {
	if u.IsAdmin {
		return RoleAdmin
	}
	return RoleUser
}
