package models

import (
	"time"

	"gorm.io/gorm"
)

// Roles recognised by the API
const (
	RoleUser   = "USER"
	RoleEditor = "EDITOR"
	RoleAdmin  = "ADMIN"
)

type User struct {
	gorm.Model
	Name      string     `gorm:"default:''"`
	Email     string     `gorm:"unique;not null"`
	Role      string     `gorm:"default:'USER'"` // USER, EDITOR, ADMIN
	Password  string     `gorm:"not null"`
	LastLogin *time.Time `json:"last_login"`
	IsDeleted bool       `gorm:"default:false"`
}

// IsPrivileged reports whether the role may see drafts and manage content
func IsPrivileged(role string) bool {
	return role == RoleAdmin || role == RoleEditor
}
