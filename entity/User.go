package entity

import (
	"gorm.io/gorm"
)

// User is a staff account for the back-office endpoints.
type User struct {
	gorm.Model
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Password string `json:"-"`
}
