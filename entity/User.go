package entity

import (
	"gorm.io/gorm"
)

const (
	RoleAdmin = "ADMIN"
	RoleOwner = "OWNER"
	RoleUser  = "USER"
)

// ValidRole reports whether r is one of the three known roles.
func ValidRole(r string) bool {
	return r == RoleAdmin || r == RoleOwner || r == RoleUser
}

type User struct {
	gorm.Model
	Name     string `json:"name"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"`
	Address  string `json:"address"`
	Role     string `gorm:"not null;default:USER" json:"role"`

	// Relations — preload only when needed
	StoresOwned []Store  `gorm:"foreignKey:OwnerID" json:"-"`
	Ratings     []Rating `gorm:"foreignKey:UserID" json:"-"`
}
