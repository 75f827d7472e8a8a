package entity

import (
	"gorm.io/gorm"
)

// Rating is one user's score for one store. The composite unique index
// makes (user, store) the upsert key: a resubmission updates the row
// in place, it never creates a second one.
type Rating struct {
	gorm.Model
	Score int `gorm:"not null" json:"score"`

	UserID uint `gorm:"not null;uniqueIndex:idx_user_store_rating" json:"userId"`
	User   User `gorm:"foreignKey:UserID" json:"-"`

	StoreID uint  `gorm:"not null;uniqueIndex:idx_user_store_rating" json:"storeId"`
	Store   Store `gorm:"foreignKey:StoreID" json:"-"`
}
