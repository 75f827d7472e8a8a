package entity

import (
	"gorm.io/gorm"
)

// Store carries denormalized rating aggregates. OverallRating and
// TotalRatings must always match the store's Rating rows; they are
// rewritten inside the same transaction as every rating upsert.
// OverallRating is nil while the store has no ratings — a store with
// no ratings is unrated, not zero-starred.
type Store struct {
	gorm.Model
	Name    string `gorm:"not null" json:"name"`
	Email   string `gorm:"uniqueIndex;not null" json:"email"`
	Address string `json:"address"`

	OwnerID uint `gorm:"not null" json:"ownerId"` // owner (users.id), role OWNER
	Owner   User `gorm:"foreignKey:OwnerID" json:"-"`

	OverallRating *float64 `json:"overallRating"`
	TotalRatings  int64    `gorm:"not null;default:0" json:"totalRatings"`

	Ratings []Rating `gorm:"foreignKey:StoreID" json:"-"`
}
