package repository

import (
	"github.com/Avadhut20/roxiler/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RatingRepository owns all access to the ratings table. Methods that
// participate in the submit transaction take the transaction handle so
// the upsert and the recompute share one scope.
type RatingRepository struct {
	DB *gorm.DB
}

func NewRatingRepository(db *gorm.DB) *RatingRepository {
	return &RatingRepository{DB: db}
}

// Upsert inserts the rating or, when the (user_id, store_id) row already
// exists, updates its score in place. A single conditional write keyed
// by the composite unique index; two concurrent submissions for the same
// pair serialize on it instead of racing a find-then-branch.
func (r *RatingRepository) Upsert(tx *gorm.DB, rating *entity.Rating) error {
	return tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "store_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"score":      rating.Score,
			"updated_at": tx.NowFunc(),
		}),
	}).Create(rating).Error
}

// StoreAggregate is the live count/mean over a store's rating rows.
type StoreAggregate struct {
	Count int64
	Avg   float64
}

// AggregateForStore recomputes the aggregate from the source rows.
func (r *RatingRepository) AggregateForStore(tx *gorm.DB, storeID uint) (StoreAggregate, error) {
	var agg StoreAggregate
	err := tx.Model(&entity.Rating{}).
		Where("store_id = ?", storeID).
		Select("COUNT(*) AS count, COALESCE(AVG(score), 0) AS avg").
		Scan(&agg).Error
	return agg, err
}

func (r *RatingRepository) FindByUserAndStore(userID, storeID uint) (*entity.Rating, error) {
	var rating entity.Rating
	if err := r.DB.Where("user_id = ? AND store_id = ?", userID, storeID).First(&rating).Error; err != nil {
		return nil, err
	}
	return &rating, nil
}

// ListByUserForStores loads one user's ratings across the given stores:
// at most one row per store, thanks to the composite unique index.
func (r *RatingRepository) ListByUserForStores(userID uint, storeIDs []uint) ([]entity.Rating, error) {
	var ratings []entity.Rating
	if len(storeIDs) == 0 {
		return ratings, nil
	}
	err := r.DB.Where("user_id = ? AND store_id IN ?", userID, storeIDs).Find(&ratings).Error
	return ratings, err
}

func (r *RatingRepository) CountAll() (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Rating{}).Count(&count).Error
	return count, err
}
