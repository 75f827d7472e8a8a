package services

import (
	"errors"
	"fmt"
	"math"

	"gorm.io/gorm"

	"github.com/Avadhut20/roxiler/entity"
	"github.com/Avadhut20/roxiler/pkg/logger"
	"github.com/Avadhut20/roxiler/repository"
)

// RatingService keeps a store's denormalized overall_rating/total_ratings
// consistent with its rating rows. Every submission runs upsert and
// recompute in one transaction, so a failure anywhere rolls the whole
// write back and the committed state never drifts.
type RatingService struct {
	db      *gorm.DB
	stores  *repository.StoreRepository
	ratings *repository.RatingRepository
	log     *logger.Logger
}

func NewRatingService(db *gorm.DB, stores *repository.StoreRepository, ratings *repository.RatingRepository, log *logger.Logger) *RatingService {
	return &RatingService{db: db, stores: stores, ratings: ratings, log: log}
}

// RatingResult is the post-commit snapshot returned to the submitter.
type RatingResult struct {
	StoreID       uint     `json:"storeId"`
	OverallRating *float64 `json:"overallRating"`
	TotalRatings  int64    `json:"totalRatings"`
	UserRating    int      `json:"userRating"`
}

// Submit records the user's score for the store, updating the existing
// rating in place if one exists. Resubmitting the same score still runs
// the full recompute; that is simpler than diffing and always correct.
// Safe to retry on failure: the upsert is idempotent.
func (s *RatingService) Submit(userID, storeID uint, score int) (*RatingResult, error) {
	if score < 1 || score > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", ErrInvalidInput)
	}
	if _, err := s.stores.FindByID(storeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: store %d", ErrNotFound, storeID)
		}
		return nil, err
	}

	var result RatingResult
	err := s.db.Transaction(func(tx *gorm.DB) error {
		// Serialize per-store submissions: without the row lock, two
		// transactions by different users can each aggregate before the
		// other commits and the later store write persists a stale count.
		if _, err := s.stores.LockByID(tx, storeID); err != nil {
			return err
		}

		rating := &entity.Rating{UserID: userID, StoreID: storeID, Score: score}
		if err := s.ratings.Upsert(tx, rating); err != nil {
			return err
		}

		agg, err := s.ratings.AggregateForStore(tx, storeID)
		if err != nil {
			return err
		}

		overall := RoundRating(agg.Avg)
		if err := tx.Model(&entity.Store{}).Where("id = ?", storeID).
			Updates(map[string]any{
				"overall_rating": overall,
				"total_ratings":  agg.Count,
			}).Error; err != nil {
			return err
		}

		result = RatingResult{
			StoreID:       storeID,
			OverallRating: &overall,
			TotalRatings:  agg.Count,
			UserRating:    score,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("rating submitted",
		"userId", userID, "storeId", storeID, "score", score,
		"totalRatings", result.TotalRatings)
	return &result, nil
}

// Reconcile recomputes a store's denormalized fields from its rating
// rows. Repair operation for recovering from detected drift; a store
// with no ratings goes back to the unrated state.
func (s *RatingService) Reconcile(storeID uint) (*entity.Store, error) {
	if _, err := s.stores.FindByID(storeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: store %d", ErrNotFound, storeID)
		}
		return nil, err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := s.stores.LockByID(tx, storeID); err != nil {
			return err
		}

		agg, err := s.ratings.AggregateForStore(tx, storeID)
		if err != nil {
			return err
		}

		var overall *float64
		if agg.Count > 0 {
			v := RoundRating(agg.Avg)
			overall = &v
		}
		return tx.Model(&entity.Store{}).Where("id = ?", storeID).
			Updates(map[string]any{
				"overall_rating": overall,
				"total_ratings":  agg.Count,
			}).Error
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("store reconciled", "storeId", storeID)
	return s.stores.FindByID(storeID)
}

// RoundRating rounds to 2 decimals, half away from zero. Used for every
// stored or reported average so the same rating set always renders the
// same value.
func RoundRating(x float64) float64 {
	return math.Round(x*100) / 100
}
