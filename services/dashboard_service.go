package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Avadhut20/roxiler/entity"
	"github.com/Avadhut20/roxiler/repository"
)

// DashboardService is the read side: global counts for admins, the
// cross-store aggregate for owners, and the admin user-detail view.
// Pure queries, no mutation.
type DashboardService struct {
	db         *gorm.DB
	userRepo   *repository.UserRepository
	storeRepo  *repository.StoreRepository
	ratingRepo *repository.RatingRepository
}

func NewDashboardService(db *gorm.DB, users *repository.UserRepository, stores *repository.StoreRepository, ratings *repository.RatingRepository) *DashboardService {
	return &DashboardService{db: db, userRepo: users, storeRepo: stores, ratingRepo: ratings}
}

type AdminDashboard struct {
	TotalUsers   int64 `json:"totalUsers"`
	TotalStores  int64 `json:"totalStores"`
	TotalRatings int64 `json:"totalRatings"`
}

func (s *DashboardService) Admin() (*AdminDashboard, error) {
	var d AdminDashboard
	if err := s.db.Model(&entity.User{}).Count(&d.TotalUsers).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&entity.Store{}).Count(&d.TotalStores).Error; err != nil {
		return nil, err
	}
	ratings, err := s.ratingRepo.CountAll()
	if err != nil {
		return nil, err
	}
	d.TotalRatings = ratings
	return &d, nil
}

// Rater identifies a user who rated one of an owner's stores.
type Rater struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

type OwnerDashboard struct {
	TotalStores   int      `json:"totalStores"`
	AverageRating *float64 `json:"averageRating"`
	Raters        []Rater  `json:"raters"`
}

// Owner aggregates across every store the owner has. The mean is taken
// over the raw rating rows, not the per-store denormalized fields, so
// rounding is applied once at the end instead of once per store.
func (s *DashboardService) Owner(ownerID uint) (*OwnerDashboard, error) {
	stores, err := s.storeRepo.ListByOwner(ownerID)
	if err != nil {
		return nil, err
	}

	d := OwnerDashboard{
		TotalStores: len(stores),
		Raters:      []Rater{},
	}

	var sum, count int
	seen := make(map[uint]bool)
	for _, st := range stores {
		for _, r := range st.Ratings {
			sum += r.Score
			count++
			if !seen[r.UserID] {
				seen[r.UserID] = true
				d.Raters = append(d.Raters, Rater{
					ID:      r.User.ID,
					Name:    r.User.Name,
					Email:   r.User.Email,
					Address: r.User.Address,
				})
			}
		}
	}
	if count > 0 {
		avg := RoundRating(float64(sum) / float64(count))
		d.AverageRating = &avg
	}
	return &d, nil
}

// UserProfile is the admin user-detail payload. AverageRating is present
// only when the target is an OWNER: the mean across all rating rows of
// their stores.
type UserProfile struct {
	ID            uint     `json:"id"`
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	Address       string   `json:"address"`
	Role          string   `json:"role"`
	AverageRating *float64 `json:"averageRating,omitempty"`
}

func (s *DashboardService) UserDetail(targetUserID uint) (*UserProfile, error) {
	user, err := s.userRepo.FindWithOwnedStores(targetUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %d", ErrNotFound, targetUserID)
		}
		return nil, err
	}

	profile := &UserProfile{
		ID:      user.ID,
		Name:    user.Name,
		Email:   user.Email,
		Address: user.Address,
		Role:    user.Role,
	}

	if user.Role == entity.RoleOwner {
		var sum, count int
		for _, st := range user.StoresOwned {
			for _, r := range st.Ratings {
				sum += r.Score
				count++
			}
		}
		if count > 0 {
			avg := RoundRating(float64(sum) / float64(count))
			profile.AverageRating = &avg
		}
	}
	return profile, nil
}
