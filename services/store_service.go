package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/Avadhut20/roxiler/entity"
	"github.com/Avadhut20/roxiler/repository"
)

// StoreService handles store creation and the authenticated listing.
type StoreService struct {
	storeRepo  *repository.StoreRepository
	userRepo   *repository.UserRepository
	ratingRepo *repository.RatingRepository
}

func NewStoreService(stores *repository.StoreRepository, users *repository.UserRepository, ratings *repository.RatingRepository) *StoreService {
	return &StoreService{storeRepo: stores, userRepo: users, ratingRepo: ratings}
}

// Create registers a store under an existing OWNER user. Admin-only at
// the route level.
func (s *StoreService) Create(name, email, address string, ownerID uint) (*entity.Store, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || email == "" || ownerID == 0 {
		return nil, fmt.Errorf("%w: name, email and ownerId are required", ErrInvalidInput)
	}

	owner, err := s.userRepo.FindByID(ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: invalid store owner", ErrInvalidInput)
		}
		return nil, err
	}
	if owner.Role != entity.RoleOwner {
		return nil, fmt.Errorf("%w: owner must have role OWNER", ErrInvalidInput)
	}

	count, err := s.storeRepo.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, fmt.Errorf("%w: store email already registered", ErrConflict)
	}

	store := &entity.Store{
		Name:    name,
		Email:   email,
		Address: strings.TrimSpace(address),
		OwnerID: ownerID,
	}
	if err := s.storeRepo.Create(store); err != nil {
		return nil, err
	}
	return store, nil
}

// StoreSummary is one row of the authenticated store listing.
// UserRating is the caller's own score on that store, nil if they have
// not rated it.
type StoreSummary struct {
	ID            uint     `json:"id"`
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	Address       string   `json:"address"`
	OverallRating *float64 `json:"overallRating"`
	TotalRatings  int64    `json:"totalRatings"`
	UserRating    *int     `json:"userRating"`
}

// ListForUser returns stores matching the filter, each annotated with
// the caller's own rating. The denormalized aggregates are read as
// stored; only the caller's score needs a second query.
func (s *StoreService) ListForUser(userID uint, filter repository.StoreFilter) ([]StoreSummary, error) {
	stores, err := s.storeRepo.List(filter)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(stores))
	for _, st := range stores {
		ids = append(ids, st.ID)
	}
	ratings, err := s.ratingRepo.ListByUserForStores(userID, ids)
	if err != nil {
		return nil, err
	}
	own := make(map[uint]int, len(ratings))
	for _, r := range ratings {
		own[r.StoreID] = r.Score
	}

	result := make([]StoreSummary, 0, len(stores))
	for _, st := range stores {
		summary := StoreSummary{
			ID:            st.ID,
			Name:          st.Name,
			Email:         st.Email,
			Address:       st.Address,
			OverallRating: st.OverallRating,
			TotalRatings:  st.TotalRatings,
		}
		if score, ok := own[st.ID]; ok {
			summary.UserRating = &score
		}
		result = append(result, summary)
	}
	return result, nil
}

// ListAll is the admin listing: every store matching the filter with its
// stored aggregates, no per-caller annotation.
func (s *StoreService) ListAll(filter repository.StoreFilter) ([]entity.Store, error) {
	return s.storeRepo.List(filter)
}
