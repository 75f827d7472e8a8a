package repository

import (
	"github.com/Avadhut20/roxiler/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StoreRepository owns all access to the stores table.
type StoreRepository struct {
	DB *gorm.DB
}

func NewStoreRepository(db *gorm.DB) *StoreRepository {
	return &StoreRepository{DB: db}
}

func (r *StoreRepository) Create(store *entity.Store) error {
	return r.DB.Create(store).Error
}

func (r *StoreRepository) FindByID(id uint) (*entity.Store, error) {
	var store entity.Store
	if err := r.DB.First(&store, id).Error; err != nil {
		return nil, err
	}
	return &store, nil
}

// LockByID loads the store under a FOR UPDATE row lock so that rating
// submissions for the same store serialize and each recompute sees the
// previous commit. The locking clause is dropped on sqlite, which
// serializes writers itself.
func (r *StoreRepository) LockByID(tx *gorm.DB, id uint) (*entity.Store, error) {
	var store entity.Store
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&store, id).Error; err != nil {
		return nil, err
	}
	return &store, nil
}

func (r *StoreRepository) CountByEmail(email string) (int64, error) {
	var count int64
	if err := r.DB.Model(&entity.Store{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// StoreFilter narrows List. Empty fields are ignored; all matches are
// case-insensitive substrings.
type StoreFilter struct {
	Name    string
	Email   string
	Address string
}

func (r *StoreRepository) List(f StoreFilter) ([]entity.Store, error) {
	q := r.DB.Model(&entity.Store{})
	if f.Name != "" {
		q = q.Where("lower(name) LIKE lower(?)", "%"+f.Name+"%")
	}
	if f.Email != "" {
		q = q.Where("lower(email) LIKE lower(?)", "%"+f.Email+"%")
	}
	if f.Address != "" {
		q = q.Where("lower(address) LIKE lower(?)", "%"+f.Address+"%")
	}

	var stores []entity.Store
	err := q.Order("name ASC").Find(&stores).Error
	return stores, err
}

// ListByOwner loads an owner's stores with ratings and each rating's
// author, for the owner dashboard.
func (r *StoreRepository) ListByOwner(ownerID uint) ([]entity.Store, error) {
	var stores []entity.Store
	err := r.DB.Where("owner_id = ?", ownerID).
		Preload("Ratings.User").
		Find(&stores).Error
	return stores, err
}
