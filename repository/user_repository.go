package repository

import (
	"github.com/Avadhut20/roxiler/entity"

	"gorm.io/gorm"
)

// UserRepository owns all access to the users table.
type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	var user entity.User
	if err := r.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) CountByEmail(email string) (int64, error) {
	var count int64
	if err := r.DB.Model(&entity.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *UserRepository) Create(user *entity.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var user entity.User
	if err := r.DB.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) UpdatePassword(userID uint, hash string) error {
	return r.DB.Model(&entity.User{}).Where("id = ?", userID).
		Update("password", hash).Error
}

// UserFilter narrows List. Empty fields are ignored. Name, email and
// address match case-insensitive substrings; role matches exactly.
type UserFilter struct {
	Name    string
	Email   string
	Address string
	Role    string
}

func (r *UserRepository) List(f UserFilter) ([]entity.User, error) {
	q := r.DB.Model(&entity.User{})
	if f.Name != "" {
		q = q.Where("lower(name) LIKE lower(?)", "%"+f.Name+"%")
	}
	if f.Email != "" {
		q = q.Where("lower(email) LIKE lower(?)", "%"+f.Email+"%")
	}
	if f.Address != "" {
		q = q.Where("lower(address) LIKE lower(?)", "%"+f.Address+"%")
	}
	if f.Role != "" {
		q = q.Where("role = ?", f.Role)
	}

	var users []entity.User
	err := q.Order("name ASC").Find(&users).Error
	return users, err
}

// FindWithOwnedStores loads a user together with their stores and each
// store's ratings, for the admin user-detail view.
func (r *UserRepository) FindWithOwnedStores(id uint) (*entity.User, error) {
	var user entity.User
	if err := r.DB.Preload("StoresOwned.Ratings").First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
