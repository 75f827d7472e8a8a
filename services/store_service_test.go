package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Avadhut20/roxiler/entity"
	"github.com/Avadhut20/roxiler/repository"
)

func newStoreService(db *gorm.DB) *StoreService {
	return NewStoreService(
		repository.NewStoreRepository(db),
		repository.NewUserRepository(db),
		repository.NewRatingRepository(db))
}

func TestCreateStore(t *testing.T) {
	t.Run("Should create a store under an OWNER user", func(t *testing.T) {
		db := newTestDB(t)
		svc := newStoreService(db)
		owner := seedUser(t, db, "Owner", "owner@example.com", entity.RoleOwner)

		store, err := svc.Create("Corner Shop", "Shop@Example.com", "1 Main St", owner.ID)
		require.NoError(t, err)
		assert.Equal(t, "shop@example.com", store.Email)
		assert.Equal(t, owner.ID, store.OwnerID)
		assert.Nil(t, store.OverallRating)
		assert.Zero(t, store.TotalRatings)
	})

	t.Run("Should reject an owner without the OWNER role", func(t *testing.T) {
		db := newTestDB(t)
		svc := newStoreService(db)
		user := seedUser(t, db, "Plain", "plain@example.com", entity.RoleUser)

		_, err := svc.Create("Corner Shop", "shop@example.com", "", user.ID)
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("Should reject a missing owner", func(t *testing.T) {
		db := newTestDB(t)
		svc := newStoreService(db)

		_, err := svc.Create("Corner Shop", "shop@example.com", "", 404)
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("Should reject a duplicate store email with Conflict", func(t *testing.T) {
		db := newTestDB(t)
		svc := newStoreService(db)
		owner := seedUser(t, db, "Owner", "owner@example.com", entity.RoleOwner)

		_, err := svc.Create("First", "dup@example.com", "", owner.ID)
		require.NoError(t, err)
		_, err = svc.Create("Second", "dup@example.com", "", owner.ID)
		require.ErrorIs(t, err, ErrConflict)
	})
}

func TestListForUser(t *testing.T) {
	t.Run("Should show the caller's own rating, not another user's", func(t *testing.T) {
		db := newTestDB(t)
		svc := newStoreService(db)
		ratingSvc := newRatingService(db)

		owner := seedUser(t, db, "Owner", "owner@example.com", entity.RoleOwner)
		store := seedStore(t, db, "Corner Shop", "shop@example.com", owner.ID)
		me := seedUser(t, db, "Me", "me@example.com", entity.RoleUser)
		other := seedUser(t, db, "Other", "other@example.com", entity.RoleUser)

		_, err := ratingSvc.Submit(me.ID, store.ID, 2)
		require.NoError(t, err)
		_, err = ratingSvc.Submit(other.ID, store.ID, 5)
		require.NoError(t, err)

		rows, err := svc.ListForUser(me.ID, repository.StoreFilter{})
		require.NoError(t, err)
		require.Len(t, rows, 1)
		require.NotNil(t, rows[0].UserRating)
		assert.Equal(t, 2, *rows[0].UserRating)
		require.NotNil(t, rows[0].OverallRating)
		assert.Equal(t, 3.50, *rows[0].OverallRating)
		assert.Equal(t, int64(2), rows[0].TotalRatings)
	})

	t.Run("Should return nil userRating for stores the caller has not rated", func(t *testing.T) {
		db := newTestDB(t)
		svc := newStoreService(db)
		owner := seedUser(t, db, "Owner", "owner@example.com", entity.RoleOwner)
		seedStore(t, db, "Corner Shop", "shop@example.com", owner.ID)
		me := seedUser(t, db, "Me", "me@example.com", entity.RoleUser)

		rows, err := svc.ListForUser(me.ID, repository.StoreFilter{})
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Nil(t, rows[0].UserRating)
		assert.Nil(t, rows[0].OverallRating)
	})

	t.Run("Should filter by name and address, case-insensitive", func(t *testing.T) {
		db := newTestDB(t)
		svc := newStoreService(db)
		owner := seedUser(t, db, "Owner", "owner@example.com", entity.RoleOwner)
		seedStore(t, db, "Corner Shop", "corner@example.com", owner.ID)
		seedStore(t, db, "Mega Mart", "mega@example.com", owner.ID)
		me := seedUser(t, db, "Me", "me@example.com", entity.RoleUser)

		rows, err := svc.ListForUser(me.ID, repository.StoreFilter{Name: "corner"})
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "Corner Shop", rows[0].Name)

		rows, err = svc.ListForUser(me.ID, repository.StoreFilter{Name: "nowhere"})
		require.NoError(t, err)
		assert.Empty(t, rows)
	})
}

func TestUserServiceCreateWithRole(t *testing.T) {
	t.Run("Should create users with any valid role", func(t *testing.T) {
		db := newTestDB(t)
		svc := NewUserService(repository.NewUserRepository(db))

		for _, role := range []string{entity.RoleAdmin, entity.RoleOwner, entity.RoleUser} {
			user, err := svc.CreateWithRole("N", role+"@example.com", "pass", "", role)
			require.NoError(t, err)
			assert.Equal(t, role, user.Role)
		}
	})

	t.Run("Should reject an unknown role", func(t *testing.T) {
		db := newTestDB(t)
		svc := NewUserService(repository.NewUserRepository(db))

		_, err := svc.CreateWithRole("N", "x@example.com", "pass", "", "SUPERUSER")
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("Should filter the listing by role and name", func(t *testing.T) {
		db := newTestDB(t)
		svc := NewUserService(repository.NewUserRepository(db))

		seedUser(t, db, "Alice Admin", "alice@example.com", entity.RoleAdmin)
		seedUser(t, db, "Bob Owner", "bob@example.com", entity.RoleOwner)
		seedUser(t, db, "Cara User", "cara@example.com", entity.RoleUser)

		users, err := svc.List(repository.UserFilter{Role: "owner"})
		require.NoError(t, err)
		require.Len(t, users, 1)
		assert.Equal(t, "Bob Owner", users[0].Name)

		users, err = svc.List(repository.UserFilter{Name: "cara"})
		require.NoError(t, err)
		require.Len(t, users, 1)
		assert.Equal(t, "Cara User", users[0].Name)
	})
}
