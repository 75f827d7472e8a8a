package services

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Avadhut20/roxiler/entity"
	"github.com/Avadhut20/roxiler/pkg/logger"
)

// newTestDB opens an isolated in-memory database with the full schema.
// A named shared-cache DSN keeps every pooled connection on the same
// in-memory instance.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entity.User{}, &entity.Store{}, &entity.Rating{}))
	return db
}

func newTestLogger() *logger.Logger {
	return &logger.Logger{SugaredLogger: zap.NewNop().Sugar()}
}

func seedUser(t *testing.T, db *gorm.DB, name, email, role string) *entity.User {
	t.Helper()
	user := &entity.User{Name: name, Email: email, Password: "x", Role: role}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedStore(t *testing.T, db *gorm.DB, name, email string, ownerID uint) *entity.Store {
	t.Helper()
	store := &entity.Store{Name: name, Email: email, OwnerID: ownerID}
	require.NoError(t, db.Create(store).Error)
	return store
}
