package repository_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/fieldstonehq/fieldstone/internal/model"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// openTestDB gives each top-level test its own in-memory database.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Owner{},
		&model.Office{},
		&model.Employee{},
		&model.Report{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) *model.User {
	t.Helper()

	user := &model.User{Email: email, Name: "Test User", PasswordHash: "x"}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedOwner(t *testing.T, db *gorm.DB, user *model.User, name string) *model.Owner {
	t.Helper()

	owner := &model.Owner{UserID: user.ID, Name: name}
	require.NoError(t, db.Create(owner).Error)
	return owner
}

func officeInput(name string) *model.Office {
	return &model.Office{
		Name:    name,
		Number:  12,
		Address: "1 Main St",
		City:    "Springfield",
		State:   "IL",
		ZipCode: "62701",
	}
}

func ctxb() context.Context {
	return context.Background()
}
