package seed_test

import (
	"testing"

	"minisocial/models"
	"minisocial/seed"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("Failed to connect to in-memory database: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Comment{},
		&models.Like{},
		&models.Follow{},
	); err != nil {
		t.Fatalf("Failed to migrate in-memory database: %v", err)
	}
	return db
}

func countAll(t *testing.T, db *gorm.DB) (users, posts, comments, follows int64) {
	t.Helper()
	db.Model(&models.User{}).Count(&users)
	db.Model(&models.Post{}).Count(&posts)
	db.Model(&models.Comment{}).Count(&comments)
	db.Model(&models.Follow{}).Count(&follows)
	return
}

func TestLoadBootstrapsDemoData(t *testing.T) {
	db := newTestDB(t)

	seeded, err := seed.Load(db)
	assert.NoError(t, err)
	assert.True(t, seeded)

	users, posts, comments, follows := countAll(t, db)
	assert.Equal(t, int64(3), users)
	assert.Equal(t, int64(3), posts)
	assert.Equal(t, int64(2), comments)
	assert.Equal(t, int64(3), follows)

	alice := models.User{}
	found, err := alice.FindUserByUsername(db, "alice")
	assert.NoError(t, err)
	assert.Equal(t, "Alice Johnson", found.DisplayName)
}

// Loading into two databases in one process must not replay identifiers
// from the first run.
func TestLoadProducesFreshIdentifiersPerDatabase(t *testing.T) {
	first := newTestDB(t)
	second := newTestDB(t)

	seeded, err := seed.Load(first)
	assert.NoError(t, err)
	assert.True(t, seeded)

	seeded, err = seed.Load(second)
	assert.NoError(t, err)
	assert.True(t, seeded)

	alice := models.User{}
	fromFirst, err := alice.FindUserByUsername(first, "alice")
	assert.NoError(t, err)
	fromSecond, err := alice.FindUserByUsername(second, "alice")
	assert.NoError(t, err)
	assert.NotEqual(t, fromFirst.ID, fromSecond.ID)
}

func TestLoadIsIdempotent(t *testing.T) {
	db := newTestDB(t)

	seeded, err := seed.Load(db)
	assert.NoError(t, err)
	assert.True(t, seeded)

	seeded, err = seed.Load(db)
	assert.NoError(t, err)
	assert.False(t, seeded)

	users, posts, comments, follows := countAll(t, db)
	assert.Equal(t, int64(3), users)
	assert.Equal(t, int64(3), posts)
	assert.Equal(t, int64(2), comments)
	assert.Equal(t, int64(3), follows)
}
