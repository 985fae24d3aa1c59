package records

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/starfield-blog/starfield/internal/db/models"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")

	err = db.AutoMigrate(&models.Note{})
	require.NoError(t, err, "failed to migrate test database")

	return db
}

func seedNotes(t *testing.T, db *gorm.DB, notes []models.Note) {
	t.Helper()
	for _, note := range notes {
		err := db.Create(&note).Error
		require.NoError(t, err, "failed to seed test data")
	}
}

func TestList(t *testing.T) {
	t.Run("nil database", func(t *testing.T) {
		rows, err := List[models.Note](nil)
		require.ErrorIs(t, err, ErrDBNil)
		assert.Nil(t, rows)
	})

	t.Run("empty table returns empty slice", func(t *testing.T) {
		db := setupTestDB(t)

		rows, err := List[models.Note](db)
		require.NoError(t, err)
		// Must not be nil: an empty result serializes as [] not null.
		require.NotNil(t, rows)
		assert.Empty(t, rows)
	})

	t.Run("order and filter options", func(t *testing.T) {
		db := setupTestDB(t)
		seedNotes(t, db, []models.Note{
			{Title: "first", Content: "a", Likes: 1},
			{Title: "second", Content: "b", Likes: 3},
			{Title: "third", Content: "c", Likes: 2},
		})

		rows, err := List[models.Note](db,
			Where("likes > ?", 1),
			OrderBy("likes DESC"),
		)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "second", rows[0].Title)
		assert.Equal(t, "third", rows[1].Title)
	})
}

func TestGetByID(t *testing.T) {
	t.Run("nil database", func(t *testing.T) {
		row, err := GetByID[models.Note](nil, 1)
		require.ErrorIs(t, err, ErrDBNil)
		assert.Nil(t, row)
	})

	t.Run("not found", func(t *testing.T) {
		db := setupTestDB(t)

		row, err := GetByID[models.Note](db, 42)
		require.ErrorIs(t, err, ErrRecordNotFound)
		assert.Nil(t, row)
	})

	t.Run("found", func(t *testing.T) {
		db := setupTestDB(t)
		note := models.Note{Title: "kept", Content: "body"}
		require.NoError(t, Create(db, &note))

		row, err := GetByID[models.Note](db, note.ID)
		require.NoError(t, err)
		assert.Equal(t, "kept", row.Title)
	})
}

func TestCreate(t *testing.T) {
	t.Run("nil database", func(t *testing.T) {
		err := Create(nil, &models.Note{Title: "x"})
		require.ErrorIs(t, err, ErrDBNil)
	})

	t.Run("assigns identity", func(t *testing.T) {
		db := setupTestDB(t)

		first := models.Note{Title: "one", Content: "a"}
		second := models.Note{Title: "two", Content: "b"}
		require.NoError(t, Create(db, &first))
		require.NoError(t, Create(db, &second))

		assert.NotZero(t, first.ID)
		assert.Greater(t, second.ID, first.ID)
	})
}

func TestDelete(t *testing.T) {
	t.Run("nil database", func(t *testing.T) {
		require.ErrorIs(t, Delete[models.Note](nil, 1), ErrDBNil)
	})

	t.Run("missing id succeeds", func(t *testing.T) {
		db := setupTestDB(t)

		require.NoError(t, Delete[models.Note](db, 999))
	})

	t.Run("removes the row", func(t *testing.T) {
		db := setupTestDB(t)
		note := models.Note{Title: "gone", Content: "x"}
		require.NoError(t, Create(db, &note))

		require.NoError(t, Delete[models.Note](db, note.ID))

		_, err := GetByID[models.Note](db, note.ID)
		require.ErrorIs(t, err, ErrRecordNotFound)
	})
}

func TestIncrement(t *testing.T) {
	t.Run("nil database", func(t *testing.T) {
		require.ErrorIs(t, Increment[models.Note](nil, 1, "likes"), ErrDBNil)
	})

	t.Run("adds exactly one per call", func(t *testing.T) {
		db := setupTestDB(t)
		note := models.Note{Title: "liked", Content: "x"}
		require.NoError(t, Create(db, &note))

		const n = 5
		for i := 0; i < n; i++ {
			require.NoError(t, Increment[models.Note](db, note.ID, "likes"))
		}

		row, err := GetByID[models.Note](db, note.ID)
		require.NoError(t, err)
		assert.EqualValues(t, n, row.Likes)
	})
}

func TestCount(t *testing.T) {
	t.Run("nil database", func(t *testing.T) {
		_, err := Count[models.Note](nil)
		require.ErrorIs(t, err, ErrDBNil)
	})

	t.Run("counts with filter", func(t *testing.T) {
		db := setupTestDB(t)
		seedNotes(t, db, []models.Note{
			{Title: "a", Content: "x", Likes: 0},
			{Title: "b", Content: "x", Likes: 2},
			{Title: "c", Content: "x", Likes: 4},
		})

		total, err := Count[models.Note](db)
		require.NoError(t, err)
		assert.EqualValues(t, 3, total)

		liked, err := Count[models.Note](db, Where("likes > ?", 0))
		require.NoError(t, err)
		assert.EqualValues(t, 2, liked)
	})
}
