package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/jinzhu/gorm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bloghub/internal/auth"
	"bloghub/internal/comment"
	"bloghub/internal/post"
	"bloghub/internal/user"
	"bloghub/models"
)

func setupTestDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open("sqlite3", ":memory:")
	require.NoError(t, err)

	InitDBWithConnection(db)
	require.NoError(t, Migrate())

	t.Cleanup(func() {
		db.Close()
		DB = nil
	})
}

func authorContext(t *testing.T, users *UserSqliteStorage, email, name string) context.Context {
	t.Helper()

	u, err := users.Register(email, "password123", name)
	require.NoError(t, err)
	return auth.WithUser(context.Background(), u)
}

func samplePostInput(title string) post.Input {
	return post.Input{
		Title:    title,
		Subtitle: "A subtitle",
		Body:     "Some body text",
		ImgURL:   "https://example.com/cover.jpg",
	}
}

func TestUserSqliteStorage(t *testing.T) {
	setupTestDB(t)
	users := NewUserSqliteStorage()

	t.Run("First registered account becomes admin", func(t *testing.T) {
		u, err := users.Register("first@example.com", "password123", "First")
		require.NoError(t, err)
		assert.True(t, u.IsAdmin)
		assert.NotEqual(t, "password123", u.Password)

		second, err := users.Register("second@example.com", "password123", "Second")
		require.NoError(t, err)
		assert.False(t, second.IsAdmin)
	})

	t.Run("Duplicate email rejected", func(t *testing.T) {
		_, err := users.Register("first@example.com", "otherpassword", "Imposter")
		assert.ErrorIs(t, err, user.ErrEmailTaken)
	})

	t.Run("Authenticate", func(t *testing.T) {
		u, err := users.Authenticate("first@example.com", "password123")
		require.NoError(t, err)
		assert.Equal(t, "First", u.Name)

		_, err = users.Authenticate("first@example.com", "wrongpassword")
		assert.ErrorIs(t, err, user.ErrInvalidCredentials)

		_, err = users.Authenticate("nobody@example.com", "password123")
		assert.ErrorIs(t, err, user.ErrInvalidCredentials)
	})

	t.Run("ByID", func(t *testing.T) {
		u, err := users.ByID(1)
		require.NoError(t, err)
		assert.Equal(t, "first@example.com", u.Email)

		_, err = users.ByID(999)
		assert.ErrorIs(t, err, user.ErrNotFound)
	})
}

func TestPostSqliteStorage(t *testing.T) {
	setupTestDB(t)
	users := NewUserSqliteStorage()
	posts := NewPostSqliteStorage()
	ctx := authorContext(t, users, "ann@example.com", "Ann")

	t.Run("Create stamps date and author", func(t *testing.T) {
		p, err := posts.Create(ctx, samplePostInput("First post"))
		require.NoError(t, err)
		assert.Equal(t, "Ann", p.Author)
		assert.Equal(t, uint(1), p.AuthorID)
		assert.Equal(t, time.Now().Format(dateFormat), p.Date)
	})

	t.Run("Anonymous context rejected", func(t *testing.T) {
		_, err := posts.Create(context.Background(), samplePostInput("No author"))
		assert.Error(t, err)
	})

	t.Run("Duplicate title rejected", func(t *testing.T) {
		_, err := posts.Create(ctx, samplePostInput("First post"))
		assert.ErrorIs(t, err, post.ErrDuplicateTitle)
	})

	t.Run("Update keeps id, date and author", func(t *testing.T) {
		created, err := posts.Create(ctx, samplePostInput("Editable post"))
		require.NoError(t, err)

		updated, err := posts.Update(created.ID, post.Input{
			Title:    "Edited post",
			Subtitle: "New subtitle",
			Body:     "New body",
			ImgURL:   "https://example.com/new.jpg",
		})
		require.NoError(t, err)
		assert.Equal(t, created.ID, updated.ID)
		assert.Equal(t, created.Date, updated.Date)
		assert.Equal(t, "Ann", updated.Author)
		assert.Equal(t, "Edited post", updated.Title)

		_, err = posts.Update(created.ID, samplePostInput("First post"))
		assert.ErrorIs(t, err, post.ErrDuplicateTitle)

		_, err = posts.Update(999, samplePostInput("Whatever"))
		assert.ErrorIs(t, err, post.ErrNotFound)
	})

	t.Run("All lists every post", func(t *testing.T) {
		all, err := posts.All()
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})
}

func TestPostSqliteStorage_DeleteCascadesComments(t *testing.T) {
	setupTestDB(t)
	users := NewUserSqliteStorage()
	posts := NewPostSqliteStorage()
	comments := NewCommentSqliteStorage()
	ctx := authorContext(t, users, "ann@example.com", "Ann")

	p, err := posts.Create(ctx, samplePostInput("Doomed post"))
	require.NoError(t, err)
	_, err = comments.Create(ctx, p.ID, "a comment")
	require.NoError(t, err)

	require.NoError(t, posts.Delete(p.ID))

	_, err = posts.ByID(p.ID)
	assert.ErrorIs(t, err, post.ErrNotFound)

	var count int
	require.NoError(t, DB.Model(&models.Comment{}).Where("post_id = ?", p.ID).Count(&count).Error)
	assert.Zero(t, count)

	assert.ErrorIs(t, posts.Delete(p.ID), post.ErrNotFound)
}

func TestPostSqliteStorage_DeleteFreesTitle(t *testing.T) {
	setupTestDB(t)
	users := NewUserSqliteStorage()
	posts := NewPostSqliteStorage()
	ctx := authorContext(t, users, "ann@example.com", "Ann")

	p, err := posts.Create(ctx, samplePostInput("Reborn"))
	require.NoError(t, err)
	require.NoError(t, posts.Delete(p.ID))

	// the title must be reusable once its post is gone, same as the
	// memory backend
	again, err := posts.Create(ctx, samplePostInput("Reborn"))
	require.NoError(t, err)

	got, err := posts.ByID(again.ID)
	require.NoError(t, err)
	assert.Equal(t, "Reborn", got.Title)
}

func TestCommentSqliteStorage(t *testing.T) {
	setupTestDB(t)
	users := NewUserSqliteStorage()
	posts := NewPostSqliteStorage()
	comments := NewCommentSqliteStorage()
	ctx := authorContext(t, users, "ann@example.com", "Ann")

	p, err := posts.Create(ctx, samplePostInput("Commented post"))
	require.NoError(t, err)

	t.Run("Create links comment to post and author", func(t *testing.T) {
		c, err := comments.Create(ctx, p.ID, "nice post")
		require.NoError(t, err)
		assert.Equal(t, p.ID, c.PostID)
		assert.Equal(t, uint(1), c.AuthorID)
	})

	t.Run("Missing post rejected", func(t *testing.T) {
		_, err := comments.Create(ctx, 999, "into the void")
		assert.ErrorIs(t, err, comment.ErrPostNotFound)
	})

	t.Run("ByPost in insertion order", func(t *testing.T) {
		_, err := comments.Create(ctx, p.ID, "second comment")
		require.NoError(t, err)

		got, err := comments.ByPost(p.ID)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "nice post", got[0].Text)
		assert.Equal(t, "second comment", got[1].Text)
	})
}
