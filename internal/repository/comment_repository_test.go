package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"noteblog/internal/models"
)

func TestCommentRepository_Create(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCommentRepository(db)

	ctx := context.Background()

	t.Run("Успешное создание комментария", func(t *testing.T) {
		comment := &models.Comment{
			PostID:  "post-id",
			UserID:  "author-id",
			Content: "отличный пост",
		}

		mock.ExpectExec(`INSERT INTO comments`).
			WillReturnResult(sqlmock.NewResult(1, 1))

		err := repo.Create(ctx, comment)

		assert.NoError(t, err)
		assert.NotEmpty(t, comment.CommentID)
	})

	t.Run("Пост удален между проверкой и вставкой", func(t *testing.T) {
		comment := &models.Comment{
			PostID:  "deleted-post",
			UserID:  "author-id",
			Content: "комментарий",
		}

		mock.ExpectExec(`INSERT INTO comments`).
			WillReturnError(errors.New(`insert or update on table "comments" violates foreign key constraint "comments_post_id_fkey"`))

		err := repo.Create(ctx, comment)

		assert.ErrorIs(t, err, ErrPostNotFound)
	})
}

func TestCommentRepository_GetByPostID(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCommentRepository(db)

	ctx := context.Background()
	now := time.Now()

	t.Run("Комментарии идут от старых к новым", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"comment_id", "post_id", "user_id", "content", "created_at"}).
			AddRow("c1", "post-id", "u1", "первый", now.Add(-time.Hour)).
			AddRow("c2", "post-id", "u2", "второй", now)

		mock.ExpectQuery(`SELECT (.+) FROM comments WHERE post_id = (.+) ORDER BY created_at`).
			WithArgs("post-id").
			WillReturnRows(rows)

		comments, err := repo.GetByPostID(ctx, "post-id")

		require.NoError(t, err)
		require.Len(t, comments, 2)
		assert.True(t, comments[0].CreatedAt.Before(comments[1].CreatedAt))
	})
}
