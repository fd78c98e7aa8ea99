package repository

import (
	"context"
	"fmt"
	"noteblog/internal/models"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type commentRepository struct {
	db *sqlx.DB
}

func NewCommentRepository(db *sqlx.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	if comment.CommentID == "" {
		comment.CommentID = uuid.New().String()
	}

	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO comments (comment_id, post_id, user_id, content, created_at)
		VALUES (:comment_id, :post_id, :user_id, :content, :created_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, comment)
	if err != nil {
		// FK на posts: пост могли удалить между проверкой и вставкой
		if strings.Contains(err.Error(), "violates foreign key constraint") {
			return ErrPostNotFound
		}
		return fmt.Errorf("ошибка при создании комментария: %w", err)
	}

	return nil
}

func (r *commentRepository) GetByPostID(ctx context.Context, postID string) ([]models.Comment, error) {
	query := `
		SELECT * FROM comments
		WHERE post_id = $1
		ORDER BY created_at
	`

	var comments []models.Comment
	err := r.db.SelectContext(ctx, &comments, query, postID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении комментариев: %w", err)
	}

	return comments, nil
}
