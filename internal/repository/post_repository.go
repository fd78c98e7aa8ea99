package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"noteblog/internal/models"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type postRepository struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	if post.PostID == "" {
		post.PostID = uuid.New().String()
	}

	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now()
	}

	query := `
        INSERT INTO posts (post_id, user_id, title, content, image, created_at)
        VALUES (:post_id, :user_id, :title, :content, :image, :created_at)
    `

	_, err := r.db.NamedExecContext(ctx, query, post)
	if err != nil {
		return fmt.Errorf("ошибка при создании поста: %w", err)
	}

	return nil
}

func (r *postRepository) GetByID(ctx context.Context, postID string) (*models.Post, error) {
	query := `SELECT * FROM posts WHERE post_id = $1`

	var post models.Post
	err := r.db.GetContext(ctx, &post, query, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("ошибка при получении поста: %w", err)
	}

	return &post, nil
}

func (r *postRepository) GetByUserID(ctx context.Context, userID string) ([]models.Post, error) {
	query := `
        SELECT * FROM posts
        WHERE user_id = $1
        ORDER BY created_at DESC
    `

	var posts []models.Post
	err := r.db.SelectContext(ctx, &posts, query, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении постов пользователя: %w", err)
	}

	return posts, nil
}

func (r *postRepository) GetAll(ctx context.Context) ([]models.Post, error) {
	query := `
        SELECT * FROM posts
        ORDER BY created_at DESC
    `

	var posts []models.Post
	err := r.db.SelectContext(ctx, &posts, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении постов: %w", err)
	}

	return posts, nil
}
