package repository

import (
	"context"
	"errors"
	"noteblog/internal/models"
	"time"

	"github.com/jmoiron/sqlx"
)

var (
	ErrUserNotFound    = errors.New("пользователь не найден")
	ErrNoteNotFound    = errors.New("заметка не найдена")
	ErrPostNotFound    = errors.New("пост не найден")
	ErrCommentNotFound = errors.New("комментарий не найден")
	ErrEmailExists     = errors.New("email уже зарегистрирован")
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User, password string) error
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateProfile(ctx context.Context, user *models.User) error
	VerifyPassword(ctx context.Context, email, password string) (*models.User, error)
	UpdateRefreshToken(ctx context.Context, userID, refreshToken string, expiryTime time.Time) error
	GetUserByRefreshToken(ctx context.Context, refreshToken string) (*models.User, error)
}

type NoteRepository interface {
	Create(ctx context.Context, note *models.Note) error
	GetByID(ctx context.Context, noteID string) (*models.Note, error)
	GetByUserID(ctx context.Context, userID string) ([]models.Note, error)
	Delete(ctx context.Context, noteID string) error
}

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, postID string) (*models.Post, error)
	GetByUserID(ctx context.Context, userID string) ([]models.Post, error)
	GetAll(ctx context.Context) ([]models.Post, error)
}

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByPostID(ctx context.Context, postID string) ([]models.Comment, error)
}

type Repository struct {
	User    UserRepository
	Note    NoteRepository
	Post    PostRepository
	Comment CommentRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:    NewUserRepository(db),
		Note:    NewNoteRepository(db),
		Post:    NewPostRepository(db),
		Comment: NewCommentRepository(db),
	}
}
