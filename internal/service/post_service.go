package service

import (
	"context"
	"fmt"
	"io"
	"noteblog/internal/models"
	"noteblog/internal/repository"
	"noteblog/internal/storage"
	"unicode/utf8"
)

const maxTitleLength = 100

type ImageUpload struct {
	FileName string
	File     io.Reader
	Size     int64
}

type CreatePostRequest struct {
	UserID  string
	Title   string
	Content string
	Image   *ImageUpload
}

type PostService interface {
	CreatePost(ctx context.Context, req CreatePostRequest) (*models.Post, error)
	GetPost(ctx context.Context, postID string) (*models.Post, error)
	ListPosts(ctx context.Context) ([]models.Post, error)
	ListPostsByUser(ctx context.Context, userID string) ([]models.Post, error)
	CreateComment(ctx context.Context, userID, postID, content string) (*models.Comment, error)
	ListComments(ctx context.Context, postID string) ([]models.Comment, error)
}

type postService struct {
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository
	storage     storage.Storage
}

func NewPostService(postRepo repository.PostRepository, commentRepo repository.CommentRepository, storage storage.Storage) PostService {
	return &postService{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		storage:     storage,
	}
}

func (s *postService) CreatePost(ctx context.Context, req CreatePostRequest) (*models.Post, error) {
	if req.Title == "" {
		return nil, ErrTitleEmpty
	}

	if utf8.RuneCountInString(req.Title) > maxTitleLength {
		return nil, ErrTitleTooLong
	}

	if req.Content == "" {
		return nil, ErrContentEmpty
	}

	post := &models.Post{
		UserID:  req.UserID,
		Title:   req.Title,
		Content: req.Content,
	}

	if req.Image != nil {
		objectName, err := s.storage.UploadImage(ctx, req.UserID, req.Image.FileName, req.Image.File, req.Image.Size)
		if err != nil {
			return nil, fmt.Errorf("ошибка загрузки изображения: %w", err)
		}
		post.Image = objectName
	}

	err := s.postRepo.Create(ctx, post)
	if err != nil {
		if post.Image != "" {
			s.storage.DeleteImage(ctx, post.Image)
		}
		return nil, err
	}

	return post, nil
}

func (s *postService) GetPost(ctx context.Context, postID string) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, postID)
}

func (s *postService) ListPosts(ctx context.Context) ([]models.Post, error) {
	return s.postRepo.GetAll(ctx)
}

func (s *postService) ListPostsByUser(ctx context.Context, userID string) ([]models.Post, error) {
	return s.postRepo.GetByUserID(ctx, userID)
}

func (s *postService) CreateComment(ctx context.Context, userID, postID, content string) (*models.Comment, error) {
	if content == "" {
		return nil, ErrCommentEmpty
	}

	// комментировать можно только существующий пост
	_, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		PostID:  postID,
		UserID:  userID,
		Content: content,
	}

	err = s.commentRepo.Create(ctx, comment)
	if err != nil {
		return nil, err
	}

	return comment, nil
}

func (s *postService) ListComments(ctx context.Context, postID string) ([]models.Comment, error) {
	return s.commentRepo.GetByPostID(ctx, postID)
}
