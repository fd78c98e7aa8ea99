package service

import (
	"noteblog/internal/config"
	"noteblog/internal/repository"
	"noteblog/internal/storage"
)

type Service struct {
	Auth AuthService
	User UserService
	Note NoteService
	Post PostService
}

func NewService(rep *repository.Repository, cfg *config.Config, storage storage.Storage) *Service {
	return &Service{
		Auth: NewAuthService(rep.User, cfg),
		User: NewUserService(rep.User),
		Note: NewNoteService(rep.Note, storage),
		Post: NewPostService(rep.Post, rep.Comment, storage),
	}
}
