package handlers

import (
	"github.com/go-playground/validator/v10"
	"noteblog/internal/config"
	"noteblog/internal/service"
	"noteblog/internal/storage"
	"noteblog/internal/upload"
)

type Handlers struct {
	AuthService service.AuthService
	UserService service.UserService
	NoteService service.NoteService
	PostService service.PostService
	Uploads     *upload.Validator
	Storage     storage.Storage
	Cfg         *config.Config
	Validate    *validator.Validate
}

func NewHandlers(services *service.Service, storage storage.Storage, cfg *config.Config) *Handlers {
	return &Handlers{
		AuthService: services.Auth,
		UserService: services.User,
		NoteService: services.Note,
		PostService: services.Post,
		Uploads:     upload.NewValidator(cfg.Upload),
		Storage:     storage,
		Cfg:         cfg,
		Validate:    validator.New(),
	}
}
