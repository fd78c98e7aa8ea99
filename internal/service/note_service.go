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

const maxNoteLength = 10000

type NoteService interface {
	CreateNote(ctx context.Context, userID, content string) (*models.Note, error)
	CreateNoteWithImage(ctx context.Context, userID, fileName string, file io.Reader, size int64) (*models.Note, error)
	DeleteNote(ctx context.Context, requesterID, noteID string) error
	ListNotesByUser(ctx context.Context, userID string) ([]models.Note, error)
}

type noteService struct {
	noteRepo repository.NoteRepository
	storage  storage.Storage
}

func NewNoteService(noteRepo repository.NoteRepository, storage storage.Storage) NoteService {
	return &noteService{
		noteRepo: noteRepo,
		storage:  storage,
	}
}

func (s *noteService) CreateNote(ctx context.Context, userID, content string) (*models.Note, error) {
	if utf8.RuneCountInString(content) < 1 {
		return nil, ErrNoteEmpty
	}

	if utf8.RuneCountInString(content) > maxNoteLength {
		return nil, ErrNoteTooLong
	}

	note := &models.Note{
		UserID:  userID,
		Content: content,
	}

	err := s.noteRepo.Create(ctx, note)
	if err != nil {
		return nil, err
	}

	return note, nil
}

// CreateNoteWithImage - сначала файл уходит в хранилище, потом создается
// заметка; если вставка не удалась, объект убираем обратно
func (s *noteService) CreateNoteWithImage(ctx context.Context, userID, fileName string, file io.Reader, size int64) (*models.Note, error) {
	objectName, err := s.storage.UploadImage(ctx, userID, fileName, file, size)
	if err != nil {
		return nil, fmt.Errorf("ошибка загрузки изображения: %w", err)
	}

	note := &models.Note{
		UserID:  userID,
		Content: fmt.Sprintf("Image uploaded: %s", fileName),
		Image:   objectName,
	}

	err = s.noteRepo.Create(ctx, note)
	if err != nil {
		s.storage.DeleteImage(ctx, objectName)
		return nil, fmt.Errorf("ошибка сохранения заметки: %w", err)
	}

	return note, nil
}

func (s *noteService) DeleteNote(ctx context.Context, requesterID, noteID string) error {
	note, err := s.noteRepo.GetByID(ctx, noteID)
	if err != nil {
		return err
	}

	// удалять заметку может только ее владелец
	if note.UserID != requesterID {
		return ErrForbidden
	}

	err = s.noteRepo.Delete(ctx, noteID)
	if err != nil {
		return err
	}

	if note.Image != "" {
		if err := s.storage.DeleteImage(ctx, note.Image); err != nil {
			fmt.Printf("Предупреждение: не удалось удалить из MinIO: %v\n", err)
		}
	}

	return nil
}

func (s *noteService) ListNotesByUser(ctx context.Context, userID string) ([]models.Note, error) {
	return s.noteRepo.GetByUserID(ctx, userID)
}
