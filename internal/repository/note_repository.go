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

type noteRepository struct {
	db *sqlx.DB
}

func NewNoteRepository(db *sqlx.DB) NoteRepository {
	return &noteRepository{db: db}
}

func (r *noteRepository) Create(ctx context.Context, note *models.Note) error {
	if note.NoteID == "" {
		note.NoteID = uuid.New().String()
	}

	if note.CreatedAt.IsZero() {
		note.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO notes (note_id, user_id, content, image, created_at)
		VALUES (:note_id, :user_id, :content, :image, :created_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, note)
	if err != nil {
		return fmt.Errorf("ошибка при создании заметки: %w", err)
	}

	return nil
}

func (r *noteRepository) GetByID(ctx context.Context, noteID string) (*models.Note, error) {
	query := `SELECT * FROM notes WHERE note_id = $1`

	var note models.Note
	err := r.db.GetContext(ctx, &note, query, noteID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoteNotFound
		}
		return nil, fmt.Errorf("ошибка при получении заметки: %w", err)
	}

	return &note, nil
}

func (r *noteRepository) GetByUserID(ctx context.Context, userID string) ([]models.Note, error) {
	query := `
		SELECT * FROM notes
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	var notes []models.Note
	err := r.db.SelectContext(ctx, &notes, query, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении заметок пользователя: %w", err)
	}

	return notes, nil
}

func (r *noteRepository) Delete(ctx context.Context, noteID string) error {
	query := `DELETE FROM notes WHERE note_id = $1`

	result, err := r.db.ExecContext(ctx, query, noteID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении заметки: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNoteNotFound
	}

	return nil
}
