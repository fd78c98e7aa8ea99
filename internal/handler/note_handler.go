package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gorilla/mux"
)

type NoteResponse struct {
	NoteID    string `json:"noteId"`
	Content   string `json:"content"`
	Image     string `json:"image,omitempty"`
	ImageURL  string `json:"imageUrl,omitempty"`
	CreatedAt string `json:"createdAt"`
}

func (h *Handlers) CreateNote(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	var req struct {
		Content string `json:"content"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	note, err := h.NoteService.CreateNote(r.Context(), userID, req.Content)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, note, http.StatusCreated)
}

// UploadNote - принимает multipart-файл, прогоняет через валидатор
// и создает заметку с изображением
func (h *Handlers) UploadNote(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	// setting the size limit from the config
	r.Body = http.MaxBytesReader(w, r.Body, h.Uploads.MaxSize()+1024*1024)
	if err := r.ParseMultipartForm(h.Uploads.MaxSize()); err != nil {
		WriteError(w, "Ошибка при обработке файла", http.StatusBadRequest)
		return
	}

	file, fileHeader, err := r.FormFile("image")
	if err != nil {
		WriteError(w, "Файл не выбран", http.StatusBadRequest)
		return
	}
	defer file.Close()

	// имя и размер проверяет валидатор, порядок проверок внутри него
	validated, err := h.Uploads.Validate(fileHeader.Filename, fileHeader.Size)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	// сверяем содержимое с заявленным расширением
	mtype, err := mimetype.DetectReader(file)
	if err != nil || !strings.HasPrefix(mtype.String(), "image/") {
		WriteError(w, "Файл не является изображением", http.StatusBadRequest)
		return
	}

	if _, err := file.Seek(0, 0); err != nil {
		WriteError(w, "Ошибка при обработке файла", http.StatusBadRequest)
		return
	}

	note, err := h.NoteService.CreateNoteWithImage(r.Context(), userID, validated.SafeName, file, validated.Size)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	imageURL, err := h.Storage.GetImageURL(r.Context(), note.Image)
	if err != nil {
		imageURL = ""
	}

	response := NoteResponse{
		NoteID:    note.NoteID,
		Content:   note.Content,
		Image:     note.Image,
		ImageURL:  imageURL,
		CreatedAt: note.CreatedAt.Format(time.RFC3339),
	}

	WriteSuccess(w, response, http.StatusCreated)
}

func (h *Handlers) ListNotes(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	notes, err := h.NoteService.ListNotesByUser(r.Context(), userID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, notes, http.StatusOK)
}

func (h *Handlers) DeleteNote(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	noteID := mux.Vars(r)["noteId"]

	if err := h.NoteService.DeleteNote(r.Context(), userID, noteID); err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, MessageResponse{Message: "Заметка удалена"}, http.StatusOK)
}
