package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"noteblog/internal/repository"
	"noteblog/internal/service"
	"noteblog/internal/upload"
)

// ErrorResponse - стандартный ответ с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// WriteError - универсальная функция для отправки ошибок
func WriteError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

// WriteSuccess - функция для успешных ответов
func WriteSuccess(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// WriteServiceError - переводит ошибки сервисного слоя в HTTP-статусы
func WriteServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		WriteError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, upload.ErrNoFile),
		errors.Is(err, upload.ErrEmptyFilename),
		errors.Is(err, upload.ErrTooLarge),
		errors.Is(err, upload.ErrBadExtension):
		WriteError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrInvalidCredentials):
		WriteError(w, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, service.ErrForbidden):
		WriteError(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, repository.ErrUserNotFound),
		errors.Is(err, repository.ErrNoteNotFound),
		errors.Is(err, repository.ErrPostNotFound),
		errors.Is(err, repository.ErrCommentNotFound):
		WriteError(w, err.Error(), http.StatusNotFound)
	default:
		// детали StorageFailure наружу не отдаем
		log.Printf("Внутренняя ошибка: %v", err)
		WriteError(w, "внутренняя ошибка сервера", http.StatusInternalServerError)
	}
}
