package handlers

import (
	"encoding/json"
	"net/http"
	"noteblog/internal/models"
	"noteblog/internal/service"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gorilla/mux"
)

type PostResponse struct {
	Post     models.Post      `json:"post"`
	ImageURL string           `json:"imageUrl,omitempty"`
	Comments []models.Comment `json:"comments"`
}

func (h *Handlers) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.PostService.ListPosts(r.Context())
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, posts, http.StatusOK)
}

func (h *Handlers) GetPost(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["postId"]

	post, err := h.PostService.GetPost(r.Context(), postID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	comments, err := h.PostService.ListComments(r.Context(), postID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	imageURL := ""
	if post.Image != "" {
		if url, err := h.Storage.GetImageURL(r.Context(), post.Image); err == nil {
			imageURL = url
		}
	}

	response := PostResponse{
		Post:     *post,
		ImageURL: imageURL,
		Comments: comments,
	}

	WriteSuccess(w, response, http.StatusOK)
}

// CreatePost - принимает multipart-форму: title, content и необязательный файл image
func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	serviceReq := service.CreatePostRequest{UserID: userID}

	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		r.Body = http.MaxBytesReader(w, r.Body, h.Uploads.MaxSize()+1024*1024)
		if err := r.ParseMultipartForm(h.Uploads.MaxSize()); err != nil {
			WriteError(w, "Ошибка при обработке формы", http.StatusBadRequest)
			return
		}

		serviceReq.Title = r.FormValue("title")
		serviceReq.Content = r.FormValue("content")

		file, fileHeader, err := r.FormFile("image")
		if err == nil {
			defer file.Close()

			validated, err := h.Uploads.Validate(fileHeader.Filename, fileHeader.Size)
			if err != nil {
				WriteServiceError(w, err)
				return
			}

			mtype, err := mimetype.DetectReader(file)
			if err != nil || !strings.HasPrefix(mtype.String(), "image/") {
				WriteError(w, "Файл не является изображением", http.StatusBadRequest)
				return
			}

			if _, err := file.Seek(0, 0); err != nil {
				WriteError(w, "Ошибка при обработке файла", http.StatusBadRequest)
				return
			}

			serviceReq.Image = &service.ImageUpload{
				FileName: validated.SafeName,
				File:     file,
				Size:     validated.Size,
			}
		}
	} else {
		var req struct {
			Title   string `json:"title"`
			Content string `json:"content"`
		}

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
			return
		}

		serviceReq.Title = req.Title
		serviceReq.Content = req.Content
	}

	post, err := h.PostService.CreatePost(r.Context(), serviceReq)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, post, http.StatusCreated)
}

func (h *Handlers) CreateComment(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	postID := mux.Vars(r)["postId"]

	var req struct {
		Content string `json:"content"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	comment, err := h.PostService.CreateComment(r.Context(), userID, postID, req.Content)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, comment, http.StatusCreated)
}

func (h *Handlers) ListComments(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["postId"]

	comments, err := h.PostService.ListComments(r.Context(), postID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, comments, http.StatusOK)
}

func (h *Handlers) ListUserPosts(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	posts, err := h.PostService.ListPostsByUser(r.Context(), userID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, posts, http.StatusOK)
}
