package handlers

import (
	"encoding/json"
	"net/http"
	"noteblog/internal/models"
	"noteblog/internal/service"

	"github.com/gorilla/mux"
)

func userResponse(user *models.User) UserResponse {
	return UserResponse{
		UserID:    user.UserID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Bio:       user.Bio,
		Avatar:    user.Avatar,
	}
}

func (h *Handlers) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	// get user by id
	user, err := h.UserService.GetUser(r.Context(), userID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, userResponse(user), http.StatusOK)
}

func (h *Handlers) GetUser(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	user, err := h.UserService.GetUser(r.Context(), userID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	// чужой профиль отдаем без email
	response := userResponse(user)
	currentUserID, _ := r.Context().Value("userID").(string)
	if currentUserID != userID {
		response.Email = ""
	}

	WriteSuccess(w, response, http.StatusOK)
}

func (h *Handlers) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	var req struct {
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Bio       string `json:"bio"`
		Avatar    string `json:"avatar"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	serviceReq := service.UpdateProfileRequest{
		UserID:    userID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Bio:       req.Bio,
		Avatar:    req.Avatar,
	}

	user, err := h.UserService.UpdateProfile(r.Context(), serviceReq)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, userResponse(user), http.StatusOK)
}

func (h *Handlers) HealthHandler(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, MessageResponse{Message: "ok"}, http.StatusOK)
}
