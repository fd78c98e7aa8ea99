package main

import (
	"fmt"
	"log"
	"net/http"
	"noteblog/cmd/app"
	"noteblog/internal/config"
	handlers "noteblog/internal/handler"
	"noteblog/internal/middleware"

	"github.com/gorilla/mux"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	if cfg.JWTSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY не установлен в .env файле")
	}

	db, minioClient, services := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(services, minioClient, cfg)

	router := mux.NewRouter()

	// setting up routes
	router.HandleFunc("/health", handler.HealthHandler).Methods(http.MethodGet)

	router.HandleFunc("/api/auth/register", handler.Register).Methods(http.MethodPost)
	router.HandleFunc("/api/auth/login", handler.Login).Methods(http.MethodPost)
	router.HandleFunc("/api/auth/refresh-token", handler.RefreshToken).Methods(http.MethodPost)

	router.HandleFunc("/api/me", handler.GetCurrentUser).Methods(http.MethodGet)
	router.HandleFunc("/api/me", handler.UpdateProfile).Methods(http.MethodPut)
	router.HandleFunc("/api/users/{userId}", handler.GetUser).Methods(http.MethodGet)
	router.HandleFunc("/api/users/{userId}/posts", handler.ListUserPosts).Methods(http.MethodGet)

	router.HandleFunc("/api/notes", handler.ListNotes).Methods(http.MethodGet)
	router.HandleFunc("/api/notes", handler.CreateNote).Methods(http.MethodPost)
	router.HandleFunc("/api/notes/upload", handler.UploadNote).Methods(http.MethodPost)
	router.HandleFunc("/api/notes/{noteId}", handler.DeleteNote).Methods(http.MethodDelete)

	router.HandleFunc("/api/posts", handler.ListPosts).Methods(http.MethodGet)
	router.HandleFunc("/api/posts", handler.CreatePost).Methods(http.MethodPost)
	router.HandleFunc("/api/posts/{postId}", handler.GetPost).Methods(http.MethodGet)
	router.HandleFunc("/api/posts/{postId}/comments", handler.ListComments).Methods(http.MethodGet)
	router.HandleFunc("/api/posts/{postId}/comments", handler.CreateComment).Methods(http.MethodPost)

	handlerChain := middleware.Chain(
		router,
		middleware.LoggingMiddleware,
		middleware.CORSMiddleware,
		middleware.AuthMiddleware(cfg),
	)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	fmt.Printf("Сервер запущен на %s\n", addr)
	fmt.Printf("База данных: %s\n", cfg.DB.DbNAME)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}
