package models

import (
	"time"
)

type User struct {
	UserID                 string    `json:"userId" db:"user_id"`
	Email                  string    `json:"email" db:"email"`
	PasswordHash           string    `json:"-" db:"password_hash"`
	FirstName              string    `json:"firstName" db:"first_name"`
	LastName               string    `json:"lastName" db:"last_name"`
	Bio                    string    `json:"bio" db:"bio"`
	Avatar                 string    `json:"avatar" db:"avatar"`
	RefreshToken           string    `json:"-" db:"refresh_token"`
	RefreshTokenExpiryTime time.Time `json:"-" db:"refresh_token_expiry_time"`
	CreatedAt              time.Time `json:"createdAt" db:"created_at"`
}

type Note struct {
	NoteID    string    `json:"noteId" db:"note_id"`
	UserID    string    `json:"userId" db:"user_id"`
	Content   string    `json:"content" db:"content"`
	Image     string    `json:"image" db:"image"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

type Post struct {
	PostID    string    `json:"postId" db:"post_id"`
	UserID    string    `json:"userId" db:"user_id"`
	Title     string    `json:"title" db:"title"`
	Content   string    `json:"content" db:"content"`
	Image     string    `json:"image" db:"image"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

type Comment struct {
	CommentID string    `json:"commentId" db:"comment_id"`
	PostID    string    `json:"postId" db:"post_id"`
	UserID    string    `json:"userId" db:"user_id"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
