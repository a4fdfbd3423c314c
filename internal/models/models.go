package models

import "time"

type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Task struct {
	ID        int        `json:"id"`
	OwnerID   int        `json:"ownerId"`
	Title     string     `json:"title"`
	Category  string     `json:"category"`
	IsDone    bool       `json:"isDone"`
	Date      *time.Time `json:"date"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// TaskPatch carries the only mutable task fields. Nil means the field
// was not supplied and must be left untouched.
type TaskPatch struct {
	Date   *time.Time `json:"date"`
	IsDone *bool      `json:"isDone"`
}
