package models

import "time"

// TodoStatus is the lifecycle state of a todo item.
type TodoStatus string

const (
	StatusPending   TodoStatus = "pending"
	StatusCompleted TodoStatus = "completed"
)

// Valid reports whether s is one of the known status values.
func (s TodoStatus) Valid() bool {
	return s == StatusPending || s == StatusCompleted
}

// Todo is a task owned by exactly one user. Ownership is exclusive; a todo is
// visible and mutable only through requests authenticated as its owner.
type Todo struct {
	ID        int64      `json:"todoId"`
	Title     string     `json:"title"`
	Status    TodoStatus `json:"status"`
	UserID    int64      `json:"userId"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}
