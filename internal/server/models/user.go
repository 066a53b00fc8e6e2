package models

import "time"

// User is an identity record. Password holds the bcrypt hash and is never
// serialized into responses.
type User struct {
	ID        int64     `json:"userId"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
