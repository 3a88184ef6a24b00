package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `db:"id"`
	Email        string    `db:"email"`
	Password     string    `db:"password"`
	FullName     string    `db:"full_name"`
	BusinessName string    `db:"business_name"`
	Industry     string    `db:"industry"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}
