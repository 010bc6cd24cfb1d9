package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserStore defines persistence operations for users. Implementations must
// serialize their uniqueness check-then-act sequences so that two concurrent
// creates (or updates) carrying the same email cannot both succeed.
type UserStore interface {
	Create(ctx context.Context, user User) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	List(ctx context.Context) ([]User, error)
	Update(ctx context.Context, id uuid.UUID, update UserUpdate) (User, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Clear(ctx context.Context)
}

// User represents a stored user record.
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Sanitized returns a copy of the user with credential material removed.
// Every record crossing the service boundary goes through this.
func (u User) Sanitized() User {
	u.PasswordHash = ""
	return u
}

// UserUpdate carries partial-update fields. A nil field is left untouched.
// Email and PasswordHash must already be normalized/hashed by the caller;
// the store only applies them and re-checks email uniqueness.
type UserUpdate struct {
	Name         *string
	Email        *string
	PasswordHash *string
}
