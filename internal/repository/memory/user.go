package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/umtaldejr/money-tracker-api/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

// UserRepository is an in-memory user store. All mutations run under a
// single mutex so every uniqueness check-then-act is atomic; records are
// kept in insertion order for listing and indexed by ID and case-folded
// email for lookups. Nothing survives a process restart.
type UserRepository struct {
	mu      sync.RWMutex
	order   []uuid.UUID
	byID    map[uuid.UUID]model.User
	byEmail map[string]uuid.UUID
}

// NewUserRepository creates an empty in-memory user repository.
func NewUserRepository() *UserRepository {
	return &UserRepository{
		byID:    make(map[uuid.UUID]model.User),
		byEmail: make(map[string]uuid.UUID),
	}
}

func emailKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Create assigns an ID and timestamps and inserts the user. It fails with
// ErrEmailTaken if another live record already holds the case-folded email.
func (r *UserRepository) Create(_ context.Context, user model.User) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := emailKey(user.Email)
	if _, exists := r.byEmail[key]; exists {
		return model.User{}, model.ErrEmailTaken
	}

	now := time.Now()
	user.ID = uuid.New()
	user.CreatedAt = now
	user.UpdatedAt = now

	r.byID[user.ID] = user
	r.byEmail[key] = user.ID
	r.order = append(r.order, user.ID)

	return user, nil
}

// GetByID returns the user with the given ID or ErrNotFound.
func (r *UserRepository) GetByID(_ context.Context, id uuid.UUID) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byID[id]
	if !ok {
		return model.User{}, model.ErrNotFound
	}
	return user, nil
}

// GetByEmail returns the user holding the email, compared case-insensitively,
// or ErrNotFound.
func (r *UserRepository) GetByEmail(_ context.Context, email string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[emailKey(email)]
	if !ok {
		return model.User{}, model.ErrNotFound
	}
	return r.byID[id], nil
}

// List returns all users in insertion order.
func (r *UserRepository) List(_ context.Context) ([]model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]model.User, 0, len(r.order))
	for _, id := range r.order {
		users = append(users, r.byID[id])
	}
	return users, nil
}

// Update applies the supplied fields to the record. An email change re-checks
// uniqueness under the same lock, excluding the record's own ID, and moves
// the email index entry. UpdatedAt is always refreshed.
func (r *UserRepository) Update(_ context.Context, id uuid.UUID, update model.UserUpdate) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.byID[id]
	if !ok {
		return model.User{}, model.ErrNotFound
	}

	if update.Email != nil {
		newKey := emailKey(*update.Email)
		if holder, exists := r.byEmail[newKey]; exists && holder != id {
			return model.User{}, model.ErrEmailTaken
		}
		delete(r.byEmail, emailKey(user.Email))
		r.byEmail[newKey] = id
		user.Email = newKey
	}
	if update.Name != nil {
		user.Name = *update.Name
	}
	if update.PasswordHash != nil {
		user.PasswordHash = *update.PasswordHash
	}
	user.UpdatedAt = time.Now()

	r.byID[id] = user
	return user, nil
}

// Delete removes the record from both indexes atomically. It fails with
// ErrNotFound if the ID does not resolve to a live record.
func (r *UserRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.byID[id]
	if !ok {
		return model.ErrNotFound
	}

	delete(r.byID, id)
	delete(r.byEmail, emailKey(user.Email))
	for i, orderedID := range r.order {
		if orderedID == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// Clear wipes all records. Used for full resets in tests, never routed.
func (r *UserRepository) Clear(_ context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.order = nil
	r.byID = make(map[uuid.UUID]model.User)
	r.byEmail = make(map[string]uuid.UUID)
}
