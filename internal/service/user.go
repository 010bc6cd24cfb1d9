package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/umtaldejr/money-tracker-api/internal/logger"
	"github.com/umtaldejr/money-tracker-api/internal/model"
)

// PasswordCodec performs one-way password hashing and verification.
type PasswordCodec interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, digest string) bool
}

// RegisterInput carries the registration payload.
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateInput carries a partial-update payload. Nil fields are not touched.
type UpdateInput struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

// User orchestrates the user store, password codec and token manager. Every
// record it returns has the password hash stripped.
type User struct {
	store        model.UserStore
	codec        PasswordCodec
	tokenManager model.TokenManager
	logger       *logger.Logger
}

// NewUser creates a new User service.
func NewUser(store model.UserStore, codec PasswordCodec, tokenManager model.TokenManager, logger *logger.Logger) *User {
	return &User{
		store:        store,
		codec:        codec,
		tokenManager: tokenManager,
		logger:       logger,
	}
}

// Register validates the input, enforces email uniqueness, hashes the
// password and stores the record.
func (s *User) Register(ctx context.Context, input RegisterInput) (model.User, error) {
	s.logger.Debug("user service: starting registration", "email", input.Email)

	if errs := validateRegisterInput(input); len(errs) > 0 {
		return model.User{}, &model.ValidationError{Errors: errs}
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))

	_, err := s.store.GetByEmail(ctx, email)
	if err == nil {
		s.logger.Info("user service: email already taken", "email", email)
		return model.User{}, model.ErrEmailTaken
	}
	if !errors.Is(err, model.ErrNotFound) {
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	hash, err := s.codec.Hash(input.Password)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	// The store re-checks uniqueness under its own lock; the lookup above
	// only provides the fast path. A concurrent duplicate loses here.
	user, err := s.store.Create(ctx, model.User{
		Name:         strings.TrimSpace(input.Name),
		Email:        email,
		PasswordHash: hash,
	})
	if err != nil {
		return model.User{}, err
	}

	s.logger.Info("user service: registration completed", "user_id", user.ID)

	return user.Sanitized(), nil
}

// Login verifies the credentials and issues a token. Unknown email and wrong
// password fail identically so the response does not leak which was wrong.
func (s *User) Login(ctx context.Context, email, password string) (model.User, string, error) {
	s.logger.Debug("user service: starting login", "email", email)

	user, err := s.store.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, "", model.ErrInvalidCredentials
	}
	if err != nil {
		return model.User{}, "", fmt.Errorf("failed to get user by email: %w", err)
	}

	if !s.codec.Verify(password, user.PasswordHash) {
		return model.User{}, "", model.ErrInvalidCredentials
	}

	tokenString, err := s.tokenManager.Issue(user.ID, user.Email)
	if err != nil {
		return model.User{}, "", fmt.Errorf("failed to issue token: %w", err)
	}

	s.logger.Info("user service: login completed", "user_id", user.ID)

	return user.Sanitized(), tokenString, nil
}

// Get returns the record with the given ID.
func (s *User) Get(ctx context.Context, id uuid.UUID) (model.User, error) {
	user, err := s.store.GetByID(ctx, id)
	if err != nil {
		return model.User{}, err
	}
	return user.Sanitized(), nil
}

// List returns all records in insertion order.
func (s *User) List(ctx context.Context) ([]model.User, error) {
	users, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}

	sanitized := make([]model.User, len(users))
	for i, user := range users {
		sanitized[i] = user.Sanitized()
	}
	return sanitized, nil
}

// Update applies the supplied fields. Validation runs only for present
// fields; a supplied password is re-hashed; a supplied email is normalized
// and re-checked for uniqueness by the store, excluding the record itself.
func (s *User) Update(ctx context.Context, id uuid.UUID, input UpdateInput) (model.User, error) {
	s.logger.Debug("user service: updating user", "user_id", id)

	if errs := validateUpdateInput(input); len(errs) > 0 {
		return model.User{}, &model.ValidationError{Errors: errs}
	}

	update := model.UserUpdate{}
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		update.Name = &name
	}
	if input.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*input.Email))
		update.Email = &email
	}
	if input.Password != nil {
		hash, err := s.codec.Hash(*input.Password)
		if err != nil {
			return model.User{}, fmt.Errorf("failed to hash password: %w", err)
		}
		update.PasswordHash = &hash
	}

	user, err := s.store.Update(ctx, id, update)
	if err != nil {
		return model.User{}, err
	}

	s.logger.Info("user service: update completed", "user_id", user.ID)

	return user.Sanitized(), nil
}

// Delete permanently removes the record. No soft-delete.
func (s *User) Delete(ctx context.Context, id uuid.UUID) error {
	s.logger.Debug("user service: deleting user", "user_id", id)

	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("user service: delete completed", "user_id", id)
	return nil
}
