package mockapi

import (
	"context"
	"fmt"
	"net/http"
)

// User is a record of the mocked users endpoint
type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// NewUser is the create payload; name and email are required
type NewUser struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role"`
}

func seedUsers() []User {
	return []User{
		{ID: 1, Name: "Kim Chulsoo", Email: "kim@example.com", Role: "admin"},
		{ID: 2, Name: "Lee Younghee", Email: "lee@example.com", Role: "user"},
		{ID: 3, Name: "Park Minsu", Email: "park@example.com", Role: "user"},
	}
}

// ListUsers returns all users
func (a *API) ListUsers(ctx context.Context) ([]User, error) {
	if err := a.delay(ctx, a.cfg.UserListDelay); err != nil {
		return nil, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]User(nil), a.users...), nil
}

// GetUser returns the user with id or ErrUserNotFound
func (a *API) GetUser(ctx context.Context, id int) (User, error) {
	if err := a.delay(ctx, a.cfg.UserGetDelay); err != nil {
		return User{}, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	for _, u := range a.users {
		if u.ID == id {
			return u, nil
		}
	}
	return User{}, fmt.Errorf("user %d: %w", id, ErrUserNotFound)
}

// CreateUser validates and appends a user
func (a *API) CreateUser(ctx context.Context, in NewUser) (User, error) {
	if err := a.delay(ctx, a.cfg.UserCreateDelay); err != nil {
		return User{}, err
	}
	if err := a.validate.Struct(in); err != nil {
		return User{}, fmt.Errorf("%w: name and email are required: %v", ErrInvalidInput, err)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	maxID := 0
	for _, u := range a.users {
		if u.ID > maxID {
			maxID = u.ID
		}
	}
	user := User{ID: maxID + 1, Name: in.Name, Email: in.Email, Role: in.Role}
	a.users = append(a.users, user)
	return user, nil
}

// DeleteUser removes the user with id or returns ErrUserNotFound
func (a *API) DeleteUser(ctx context.Context, id int) error {
	if err := a.delay(ctx, a.cfg.UserDeleteDelay); err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	for i, u := range a.users {
		if u.ID == id {
			a.users = append(a.users[:i], a.users[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("user %d: %w", id, ErrUserNotFound)
}

// SimulateError always fails with a 500 after the configured delay
func (a *API) SimulateError(ctx context.Context) error {
	if err := a.delay(ctx, a.cfg.ErrorEndpointDelay); err != nil {
		return err
	}
	return &APIError{
		Code:    http.StatusInternalServerError,
		Message: ErrInternal.Error(),
		Details: "Internal server error",
	}
}
