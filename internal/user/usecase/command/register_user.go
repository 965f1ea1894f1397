package command

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tair/gog-commerce/internal/user/domain"
	"github.com/tair/gog-commerce/pkg/apperror"
	"github.com/tair/gog-commerce/pkg/auth"
)

// RegisterUserCommand represents the command to register a new user
type RegisterUserCommand struct {
	Name     string
	Email    string
	Password string
	Role     string // Optional, defaults to "user"
}

// RegisterResult is the created user and its first token
type RegisterResult struct {
	User  *domain.User
	Token string
}

// RegisterUserHandler handles user registration command
type RegisterUserHandler struct {
	repo   domain.UserRepository
	tokens *auth.TokenManager
}

// NewRegisterUserHandler creates a new register user handler
func NewRegisterUserHandler(repo domain.UserRepository, tokens *auth.TokenManager) *RegisterUserHandler {
	return &RegisterUserHandler{repo: repo, tokens: tokens}
}

// Handle executes the register user command
func (h *RegisterUserHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (*RegisterResult, error) {
	email := strings.ToLower(strings.TrimSpace(cmd.Email))
	switch {
	case strings.TrimSpace(cmd.Name) == "":
		return nil, apperror.New(apperror.ErrBadRequest, "Name is required")
	case email == "":
		return nil, apperror.New(apperror.ErrBadRequest, "Email is required")
	case cmd.Password == "":
		return nil, apperror.New(apperror.ErrBadRequest, "Password is required")
	}

	existing, err := h.repo.FindByEmail(ctx, email)
	switch {
	case err == nil && existing != nil:
		return nil, apperror.New(apperror.ErrConflict, "Email already exists")
	case err != nil && !errors.Is(err, apperror.ErrNotFound):
		return nil, fmt.Errorf("failed to look up email: %w", err)
	}

	hashedPassword, err := auth.HashPassword(cmd.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Name:     strings.TrimSpace(cmd.Name),
		Email:    email,
		Password: hashedPassword,
		Role:     domain.ParseRole(cmd.Role),
	}
	if err := h.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := h.tokens.GenerateToken(auth.Identity{UserID: user.ID, Email: user.Email})
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &RegisterResult{User: user, Token: token}, nil
}
