package command

import (
	"context"
	"fmt"

	"github.com/tair/gog-commerce/internal/user/domain"
	"github.com/tair/gog-commerce/pkg/apperror"
)

// UpdateProfileCommand represents the command to edit a user's profile
type UpdateProfileCommand struct {
	ActorID   uint
	ActorRole string
	UserID    uint
	Profile   domain.Profile
}

// UpdateProfileHandler handles update profile command
type UpdateProfileHandler struct {
	repo domain.UserRepository
}

// NewUpdateProfileHandler creates a new update profile handler
func NewUpdateProfileHandler(repo domain.UserRepository) *UpdateProfileHandler {
	return &UpdateProfileHandler{repo: repo}
}

// Handle executes the update profile command. Only the owner or an admin may edit.
func (h *UpdateProfileHandler) Handle(ctx context.Context, cmd UpdateProfileCommand) (*domain.User, error) {
	if cmd.UserID == 0 {
		return nil, apperror.New(apperror.ErrBadRequest, "Invalid user ID")
	}
	if cmd.ActorID != cmd.UserID && domain.Role(cmd.ActorRole) != domain.RoleAdmin {
		return nil, apperror.New(apperror.ErrForbidden, "Not allowed to edit this profile")
	}

	user, err := h.repo.FindByID(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}

	user.MobileNumber = cmd.Profile.MobileNumber
	user.Gender = cmd.Profile.Gender
	user.DOB = cmd.Profile.DOB
	user.Location = cmd.Profile.Location

	if err := h.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return user, nil
}
