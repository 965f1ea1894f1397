package command

import (
	"context"

	"github.com/tair/gog-commerce/internal/contact/domain"
	"github.com/tair/gog-commerce/pkg/apperror"
)

// DeleteMessageCommand represents the command to delete a submission
type DeleteMessageCommand struct {
	ID uint
}

// DeleteMessageHandler handles delete message command
type DeleteMessageHandler struct {
	repo domain.MessageRepository
}

// NewDeleteMessageHandler creates a new delete message handler
func NewDeleteMessageHandler(repo domain.MessageRepository) *DeleteMessageHandler {
	return &DeleteMessageHandler{repo: repo}
}

// Handle executes the delete message command
func (h *DeleteMessageHandler) Handle(ctx context.Context, cmd DeleteMessageCommand) error {
	if cmd.ID == 0 {
		return apperror.New(apperror.ErrBadRequest, "Invalid message ID")
	}
	return h.repo.Delete(ctx, cmd.ID)
}
