package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/tair/gog-commerce/internal/contact/domain"
	"github.com/tair/gog-commerce/pkg/apperror"
)

// SubmitMessageCommand represents a contact form submission
type SubmitMessageCommand struct {
	Name    string
	Subject string
	Phone   string
	Email   string
	Message string
}

// SubmitMessageHandler handles submit message command
type SubmitMessageHandler struct {
	repo domain.MessageRepository
}

// NewSubmitMessageHandler creates a new submit message handler
func NewSubmitMessageHandler(repo domain.MessageRepository) *SubmitMessageHandler {
	return &SubmitMessageHandler{repo: repo}
}

// Handle executes the submit message command. Name, email and message are required.
func (h *SubmitMessageHandler) Handle(ctx context.Context, cmd SubmitMessageCommand) (*domain.Message, error) {
	m := &domain.Message{
		Name:    strings.TrimSpace(cmd.Name),
		Subject: strings.TrimSpace(cmd.Subject),
		Phone:   strings.TrimSpace(cmd.Phone),
		Email:   strings.TrimSpace(cmd.Email),
		Message: strings.TrimSpace(cmd.Message),
	}
	if m.Name == "" || m.Email == "" || m.Message == "" {
		return nil, apperror.New(apperror.ErrBadRequest, "Name, email and message are required")
	}

	if err := h.repo.Create(ctx, m); err != nil {
		return nil, fmt.Errorf("failed to submit message: %w", err)
	}
	return m, nil
}
