package query

import (
	"context"
	"fmt"

	"github.com/tair/gog-commerce/internal/contact/domain"
)

// ListMessagesQuery represents the query to list submissions
type ListMessagesQuery struct{}

// ListMessagesHandler handles list messages query
type ListMessagesHandler struct {
	repo domain.MessageRepository
}

// NewListMessagesHandler creates a new list messages handler
func NewListMessagesHandler(repo domain.MessageRepository) *ListMessagesHandler {
	return &ListMessagesHandler{repo: repo}
}

// Handle executes the list messages query
func (h *ListMessagesHandler) Handle(ctx context.Context, q ListMessagesQuery) ([]domain.Message, error) {
	messages, err := h.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	if messages == nil {
		messages = []domain.Message{}
	}
	return messages, nil
}
