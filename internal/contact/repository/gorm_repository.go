package repository

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/tair/gog-commerce/internal/contact/domain"
	"github.com/tair/gog-commerce/pkg/apperror"
	"github.com/tair/gog-commerce/pkg/tracing"
)

var tracer = otel.Tracer("contact-repository")

// GormMessageRepository implements MessageRepository using GORM
type GormMessageRepository struct {
	db *gorm.DB
}

// NewGormMessageRepository creates a new GORM message repository
func NewGormMessageRepository(db *gorm.DB) *GormMessageRepository {
	return &GormMessageRepository{db: db}
}

// Create stores a submission
func (r *GormMessageRepository) Create(ctx context.Context, m *domain.Message) error {
	ctx, span := tracer.Start(ctx, "repository.CreateMessage")
	defer span.End()

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return tracing.RecordError(span, fmt.Errorf("failed to create message: %w", err))
	}
	span.SetAttributes(attribute.Int("message.id", int(m.ID)))
	return nil
}

// FindAll returns every submission, newest first
func (r *GormMessageRepository) FindAll(ctx context.Context) ([]domain.Message, error) {
	ctx, span := tracer.Start(ctx, "repository.FindAllMessages")
	defer span.End()

	var messages []domain.Message
	if err := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&messages).Error; err != nil {
		return nil, tracing.RecordError(span, fmt.Errorf("failed to find messages: %w", err))
	}
	return messages, nil
}

// Delete removes a submission
func (r *GormMessageRepository) Delete(ctx context.Context, id uint) error {
	ctx, span := tracer.Start(ctx, "repository.DeleteMessage",
		trace.WithAttributes(attribute.Int("message.id", int(id))),
	)
	defer span.End()

	result := r.db.WithContext(ctx).Delete(&domain.Message{}, id)
	if result.Error != nil {
		return tracing.RecordError(span, fmt.Errorf("failed to delete message: %w", result.Error))
	}
	if result.RowsAffected == 0 {
		return apperror.New(apperror.ErrNotFound, "Message not found")
	}
	return nil
}

// AutoMigrate runs database migrations
func (r *GormMessageRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Message{})
}
