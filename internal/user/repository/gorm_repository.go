package repository

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/tair/gog-commerce/internal/user/domain"
	"github.com/tair/gog-commerce/pkg/apperror"
	"github.com/tair/gog-commerce/pkg/tracing"
)

var tracer = otel.Tracer("user-repository")

var errUserNotFound = apperror.New(apperror.ErrNotFound, "User not found")

// GormUserRepository implements UserRepository interface using GORM
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GORM user repository
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// Create inserts a new user into the database
func (r *GormUserRepository) Create(ctx context.Context, user *domain.User) error {
	ctx, span := tracer.Start(ctx, "repository.CreateUser",
		trace.WithAttributes(attribute.String("user.email", user.Email)),
	)
	defer span.End()

	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperror.New(apperror.ErrConflict, "Email already exists")
		}
		return tracing.RecordError(span, fmt.Errorf("failed to create user: %w", err))
	}

	span.SetAttributes(attribute.Int("user.id", int(user.ID)))
	return nil
}

// FindByID retrieves a user by ID
func (r *GormUserRepository) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	ctx, span := tracer.Start(ctx, "repository.FindUserByID",
		trace.WithAttributes(attribute.Int("user.id", int(id))),
	)
	defer span.End()

	var user domain.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errUserNotFound
		}
		return nil, tracing.RecordError(span, fmt.Errorf("failed to find user: %w", err))
	}
	return &user, nil
}

// FindByEmail retrieves a user by email
func (r *GormUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	ctx, span := tracer.Start(ctx, "repository.FindUserByEmail")
	defer span.End()

	var user domain.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errUserNotFound
		}
		return nil, tracing.RecordError(span, fmt.Errorf("failed to find user: %w", err))
	}

	span.SetAttributes(attribute.Int("user.id", int(user.ID)))
	return &user, nil
}

// FindAll retrieves every user ordered by id
func (r *GormUserRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	ctx, span := tracer.Start(ctx, "repository.FindAllUsers")
	defer span.End()

	var users []domain.User
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&users).Error; err != nil {
		return nil, tracing.RecordError(span, fmt.Errorf("failed to find users: %w", err))
	}

	span.SetAttributes(attribute.Int("result.count", len(users)))
	return users, nil
}

// Update saves every field of an existing user
func (r *GormUserRepository) Update(ctx context.Context, user *domain.User) error {
	ctx, span := tracer.Start(ctx, "repository.UpdateUser",
		trace.WithAttributes(attribute.Int("user.id", int(user.ID))),
	)
	defer span.End()

	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		return tracing.RecordError(span, fmt.Errorf("failed to update user: %w", err))
	}
	return nil
}

// AutoMigrate runs database migrations
func (r *GormUserRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.User{})
}
