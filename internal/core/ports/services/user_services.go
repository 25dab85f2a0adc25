package services

import (
	"context"
	"time"

	"github.com/SscSPs/fin_tracker_app/internal/core/domain"
	"github.com/SscSPs/fin_tracker_app/internal/dto"
)

// UserSvcFacade defines the user management operations exposed to handlers
// and to the auth layer.
type UserSvcFacade interface {
	RegisterUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error)
	AuthenticateUser(ctx context.Context, email string, password string) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error)
	DeleteUser(ctx context.Context, userID string, deleterUserID string) error
	// FindOrCreateGoogleUser resolves a verified Google identity to a local
	// user, creating one on first sign-in.
	FindOrCreateGoogleUser(ctx context.Context, providerUserID string, email string, name string) (*domain.User, error)
	UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error
	ClearRefreshToken(ctx context.Context, userID string) error
}
