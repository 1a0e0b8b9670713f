package repository

import (
	"context"
	"errors"

	"github.com/ayushkamni/desi-premium/internal/models"
)

var (
	ErrNotFound       = errors.New("record not found")
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserStats are the counts shown on the admin dashboard.
type UserStats struct {
	Total   int64 `json:"totalUsers"`
	Pending int64 `json:"pendingUsers"`
	Admins  int64 `json:"totalAdmins"`
}

type UserRepository interface {
	Create(ctx context.Context, u *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	// Approve sets is_approved=true. Promote sets role=admin and forces
	// is_approved=true.
	Approve(ctx context.Context, id string) error
	Promote(ctx context.Context, id string) error
	UpdatePasswordHash(ctx context.Context, id, hash string) error
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (UserStats, error)
}
