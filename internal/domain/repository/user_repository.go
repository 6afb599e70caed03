package repository

import (
	"context"
	"errors"

	"github.com/roni9843/sonakanda-backend/internal/domain/entity"
)

var (
	// ErrNotFound is returned when no user matches the lookup.
	ErrNotFound = errors.New("user not found")
	// ErrDuplicateMobile is returned when an insert violates the
	// mobile_number unique constraint.
	ErrDuplicateMobile = errors.New("mobile number already in use")
	// ErrDuplicateNID is returned when an insert violates the
	// nid_number unique constraint.
	ErrDuplicateNID = errors.New("nid number already in use")
)

// UserRepository defines the interface for user persistence.
// All operations touch a single row.
type UserRepository interface {
	// Create inserts the user and fills in ID, CreatedAt and UpdatedAt.
	// The store's unique constraints are the authoritative duplicate guard;
	// violations surface as ErrDuplicateMobile or ErrDuplicateNID.
	Create(ctx context.Context, u *entity.User) error
	// GetByID loads a user without its password hash.
	GetByID(ctx context.Context, id string) (*entity.User, error)
	// GetByMobile loads a user including the password hash, for login.
	GetByMobile(ctx context.Context, mobile string) (*entity.User, error)
	// GetByMobileOrNID finds any user holding either unique value.
	GetByMobileOrNID(ctx context.Context, mobile, nid string) (*entity.User, error)
}
