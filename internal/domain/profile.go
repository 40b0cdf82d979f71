package domain

import (
	"context"

	"github.com/google/uuid"
)

// Profile is the per-account profile. Its ID is the owning account id, so there
// is at most one profile per account.
type Profile struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name" validate:"required,valid_name"`
	Email    string    `json:"email" validate:"required,email"`
	Title    string    `json:"title"`
	Bio      string    `json:"bio" validate:"no_emoji"`
	Location string    `json:"location"`
	Phone    *string   `json:"phone,omitempty" validate:"omitempty,valid_phone"`
	Skills   []string  `json:"skills,omitempty"`
}

type ProfileRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Profile, error)
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, profile *Profile) error
	Update(ctx context.Context, profile *Profile) error
}

type ProfileUsecase interface {
	GetCurrentProfile(ctx context.Context) (*Profile, error)
	CreateProfile(ctx context.Context, profile *Profile) error
	UpdateCurrentProfile(ctx context.Context, patch *Profile) (*Profile, error)
	GetProfileByID(ctx context.Context, id uuid.UUID) (*Profile, error)
	UpdateProfileByID(ctx context.Context, id uuid.UUID, patch *Profile) (*Profile, error)
}
