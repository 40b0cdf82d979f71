package usecase

import (
	"context"
	"errors"

	"go-jobtracker-backend/internal/domain"
	"go-jobtracker-backend/internal/identity"
	"go-jobtracker-backend/pkg/apperror"
	"go-jobtracker-backend/pkg/logger"
	"go-jobtracker-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type profileUsecase struct {
	profileRepo domain.ProfileRepository
	validate    *validator.Validate
}

func NewProfileUsecase(profileRepo domain.ProfileRepository, validate *validator.Validate) domain.ProfileUsecase {
	return &profileUsecase{
		profileRepo: profileRepo,
		validate:    validate,
	}
}

func (u *profileUsecase) GetCurrentProfile(ctx context.Context) (*domain.Profile, error) {
	ident, err := identity.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	return u.loadProfile(ctx, ident.UserID)
}

// CreateProfile creates the caller's profile. The profile id is the account
// id, forced from the verified identity, so one account gets exactly one
// profile and the body cannot claim another account's slot.
func (u *profileUsecase) CreateProfile(ctx context.Context, profile *domain.Profile) error {
	ident, err := identity.FromContext(ctx)
	if err != nil {
		return err
	}

	profile.ID = ident.UserID

	if err := u.validate.Struct(profile); err != nil {
		return apperror.BadRequest(validation.FormatErrors(err))
	}

	exists, err := u.profileRepo.ExistsByID(ctx, profile.ID)
	if err != nil {
		return storeFailure("checking profile existence", err)
	}
	if exists {
		return apperror.Conflict("A profile already exists for this account")
	}

	emailTaken, err := u.profileRepo.ExistsByEmail(ctx, profile.Email)
	if err != nil {
		return storeFailure("checking profile email", err)
	}
	if emailTaken {
		return apperror.Conflict("Email already exists")
	}

	if err := u.profileRepo.Create(ctx, profile); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return apperror.Conflict("Email already exists")
		}
		return storeFailure("creating profile", err)
	}
	return nil
}

func (u *profileUsecase) UpdateCurrentProfile(ctx context.Context, patch *domain.Profile) (*domain.Profile, error) {
	ident, err := identity.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	return u.applyProfileUpdates(ctx, ident.UserID, patch)
}

// GetProfileByID serves the admin dashboard; owners may also fetch their own
// record through it. Anyone else is rejected outright, and existence is not
// sensitive on this path, so the rejection is a distinct Forbidden.
func (u *profileUsecase) GetProfileByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	ident, err := identity.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !identity.CanAccess(id, ident) {
		logger.Log.Warn("ownership guard rejected profile read", "profile_id", id, "caller", ident.UserID)
		return nil, apperror.Forbidden("You can only view your own profile")
	}
	return u.loadProfile(ctx, id)
}

func (u *profileUsecase) UpdateProfileByID(ctx context.Context, id uuid.UUID, patch *domain.Profile) (*domain.Profile, error) {
	ident, err := identity.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !identity.CanAccess(id, ident) {
		logger.Log.Warn("ownership guard rejected profile update", "profile_id", id, "caller", ident.UserID)
		return nil, apperror.Forbidden("You can only update your own profile")
	}
	return u.applyProfileUpdates(ctx, id, patch)
}

func (u *profileUsecase) loadProfile(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	profile, err := u.profileRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Profile not found")
		}
		return nil, storeFailure("fetching profile", err)
	}
	return profile, nil
}

func (u *profileUsecase) applyProfileUpdates(ctx context.Context, id uuid.UUID, patch *domain.Profile) (*domain.Profile, error) {
	existing, err := u.loadProfile(ctx, id)
	if err != nil {
		return nil, err
	}

	mergeProfile(existing, patch)

	if err := u.validate.Struct(existing); err != nil {
		return nil, apperror.BadRequest(validation.FormatErrors(err))
	}

	// Email uniqueness is not re-checked here; the unique index on the email
	// column backstops the rare admin-written collision.
	if err := u.profileRepo.Update(ctx, existing); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, apperror.Conflict("Email already exists")
		}
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Profile not found")
		}
		return nil, storeFailure("updating profile", err)
	}
	return existing, nil
}

// mergeProfile copies every patchable field onto the stored profile. ID is
// never copied: it is the account id and pins ownership. A blank email keeps
// the stored one so a partial patch cannot clear a required field.
func mergeProfile(existing, patch *domain.Profile) {
	existing.Name = patch.Name
	if patch.Email != "" {
		existing.Email = patch.Email
	}
	existing.Title = patch.Title
	existing.Bio = patch.Bio
	existing.Location = patch.Location
	existing.Phone = patch.Phone
	existing.Skills = patch.Skills
}
