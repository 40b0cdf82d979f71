package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"go-jobtracker-backend/internal/domain"
	"go-jobtracker-backend/internal/identity"
	"go-jobtracker-backend/pkg/apperror"
	"go-jobtracker-backend/pkg/logger"

	"github.com/google/uuid"
)

type jobUsecase struct {
	jobRepo domain.JobRepository
}

func NewJobUsecase(jobRepo domain.JobRepository) domain.JobUsecase {
	return &jobUsecase{jobRepo: jobRepo}
}

// ListJobs returns every job owned by the caller, most recently touched first.
func (u *jobUsecase) ListJobs(ctx context.Context) ([]domain.Job, error) {
	ident, err := identity.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	jobs, err := u.jobRepo.FetchByUser(ctx, ident.UserID)
	if err != nil {
		return nil, storeFailure("fetching jobs", err)
	}
	return jobs, nil
}

// GetJob loads one job scoped to the caller. Absent and not-owned are
// indistinguishable so other users' ids never leak.
func (u *jobUsecase) GetJob(ctx context.Context, id uuid.UUID) (*domain.Job, error) {
	ident, err := identity.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	job, err := u.jobRepo.GetByIDAndUser(ctx, id, ident.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, storeFailure("fetching job", err)
	}
	if !identity.CanAccess(job.UserID, ident) {
		logger.Log.Warn("ownership guard rejected job read", "job_id", id, "caller", ident.UserID)
		return nil, apperror.NotFound("Job not found")
	}
	return job, nil
}

func (u *jobUsecase) CreateJob(ctx context.Context, job *domain.Job) error {
	ident, err := identity.FromContext(ctx)
	if err != nil {
		return err
	}

	if err := validateJob(job); err != nil {
		return err
	}

	if job.ID == uuid.Nil {
		job.ID = uuid.New()
	}
	// Ownership is established here, never from the request body.
	job.UserID = ident.UserID
	job.LastModified = time.Now()

	if err := u.jobRepo.Create(ctx, job); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return apperror.Conflict("A job with this ID already exists")
		}
		return storeFailure("creating job", err)
	}
	return nil
}

func (u *jobUsecase) UpdateJob(ctx context.Context, id uuid.UUID, patch *domain.Job) (*domain.Job, error) {
	ident, err := identity.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	existing, err := u.jobRepo.GetByIDAndUser(ctx, id, ident.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found or you don't have permission to update it")
		}
		return nil, storeFailure("loading job for update", err)
	}
	if !identity.CanAccess(existing.UserID, ident) {
		logger.Log.Warn("ownership guard rejected job update", "job_id", id, "caller", ident.UserID)
		return nil, apperror.NotFound("Job not found or you don't have permission to update it")
	}

	mergeJob(existing, patch)
	if err := validateJob(existing); err != nil {
		return nil, err
	}
	existing.LastModified = time.Now()

	if err := u.jobRepo.Update(ctx, existing); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found or you don't have permission to update it")
		}
		return nil, storeFailure("updating job", err)
	}
	return existing, nil
}

func (u *jobUsecase) DeleteJob(ctx context.Context, id uuid.UUID) error {
	ident, err := identity.FromContext(ctx)
	if err != nil {
		return err
	}

	err = u.jobRepo.DeleteByIDAndUser(ctx, id, ident.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Job not found or you don't have permission to delete it")
		}
		return storeFailure("deleting job", err)
	}
	return nil
}

// SearchJobs applies the supplied predicates over the caller's own jobs.
// Unset predicates match everything.
func (u *jobUsecase) SearchJobs(ctx context.Context, filter domain.JobFilter) ([]domain.Job, error) {
	ident, err := identity.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	jobs, err := u.jobRepo.FetchByFilters(ctx, ident.UserID, filter)
	if err != nil {
		return nil, storeFailure("searching jobs", err)
	}
	return jobs, nil
}

// StatusCounts tallies the caller's jobs per status. Every entry of the fixed
// vocabulary is present in the result, zero included; statuses outside the
// vocabulary are dropped from the tally.
func (u *jobUsecase) StatusCounts(ctx context.Context) (map[string]int, error) {
	ident, err := identity.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	raw, err := u.jobRepo.CountByStatus(ctx, ident.UserID)
	if err != nil {
		return nil, storeFailure("counting jobs by status", err)
	}

	counts := make(map[string]int, len(domain.JobStatuses))
	for _, status := range domain.JobStatuses {
		counts[status] = 0
	}
	for status, n := range raw {
		if _, ok := counts[status]; ok {
			counts[status] += n
		}
	}
	return counts, nil
}

// SetFavorite toggles the favorite flag. A no-op toggle performs no write so
// last_modified does not churn.
func (u *jobUsecase) SetFavorite(ctx context.Context, id uuid.UUID, favorite bool) (*domain.Job, error) {
	ident, err := identity.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	job, err := u.jobRepo.GetByIDAndUser(ctx, id, ident.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, storeFailure("loading job", err)
	}
	if !identity.CanAccess(job.UserID, ident) {
		logger.Log.Warn("ownership guard rejected favorite toggle", "job_id", id, "caller", ident.UserID)
		return nil, apperror.NotFound("Job not found")
	}

	if job.Favorite == favorite {
		return job, nil
	}

	job.Favorite = favorite
	job.LastModified = time.Now()
	if err := u.jobRepo.Update(ctx, job); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, storeFailure("updating job favorite", err)
	}
	return job, nil
}

func (u *jobUsecase) ListFavorites(ctx context.Context) ([]domain.Job, error) {
	ident, err := identity.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	jobs, err := u.jobRepo.FetchFavoritesByUser(ctx, ident.UserID)
	if err != nil {
		return nil, storeFailure("fetching favorite jobs", err)
	}
	return jobs, nil
}

// mergeJob copies every patchable field onto the stored job. ID, UserID and
// LastModified are deliberately not listed: ownership and identity are
// immutable after creation.
func mergeJob(existing, patch *domain.Job) {
	existing.Title = patch.Title
	existing.Level = patch.Level
	existing.MinSalary = patch.MinSalary
	existing.MaxSalary = patch.MaxSalary
	existing.Location = patch.Location
	existing.Status = patch.Status
	existing.Company = patch.Company
	existing.Favorite = patch.Favorite
}

func validateJob(job *domain.Job) error {
	if strings.TrimSpace(job.Title) == "" {
		return apperror.BadRequest("Title is required")
	}
	if strings.TrimSpace(job.Level) == "" {
		return apperror.BadRequest("Level is required")
	}
	if strings.TrimSpace(job.Location) == "" {
		return apperror.BadRequest("Location is required")
	}
	if job.MinSalary < 0 {
		return apperror.BadRequest("MinSalary cannot be negative")
	}
	if job.MinSalary > job.MaxSalary {
		return apperror.BadRequest("MinSalary cannot be greater than MaxSalary")
	}

	status, ok := canonicalStatus(job.Status)
	if !ok {
		return apperror.BadRequest("Status must be one of: " + strings.Join(domain.JobStatuses, ", "))
	}
	job.Status = status
	return nil
}

// canonicalStatus resolves a status string against the fixed vocabulary,
// ignoring case, and returns the canonical spelling.
func canonicalStatus(status string) (string, bool) {
	trimmed := strings.TrimSpace(status)
	for _, s := range domain.JobStatuses {
		if strings.EqualFold(trimmed, s) {
			return s, true
		}
	}
	return "", false
}

// storeFailure logs the persistence fault with full detail and returns the
// generic internal error, so callers cannot distinguish failure modes.
func storeFailure(op string, err error) error {
	logger.Log.Error("store failure", "op", op, "error", err)
	return apperror.Internal(err)
}
