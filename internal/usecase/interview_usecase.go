package usecase

import (
	"context"
	"errors"
	"time"

	"go-jobtracker-backend/internal/domain"
	"go-jobtracker-backend/internal/identity"
	"go-jobtracker-backend/pkg/apperror"
	"go-jobtracker-backend/pkg/logger"

	"github.com/google/uuid"
)

type interviewUsecase struct {
	interviewRepo domain.InterviewRepository
	now           func() time.Time
}

func NewInterviewUsecase(interviewRepo domain.InterviewRepository) domain.InterviewUsecase {
	return &interviewUsecase{
		interviewRepo: interviewRepo,
		now:           time.Now,
	}
}

func (u *interviewUsecase) ListInterviews(ctx context.Context) ([]domain.Interview, error) {
	ident, err := identity.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	interviews, err := u.interviewRepo.FetchByUser(ctx, ident.UserID)
	if err != nil {
		return nil, storeFailure("fetching interviews", err)
	}
	return interviews, nil
}

func (u *interviewUsecase) GetInterview(ctx context.Context, id uuid.UUID) (*domain.Interview, error) {
	ident, err := identity.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	interview, err := u.interviewRepo.GetByIDAndUser(ctx, id, ident.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Interview not found")
		}
		return nil, storeFailure("fetching interview", err)
	}
	if !identity.CanAccess(interview.UserID, ident) {
		logger.Log.Warn("ownership guard rejected interview read", "interview_id", id, "caller", ident.UserID)
		return nil, apperror.NotFound("Interview not found")
	}
	return interview, nil
}

func (u *interviewUsecase) CreateInterview(ctx context.Context, interview *domain.Interview) error {
	ident, err := identity.FromContext(ctx)
	if err != nil {
		return err
	}

	if interview.ID == uuid.Nil {
		interview.ID = uuid.New()
	} else {
		exists, err := u.interviewRepo.ExistsByIDAndUser(ctx, interview.ID, ident.UserID)
		if err != nil {
			return storeFailure("checking interview existence", err)
		}
		if exists {
			return apperror.Conflict("An interview with this ID already exists")
		}
	}

	// Ownership is established here, never from the request body.
	interview.UserID = ident.UserID

	if err := u.interviewRepo.Create(ctx, interview); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return apperror.Conflict("An interview with this ID already exists")
		}
		return storeFailure("creating interview", err)
	}
	return nil
}

func (u *interviewUsecase) UpdateInterview(ctx context.Context, id uuid.UUID, patch *domain.Interview) (*domain.Interview, error) {
	ident, err := identity.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	if patch.ID != uuid.Nil && patch.ID != id {
		return nil, apperror.BadRequest("ID mismatch between path and request body")
	}

	existing, err := u.interviewRepo.GetByIDAndUser(ctx, id, ident.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Interview not found or you don't have permission to update it")
		}
		return nil, storeFailure("loading interview for update", err)
	}
	if !identity.CanAccess(existing.UserID, ident) {
		logger.Log.Warn("ownership guard rejected interview update", "interview_id", id, "caller", ident.UserID)
		return nil, apperror.NotFound("Interview not found or you don't have permission to update it")
	}

	mergeInterview(existing, patch)

	if err := u.interviewRepo.Update(ctx, existing); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Interview not found or you don't have permission to update it")
		}
		return nil, storeFailure("updating interview", err)
	}
	return existing, nil
}

func (u *interviewUsecase) DeleteInterview(ctx context.Context, id uuid.UUID) error {
	ident, err := identity.FromContext(ctx)
	if err != nil {
		return err
	}

	err = u.interviewRepo.DeleteByIDAndUser(ctx, id, ident.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Interview not found or you don't have permission to delete it")
		}
		return storeFailure("deleting interview", err)
	}
	return nil
}

func (u *interviewUsecase) SearchInterviews(ctx context.Context, filter domain.InterviewFilter) ([]domain.Interview, error) {
	ident, err := identity.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	interviews, err := u.interviewRepo.FetchByFilters(ctx, ident.UserID, filter)
	if err != nil {
		return nil, storeFailure("searching interviews", err)
	}
	return interviews, nil
}

// UpcomingInterviews returns the caller's interviews dated strictly after
// today. Records whose date does not parse are skipped and logged; one
// malformed row must not break the whole report.
func (u *interviewUsecase) UpcomingInterviews(ctx context.Context) ([]domain.Interview, error) {
	interviews, err := u.ListInterviews(ctx)
	if err != nil {
		return nil, err
	}

	today := u.now().Format(domain.InterviewDateLayout)
	todayDate, _ := time.Parse(domain.InterviewDateLayout, today)

	upcoming := make([]domain.Interview, 0, len(interviews))
	for _, iv := range interviews {
		date, err := time.Parse(domain.InterviewDateLayout, iv.Date)
		if err != nil {
			logger.Log.Warn("skipping interview with unparsable date", "interview_id", iv.ID, "date", iv.Date)
			continue
		}
		if date.After(todayDate) {
			upcoming = append(upcoming, iv)
		}
	}
	return upcoming, nil
}

// mergeInterview copies the patchable fields onto the stored interview.
// ID and UserID stay as loaded: ownership is immutable after creation.
func mergeInterview(existing, patch *domain.Interview) {
	existing.Format = patch.Format
	existing.Round = patch.Round
	existing.Date = patch.Date
	existing.Time = patch.Time
	existing.Company = patch.Company
}
