package domain

import (
	"context"

	"github.com/google/uuid"
)

// InterviewDateLayout is the canonical wire/storage format for interview dates.
const InterviewDateLayout = "2006-01-02"

type Interview struct {
	ID      uuid.UUID `json:"id"`
	UserID  uuid.UUID `json:"user_id"`
	Format  string    `json:"format"`
	Round   string    `json:"round"`
	Date    string    `json:"date"`
	Time    string    `json:"time"`
	Company string    `json:"company,omitempty"`
}

// InterviewFilter holds the optional search predicates. Date and Time are
// exact-equality when set; the rest are case-insensitive substring matches.
type InterviewFilter struct {
	Format  *string
	Round   *string
	Date    *string
	Time    *string
	Company *string
}

type InterviewRepository interface {
	FetchByUser(ctx context.Context, userID uuid.UUID) ([]Interview, error)
	GetByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*Interview, error)
	ExistsByIDAndUser(ctx context.Context, id, userID uuid.UUID) (bool, error)
	Create(ctx context.Context, interview *Interview) error
	Update(ctx context.Context, interview *Interview) error
	DeleteByIDAndUser(ctx context.Context, id, userID uuid.UUID) error
	FetchByFilters(ctx context.Context, userID uuid.UUID, filter InterviewFilter) ([]Interview, error)
}

type InterviewUsecase interface {
	ListInterviews(ctx context.Context) ([]Interview, error)
	GetInterview(ctx context.Context, id uuid.UUID) (*Interview, error)
	CreateInterview(ctx context.Context, interview *Interview) error
	UpdateInterview(ctx context.Context, id uuid.UUID, patch *Interview) (*Interview, error)
	DeleteInterview(ctx context.Context, id uuid.UUID) error
	SearchInterviews(ctx context.Context, filter InterviewFilter) ([]Interview, error)
	UpcomingInterviews(ctx context.Context) ([]Interview, error)
}
