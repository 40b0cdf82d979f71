package domain

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common domain errors
var (
	ErrNotFound = errors.New("resource not found")
	ErrConflict = errors.New("resource already exists")
)

// JobStatuses is the fixed status vocabulary. Status boards on the client render
// one column per entry, so counts must be reported for every key.
var JobStatuses = []string{"Saved", "Applied", "Screening", "Interview", "Rejected", "Offer", "Hired"}

type Job struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	Title        string    `json:"title"`
	Level        string    `json:"level"`
	MinSalary    int       `json:"min_salary"`
	MaxSalary    int       `json:"max_salary"`
	Location     string    `json:"location"`
	Status       string    `json:"status"`
	Company      string    `json:"company"`
	Favorite     bool      `json:"favorite"`
	LastModified time.Time `json:"last_modified"`
}

// JobFilter holds the optional search predicates. A nil field means
// "no constraint"; set fields are ANDed together.
type JobFilter struct {
	Title     *string
	Level     *string
	MinSalary *int
	MaxSalary *int
	Location  *string
	Status    *string
	Company   *string
	Favorite  *bool
}

type JobRepository interface {
	FetchByUser(ctx context.Context, userID uuid.UUID) ([]Job, error)
	GetByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*Job, error)
	ExistsByIDAndUser(ctx context.Context, id, userID uuid.UUID) (bool, error)
	Create(ctx context.Context, job *Job) error
	Update(ctx context.Context, job *Job) error
	DeleteByIDAndUser(ctx context.Context, id, userID uuid.UUID) error
	FetchByFilters(ctx context.Context, userID uuid.UUID, filter JobFilter) ([]Job, error)
	CountByStatus(ctx context.Context, userID uuid.UUID) (map[string]int, error)
	FetchFavoritesByUser(ctx context.Context, userID uuid.UUID) ([]Job, error)
}

type JobUsecase interface {
	ListJobs(ctx context.Context) ([]Job, error)
	GetJob(ctx context.Context, id uuid.UUID) (*Job, error)
	CreateJob(ctx context.Context, job *Job) error
	UpdateJob(ctx context.Context, id uuid.UUID, patch *Job) (*Job, error)
	DeleteJob(ctx context.Context, id uuid.UUID) error
	SearchJobs(ctx context.Context, filter JobFilter) ([]Job, error)
	StatusCounts(ctx context.Context) (map[string]int, error)
	SetFavorite(ctx context.Context, id uuid.UUID, favorite bool) (*Job, error)
	ListFavorites(ctx context.Context) ([]Job, error)
}
