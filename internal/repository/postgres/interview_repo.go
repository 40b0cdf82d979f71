package postgres

import (
	"context"
	"errors"

	"go-jobtracker-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const interviewColumns = `id, user_id, format, round, date, time, company`

type interviewRepo struct {
	db *pgxpool.Pool
}

func NewInterviewRepository(db *pgxpool.Pool) domain.InterviewRepository {
	return &interviewRepo{db: db}
}

func (r *interviewRepo) FetchByUser(ctx context.Context, userID uuid.UUID) ([]domain.Interview, error) {
	query := `SELECT ` + interviewColumns + ` FROM interviews WHERE user_id = $1 ORDER BY date, time`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanInterviews(rows)
}

func (r *interviewRepo) GetByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*domain.Interview, error) {
	query := `SELECT ` + interviewColumns + ` FROM interviews WHERE id = $1 AND user_id = $2`
	var iv domain.Interview
	err := r.db.QueryRow(ctx, query, id, userID).Scan(
		&iv.ID, &iv.UserID, &iv.Format, &iv.Round, &iv.Date, &iv.Time, &iv.Company,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &iv, nil
}

func (r *interviewRepo) ExistsByIDAndUser(ctx context.Context, id, userID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM interviews WHERE id = $1 AND user_id = $2)`, id, userID,
	).Scan(&exists)
	return exists, err
}

func (r *interviewRepo) Create(ctx context.Context, interview *domain.Interview) error {
	query := `INSERT INTO interviews (` + interviewColumns + `)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(ctx, query,
		interview.ID, interview.UserID, interview.Format, interview.Round,
		interview.Date, interview.Time, interview.Company,
	)
	if isUniqueViolation(err) {
		return domain.ErrConflict
	}
	return err
}

func (r *interviewRepo) Update(ctx context.Context, interview *domain.Interview) error {
	query := `UPDATE interviews SET
		format = $3,
		round = $4,
		date = $5,
		time = $6,
		company = $7
	WHERE id = $1 AND user_id = $2`
	result, err := r.db.Exec(ctx, query,
		interview.ID, interview.UserID, interview.Format, interview.Round,
		interview.Date, interview.Time, interview.Company,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *interviewRepo) DeleteByIDAndUser(ctx context.Context, id, userID uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM interviews WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *interviewRepo) FetchByFilters(ctx context.Context, userID uuid.UUID, filter domain.InterviewFilter) ([]domain.Interview, error) {
	where, args := buildInterviewFilter(userID, filter)
	query := `SELECT ` + interviewColumns + ` FROM interviews WHERE ` + where + ` ORDER BY date, time`
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanInterviews(rows)
}

func scanInterviews(rows pgx.Rows) ([]domain.Interview, error) {
	var interviews []domain.Interview
	for rows.Next() {
		var iv domain.Interview
		if err := rows.Scan(
			&iv.ID, &iv.UserID, &iv.Format, &iv.Round, &iv.Date, &iv.Time, &iv.Company,
		); err != nil {
			return nil, err
		}
		interviews = append(interviews, iv)
	}
	return interviews, rows.Err()
}
