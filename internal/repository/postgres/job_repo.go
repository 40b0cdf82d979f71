package postgres

import (
	"context"
	"errors"

	"go-jobtracker-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const jobColumns = `id, user_id, title, level, min_salary, max_salary, location, status, company, favorite, last_modified`

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

func (r *jobRepo) FetchByUser(ctx context.Context, userID uuid.UUID) ([]domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE user_id = $1 ORDER BY last_modified DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanJobs(rows)
}

func (r *jobRepo) GetByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1 AND user_id = $2`
	var job domain.Job
	err := r.db.QueryRow(ctx, query, id, userID).Scan(
		&job.ID, &job.UserID, &job.Title, &job.Level, &job.MinSalary, &job.MaxSalary,
		&job.Location, &job.Status, &job.Company, &job.Favorite, &job.LastModified,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *jobRepo) ExistsByIDAndUser(ctx context.Context, id, userID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM jobs WHERE id = $1 AND user_id = $2)`, id, userID,
	).Scan(&exists)
	return exists, err
}

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	query := `INSERT INTO jobs (` + jobColumns + `)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.db.Exec(ctx, query,
		job.ID, job.UserID, job.Title, job.Level, job.MinSalary, job.MaxSalary,
		job.Location, job.Status, job.Company, job.Favorite, job.LastModified,
	)
	if isUniqueViolation(err) {
		return domain.ErrConflict
	}
	return err
}

// Update writes all mutable columns in one statement conditional on both id
// and owner, so the ownership check and the write cannot be split by a
// concurrent delete.
func (r *jobRepo) Update(ctx context.Context, job *domain.Job) error {
	query := `UPDATE jobs SET
		title = $3,
		level = $4,
		min_salary = $5,
		max_salary = $6,
		location = $7,
		status = $8,
		company = $9,
		favorite = $10,
		last_modified = $11
	WHERE id = $1 AND user_id = $2`
	result, err := r.db.Exec(ctx, query,
		job.ID, job.UserID, job.Title, job.Level, job.MinSalary, job.MaxSalary,
		job.Location, job.Status, job.Company, job.Favorite, job.LastModified,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobRepo) DeleteByIDAndUser(ctx context.Context, id, userID uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobRepo) FetchByFilters(ctx context.Context, userID uuid.UUID, filter domain.JobFilter) ([]domain.Job, error) {
	where, args := buildJobFilter(userID, filter)
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE ` + where + ` ORDER BY last_modified DESC`
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanJobs(rows)
}

func (r *jobRepo) CountByStatus(ctx context.Context, userID uuid.UUID) (map[string]int, error) {
	rows, err := r.db.Query(ctx,
		`SELECT status, COUNT(*) FROM jobs WHERE user_id = $1 GROUP BY status`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		counts[status] = n
	}
	return counts, rows.Err()
}

func (r *jobRepo) FetchFavoritesByUser(ctx context.Context, userID uuid.UUID) ([]domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE user_id = $1 AND favorite = TRUE ORDER BY last_modified DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanJobs(rows)
}

func scanJobs(rows pgx.Rows) ([]domain.Job, error) {
	var jobs []domain.Job
	for rows.Next() {
		var job domain.Job
		if err := rows.Scan(
			&job.ID, &job.UserID, &job.Title, &job.Level, &job.MinSalary, &job.MaxSalary,
			&job.Location, &job.Status, &job.Company, &job.Favorite, &job.LastModified,
		); err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
