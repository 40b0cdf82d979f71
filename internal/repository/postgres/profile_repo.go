package postgres

import (
	"context"
	"errors"

	"go-jobtracker-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type profileRepo struct {
	db *pgxpool.Pool
}

func NewProfileRepository(db *pgxpool.Pool) domain.ProfileRepository {
	return &profileRepo{db: db}
}

func (r *profileRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	query := `SELECT id, name, email, title, bio, location, phone, skills FROM profiles WHERE id = $1`
	var p domain.Profile
	var skills []string
	err := r.db.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Email, &p.Title, &p.Bio, &p.Location, &p.Phone, pq.Array(&skills),
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	p.Skills = skills
	return &p, nil
}

func (r *profileRepo) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM profiles WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

func (r *profileRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM profiles WHERE LOWER(email) = LOWER($1))`, email,
	).Scan(&exists)
	return exists, err
}

func (r *profileRepo) Create(ctx context.Context, profile *domain.Profile) error {
	query := `INSERT INTO profiles (id, name, email, title, bio, location, phone, skills)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(ctx, query,
		profile.ID, profile.Name, profile.Email, profile.Title, profile.Bio,
		profile.Location, profile.Phone, pq.Array(profile.Skills),
	)
	if isUniqueViolation(err) {
		return domain.ErrConflict
	}
	return err
}

func (r *profileRepo) Update(ctx context.Context, profile *domain.Profile) error {
	query := `UPDATE profiles SET
		name = $2,
		email = $3,
		title = $4,
		bio = $5,
		location = $6,
		phone = $7,
		skills = $8
	WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		profile.ID, profile.Name, profile.Email, profile.Title, profile.Bio,
		profile.Location, profile.Phone, pq.Array(profile.Skills),
	)
	if isUniqueViolation(err) {
		return domain.ErrConflict
	}
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
