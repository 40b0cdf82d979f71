package postgres

import (
	"fmt"
	"strings"

	"go-jobtracker-backend/internal/domain"

	"github.com/google/uuid"
)

// filterBuilder accumulates optional WHERE predicates as parameterized
// fragments. Each fragment names its placeholder through %d, so the
// generated SQL never interpolates a caller-supplied value.
type filterBuilder struct {
	conds []string
	args  []any
}

func (b *filterBuilder) add(format string, arg any) {
	b.args = append(b.args, arg)
	b.conds = append(b.conds, fmt.Sprintf(format, len(b.args)))
}

func (b *filterBuilder) where() string {
	return strings.Join(b.conds, " AND ")
}

// buildJobFilter translates a JobFilter into a WHERE clause scoped to the
// owner. Unset predicates contribute nothing.
func buildJobFilter(userID uuid.UUID, f domain.JobFilter) (string, []any) {
	b := &filterBuilder{}
	b.add("user_id = $%d", userID)
	if f.Title != nil {
		b.add("title ILIKE '%%' || $%d || '%%'", *f.Title)
	}
	if f.Level != nil {
		b.add("LOWER(level) = LOWER($%d)", *f.Level)
	}
	if f.MinSalary != nil {
		b.add("min_salary >= $%d", *f.MinSalary)
	}
	if f.MaxSalary != nil {
		b.add("max_salary <= $%d", *f.MaxSalary)
	}
	if f.Location != nil {
		b.add("location ILIKE '%%' || $%d || '%%'", *f.Location)
	}
	if f.Status != nil {
		b.add("LOWER(status) = LOWER($%d)", *f.Status)
	}
	if f.Company != nil {
		b.add("company ILIKE '%%' || $%d || '%%'", *f.Company)
	}
	if f.Favorite != nil {
		b.add("favorite = $%d", *f.Favorite)
	}
	return b.where(), b.args
}

// buildInterviewFilter translates an InterviewFilter into a WHERE clause
// scoped to the owner. Date and time are exact matches; the text fields are
// case-insensitive substring matches.
func buildInterviewFilter(userID uuid.UUID, f domain.InterviewFilter) (string, []any) {
	b := &filterBuilder{}
	b.add("user_id = $%d", userID)
	if f.Format != nil {
		b.add("format ILIKE '%%' || $%d || '%%'", *f.Format)
	}
	if f.Round != nil {
		b.add("round ILIKE '%%' || $%d || '%%'", *f.Round)
	}
	if f.Date != nil {
		b.add("date = $%d", *f.Date)
	}
	if f.Time != nil {
		b.add("time = $%d", *f.Time)
	}
	if f.Company != nil {
		b.add("company ILIKE '%%' || $%d || '%%'", *f.Company)
	}
	return b.where(), b.args
}
