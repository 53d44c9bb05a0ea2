package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jonathan/skill-match/internal/parsing"
	"github.com/jonathan/skill-match/internal/types"
)

// -----------------------------------------------------------------------------
// Candidate Methods
// -----------------------------------------------------------------------------

// CreateCandidate inserts a candidate and returns its ID. Skills are stored
// normalized.
func (db *DB) CreateCandidate(ctx context.Context, c *types.CandidateProfile) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO candidates (name, skills, resume_score, test_score)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		c.Name, parsing.NormalizeSkills(c.Skills), c.ResumeScore, c.TestScore,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create candidate: %w", err)
	}
	return id, nil
}

// GetCandidate retrieves a candidate by ID. It returns nil, nil when the
// candidate does not exist.
func (db *DB) GetCandidate(ctx context.Context, id uuid.UUID) (*types.CandidateProfile, error) {
	c, err := scanCandidate(db.pool.QueryRow(ctx,
		`SELECT id, name, skills, resume_score, test_score
		 FROM candidates WHERE id = $1`,
		id,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get candidate: %w", err)
	}
	return c, nil
}

// ListCandidates retrieves every candidate, oldest first
func (db *DB) ListCandidates(ctx context.Context) ([]types.CandidateProfile, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, name, skills, resume_score, test_score
		 FROM candidates ORDER BY created_at, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	defer rows.Close()

	candidates := make([]types.CandidateProfile, 0)
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		candidates = append(candidates, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	return candidates, nil
}

// UpdateCandidateSkills replaces a candidate's skills
func (db *DB) UpdateCandidateSkills(ctx context.Context, id uuid.UUID, skills []string) error {
	tag, err := db.pool.Exec(ctx,
		`UPDATE candidates SET skills = $1, updated_at = NOW() WHERE id = $2`,
		parsing.NormalizeSkills(skills), id,
	)
	if err != nil {
		return fmt.Errorf("failed to update candidate skills: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return &NotFoundError{Entity: "candidate", ID: id}
	}
	return nil
}

// DeleteCandidate removes a candidate and, by cascade, their test results
func (db *DB) DeleteCandidate(ctx context.Context, id uuid.UUID) error {
	_, err := db.pool.Exec(ctx, `DELETE FROM candidates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete candidate: %w", err)
	}
	return nil
}

func scanCandidate(row pgx.Row) (*types.CandidateProfile, error) {
	var id uuid.UUID
	var c types.CandidateProfile
	if err := row.Scan(&id, &c.Name, &c.Skills, &c.ResumeScore, &c.TestScore); err != nil {
		return nil, err
	}
	c.ID = id.String()
	if c.Skills == nil {
		c.Skills = []string{}
	}
	return &c, nil
}

// NotFoundError is returned by updates that matched no row
type NotFoundError struct {
	Entity string
	ID     uuid.UUID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}
