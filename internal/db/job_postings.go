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
// Job Posting Methods
// -----------------------------------------------------------------------------

// CreateJobPosting inserts a posting and returns its ID. Required skills are
// stored normalized.
func (db *DB) CreateJobPosting(ctx context.Context, p *types.JobPosting) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO job_postings (company, role, required_skills, min_resume_score, min_test_score)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		p.Company, p.Role, parsing.NormalizeSkills(p.RequiredSkills), p.MinResumeScore, p.MinTestScore,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create job posting: %w", err)
	}
	return id, nil
}

// GetJobPosting retrieves a posting by ID. It returns nil, nil when the
// posting does not exist.
func (db *DB) GetJobPosting(ctx context.Context, id uuid.UUID) (*types.JobPosting, error) {
	p, err := scanJobPosting(db.pool.QueryRow(ctx,
		`SELECT id, company, role, required_skills, min_resume_score, min_test_score
		 FROM job_postings WHERE id = $1`,
		id,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job posting: %w", err)
	}
	return p, nil
}

// ListJobPostings retrieves every posting, oldest first
func (db *DB) ListJobPostings(ctx context.Context) ([]types.JobPosting, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, company, role, required_skills, min_resume_score, min_test_score
		 FROM job_postings ORDER BY created_at, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list job postings: %w", err)
	}
	defer rows.Close()

	postings := make([]types.JobPosting, 0)
	for rows.Next() {
		p, err := scanJobPosting(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job posting: %w", err)
		}
		postings = append(postings, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list job postings: %w", err)
	}
	return postings, nil
}

// DeleteJobPosting removes a posting
func (db *DB) DeleteJobPosting(ctx context.Context, id uuid.UUID) error {
	_, err := db.pool.Exec(ctx, `DELETE FROM job_postings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete job posting: %w", err)
	}
	return nil
}

func scanJobPosting(row pgx.Row) (*types.JobPosting, error) {
	var id uuid.UUID
	var p types.JobPosting
	if err := row.Scan(&id, &p.Company, &p.Role, &p.RequiredSkills, &p.MinResumeScore, &p.MinTestScore); err != nil {
		return nil, err
	}
	p.ID = id.String()
	if p.RequiredSkills == nil {
		p.RequiredSkills = []string{}
	}
	return &p, nil
}
