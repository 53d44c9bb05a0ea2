package db

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jonathan/skill-match/internal/types"
)

// -----------------------------------------------------------------------------
// Test Result Methods
// -----------------------------------------------------------------------------

// SaveTestResult stores a finalized test, replacing any earlier result for the
// same skill and difficulty, and sets the candidate's test score to the
// result's percentage. Both writes happen in one transaction.
func (db *DB) SaveTestResult(ctx context.Context, candidateID uuid.UUID, r types.TestResult) error {
	details, err := json.Marshal(r.Details)
	if err != nil {
		return fmt.Errorf("failed to marshal answer details: %w", err)
	}

	return pgx.BeginFunc(ctx, db.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx,
			`UPDATE candidates SET test_score = $1, updated_at = NOW() WHERE id = $2`,
			TestScore(r.Percentage), candidateID,
		)
		if err != nil {
			return fmt.Errorf("failed to update test score: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return &NotFoundError{Entity: "candidate", ID: candidateID}
		}

		_, err = tx.Exec(ctx,
			`INSERT INTO test_results (candidate_id, skill, difficulty, correct_count, total_count,
			                           percentage, tier, passed, details, completed_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			 ON CONFLICT (candidate_id, skill, difficulty) DO UPDATE SET
			     correct_count = $4, total_count = $5, percentage = $6, tier = $7,
			     passed = $8, details = $9, completed_at = $10`,
			candidateID, ResultSkillKey(r.Skill), string(r.Difficulty), r.CorrectCount, r.TotalCount,
			r.Percentage, string(r.Tier), r.Passed, details, r.Timestamp,
		)
		if err != nil {
			return fmt.Errorf("failed to save test result: %w", err)
		}
		return nil
	})
}

// ListTestResults retrieves a candidate's results, most recent first
func (db *DB) ListTestResults(ctx context.Context, candidateID uuid.UUID) ([]types.TestResult, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT skill, difficulty, correct_count, total_count, percentage, tier, passed, details, completed_at
		 FROM test_results WHERE candidate_id = $1
		 ORDER BY completed_at DESC, skill, difficulty`,
		candidateID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list test results: %w", err)
	}
	defer rows.Close()

	results := make([]types.TestResult, 0)
	for rows.Next() {
		var r types.TestResult
		var difficulty, tier string
		var details []byte
		if err := rows.Scan(&r.Skill, &difficulty, &r.CorrectCount, &r.TotalCount, &r.Percentage,
			&tier, &r.Passed, &details, &r.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan test result: %w", err)
		}
		r.Difficulty = types.Difficulty(difficulty)
		r.Tier = types.ProficiencyTier(tier)
		if details != nil {
			if err := json.Unmarshal(details, &r.Details); err != nil {
				return nil, fmt.Errorf("failed to parse answer details: %w", err)
			}
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list test results: %w", err)
	}
	return results, nil
}

// DeleteTestResults removes every result of a candidate and returns how many
// were deleted
func (db *DB) DeleteTestResults(ctx context.Context, candidateID uuid.UUID) (int64, error) {
	tag, err := db.pool.Exec(ctx, `DELETE FROM test_results WHERE candidate_id = $1`, candidateID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete test results: %w", err)
	}
	return tag.RowsAffected(), nil
}

// TestScore converts a test percentage to the 0-100 integer candidate score.
func TestScore(percentage float64) int {
	score := int(math.Round(percentage))
	switch {
	case score < 0:
		return 0
	case score > 100:
		return 100
	default:
		return score
	}
}

// ResultSkillKey is the stored form of a result's skill name.
func ResultSkillKey(skill string) string {
	return strings.ToLower(strings.TrimSpace(skill))
}
