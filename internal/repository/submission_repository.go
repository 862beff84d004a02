package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/newrayan/leads-service/internal/domain"
)

// SubmissionRepository handles database operations for contact
// submissions.
type SubmissionRepository struct {
	db *sqlx.DB
}

func NewSubmissionRepository(db *sqlx.DB) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

const submissionColumns = `id, name, phone_number, selected_service, message, contacted, contacted_at, created_at, updated_at`

func (r *SubmissionRepository) Create(ctx context.Context, candidate domain.SubmissionCandidate) (*domain.Submission, error) {
	id := uuid.NewString()

	var message *string
	if trimmed := strings.TrimSpace(candidate.Message); trimmed != "" {
		message = &trimmed
	}

	query := `
		INSERT INTO submissions (id, name, phone_number, selected_service, message, contacted, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, FALSE, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
	`

	_, err := r.db.ExecContext(ctx, query,
		id,
		strings.TrimSpace(candidate.Name),
		strings.TrimSpace(candidate.PhoneNumber),
		candidate.SelectedService,
		message,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create submission: %w", err)
	}

	return r.GetByID(ctx, id)
}

func (r *SubmissionRepository) GetByID(ctx context.Context, id string) (*domain.Submission, error) {
	query := `
		SELECT ` + submissionColumns + `
		FROM submissions
		WHERE id = ?
	`

	var submission domain.Submission
	if err := r.db.GetContext(ctx, &submission, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("failed to get submission: %w", err)
	}

	return &submission, nil
}

// List returns every submission, newest first. The admin dashboard
// renders the full list; there is no pagination.
func (r *SubmissionRepository) List(ctx context.Context) ([]domain.Submission, error) {
	query := `
		SELECT ` + submissionColumns + `
		FROM submissions
		ORDER BY created_at DESC
	`

	submissions := []domain.Submission{}
	if err := r.db.SelectContext(ctx, &submissions, query); err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}

	return submissions, nil
}

// SetContacted flips the contacted flag in a single-row update.
// sent=true stamps contacted_at with the given time, including on
// re-marks; sent=false clears it.
func (r *SubmissionRepository) SetContacted(ctx context.Context, id string, sent bool, at time.Time) (*domain.Submission, error) {
	var contactedAt *time.Time
	if sent {
		contactedAt = &at
	}

	query := `
		UPDATE submissions
		SET contacted = ?, contacted_at = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`

	if _, err := r.db.ExecContext(ctx, query, sent, contactedAt, id); err != nil {
		return nil, fmt.Errorf("failed to update contacted flag: %w", err)
	}

	// MySQL reports 0 affected rows both for a missing id and for a
	// no-op re-mark, so existence is confirmed by the readback.
	return r.GetByID(ctx, id)
}

// Stats returns submission counts for the dashboard header.
func (r *SubmissionRepository) Stats(ctx context.Context) (*domain.SubmissionStats, error) {
	query := `
		SELECT
			COUNT(*)                                                    AS total,
			COALESCE(SUM(CASE WHEN contacted THEN 1 ELSE 0 END), 0)     AS contacted,
			COALESCE(SUM(CASE WHEN NOT contacted THEN 1 ELSE 0 END), 0) AS pending
		FROM submissions
	`

	var stats domain.SubmissionStats
	if err := r.db.GetContext(ctx, &stats, query); err != nil {
		return nil, fmt.Errorf("failed to get submission stats: %w", err)
	}

	return &stats, nil
}
