package storage

import (
	"context"
	"fmt"
	"time"
)

// JobApplicationCount pairs a job's role title with how many applications
// it has drawn.
type JobApplicationCount struct {
	JobRole      string `db:"job_role"`
	Applications int    `db:"applications"`
}

// PosterStats is the raw material for the poster dashboard; the handler
// turns it into the rendered aggregate.
type PosterStats struct {
	JobsPosted int
	JobCounts  []JobApplicationCount
	AppliedAt  []time.Time
}

// GetPosterStats collects per-job application counts (most-applied first,
// creation order breaking ties) and the applied-at timestamps across all
// the poster's jobs.
func (s *Storage) GetPosterStats(ctx context.Context, posterID string) (*PosterStats, error) {
	stats := &PosterStats{}

	countQuery := `
		SELECT j.job_role, COUNT(a.application_id) AS applications
		FROM jobs j
		LEFT JOIN job_applications a ON a.job_id = j.job_id
		WHERE j.posted_by = $1
		GROUP BY j.job_id, j.job_role, j.created_at
		ORDER BY COUNT(a.application_id) DESC, j.created_at ASC
	`

	stats.JobCounts = []JobApplicationCount{}
	if err := s.db.SelectContext(ctx, &stats.JobCounts, countQuery, posterID); err != nil {
		return nil, fmt.Errorf("failed to count applications per job: %w", err)
	}
	stats.JobsPosted = len(stats.JobCounts)

	appliedQuery := `
		SELECT a.applied_at
		FROM job_applications a
		JOIN jobs j ON j.job_id = a.job_id
		WHERE j.posted_by = $1
	`

	stats.AppliedAt = []time.Time{}
	if err := s.db.SelectContext(ctx, &stats.AppliedAt, appliedQuery, posterID); err != nil {
		return nil, fmt.Errorf("failed to list application times: %w", err)
	}

	return stats, nil
}
