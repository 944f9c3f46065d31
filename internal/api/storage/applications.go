package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/somesh123-ctrl/Job-Portal-Backend/internal/api/domain"
	"github.com/somesh123-ctrl/Job-Portal-Backend/internal/api/model"
)

const applicationColumns = `
	application_id, job_id, applicant_id, status, applied_at
`

// CreateApplication inserts the application and appends its ID to the
// job's back-reference list in one transaction. A (job, applicant) pair
// can hold at most one application; the unique index backs the pre-check,
// so two racing applies cannot both land.
func (s *Storage) CreateApplication(ctx context.Context, app *model.Application) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var exists bool
	err = tx.GetContext(ctx, &exists,
		`SELECT EXISTS (SELECT 1 FROM job_applications WHERE job_id = $1 AND applicant_id = $2)`,
		app.JobID, app.ApplicantID,
	)
	if err != nil {
		return fmt.Errorf("failed to check existing application: %w", err)
	}
	if exists {
		return domain.ErrAlreadyApplied
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO job_applications (application_id, job_id, applicant_id, status, applied_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		app.ApplicationID, app.JobID, app.ApplicantID, app.Status, app.AppliedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return domain.ErrAlreadyApplied
		}
		return fmt.Errorf("failed to create application: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE jobs SET application_ids = array_append(application_ids, $1) WHERE job_id = $2`,
		app.ApplicationID, app.JobID,
	)
	if err != nil {
		return fmt.Errorf("failed to append application ref: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit application: %w", err)
	}

	return nil
}

func (s *Storage) GetApplicationByID(ctx context.Context, applicationID string) (*model.Application, error) {
	var app model.Application
	query := `SELECT ` + applicationColumns + ` FROM job_applications WHERE application_id = $1`

	err := s.db.GetContext(ctx, &app, query, applicationID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("failed to get application: %w", err)
	}

	return &app, nil
}

// AppliedJob is an application joined with its job, the seeker's view of
// what they applied to.
type AppliedJob struct {
	ApplicationID  string         `db:"application_id"`
	Status         string         `db:"status"`
	AppliedAt      time.Time      `db:"applied_at"`
	JobID          string         `db:"job_id"`
	JobRole        string         `db:"job_role"`
	CompanyName    string         `db:"company_name"`
	Salary         int64          `db:"salary"`
	SkillsRequired pq.StringArray `db:"skills_required"`
}

func (s *Storage) ListApplicationsByApplicant(ctx context.Context, applicantID string) ([]AppliedJob, error) {
	query := `
		SELECT
			a.application_id, a.status, a.applied_at,
			j.job_id, j.job_role, j.company_name, j.salary, j.skills_required
		FROM job_applications a
		JOIN jobs j ON j.job_id = a.job_id
		WHERE a.applicant_id = $1
		ORDER BY a.applied_at DESC
	`

	applied := []AppliedJob{}
	err := s.db.SelectContext(ctx, &applied, query, applicantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications by applicant: %w", err)
	}

	return applied, nil
}

// JobApplicant is an application joined with the applicant fields a poster
// reviews when going through candidates.
type JobApplicant struct {
	ApplicationID        string         `db:"application_id"`
	Status               string         `db:"status"`
	AppliedAt            time.Time      `db:"applied_at"`
	ApplicantID          string         `db:"applicant_id"`
	Name                 string         `db:"name"`
	Email                string         `db:"email"`
	HighestQualification string         `db:"highest_qualification"`
	InterestedRole       string         `db:"interested_role"`
	Skillset             pq.StringArray `db:"skillset"`
	Resume               string         `db:"resume"`
}

func (s *Storage) ListApplicationsByJob(ctx context.Context, jobID string) ([]JobApplicant, error) {
	query := `
		SELECT
			a.application_id, a.status, a.applied_at, a.applicant_id,
			u.name, u.email, u.highest_qualification, u.interested_role,
			u.skillset, u.resume
		FROM job_applications a
		JOIN users u ON u.user_id = a.applicant_id
		WHERE a.job_id = $1
		ORDER BY a.applied_at ASC
	`

	applicants := []JobApplicant{}
	err := s.db.SelectContext(ctx, &applicants, query, jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications by job: %w", err)
	}

	return applicants, nil
}

// GetApplicationOwner resolves an application to the poster who owns its
// job, for the authorization check before a status mutation.
func (s *Storage) GetApplicationOwner(ctx context.Context, applicationID string) (string, error) {
	var posterID string
	query := `
		SELECT j.posted_by
		FROM job_applications a
		JOIN jobs j ON j.job_id = a.job_id
		WHERE a.application_id = $1
	`

	err := s.db.GetContext(ctx, &posterID, query, applicationID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", domain.ErrApplicationNotFound
		}
		return "", fmt.Errorf("failed to get application owner: %w", err)
	}

	return posterID, nil
}

// UpdateApplicationStatus overwrites the status and returns the updated
// record. Status validity is the caller's concern; this only touches rows
// that exist.
func (s *Storage) UpdateApplicationStatus(ctx context.Context, applicationID, status string) (*model.Application, error) {
	var app model.Application
	query := `
		UPDATE job_applications
		SET status = $1
		WHERE application_id = $2
		RETURNING ` + applicationColumns

	err := s.db.GetContext(ctx, &app, query, status, applicationID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("failed to update application status: %w", err)
	}

	return &app, nil
}
