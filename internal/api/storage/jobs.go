package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/somesh123-ctrl/Job-Portal-Backend/internal/api/domain"
	"github.com/somesh123-ctrl/Job-Portal-Backend/internal/api/model"
)

const jobColumns = `
	job_id, job_role, company_name, salary, skills_required,
	posted_by, created_at, application_ids
`

func (s *Storage) CreateJob(ctx context.Context, job *model.Job) error {
	query := `
		INSERT INTO jobs (
			job_id, job_role, company_name, salary, skills_required,
			posted_by, created_at, application_ids
		) VALUES (
			$1, $2, $3, $4, $5,
			$6, $7, $8
		)
	`

	_, err := s.db.ExecContext(
		ctx,
		query,
		job.JobID,
		job.JobRole,
		job.CompanyName,
		job.Salary,
		job.SkillsRequired,
		job.PostedBy,
		job.CreatedAt,
		job.ApplicationIDs,
	)

	if err != nil {
		return fmt.Errorf("failed to create job: %w", err)
	}

	return nil
}

func (s *Storage) GetJobByID(ctx context.Context, jobID string) (*model.Job, error) {
	var job model.Job
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE job_id = $1`

	err := s.db.GetContext(ctx, &job, query, jobID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}

	return &job, nil
}

// JobFilter narrows the public job listing. Zero values mean "no
// constraint"; SortColumn must already be validated against sortColumns.
type JobFilter struct {
	SalaryMin    *int64
	SalaryMax    *int64
	RoleContains string
	SortColumn   string
	SortDesc     bool
}

// sortColumns whitelists the request-facing sort fields against schema
// columns; anything else never reaches the query.
var sortColumns = map[string]string{
	"salary":      "salary",
	"jobRole":     "job_role",
	"companyName": "company_name",
	"createdAt":   "created_at",
}

// SortColumn resolves a request-facing sort field name to its schema
// column, reporting whether the field is sortable at all.
func SortColumn(field string) (string, bool) {
	col, ok := sortColumns[field]
	return col, ok
}

// ListJobs returns every job matching the filter. The listing is unbounded
// and, absent a sort spec, comes back in storage order.
func (s *Storage) ListJobs(ctx context.Context, filter JobFilter) ([]model.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE 1=1`
	args := []interface{}{}
	argIdx := 1

	if filter.SalaryMin != nil {
		query += fmt.Sprintf(" AND salary >= $%d", argIdx)
		args = append(args, *filter.SalaryMin)
		argIdx++
	}

	if filter.SalaryMax != nil {
		query += fmt.Sprintf(" AND salary <= $%d", argIdx)
		args = append(args, *filter.SalaryMax)
		argIdx++
	}

	if filter.RoleContains != "" {
		query += fmt.Sprintf(" AND job_role ILIKE $%d", argIdx)
		args = append(args, "%"+filter.RoleContains+"%")
		argIdx++
	}

	if filter.SortColumn != "" {
		direction := "ASC"
		if filter.SortDesc {
			direction = "DESC"
		}
		query += fmt.Sprintf(" ORDER BY %s %s", filter.SortColumn, direction)
	}

	jobs := []model.Job{}
	err := s.db.SelectContext(ctx, &jobs, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}

	return jobs, nil
}

func (s *Storage) ListJobsByPoster(ctx context.Context, posterID string) ([]model.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE posted_by = $1 ORDER BY created_at DESC`

	jobs := []model.Job{}
	err := s.db.SelectContext(ctx, &jobs, query, posterID)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs by poster: %w", err)
	}

	return jobs, nil
}

// HistoryApplication is one application nested under a job in the poster's
// history view, carrying the applicant's name and email.
type HistoryApplication struct {
	ApplicationID  string
	Status         string
	AppliedAt      time.Time
	ApplicantID    string
	ApplicantName  string
	ApplicantEmail string
}

// JobHistory is a job with its applications resolved, the two-level join
// behind the jobs-history view.
type JobHistory struct {
	Job          model.Job
	Applications []HistoryApplication
}

type jobHistoryRow struct {
	model.Job
	ApplicationID  sql.NullString `db:"application_id"`
	Status         sql.NullString `db:"status"`
	AppliedAt      sql.NullTime   `db:"applied_at"`
	ApplicantID    sql.NullString `db:"applicant_id"`
	ApplicantName  sql.NullString `db:"applicant_name"`
	ApplicantEmail sql.NullString `db:"applicant_email"`
}

// ListJobHistory returns the poster's jobs with nested applications and
// applicant name/email, assembled from one flat LEFT JOIN scan. Jobs with
// no applications still appear, with an empty application list.
func (s *Storage) ListJobHistory(ctx context.Context, posterID string) ([]JobHistory, error) {
	query := `
		SELECT
			j.job_id, j.job_role, j.company_name, j.salary, j.skills_required,
			j.posted_by, j.created_at, j.application_ids,
			a.application_id, a.status, a.applied_at,
			u.user_id AS applicant_id, u.name AS applicant_name, u.email AS applicant_email
		FROM jobs j
		LEFT JOIN job_applications a ON a.job_id = j.job_id
		LEFT JOIN users u ON u.user_id = a.applicant_id
		WHERE j.posted_by = $1
		ORDER BY j.created_at DESC, a.applied_at ASC
	`

	rows := []jobHistoryRow{}
	err := s.db.SelectContext(ctx, &rows, query, posterID)
	if err != nil {
		return nil, fmt.Errorf("failed to list job history: %w", err)
	}

	history := []JobHistory{}
	index := map[string]int{}

	for _, row := range rows {
		i, seen := index[row.Job.JobID]
		if !seen {
			i = len(history)
			index[row.Job.JobID] = i
			history = append(history, JobHistory{
				Job:          row.Job,
				Applications: []HistoryApplication{},
			})
		}

		if !row.ApplicationID.Valid {
			continue
		}

		history[i].Applications = append(history[i].Applications, HistoryApplication{
			ApplicationID:  row.ApplicationID.String,
			Status:         row.Status.String,
			AppliedAt:      row.AppliedAt.Time,
			ApplicantID:    row.ApplicantID.String,
			ApplicantName:  row.ApplicantName.String,
			ApplicantEmail: row.ApplicantEmail.String,
		})
	}

	return history, nil
}
