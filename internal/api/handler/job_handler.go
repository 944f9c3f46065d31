package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/somesh123-ctrl/Job-Portal-Backend/internal/api/domain"
	"github.com/somesh123-ctrl/Job-Portal-Backend/internal/api/dto"
	"github.com/somesh123-ctrl/Job-Portal-Backend/internal/api/model"
	"github.com/somesh123-ctrl/Job-Portal-Backend/internal/api/storage"
)

// PostJob handles POST /post-job
// Only the poster variant may create jobs.
func (h *PortalHandler) PostJob(c *gin.Context) {
	ident, ok := h.currentIdentity(c)
	if !ok {
		return
	}

	var req dto.PostJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid post-job request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}

	poster, err := h.storage.GetUserByID(c.Request.Context(), ident.UserID)
	if err != nil || poster.UserType != domain.UserTypeJobPoster {
		h.respondError(c, domain.ErrNotJobPoster)
		return
	}

	job := model.Job{
		JobID:          uuid.New().String(),
		JobRole:        req.JobRole,
		CompanyName:    req.CompanyName,
		Salary:         req.Salary,
		SkillsRequired: pq.StringArray(req.SkillsRequired),
		PostedBy:       poster.UserID,
		CreatedAt:      time.Now(),
		ApplicationIDs: pq.StringArray{},
	}

	if err := h.storage.CreateJob(c.Request.Context(), &job); err != nil {
		h.respondError(c, err)
		return
	}

	h.logger.Info("Job posted",
		slog.String("job_id", job.JobID),
		slog.String("posted_by", job.PostedBy),
	)

	c.JSON(http.StatusCreated, toJobDTO(&job))
}

// AllJobs handles GET /all-jobs
// Public listing with salary range, role substring filter, and a
// field-direction sort spec. Unbounded, unordered when no sort is given.
func (h *PortalHandler) AllJobs(c *gin.Context) {
	var req dto.ListJobsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid query parameters",
		})
		return
	}

	filter := storage.JobFilter{
		RoleContains: req.JobRole,
	}

	if req.SalaryRange != "" {
		min, max, err := ParseSalaryRange(req.SalaryRange)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": err.Error(),
			})
			return
		}
		filter.SalaryMin = &min
		filter.SalaryMax = &max
	}

	if req.SortOrder != "" {
		column, desc, err := ParseSortOrder(req.SortOrder)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": err.Error(),
			})
			return
		}
		filter.SortColumn = column
		filter.SortDesc = desc
	}

	jobs, err := h.storage.ListJobs(c.Request.Context(), filter)
	if err != nil {
		h.respondError(c, err)
		return
	}

	out := make([]dto.JobDTO, len(jobs))
	for i := range jobs {
		out[i] = toJobDTO(&jobs[i])
	}

	c.JSON(http.StatusOK, out)
}

// JobDetails handles GET /job-details/:jobId
func (h *PortalHandler) JobDetails(c *gin.Context) {
	job, err := h.storage.GetJobByID(c.Request.Context(), c.Param("jobId"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toJobDTO(job))
}

// JobsHistory handles GET /jobs-history
// The poster's jobs with nested applications and applicant name/email.
func (h *PortalHandler) JobsHistory(c *gin.Context) {
	ident, ok := h.currentIdentity(c)
	if !ok {
		return
	}

	history, err := h.storage.ListJobHistory(c.Request.Context(), ident.UserID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	out := make([]dto.JobHistoryDTO, len(history))
	for i := range history {
		entry := dto.JobHistoryDTO{
			JobDTO:          toJobDTO(&history[i].Job),
			JobApplications: make([]dto.HistoryApplicationDTO, len(history[i].Applications)),
		}
		for j, app := range history[i].Applications {
			entry.JobApplications[j] = dto.HistoryApplicationDTO{
				ID:        app.ApplicationID,
				Status:    app.Status,
				AppliedAt: app.AppliedAt.Format(time.RFC3339),
				Applicant: dto.ApplicantRef{
					ID:    app.ApplicantID,
					Name:  app.ApplicantName,
					Email: app.ApplicantEmail,
				},
			}
		}
		out[i] = entry
	}

	c.JSON(http.StatusOK, out)
}

// ParseSalaryRange parses the "min-max" query form into an inclusive
// numeric range.
func ParseSalaryRange(raw string) (min, max int64, err error) {
	lo, hi, found := strings.Cut(raw, "-")
	if !found {
		return 0, 0, fmt.Errorf("salaryRange must be of the form min-max")
	}

	min, err = strconv.ParseInt(strings.TrimSpace(lo), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid salaryRange minimum %q", lo)
	}

	max, err = strconv.ParseInt(strings.TrimSpace(hi), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid salaryRange maximum %q", hi)
	}

	if min > max {
		return 0, 0, fmt.Errorf("salaryRange minimum exceeds maximum")
	}

	return min, max, nil
}

// ParseSortOrder parses the "field-direction" sort spec, resolving the
// field against the sortable column whitelist.
func ParseSortOrder(raw string) (column string, desc bool, err error) {
	field, direction, found := strings.Cut(raw, "-")
	if !found {
		return "", false, fmt.Errorf("sortOrder must be of the form field-asc or field-desc")
	}

	column, ok := storage.SortColumn(field)
	if !ok {
		return "", false, fmt.Errorf("unsupported sort field %q", field)
	}

	switch direction {
	case "asc":
		return column, false, nil
	case "desc":
		return column, true, nil
	default:
		return "", false, fmt.Errorf("sort direction must be asc or desc")
	}
}
