package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/somesh123-ctrl/Job-Portal-Backend/internal/api/domain"
	"github.com/somesh123-ctrl/Job-Portal-Backend/internal/api/dto"
	"github.com/somesh123-ctrl/Job-Portal-Backend/internal/api/model"
)

// ApplyJob handles POST /apply-job/:jobId
// One application per (job, applicant) pair; the second apply fails.
func (h *PortalHandler) ApplyJob(c *gin.Context) {
	ident, ok := h.currentIdentity(c)
	if !ok {
		return
	}

	jobID := c.Param("jobId")

	if _, err := h.storage.GetJobByID(c.Request.Context(), jobID); err != nil {
		h.respondError(c, err)
		return
	}

	app := model.Application{
		ApplicationID: uuid.New().String(),
		JobID:         jobID,
		ApplicantID:   ident.UserID,
		Status:        domain.StatusApplied,
		AppliedAt:     time.Now(),
	}

	if err := h.storage.CreateApplication(c.Request.Context(), &app); err != nil {
		h.respondError(c, err)
		return
	}

	h.logger.Info("Application submitted",
		slog.String("application_id", app.ApplicationID),
		slog.String("job_id", jobID),
		slog.String("applicant_id", ident.UserID),
	)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Application submitted successfully",
	})
}

// AppliedJobs handles GET /applied-jobs
// Bare job IDs the seeker has applied to.
func (h *PortalHandler) AppliedJobs(c *gin.Context) {
	ident, ok := h.currentIdentity(c)
	if !ok {
		return
	}

	applied, err := h.storage.ListApplicationsByApplicant(c.Request.Context(), ident.UserID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	jobIDs := make([]string, len(applied))
	for i, a := range applied {
		jobIDs[i] = a.JobID
	}

	c.JSON(http.StatusOK, jobIDs)
}

// DetailedAppliedJobs handles GET /detailed-applied-jobs
// The seeker's applications joined with job details.
func (h *PortalHandler) DetailedAppliedJobs(c *gin.Context) {
	ident, ok := h.currentIdentity(c)
	if !ok {
		return
	}

	applied, err := h.storage.ListApplicationsByApplicant(c.Request.Context(), ident.UserID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	out := make([]dto.DetailedAppliedJobDTO, len(applied))
	for i, a := range applied {
		out[i] = dto.DetailedAppliedJobDTO{
			ID:             a.JobID,
			JobRole:        a.JobRole,
			CompanyName:    a.CompanyName,
			Salary:         a.Salary,
			SkillsRequired: a.SkillsRequired,
			Status:         a.Status,
			AppliedAt:      a.AppliedAt.Format(time.RFC3339),
		}
	}

	c.JSON(http.StatusOK, out)
}

// ViewApplications handles GET /view-applications/:jobId
// Applications for one job joined with applicant details, for candidate
// review.
func (h *PortalHandler) ViewApplications(c *gin.Context) {
	if _, ok := h.currentIdentity(c); !ok {
		return
	}

	jobID := c.Param("jobId")

	if _, err := h.storage.GetJobByID(c.Request.Context(), jobID); err != nil {
		h.respondError(c, err)
		return
	}

	applicants, err := h.storage.ListApplicationsByJob(c.Request.Context(), jobID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	out := make([]dto.JobApplicantDTO, len(applicants))
	for i, a := range applicants {
		out[i] = dto.JobApplicantDTO{
			ID:        a.ApplicationID,
			Status:    a.Status,
			AppliedAt: a.AppliedAt.Format(time.RFC3339),
			Applicant: dto.ApplicantDTO{
				ID:                   a.ApplicantID,
				Name:                 a.Name,
				Email:                a.Email,
				HighestQualification: a.HighestQualification,
				InterestedRole:       a.InterestedRole,
				Skillset:             a.Skillset,
				Resume:               a.Resume,
			},
		}
	}

	c.JSON(http.StatusOK, out)
}

// UpdateApplicationStatus handles PUT /update-application-status/:applicationId
// Only the poster owning the application's job may change its status.
func (h *PortalHandler) UpdateApplicationStatus(c *gin.Context) {
	ident, ok := h.currentIdentity(c)
	if !ok {
		return
	}

	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": domain.ErrInvalidStatus.Error(),
		})
		return
	}

	if !domain.ValidStatus(req.Status) {
		h.respondError(c, domain.ErrInvalidStatus)
		return
	}

	applicationID := c.Param("applicationId")

	ownerID, err := h.storage.GetApplicationOwner(c.Request.Context(), applicationID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if ownerID != ident.UserID {
		h.respondError(c, domain.ErrNotJobOwner)
		return
	}

	app, err := h.storage.UpdateApplicationStatus(c.Request.Context(), applicationID, req.Status)
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.logger.Info("Application status updated",
		slog.String("application_id", applicationID),
		slog.String("status", req.Status),
	)

	c.JSON(http.StatusOK, dto.ApplicationDTO{
		ID:          app.ApplicationID,
		JobID:       app.JobID,
		ApplicantID: app.ApplicantID,
		Status:      app.Status,
		AppliedAt:   app.AppliedAt.Format(time.RFC3339),
	})
}
