package handler

import (
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/somesh123-ctrl/Job-Portal-Backend/internal/api/dto"
	"github.com/somesh123-ctrl/Job-Portal-Backend/internal/api/storage"
)

// Dashboard handles GET /dashboard
// Read-only aggregate over the poster's jobs and their applications.
func (h *PortalHandler) Dashboard(c *gin.Context) {
	ident, ok := h.currentIdentity(c)
	if !ok {
		return
	}

	stats, err := h.storage.GetPosterStats(c.Request.Context(), ident.UserID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, BuildDashboard(stats, time.Now()))
}

// BuildDashboard computes the rendered aggregate from raw poster stats.
// The top job is the one with the most applications, first-created
// winning ties; when the poster has drawn no applications at all, the
// average age reads "N/A".
func BuildDashboard(stats *storage.PosterStats, now time.Time) dto.DashboardResponse {
	resp := dto.DashboardResponse{
		JobsPosted:          stats.JobsPosted,
		TopJob:              "N/A",
		AverageResponseTime: "N/A",
	}

	for _, jc := range stats.JobCounts {
		resp.ApplicationsReceived += jc.Applications
	}

	if len(stats.JobCounts) > 0 {
		resp.TopJob = stats.JobCounts[0].JobRole
	}

	if len(stats.AppliedAt) > 0 {
		var totalDays float64
		for _, at := range stats.AppliedAt {
			totalDays += now.Sub(at).Hours() / 24
		}
		avg := math.Round(totalDays / float64(len(stats.AppliedAt)))
		resp.AverageResponseTime = fmt.Sprintf("%d days", int64(avg))
	}

	return resp
}
