package handler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/somesh123-ctrl/Job-Portal-Backend/internal/api/storage"
)

func TestBuildDashboard(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	t.Run("no jobs at all", func(t *testing.T) {
		resp := BuildDashboard(&storage.PosterStats{}, now)

		assert.Equal(t, 0, resp.JobsPosted)
		assert.Equal(t, 0, resp.ApplicationsReceived)
		assert.Equal(t, "N/A", resp.TopJob)
		assert.Equal(t, "N/A", resp.AverageResponseTime)
	})

	t.Run("jobs but no applications", func(t *testing.T) {
		stats := &storage.PosterStats{
			JobsPosted: 2,
			JobCounts: []storage.JobApplicationCount{
				{JobRole: "Engineer", Applications: 0},
				{JobRole: "Designer", Applications: 0},
			},
		}

		resp := BuildDashboard(stats, now)

		assert.Equal(t, 2, resp.JobsPosted)
		assert.Equal(t, 0, resp.ApplicationsReceived)
		assert.Equal(t, "Engineer", resp.TopJob)
		assert.Equal(t, "N/A", resp.AverageResponseTime)
	})

	t.Run("counts and average", func(t *testing.T) {
		stats := &storage.PosterStats{
			JobsPosted: 2,
			// Storage hands these back most-applied first
			JobCounts: []storage.JobApplicationCount{
				{JobRole: "Engineer", Applications: 3},
				{JobRole: "Designer", Applications: 1},
			},
			AppliedAt: []time.Time{
				now.AddDate(0, 0, -2),
				now.AddDate(0, 0, -4),
			},
		}

		resp := BuildDashboard(stats, now)

		assert.Equal(t, 2, resp.JobsPosted)
		assert.Equal(t, 4, resp.ApplicationsReceived)
		assert.Equal(t, "Engineer", resp.TopJob)
		assert.Equal(t, "3 days", resp.AverageResponseTime)
	})
}
