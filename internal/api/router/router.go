package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/somesh123-ctrl/Job-Portal-Backend/internal/api/handler"
)

// SetupRouter configures and returns the Gin router with all routes
func SetupRouter(deps *handler.Dependencies) *gin.Engine {
	r := gin.New()

	// Middleware
	r.Use(gin.Recovery())
	r.Use(LoggerMiddleware(deps.Logger))
	r.Use(CORSMiddleware())

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "job-portal-api",
		})
	})

	portal := handler.NewPortalHandler(deps)
	authRequired := AuthMiddleware(deps.Tokens)

	api := r.Group("/api")
	{
		// Public routes
		api.POST("/signup", portal.Signup)
		api.POST("/login", portal.Login)
		api.GET("/all-jobs", portal.AllJobs)
		api.GET("/job-details/:jobId", portal.JobDetails)
		api.GET("/resume/:filename", portal.ServeResume)

		// Routes requiring a verified identity
		secured := api.Group("")
		secured.Use(authRequired)
		{
			secured.GET("/profile", portal.Profile)
			secured.POST("/profile", portal.UpdateProfile)
			secured.GET("/applicant-details/:applicantId", portal.ApplicantDetails)

			secured.POST("/post-job", portal.PostJob)
			secured.GET("/jobs-history", portal.JobsHistory)
			secured.GET("/dashboard", portal.Dashboard)

			secured.POST("/apply-job/:jobId", portal.ApplyJob)
			secured.GET("/applied-jobs", portal.AppliedJobs)
			secured.GET("/detailed-applied-jobs", portal.DetailedAppliedJobs)
			secured.GET("/view-applications/:jobId", portal.ViewApplications)
			secured.PUT("/update-application-status/:applicationId", portal.UpdateApplicationStatus)
		}
	}

	return r
}
