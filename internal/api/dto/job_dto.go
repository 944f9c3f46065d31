package dto

type PostJobRequest struct {
	JobRole        string   `json:"jobRole" binding:"required"`
	CompanyName    string   `json:"companyName" binding:"required"`
	Salary         int64    `json:"salary" binding:"required"`
	SkillsRequired []string `json:"skillsRequired" binding:"required"`
}

type ListJobsRequest struct {
	SalaryRange string `form:"salaryRange"`
	JobRole     string `form:"jobRole"`
	SortOrder   string `form:"sortOrder"`
}

type JobDTO struct {
	ID             string   `json:"id"`
	JobRole        string   `json:"jobRole"`
	CompanyName    string   `json:"companyName"`
	Salary         int64    `json:"salary"`
	SkillsRequired []string `json:"skillsRequired"`
	PostedBy       string   `json:"postedBy"`
	CreatedAt      string   `json:"createdAt"`
}

// JobHistoryDTO is a job with its applications nested, as the poster's
// history view renders it.
type JobHistoryDTO struct {
	JobDTO
	JobApplications []HistoryApplicationDTO `json:"jobApplications"`
}

type HistoryApplicationDTO struct {
	ID        string       `json:"id"`
	Status    string       `json:"status"`
	AppliedAt string       `json:"appliedAt"`
	Applicant ApplicantRef `json:"applicant"`
}

// ApplicantRef is the minimal applicant projection nested in job history.
type ApplicantRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type DashboardResponse struct {
	JobsPosted           int    `json:"jobsPosted"`
	ApplicationsReceived int    `json:"applicationsReceived"`
	TopJob               string `json:"topJob"`
	AverageResponseTime  string `json:"averageResponseTime"`
}
