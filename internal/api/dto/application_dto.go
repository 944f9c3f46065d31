package dto

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type ApplicationDTO struct {
	ID          string `json:"id"`
	JobID       string `json:"job"`
	ApplicantID string `json:"applicant"`
	Status      string `json:"status"`
	AppliedAt   string `json:"appliedAt"`
}

// DetailedAppliedJobDTO merges an application with its job, the projection
// a seeker sees on the applied-jobs page.
type DetailedAppliedJobDTO struct {
	ID             string   `json:"id"`
	JobRole        string   `json:"jobRole"`
	CompanyName    string   `json:"companyName"`
	Salary         int64    `json:"salary"`
	SkillsRequired []string `json:"skillsRequired"`
	Status         string   `json:"status"`
	AppliedAt      string   `json:"appliedAt"`
}

// JobApplicantDTO is one application joined with the applicant fields a
// poster reviews.
type JobApplicantDTO struct {
	ID        string       `json:"id"`
	Status    string       `json:"status"`
	AppliedAt string       `json:"appliedAt"`
	Applicant ApplicantDTO `json:"applicant"`
}

type ApplicantDTO struct {
	ID                   string   `json:"id"`
	Name                 string   `json:"name"`
	Email                string   `json:"email"`
	HighestQualification string   `json:"highestQualification,omitempty"`
	InterestedRole       string   `json:"interestedRole,omitempty"`
	Skillset             []string `json:"skillset,omitempty"`
	Resume               string   `json:"resume,omitempty"`
}
