package model

import (
	"time"

	"github.com/lib/pq"
)

// User holds both account variants in one row, discriminated by UserType.
// Seeker-only columns stay empty for posters and vice versa. The password
// hash never leaves the storage layer in a response body.
type User struct {
	UserID               string         `db:"user_id"`
	UserType             string         `db:"user_type"`
	Name                 string         `db:"name"`
	Email                string         `db:"email"`
	PasswordHash         string         `db:"password_hash"`
	HighestQualification string         `db:"highest_qualification"`
	InterestedRole       string         `db:"interested_role"`
	Resume               string         `db:"resume"`
	ProfilePicture       string         `db:"profile_picture"`
	Skillset             pq.StringArray `db:"skillset"`
	CompanyName          string         `db:"company_name"`
	CompanyType          string         `db:"company_type"`
	CreatedAt            time.Time      `db:"created_at"`
}

type Job struct {
	JobID          string         `db:"job_id"`
	JobRole        string         `db:"job_role"`
	CompanyName    string         `db:"company_name"`
	Salary         int64          `db:"salary"`
	SkillsRequired pq.StringArray `db:"skills_required"`
	PostedBy       string         `db:"posted_by"`
	CreatedAt      time.Time      `db:"created_at"`
	// Denormalized back-reference, appended when an application is inserted.
	ApplicationIDs pq.StringArray `db:"application_ids"`
}

type Application struct {
	ApplicationID string    `db:"application_id"`
	JobID         string    `db:"job_id"`
	ApplicantID   string    `db:"applicant_id"`
	Status        string    `db:"status"`
	AppliedAt     time.Time `db:"applied_at"`
}
