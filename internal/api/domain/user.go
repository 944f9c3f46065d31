package domain

const (
	UserTypeJobSeeker = "jobSeeker"
	UserTypeJobPoster = "jobPoster"
)

// PosterEmailDomain is the company domain job poster emails must belong to.
const PosterEmailDomain = "companyname.com"
