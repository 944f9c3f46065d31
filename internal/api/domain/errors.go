package domain

import (
	"errors"
)

var (
	ErrEmailTaken          = errors.New("user already registered")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrUserNotFound        = errors.New("user not found")
	ErrNotJobPoster        = errors.New("only job posters can post jobs")
	ErrJobNotFound         = errors.New("job not found")
	ErrApplicationNotFound = errors.New("application not found")
	ErrAlreadyApplied      = errors.New("already applied for this job")
	ErrInvalidStatus       = errors.New("invalid status")
	ErrNotJobOwner         = errors.New("caller does not own this job")
)
