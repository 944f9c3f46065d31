package domain

const (
	StatusApplied     = "Applied"
	StatusInterviewed = "Interviewed"
	StatusRejected    = "Rejected"
	StatusHired       = "Hired"
)

// ValidStatus reports whether s is one of the four application statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusApplied, StatusInterviewed, StatusRejected, StatusHired:
		return true
	}
	return false
}
