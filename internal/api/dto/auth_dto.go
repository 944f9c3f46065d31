package dto

type SignupRequest struct {
	UserType    string `json:"userType" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required"`
	CompanyName string `json:"companyName"`
	CompanyType string `json:"companyType"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}

// UserDTO is the outward account projection. The password hash is
// deliberately absent.
type UserDTO struct {
	ID                   string   `json:"id"`
	UserType             string   `json:"userType"`
	Name                 string   `json:"name"`
	Email                string   `json:"email"`
	HighestQualification string   `json:"highestQualification,omitempty"`
	InterestedRole       string   `json:"interestedRole,omitempty"`
	Resume               string   `json:"resume,omitempty"`
	ProfilePicture       string   `json:"profilePicture,omitempty"`
	Skillset             []string `json:"skillset,omitempty"`
	CompanyName          string   `json:"companyName,omitempty"`
	CompanyType          string   `json:"companyType,omitempty"`
}
