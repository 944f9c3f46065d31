package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/somesh123-ctrl/Job-Portal-Backend/internal/api/dto"
	"github.com/somesh123-ctrl/Job-Portal-Backend/internal/api/model"
	"github.com/somesh123-ctrl/Job-Portal-Backend/internal/auth"
)

// IdentityKey is the gin context key under which the auth middleware
// stores the verified caller identity.
const IdentityKey = "identity"

// currentIdentity pulls the verified identity the auth middleware stored.
// Aborts with 401 when a protected handler runs without one.
func (h *PortalHandler) currentIdentity(c *gin.Context) (*auth.Identity, bool) {
	v, ok := c.Get(IdentityKey)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "authentication required",
		})
		return nil, false
	}

	ident, ok := v.(*auth.Identity)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "authentication required",
		})
		return nil, false
	}

	return ident, true
}

func toUserDTO(user *model.User) dto.UserDTO {
	return dto.UserDTO{
		ID:                   user.UserID,
		UserType:             user.UserType,
		Name:                 user.Name,
		Email:                user.Email,
		HighestQualification: user.HighestQualification,
		InterestedRole:       user.InterestedRole,
		Resume:               user.Resume,
		ProfilePicture:       user.ProfilePicture,
		Skillset:             user.Skillset,
		CompanyName:          user.CompanyName,
		CompanyType:          user.CompanyType,
	}
}

func toJobDTO(job *model.Job) dto.JobDTO {
	return dto.JobDTO{
		ID:             job.JobID,
		JobRole:        job.JobRole,
		CompanyName:    job.CompanyName,
		Salary:         job.Salary,
		SkillsRequired: job.SkillsRequired,
		PostedBy:       job.PostedBy,
		CreatedAt:      job.CreatedAt.Format(time.RFC3339),
	}
}
