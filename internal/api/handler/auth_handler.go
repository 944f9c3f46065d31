package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/somesh123-ctrl/Job-Portal-Backend/internal/api/domain"
	"github.com/somesh123-ctrl/Job-Portal-Backend/internal/api/dto"
	"github.com/somesh123-ctrl/Job-Portal-Backend/internal/api/model"
	"github.com/somesh123-ctrl/Job-Portal-Backend/internal/api/storage"
	"github.com/somesh123-ctrl/Job-Portal-Backend/internal/auth"
)

// Signup handles POST /signup
// Registers either account variant. Email uniqueness spans both variants.
func (h *PortalHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid signup request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}

	if req.UserType != domain.UserTypeJobSeeker && req.UserType != domain.UserTypeJobPoster {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "userType must be jobSeeker or jobPoster",
		})
		return
	}

	if req.UserType == domain.UserTypeJobPoster {
		if !ValidPosterEmail(req.Email) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Email must end with @" + domain.PosterEmailDomain,
			})
			return
		}
		if req.CompanyName == "" || req.CompanyType == "" {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "companyName and companyType are required for job posters",
			})
			return
		}
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		h.respondError(c, err)
		return
	}

	user := model.User{
		UserID:       uuid.New().String(),
		UserType:     req.UserType,
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		CompanyName:  req.CompanyName,
		CompanyType:  req.CompanyType,
		CreatedAt:    time.Now(),
	}

	if err := h.storage.CreateUser(c.Request.Context(), &user); err != nil {
		h.respondError(c, err)
		return
	}

	h.logger.Info("User registered",
		slog.String("user_id", user.UserID),
		slog.String("user_type", user.UserType),
	)

	c.JSON(http.StatusCreated, toUserDTO(&user))
}

// Login handles POST /login
// A missing account and a wrong password answer identically.
func (h *PortalHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}

	user, err := h.storage.GetUserByEmail(c.Request.Context(), req.Email)
	if err != nil {
		h.respondError(c, domain.ErrInvalidCredentials)
		return
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		h.respondError(c, domain.ErrInvalidCredentials)
		return
	}

	token, err := h.tokens.Issue(user.UserID, user.UserType)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Token: token,
		User: dto.UserDTO{
			ID:       user.UserID,
			UserType: user.UserType,
			Name:     user.Name,
			Email:    user.Email,
		},
	})
}

// Profile handles GET /profile
func (h *PortalHandler) Profile(c *gin.Context) {
	ident, ok := h.currentIdentity(c)
	if !ok {
		return
	}

	user, err := h.storage.GetUserByID(c.Request.Context(), ident.UserID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toUserDTO(user))
}

// UpdateProfile handles POST /profile
// Multipart form carrying the optional seeker fields plus resume and
// profile picture files. Empty form fields leave stored values untouched.
func (h *PortalHandler) UpdateProfile(c *gin.Context) {
	ident, ok := h.currentIdentity(c)
	if !ok {
		return
	}

	patch := storage.ProfilePatch{}

	if v := c.PostForm("highestQualification"); v != "" {
		patch.HighestQualification = &v
	}
	if v := c.PostForm("interestedRole"); v != "" {
		patch.InterestedRole = &v
	}
	if v := c.PostForm("skillset"); v != "" {
		patch.Skillset = SplitSkillset(v)
	}

	if file, err := c.FormFile("resume"); err == nil {
		name, err := h.uploads.Save(file)
		if err != nil {
			h.respondError(c, err)
			return
		}
		patch.Resume = &name
	}

	if file, err := c.FormFile("profilePicture"); err == nil {
		name, err := h.uploads.Save(file)
		if err != nil {
			h.respondError(c, err)
			return
		}
		patch.ProfilePicture = &name
	}

	user, err := h.storage.UpdateSeekerProfile(c.Request.Context(), ident.UserID, patch)
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.logger.Info("Profile updated", slog.String("user_id", ident.UserID))

	c.JSON(http.StatusOK, toUserDTO(user))
}

// ApplicantDetails handles GET /applicant-details/:applicantId
func (h *PortalHandler) ApplicantDetails(c *gin.Context) {
	if _, ok := h.currentIdentity(c); !ok {
		return
	}

	applicant, err := h.storage.GetSeekerByID(c.Request.Context(), c.Param("applicantId"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toUserDTO(applicant))
}

// ServeResume handles GET /resume/:filename
// Streams a previously uploaded file back by its generated name.
func (h *PortalHandler) ServeResume(c *gin.Context) {
	path, err := h.uploads.Path(c.Param("filename"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "File not found",
		})
		return
	}

	c.File(path)
}

// ValidPosterEmail reports whether a job poster signup email belongs to
// the required company domain.
func ValidPosterEmail(email string) bool {
	_, emailDomain, found := strings.Cut(email, "@")
	if !found || emailDomain == "" {
		return false
	}
	return strings.HasSuffix(emailDomain, domain.PosterEmailDomain)
}

// SplitSkillset turns the comma-separated skillset form field into the
// stored list, trimming whitespace and dropping empty entries.
func SplitSkillset(raw string) []string {
	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}
