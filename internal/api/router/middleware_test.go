package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/somesh123-ctrl/Job-Portal-Backend/internal/api/handler"
	"github.com/somesh123-ctrl/Job-Portal-Backend/internal/auth"
)

func authTestRouter(tokens *auth.TokenManager) *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/whoami", AuthMiddleware(tokens), func(c *gin.Context) {
		v, _ := c.Get(handler.IdentityKey)
		ident := v.(*auth.Identity)
		c.JSON(http.StatusOK, gin.H{
			"user_id":   ident.UserID,
			"user_type": ident.UserType,
		})
	})
	return r
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	r := authTestRouter(tokens)

	token, err := tokens.Issue("user-42", "jobPoster")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "user-42")
	assert.Contains(t, rec.Body.String(), "jobPoster")
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	r := authTestRouter(tokens)

	expired, err := auth.NewTokenManager("test-secret", -time.Minute).Issue("user-42", "jobSeeker")
	require.NoError(t, err)

	otherSecret, err := auth.NewTokenManager("other-secret", time.Hour).Issue("user-42", "jobSeeker")
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "not bearer", header: "Basic abc123"},
		{name: "empty bearer", header: "Bearer "},
		{name: "garbage token", header: "Bearer not-a-token"},
		{name: "expired token", header: "Bearer " + expired},
		{name: "wrong secret", header: "Bearer " + otherSecret},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}
