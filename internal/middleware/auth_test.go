package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/juju/clock/testclock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/todo-tracker-api/internal/auth"
)

func newTestRouter(t *testing.T, required bool) (*gin.Engine, *auth.TokenIssuer) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	issuer, err := auth.NewTokenIssuer([]byte("test-secret"), 0, testclock.NewClock(time.Now()))
	require.NoError(t, err)

	r := gin.New()
	r.GET("/whoami", Authenticate(issuer, required), func(c *gin.Context) {
		c.String(http.StatusOK, GetActorID(c))
	})
	return r, issuer
}

func get(r *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthenticate_Optional(t *testing.T) {
	r, issuer := newTestRouter(t, false)

	w := get(r, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())

	token, err := issuer.Issue("user-1", "a@x.com", "Ann")
	require.NoError(t, err)

	w = get(r, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-1", w.Body.String())

	w = get(r, "bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthenticate_Rejects(t *testing.T) {
	r, issuer := newTestRouter(t, false)
	token, err := issuer.Issue("user-1", "a@x.com", "Ann")
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{"wrong scheme", "Basic " + token},
		{"no token", "Bearer "},
		{"no scheme", token},
		{"garbage", "Bearer not-a-jwt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(r, tt.header)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), "UNAUTHORIZED")
		})
	}
}

func TestAuthenticate_Required(t *testing.T) {
	r, issuer := newTestRouter(t, true)

	w := get(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token, err := issuer.Issue("user-1", "a@x.com", "Ann")
	require.NoError(t, err)
	w = get(r, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
}
