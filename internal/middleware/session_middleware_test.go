package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jteo/listify-backend/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSessionSecret = "test-secret-key-for-session-testing"

func setupSessionTest() (*gin.Engine, *SessionMiddleware) {
	gin.SetMode(gin.TestMode)
	m := NewSessionMiddleware(testSessionSecret, "listify_session", time.Hour)

	router := gin.New()
	router.Use(m.Attach())
	router.GET("/whoami", func(c *gin.Context) {
		sessionID, _ := GetSessionID(c)
		c.JSON(http.StatusOK, gin.H{"session_id": sessionID})
	})
	return router, m
}

func TestSessionMiddleware_IssuesSessionWhenMissing(t *testing.T) {
	router, _ := setupSessionTest()

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "listify_session", cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)

	claims, err := util.ValidateSessionToken(cookies[0].Value, testSessionSecret)
	require.NoError(t, err)
	assert.NotEmpty(t, claims.SessionID)
}

func TestSessionMiddleware_KeepsExistingSession(t *testing.T) {
	router, _ := setupSessionTest()

	token, err := util.GenerateSessionToken("known-session", testSessionSecret, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: "listify_session", Value: token})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "known-session")
	// No replacement cookie is set.
	assert.Empty(t, w.Result().Cookies())
}

func TestSessionMiddleware_ReplacesInvalidCookie(t *testing.T) {
	router, _ := setupSessionTest()

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: "listify_session", Value: "garbage"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)

	claims, err := util.ValidateSessionToken(cookies[0].Value, testSessionSecret)
	require.NoError(t, err)
	assert.NotEmpty(t, claims.SessionID)
}

func TestSessionMiddleware_ReplacesTokenWithWrongSecret(t *testing.T) {
	router, _ := setupSessionTest()

	token, err := util.GenerateSessionToken("forged", "some-other-secret", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: "listify_session", Value: token})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "forged")
	require.Len(t, w.Result().Cookies(), 1)
}
