package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jteo/listify-backend/pkg/util"
)

// SessionIDKey is the context key for the anonymous session ID.
const SessionIDKey = "session_id"

// SessionMiddleware maintains an anonymous wizard session in a signed
// cookie. There are no accounts: a missing, invalid or expired cookie is
// simply replaced with a fresh session, which starts an empty draft.
type SessionMiddleware struct {
	secret     string
	cookieName string
	ttl        time.Duration
}

func NewSessionMiddleware(secret, cookieName string, ttl time.Duration) *SessionMiddleware {
	return &SessionMiddleware{
		secret:     secret,
		cookieName: cookieName,
		ttl:        ttl,
	}
}

// Attach resolves the session for the request, issuing a new one when
// needed, and stores the session ID in the context.
func (m *SessionMiddleware) Attach() gin.HandlerFunc {
	return func(c *gin.Context) {
		log := GetLoggerFromContext(c)

		if token, err := c.Cookie(m.cookieName); err == nil {
			if claims, err := util.ValidateSessionToken(token, m.secret); err == nil {
				c.Set(SessionIDKey, claims.SessionID)
				c.Next()
				return
			}
			log.Debug("Replacing invalid session cookie", map[string]interface{}{
				"path": c.Request.URL.Path,
			})
		}

		sessionID := uuid.New().String()
		token, err := util.GenerateSessionToken(sessionID, m.secret, m.ttl)
		if err != nil {
			log.Error("Failed to issue session token", err, nil)
			c.AbortWithStatus(500)
			return
		}

		c.SetCookie(m.cookieName, token, int(m.ttl.Seconds()), "/", "", false, true)
		c.Set(SessionIDKey, sessionID)

		log.Debug("Issued new wizard session", map[string]interface{}{
			"session_id": sessionID,
		})

		c.Next()
	}
}

// GetSessionID extracts the session ID from context
func GetSessionID(c *gin.Context) (string, bool) {
	sessionID, exists := c.Get(SessionIDKey)
	if !exists {
		return "", false
	}
	return sessionID.(string), true
}
