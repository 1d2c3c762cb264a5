package middleware

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"salespredictor/models"
)

// SessionCookieName is the cookie carrying the signed session.
const SessionCookieName = "predictor_session"

const sessionLocalsKey = "session"

// SessionManager loads and stores the per-visitor session cookie.
type SessionManager struct {
	key []byte
	now func() time.Time
}

// NewSessionManager creates a manager signing cookies with key.
func NewSessionManager(key []byte) *SessionManager {
	return &SessionManager{key: key, now: time.Now}
}

// Handler parses the session cookie into the request locals. A missing,
// tampered or expired cookie starts a fresh session.
func (m *SessionManager) Handler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var sess models.Session
		fresh := true

		if raw := c.Cookies(SessionCookieName); raw != "" {
			parsed, err := ParseSession(m.key, raw)
			if err != nil {
				log.Printf("[SESSION] Discarding session cookie: %v", err)
			} else {
				sess = parsed
				fresh = false
			}
		}

		if fresh {
			sess = models.Session{ID: uuid.NewString()}
			if err := m.Save(c, &sess); err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to start session"})
			}
		}

		c.Locals(sessionLocalsKey, &sess)
		return c.Next()
	}
}

// Save signs the session and writes it back as the session cookie.
func (m *SessionManager) Save(c *fiber.Ctx, sess *models.Session) error {
	now := m.now()
	token, err := SignSession(m.key, *sess, now)
	if err != nil {
		log.Printf("❌ [SESSION] Error signing session %s: %v", sess.ID, err)
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  now.Add(SessionTTL),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return nil
}

// CurrentSession returns the session loaded by Handler, or a throwaway one
// when the middleware did not run.
func CurrentSession(c *fiber.Ctx) *models.Session {
	if sess, ok := c.Locals(sessionLocalsKey).(*models.Session); ok {
		return sess
	}
	return &models.Session{}
}
