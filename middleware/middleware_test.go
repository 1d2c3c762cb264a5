package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salespredictor/models"
)

var testKey = []byte("0123456789abcdef0123456789abcdef")

func sessionCookie(t *testing.T, resp *http.Response) *http.Cookie {
	t.Helper()
	var found *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == SessionCookieName {
			found = c
		}
	}
	return found
}

// makeApp mounts the session middleware and a handler that reports or mutates the session.
func makeApp(m *SessionManager) *fiber.App {
	app := fiber.New()
	app.Use(m.Handler())

	app.Get("/test", func(c *fiber.Ctx) error {
		return c.JSON(CurrentSession(c))
	})
	app.Post("/record", func(c *fiber.Ctx) error {
		sess := CurrentSession(c)
		sess.RecordPrediction(49500)
		if err := m.Save(c, sess); err != nil {
			return err
		}
		return c.JSON(sess)
	})
	return app
}

func TestDeriveSessionKey(t *testing.T) {
	a, err := DeriveSessionKey("secret")
	require.NoError(t, err)
	b, err := DeriveSessionKey("secret")
	require.NoError(t, err)
	c, err := DeriveSessionKey("other")
	require.NoError(t, err)

	assert.Len(t, a, 32)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)

	r1, err := DeriveSessionKey("")
	require.NoError(t, err)
	r2, err := DeriveSessionKey("")
	require.NoError(t, err)
	assert.NotEqual(t, r1, r2)
}

func TestSignParseRoundTrip(t *testing.T) {
	v := 1234.5
	in := models.Session{ID: "abc", PredictionMade: true, PredictionValue: &v, DemoMode: true}

	token, err := SignSession(testKey, in, time.Now())
	require.NoError(t, err)

	out, err := ParseSession(testKey, token)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestParseSessionRejectsBadTokens(t *testing.T) {
	token, err := SignSession(testKey, models.Session{ID: "abc"}, time.Now())
	require.NoError(t, err)

	_, err = ParseSession([]byte("another-key-another-key-another!"), token)
	assert.Error(t, err)

	expired, err := SignSession(testKey, models.Session{ID: "abc"}, time.Now().Add(-2*SessionTTL))
	require.NoError(t, err)
	_, err = ParseSession(testKey, expired)
	assert.Error(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, &models.SessionClaims{SessionID: "abc"}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = ParseSession(testKey, unsigned)
	assert.Error(t, err)

	_, err = ParseSession(testKey, "garbage")
	assert.Error(t, err)
}

func TestHandlerStartsSession(t *testing.T) {
	app := makeApp(NewSessionManager(testKey))

	resp, err := app.Test(httptest.NewRequest("GET", "/test", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	cookie := sessionCookie(t, resp)
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)

	sess, err := ParseSession(testKey, cookie.Value)
	require.NoError(t, err)
	assert.NotEmpty(t, sess.ID)
	assert.False(t, sess.PredictionMade)
}

func TestHandlerKeepsSessionAcrossRequests(t *testing.T) {
	m := NewSessionManager(testKey)
	app := makeApp(m)

	first, err := app.Test(httptest.NewRequest("POST", "/record", nil))
	require.NoError(t, err)
	cookie := sessionCookie(t, first)
	require.NotNil(t, cookie)

	req := httptest.NewRequest("GET", "/test", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: cookie.Value})
	second, err := app.Test(req)
	require.NoError(t, err)
	assert.Nil(t, sessionCookie(t, second))

	sess, err := ParseSession(testKey, cookie.Value)
	require.NoError(t, err)
	assert.True(t, sess.PredictionMade)
	require.NotNil(t, sess.PredictionValue)
	assert.Equal(t, 49500.0, *sess.PredictionValue)
}

func TestHandlerReplacesTamperedCookie(t *testing.T) {
	app := makeApp(NewSessionManager(testKey))

	req := httptest.NewRequest("GET", "/test", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "tampered.token.value"})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.NotNil(t, sessionCookie(t, resp))
}

func TestCurrentSessionWithoutMiddleware(t *testing.T) {
	app := fiber.New()
	app.Get("/test", func(c *fiber.Ctx) error {
		return c.JSON(CurrentSession(c))
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/test", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}
