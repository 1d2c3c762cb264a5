package middleware

import (
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/hkdf"

	"salespredictor/models"
)

const sessionKeyInfo = "salespredictor session v1"

// SessionTTL is how long a session cookie stays valid after its last update.
const SessionTTL = 24 * time.Hour

// DeriveSessionKey turns SESSION_SECRET into an HS256 key with HKDF-SHA256.
// An empty secret yields a random per-process key.
func DeriveSessionKey(secret string) ([]byte, error) {
	key := make([]byte, 32)
	if secret == "" {
		if _, err := rand.Read(key); err != nil {
			return nil, fmt.Errorf("generate session key: %w", err)
		}
		log.Println("⚠️ [SESSION] SESSION_SECRET is not set, sessions will not survive a restart")
		return key, nil
	}

	if _, err := io.ReadFull(hkdf.New(sha256.New, []byte(secret), nil, []byte(sessionKeyInfo)), key); err != nil {
		return nil, fmt.Errorf("derive session key: %w", err)
	}
	return key, nil
}

// SignSession encodes a session as an HS256 JWT.
func SignSession(key []byte, s models.Session, now time.Time) (string, error) {
	claims := &models.SessionClaims{
		SessionID:       s.ID,
		PredictionMade:  s.PredictionMade,
		PredictionValue: s.PredictionValue,
		DemoMode:        s.DemoMode,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(SessionTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
}

// ParseSession verifies a session token and returns the session it carries.
func ParseSession(key []byte, tokenString string) (models.Session, error) {
	claims := &models.SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Ensure the token signing method is what you expect
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return key, nil
	})
	if err != nil {
		return models.Session{}, err
	}
	if !token.Valid || claims.SessionID == "" {
		return models.Session{}, fmt.Errorf("invalid session token")
	}

	return models.Session{
		ID:              claims.SessionID,
		PredictionMade:  claims.PredictionMade,
		PredictionValue: claims.PredictionValue,
		DemoMode:        claims.DemoMode,
	}, nil
}
