package token

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// JWT provides methods to generate and parse session tokens.
type JWT struct {
	SecretKey string        // Secret key for signing tokens
	Exp       time.Duration // Token expiration duration
}

// New creates a new JWT instance.
func New(secretKey string, expiration time.Duration) *JWT {
	return &JWT{
		SecretKey: secretKey,
		Exp:       expiration,
	}
}

// Claims are the parsed contents of a session token.
type Claims struct {
	UserID    int64  // Authenticated user
	SessionID string // Unique session id (jti), registered in the session store
}

// Generate creates a session token for the given user. Every token carries a
// fresh jti so sessions are never reused.
func (j *JWT) Generate(ctx context.Context, userID int64) (string, Claims, error) {
	claims := Claims{
		UserID:    userID,
		SessionID: uuid.NewString(),
	}

	mapClaims := jwt.MapClaims{
		"sub": strconv.FormatInt(userID, 10),
		"jti": claims.SessionID,
		"exp": time.Now().Add(j.Exp).Unix(),
		"iat": time.Now().Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, mapClaims)
	signed, err := t.SignedString([]byte(j.SecretKey))
	if err != nil {
		return "", Claims{}, err
	}

	return signed, claims, nil
}

// Parse validates the token signature and expiry and returns its claims.
func (j *JWT) Parse(ctx context.Context, tokenString string) (Claims, error) {
	t, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(j.SecretKey), nil
	})
	if err != nil {
		return Claims{}, err
	}

	mapClaims, ok := t.Claims.(jwt.MapClaims)
	if !ok || !t.Valid {
		return Claims{}, errors.New("invalid token")
	}

	sub, ok := mapClaims["sub"].(string)
	if !ok {
		return Claims{}, errors.New("subject not found in token")
	}
	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return Claims{}, errors.New("invalid subject format")
	}

	jti, ok := mapClaims["jti"].(string)
	if !ok {
		return Claims{}, errors.New("session id not found in token")
	}

	return Claims{UserID: userID, SessionID: jti}, nil
}

// GetTokenFromRequest extracts the token string from the Authorization header.
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", errors.New("authorization header missing")
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", errors.New("invalid authorization header format")
	}

	return parts[1], nil
}
