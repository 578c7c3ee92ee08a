package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/tavernkeep/campaign-tracker/internal/logger"
	"github.com/tavernkeep/campaign-tracker/internal/models"
	"github.com/tavernkeep/campaign-tracker/internal/sessions"
	"github.com/tavernkeep/campaign-tracker/internal/token"
	"golang.org/x/crypto/bcrypt"
)

// Error variables
var (
	ErrUsernameTaken    = errors.New("username already taken")
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrUnknownUsername  = errors.New("username does not exist")
	ErrWrongPassword    = errors.New("wrong password")
	ErrUnauthenticated  = errors.New("not authenticated")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
	GetByID(ctx context.Context, id int64) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username string, passwordHash string) (*models.UserDB, error)
}

// TokenGenerator defines an interface for issuing and parsing session tokens.
type TokenGenerator interface {
	Generate(ctx context.Context, userID int64) (string, token.Claims, error)
	Parse(ctx context.Context, tokenString string) (token.Claims, error)
}

// SessionStore defines the live-session registry. A session is Authenticated
// while its entry exists and Anonymous once it is deleted or expires.
type SessionStore interface {
	Create(ctx context.Context, sessionID string, userID int64) error
	Get(ctx context.Context, sessionID string) (int64, error)
	Delete(ctx context.Context, sessionID string) error
}

// AuthService handles registration, login, logout and identity resolution.
type AuthService struct {
	reader   UserReader
	writer   UserWriter
	tokens   TokenGenerator
	sessions SessionStore
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, tokens TokenGenerator, store SessionStore) *AuthService {
	return &AuthService{
		reader:   reader,
		writer:   writer,
		tokens:   tokens,
		sessions: store,
	}
}

// Register creates a new user and establishes a session for it immediately,
// so no separate login step is required. The username uniqueness check is
// atomic with the insert; a conflict surfaces as ErrUsernameTaken.
func (svc *AuthService) Register(ctx context.Context, username, password, confirmPassword string) (string, *models.UserDB, error) {
	if password != confirmPassword {
		return "", nil, ErrPasswordMismatch
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return "", nil, err
	}

	user, err := svc.writer.Save(ctx, username, string(hashedPassword))
	if errors.Is(err, sql.ErrNoRows) {
		logger.Log.Errorw("username already taken", "username", username)
		return "", nil, ErrUsernameTaken
	}
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return "", nil, err
	}

	sessionToken, err := svc.establishSession(ctx, user.ID)
	if err != nil {
		return "", nil, err
	}

	return sessionToken, user, nil
}

// Login authenticates a user and establishes a session. Unknown usernames and
// wrong passwords are reported as distinct outcomes.
func (svc *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil {
		logger.Log.Errorw("user does not exist", "username", username)
		return "", ErrUnknownUsername
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("wrong password", "username", username)
		return "", ErrWrongPassword
	}

	return svc.establishSession(ctx, user.ID)
}

// Logout ends the session bound to the given token. The token behaves as
// unauthenticated from then on, even though it has not expired yet.
func (svc *AuthService) Logout(ctx context.Context, tokenString string) error {
	claims, err := svc.tokens.Parse(ctx, tokenString)
	if err != nil {
		return ErrUnauthenticated
	}

	return svc.sessions.Delete(ctx, claims.SessionID)
}

// Resolve returns the user bound to an authenticated session token, or
// ErrUnauthenticated for invalid, expired, or logged-out tokens. It is the
// only path from a token to an identity; no persistence call happens before
// it succeeds.
func (svc *AuthService) Resolve(ctx context.Context, tokenString string) (*models.UserDB, error) {
	claims, err := svc.tokens.Parse(ctx, tokenString)
	if err != nil {
		return nil, ErrUnauthenticated
	}

	userID, err := svc.sessions.Get(ctx, claims.SessionID)
	if errors.Is(err, sessions.ErrNotFound) {
		return nil, ErrUnauthenticated
	}
	if err != nil {
		logger.Log.Errorw("failed to read session", "err", err)
		return nil, err
	}
	if userID != claims.UserID {
		return nil, ErrUnauthenticated
	}

	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUnauthenticated
	}

	return user, nil
}

func (svc *AuthService) establishSession(ctx context.Context, userID int64) (string, error) {
	sessionToken, claims, err := svc.tokens.Generate(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return "", err
	}

	if err := svc.sessions.Create(ctx, claims.SessionID, userID); err != nil {
		logger.Log.Errorw("failed to create session", "err", err)
		return "", err
	}

	return sessionToken, nil
}
