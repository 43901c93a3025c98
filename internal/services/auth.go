package services

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/mapmyworld/mapmyworld-api/internal/logger"
	"github.com/mapmyworld/mapmyworld-api/internal/models"
)

// Error variables
var (
	ErrEmailAlreadyExists    = errors.New("email already registered")
	ErrUsernameAlreadyExists = errors.New("username already taken")
	ErrInvalidCredentials    = errors.New("invalid username or password")
	ErrInactiveUser          = errors.New("inactive user account")
	ErrUnauthenticated       = errors.New("could not validate credentials")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, email, username, passwordHash string) (*models.UserDB, error)
}

// TokenIssuer defines an interface for issuing and verifying session tokens.
type TokenIssuer interface {
	Generate(ctx context.Context, username string) (string, error)
	GetUsername(ctx context.Context, tokenString string) (string, error)
}

// AuthService handles registration, login and token resolution.
type AuthService struct {
	reader UserReader
	writer UserWriter
	jwt    TokenIssuer
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt TokenIssuer) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		jwt:    jwt,
	}
}

// Register creates a new active user. Email and username must both be unused.
func (svc *AuthService) Register(ctx context.Context, email, username, password string) (*models.UserDB, error) {
	existing, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check email", "err", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailAlreadyExists
	}

	existing, err = svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check username", "err", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	user, err := svc.writer.Save(ctx, email, username, string(hashedPassword))
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	return user, nil
}

// Login authenticates a user and returns a signed session token.
// An unknown username and a wrong password yield the same error.
func (svc *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	if !user.IsActive {
		return "", ErrInactiveUser
	}

	token, err := svc.jwt.Generate(ctx, user.Username)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return "", err
	}

	return token, nil
}

// GetCurrentUser resolves a token to an active user. Checks run in order:
// token validity, user existence, active flag.
func (svc *AuthService) GetCurrentUser(ctx context.Context, tokenString string) (*models.UserDB, error) {
	username, err := svc.jwt.GetUsername(ctx, tokenString)
	if err != nil {
		return nil, ErrUnauthenticated
	}

	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to resolve token subject", "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUnauthenticated
	}

	if !user.IsActive {
		return nil, ErrInactiveUser
	}

	return user, nil
}
