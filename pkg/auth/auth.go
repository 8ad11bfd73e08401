package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"droscher.com/Pinarr/configs"
	"droscher.com/Pinarr/pkg/model"
	"droscher.com/Pinarr/pkg/repository"
)

type UserKey struct{}

var (
	ErrUnauthenticated    = errors.New("authentication required")
	ErrInvalidCredentials = fmt.Errorf("%w: invalid username or password", ErrUnauthenticated)
	ErrWrongPassword      = errors.New("old password is incorrect")
	ErrInvalidPassword    = errors.New("invalid password")
	ErrInvalidUsername    = errors.New("username cannot be empty")
)

// Claims is the payload of a session token. Version must match the user's
// session version for the token to be accepted.
type Claims struct {
	UserID  uint `json:"user_id"`
	Version uint `json:"ver"`
	jwt.RegisteredClaims
}

type Manager struct {
	conf   configs.Auth
	users  repository.UserRepository
	logger *zap.Logger
}

func NewAuthManager(conf configs.Auth, users repository.UserRepository, logger *zap.Logger) *Manager {
	return &Manager{conf: conf, users: users, logger: logger}
}

func HashPassword(password string) (string, error) {
	if password == "" {
		return "", fmt.Errorf("%w: password cannot be empty", ErrInvalidPassword)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", fmt.Errorf("%w: %w", ErrInvalidPassword, err)
	}

	if err != nil {
		return "", err
	}

	return string(hash), nil
}

func (a *Manager) VerifyCredentials(ctx context.Context, username string, password string) (*model.User, error) {
	user, err := a.users.GetUserByName(ctx, username)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, ErrInvalidCredentials
	}

	if err != nil {
		return nil, err
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		a.logger.Info("failed login attempt", zap.String("username", username))

		return nil, ErrInvalidCredentials
	}

	return user, nil
}

func (a *Manager) IssueSessionToken(user *model.User) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:  user.ID,
		Version: user.SessionVersion,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(a.conf.SessionTTL)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(a.conf.SecretKey))
}

func (a *Manager) ParseSessionToken(accessToken string) (*Claims, error) {
	keyFunc := func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: unexpected signing method: %v", ErrUnauthenticated, token.Header["alg"])
		}

		return []byte(a.conf.SecretKey), nil
	}

	var claims Claims

	token, err := jwt.ParseWithClaims(accessToken, &claims, keyFunc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}

	if !token.Valid {
		return nil, fmt.Errorf("%w: invalid token", ErrUnauthenticated)
	}

	return &claims, nil
}

// CurrentIdentity resolves the user behind the session cookie or the bearer
// token of the request.
func (a *Manager) CurrentIdentity(ctx context.Context, r *http.Request) (*model.User, error) {
	accessToken, err := a.tokenFromRequest(r)
	if err != nil {
		return nil, err
	}

	claims, err := a.ParseSessionToken(accessToken)
	if err != nil {
		return nil, err
	}

	user, err := a.users.GetUserByID(ctx, claims.UserID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, fmt.Errorf("%w: unknown user", ErrUnauthenticated)
	}

	if err != nil {
		return nil, err
	}

	if user.SessionVersion != claims.Version {
		return nil, fmt.Errorf("%w: session revoked", ErrUnauthenticated)
	}

	return user, nil
}

// ChangePassword checks the old password before storing the new one. The
// stored session version is bumped, which revokes every issued token.
func (a *Manager) ChangePassword(ctx context.Context, user *model.User, oldPassword string, newPassword string) (*model.User, error) {
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(oldPassword)); err != nil {
		return nil, ErrWrongPassword
	}

	hash, err := HashPassword(newPassword)
	if err != nil {
		return nil, err
	}

	updated, err := a.users.UpdatePassword(ctx, user.ID, hash)
	if err != nil {
		return nil, err
	}

	a.logger.Info("password changed", zap.Uint("user_id", user.ID))

	return updated, nil
}

func (a *Manager) Rename(ctx context.Context, user *model.User, username string) (*model.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrInvalidUsername
	}

	return a.users.RenameUser(ctx, user.ID, username)
}

// EnsureAdmin creates the admin account unless an admin already exists. It
// reports whether a user was created.
func (a *Manager) EnsureAdmin(ctx context.Context, username string, password string) (*model.User, bool, error) {
	exists, err := a.users.HasAdmin(ctx)
	if err != nil {
		return nil, false, err
	}

	if exists {
		return nil, false, nil
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, false, err
	}

	user, err := a.users.AddUser(ctx, username, hash, true)
	if err != nil {
		return nil, false, err
	}

	return user, true, nil
}

func (a *Manager) tokenFromRequest(r *http.Request) (string, error) {
	if cookie, err := r.Cookie(a.conf.CookieName); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}

	authorization := r.Header.Get("Authorization")
	if len(authorization) == 0 {
		return "", fmt.Errorf("%w: no session cookie or authorization header", ErrUnauthenticated)
	}

	prefix := "Bearer "
	if !strings.HasPrefix(authorization, prefix) {
		prefix = "bearer "
	}

	token, found := strings.CutPrefix(authorization, prefix)
	if !found || token == "" {
		return "", fmt.Errorf("%w: authorization format must be Bearer {token}", ErrUnauthenticated)
	}

	return token, nil
}
