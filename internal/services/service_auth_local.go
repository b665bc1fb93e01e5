package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"dj-site/dto"
	"dj-site/internal/logger"
	"dj-site/internal/models"
	"dj-site/internal/repository"
	"dj-site/internal/validate"
)

// SessionClaims is the payload of a session token. Subject holds the user id.
type SessionClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

func (c *SessionClaims) IsAdmin() bool {
	return c != nil && c.Role == models.RoleAdmin
}

func (c *SessionClaims) User() dto.SessionUser {
	return dto.SessionUser{ID: c.Subject, Email: c.Email, Role: c.Role}
}

type AuthService struct {
	users   repository.UserRepository
	secret  []byte
	ttl     time.Duration
	cost    int
	timeout time.Duration
	now     func() time.Time

	// compared against when the email is unknown so both failure paths
	// cost one bcrypt comparison
	dummyHash []byte
}

func NewAuthService(users repository.UserRepository, secret string, ttl time.Duration, cost int, timeout time.Duration) (*AuthService, error) {
	dummy, err := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), cost)
	if err != nil {
		return nil, fmt.Errorf("auth: %w", err)
	}
	return &AuthService{
		users:     users,
		secret:    []byte(secret),
		ttl:       ttl,
		cost:      cost,
		timeout:   timeout,
		now:       time.Now,
		dummyHash: dummy,
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates an admin account. The first account may be created
// anonymously; once one exists an admin session is required.
func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest, actor *SessionClaims) (*models.User, error) {
	req.Email = normalizeEmail(req.Email)
	if req.Email == "" || req.Password == "" {
		return nil, invalid("email", "Email and password are required")
	}
	if err := validate.Struct(ctx, req); err != nil {
		return nil, fromValidate(err)
	}

	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	count, err := s.users.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		if actor == nil {
			return nil, ErrUnauthorized
		}
		if !actor.IsAdmin() {
			return nil, ErrForbidden
		}
	}

	if _, err := s.users.FindByEmail(ctx, req.Email); err == nil {
		return nil, &ConflictError{Message: "User with this email already exists"}
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("find user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	now := s.now().UTC()
	u := &models.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.Insert(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, &ConflictError{Message: "User with this email already exists"}
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	log.Info().Str(logger.FldEmail, u.Email).Msg("admin registered")
	return u, nil
}

// Login checks the credentials and issues a signed session token. Unknown
// email and wrong password both yield ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *SessionClaims, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return "", nil, ErrInvalidCredentials
	}

	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	u, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
		return "", nil, ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, fmt.Errorf("find user: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}
	return s.Issue(u)
}

// Issue signs a session token for u.
func (s *AuthService) Issue(u *models.User) (string, *SessionClaims, error) {
	now := s.now()
	claims := &SessionClaims{
		Email: u.Email,
		Role:  u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID.Hex(),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}
	return token, claims, nil
}

// ParseToken verifies an HS256 session token and returns its claims.
func (s *AuthService) ParseToken(token string) (*SessionClaims, error) {
	var claims SessionClaims
	parsed, err := jwt.ParseWithClaims(
		token,
		&claims,
		func(t *jwt.Token) (any, error) {
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !parsed.Valid {
		return nil, ErrUnauthorized
	}
	if claims.Subject == "" {
		return nil, ErrUnauthorized
	}
	return &claims, nil
}

func (s *AuthService) TTL() time.Duration {
	return s.ttl
}
