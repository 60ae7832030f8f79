package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/amirasaad/exchange/pkg/config"
	"github.com/amirasaad/exchange/pkg/domain/user"
	"github.com/amirasaad/exchange/pkg/dto"
	"github.com/amirasaad/exchange/pkg/repository"
	repouser "github.com/amirasaad/exchange/pkg/repository/user"
	"github.com/amirasaad/exchange/pkg/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrMissingSecret is returned when no JWT secret is configured. No user can
// authenticate in that state.
var ErrMissingSecret = errors.New("no jwt secret defined, users cannot authenticate")

// bcrypt hash compared against for unknown users so both paths cost the same.
const dummyHash = "$2a$10$7zFqzDbD3RrlkMTczbXG9OWZ0FLOXjIxXzSZ.QZxkVXjXcx7QZQiC"

// Token is an issued bearer token and the instant it stops being valid.
type Token struct {
	Token      string    `json:"token"`
	Expiration time.Time `json:"expiration"`
}

// CurrentUser is the identity carried by a validated token.
type CurrentUser struct {
	ID       uuid.UUID
	Username string
}

type Service struct {
	uow    repository.UnitOfWork
	cfg    *config.Jwt
	logger *slog.Logger
	now    func() time.Time
}

func New(
	uow repository.UnitOfWork,
	cfg *config.Jwt,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{uow: uow, cfg: cfg, logger: logger, now: time.Now}
}

// Authenticate checks the credentials and issues a token. The secret is
// checked before any user lookup.
func (s *Service) Authenticate(
	ctx context.Context,
	username, password string,
) (*Token, error) {
	log := s.logger.With("context", "Authenticate", "username", username)
	if s.cfg == nil || s.cfg.Secret == "" {
		log.Error("No JWT secret defined, users cannot authenticate")
		return nil, ErrMissingSecret
	}

	u, err := s.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}
	return s.GenerateToken(ctx, u)
}

// Login verifies username and password and returns the matching user.
func (s *Service) Login(
	ctx context.Context,
	username, password string,
) (u *dto.UserRead, err error) {
	log := s.logger.With("context", "Login", "username", username)
	log.Debug("Login called")
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Get[repouser.Repository](uow)
		if err != nil {
			return fmt.Errorf("failed to get user repository: %w", err)
		}
		u, err = repo.GetByUsername(ctx, username)
		if err != nil {
			return err
		}
		if u == nil {
			_ = utils.CheckPasswordHash(password, dummyHash)
			return user.ErrUserUnauthorized
		}
		if !utils.CheckPasswordHash(password, u.HashedPassword) {
			return user.ErrUserUnauthorized
		}
		return nil
	})
	if err != nil {
		log.Error("Login failed", "error", err)
		return nil, err
	}
	log.Info("Login successful", "userID", u.ID)
	return u, nil
}

// GenerateToken signs an HS256 token for u.
func (s *Service) GenerateToken(
	_ context.Context,
	u *dto.UserRead,
) (*Token, error) {
	if s.cfg == nil || s.cfg.Secret == "" {
		return nil, ErrMissingSecret
	}
	log := s.logger.With("userID", u.ID)
	expiration := s.now().Add(s.cfg.Expiry).UTC().Truncate(time.Second)

	token := jwt.New(jwt.SigningMethodHS256)
	claims := token.Claims.(jwt.MapClaims)
	claims["username"] = u.Username
	claims["user_id"] = u.ID.String()
	claims["jti"] = uuid.NewString()
	claims["exp"] = expiration.Unix()
	if s.cfg.Issuer != "" {
		claims["iss"] = s.cfg.Issuer
	}
	if s.cfg.Audience != "" {
		claims["aud"] = s.cfg.Audience
	}

	signed, err := token.SignedString([]byte(s.cfg.Secret))
	if err != nil {
		log.Error("GenerateToken failed", "error", err)
		return nil, err
	}
	log.Debug("GenerateToken successful", "expiration", expiration)
	return &Token{Token: signed, Expiration: expiration}, nil
}

// GetCurrentUser reads the identity claims from a validated token.
func (s *Service) GetCurrentUser(token *jwt.Token) (*CurrentUser, error) {
	if token == nil {
		return nil, user.ErrUserUnauthorized
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, user.ErrUserUnauthorized
	}
	username, _ := claims["username"].(string)
	rawID, _ := claims["user_id"].(string)
	id, err := uuid.Parse(rawID)
	if username == "" || err != nil {
		s.logger.Error("GetCurrentUser failed", "error", "missing identity claims")
		return nil, user.ErrUserUnauthorized
	}
	return &CurrentUser{ID: id, Username: username}, nil
}
