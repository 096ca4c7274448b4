// Package auth handles registration, login and bearer-token checks.
package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/fitcoach-io/fitcoach/internal/models"
	"github.com/fitcoach-io/fitcoach/internal/store"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// UserStore is the slice of the store auth needs.
type UserStore interface {
	CreateUser(ctx context.Context, u *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

type Service struct {
	users  UserStore
	tokens *TokenManager
	now    func() time.Time
}

func NewService(users UserStore, tokens *TokenManager) *Service {
	return &Service{users: users, tokens: tokens, now: time.Now}
}

// Register creates the account and signs the user in.
func (s *Service) Register(ctx context.Context, reg Registration) (*models.User, string, error) {
	if err := reg.Validate(); err != nil {
		return nil, "", err
	}

	_, err := s.users.GetUserByEmail(ctx, reg.Email)
	switch {
	case err == nil:
		return nil, "", ErrEmailTaken
	case !errors.Is(err, models.ErrNotFound):
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	now := s.now()
	user := &models.User{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(reg.Name),
		Email:        strings.ToLower(strings.TrimSpace(reg.Email)),
		Phone:        reg.Phone,
		CPF:          reg.CPF,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			return nil, "", ErrEmailTaken
		}
		return nil, "", err
	}
	log.Infof("Registered user %s", user.ID)

	token, err := s.tokens.GenerateToken(user.ID, user.Email, now)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login checks the password and issues a fresh token.
func (s *Service) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(user.ID, user.Email, s.now())
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}
