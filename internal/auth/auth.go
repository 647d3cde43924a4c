// Package auth implements registration, login and tokens.
//
// There are no passwords. Knowing the email address of a user is enough
// to log in as that user.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/badoux/checkmail"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/smart-budget/backend/internal/models"
	"github.com/smart-budget/backend/internal/repository"
)

// DefaultTTL is the lifetime of a token when none is configured.
const DefaultTTL = 7 * 24 * time.Hour

var ErrInvalidToken = errors.New("the token is invalid or expired")

// Session is a user together with a freshly issued token.
type Session struct {
	User  models.User `json:"user"`
	Token string      `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

// Claims is the content of a valid token.
type Claims struct {
	UserID uuid.UUID
	Expiry time.Time
}

type Service struct {
	repo   *repository.Repository
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewService returns a Service signing tokens with the secret. A ttl of
// zero or less uses DefaultTTL.
func NewService(repo *repository.Repository, secret []byte, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &Service{
		repo:   repo,
		secret: secret,
		ttl:    ttl,
		now:    time.Now,
	}
}

// Register creates a new user with the default categories and logs it in.
func (s *Service) Register(name, email, avatar string) (Session, error) {
	user := models.User{Name: name, Email: email, Avatar: avatar}
	user.Normalize()

	err := user.Validate()
	if err != nil {
		return Session{}, err
	}

	err = checkmail.ValidateFormat(user.Email)
	if err != nil {
		return Session{}, models.ValidationError{Field: "email", Message: "is not a valid email address"}
	}

	_, exists, err := s.repo.Users.FindByEmail(user.Email)
	if err != nil {
		return Session{}, err
	}

	if exists {
		return Session{}, models.ErrDuplicateEmail
	}

	user, err = s.repo.Users.Create(user)
	if err != nil {
		return Session{}, err
	}

	log.Info().Str("user", user.ID.String()).Msg("Registered")
	return s.session(user)
}

// Login issues a new token for the user with the email address.
func (s *Service) Login(email string) (Session, error) {
	user, ok, err := s.repo.Users.FindByEmail(email)
	if err != nil {
		return Session{}, err
	}

	if !ok {
		return Session{}, fmt.Errorf("%w: no user with this email address", models.ErrNotFound)
	}

	return s.session(user)
}

// Logout invalidates the current token of the user.
func (s *Service) Logout(userID uuid.UUID) error {
	return s.repo.Tokens.Remove(userID)
}

func (s *Service) session(user models.User) (Session, error) {
	token, err := s.IssueToken(user.ID)
	if err != nil {
		return Session{}, err
	}

	err = s.repo.Tokens.Save(user.ID, token)
	if err != nil {
		return Session{}, err
	}

	return Session{User: user, Token: token}, nil
}

// IssueToken returns a signed token for the user.
func (s *Service) IssueToken(userID uuid.UUID) (string, error) {
	now := s.now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return signed, nil
}

// ParseToken verifies the signature and expiry of the token and returns
// its claims. It does not check whether the token has been revoked.
func (s *Service) ParseToken(token string) (Claims, error) {
	var claims jwt.RegisteredClaims

	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		log.Debug().Err(err).Msg("Token")
		return Claims{}, ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return Claims{}, ErrInvalidToken
	}

	return Claims{UserID: userID, Expiry: claims.ExpiresAt.Time}, nil
}

// Authenticate returns the user for a token. The token must be valid and
// be the last token issued to the user.
func (s *Service) Authenticate(token string) (models.User, error) {
	claims, err := s.ParseToken(token)
	if err != nil {
		return models.User{}, err
	}

	stored, ok, err := s.repo.Tokens.Get(claims.UserID)
	if err != nil {
		return models.User{}, err
	}

	if !ok || stored != token {
		return models.User{}, ErrInvalidToken
	}

	user, ok, err := s.repo.Users.Find(claims.UserID)
	if err != nil {
		return models.User{}, err
	}

	if !ok {
		return models.User{}, ErrInvalidToken
	}

	return user, nil
}
