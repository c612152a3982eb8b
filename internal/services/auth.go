package services

import (
	"strconv"
	"strings"
	"time"

	"vendlink/internal/apperr"
	"vendlink/internal/models"
	"vendlink/internal/repository"
	"vendlink/internal/utils"

	"github.com/golang-jwt/jwt/v5"
)

// AuthService owns registration, login and token verification. Tokens are
// stateless HS256 JWTs carrying the user id and expiry; validity is purely
// signature + expiry, so logout stays client-side.
type AuthService struct {
	users  repository.UserRepository
	secret []byte
	ttl    time.Duration
}

func NewAuthService(users repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		users:  users,
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Register creates a new unapproved, non-admin account. When no username is
// given it falls back to the email local part.
func (s *AuthService) Register(email, username, password string) (*models.User, error) {
	if username == "" {
		username = strings.Split(email, "@")[0]
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:    email,
		Username: username,
		Password: hash,
	}
	if err := s.users.Create(user); err != nil {
		if err == repository.ErrDuplicate {
			return nil, apperr.Conflict("user with email %s already exists", email)
		}
		return nil, err
	}
	return user, nil
}

// Login checks the credentials and issues a signed token. A missing user and
// a wrong password produce the same error.
func (s *AuthService) Login(email, password string) (string, error) {
	user, err := s.users.GetByEmail(email)
	if err != nil {
		if err == repository.ErrNotFound {
			return "", apperr.Unauthenticated("invalid credentials")
		}
		return "", err
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return "", apperr.Unauthenticated("invalid credentials")
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(uint64(user.ID), 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// VerifyToken resolves a bearer token to the current user row. Decode,
// signature and expiry failures all map to the same unauthenticated error,
// as does a subject that no longer exists.
func (s *AuthService) VerifyToken(tokenString string) (*models.User, error) {
	var claims jwt.RegisteredClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !token.Valid {
		return nil, apperr.Unauthenticated("could not validate credentials")
	}

	id, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return nil, apperr.Unauthenticated("could not validate credentials")
	}

	user, err := s.users.GetByID(uint(id))
	if err != nil {
		if err == repository.ErrNotFound {
			return nil, apperr.Unauthenticated("could not validate credentials")
		}
		return nil, err
	}
	return user, nil
}
