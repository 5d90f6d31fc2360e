// internals/features/users/auth/service/token_service.go
package service

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	userModel "surveyku_backend/internals/features/users/user/model"
)

var ErrInvalidToken = errors.New("invalid token")

// AccessClaims: sub = user id, level = users.user_level at issuance.
type AccessClaims struct {
	UserName string `json:"user_name"`
	Level    int    `json:"level"`
	jwt.RegisteredClaims
}

type TokenService struct {
	Secret []byte
	TTL    time.Duration
	Now    func() time.Time
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{Secret: []byte(secret), TTL: ttl, Now: time.Now}
}

// Issue signs an HS256 access token for u.
func (s *TokenService) Issue(u *userModel.UserModel) (string, time.Time, error) {
	if len(s.Secret) == 0 {
		return "", time.Time{}, errors.New("jwt secret is empty")
	}
	now := s.Now().UTC()
	exp := now.Add(s.TTL)
	claims := AccessClaims{
		UserName: u.UserName,
		Level:    u.UserLevel,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.Secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

// Parse verifies signature, algorithm and exp; it returns the claims and the subject id.
func (s *TokenService) Parse(raw string) (*AccessClaims, uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || len(s.Secret) == 0 {
		return nil, uuid.Nil, ErrInvalidToken
	}
	claims := &AccessClaims{}
	parser := jwt.Parser{ValidMethods: []string{jwt.SigningMethodHS256.Alg()}}
	tok, err := parser.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		return s.Secret, nil
	})
	if err != nil || !tok.Valid {
		return nil, uuid.Nil, ErrInvalidToken
	}
	if claims.ExpiresAt == nil {
		return nil, uuid.Nil, ErrInvalidToken
	}
	id, err := uuid.Parse(claims.Subject)
	if err != nil || id == uuid.Nil {
		return nil, uuid.Nil, ErrInvalidToken
	}
	return claims, id, nil
}
