package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/ogulcan/lectica/internal/pkg/apperrors"
)

// JWTConfig defines JWT validation settings. Tokens are issued by the
// external identity service; this backend only validates them.
type JWTConfig struct {
	SecretKey   string
	TokenIssuer string
}

// JWTService validates bearer tokens
type JWTService struct {
	config JWTConfig
}

// NewJWTService creates a new JWT service
func NewJWTService(config JWTConfig) *JWTService {
	return &JWTService{config: config}
}

// Claims defines the token content this backend cares about
type Claims struct {
	SubjectID int64  `json:"subjectId"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

// ValidateToken parses and validates a signed token string
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperrors.ErrTokenInvalid
		}
		return []byte(s.config.SecretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.ErrTokenInvalid
	}

	if !token.Valid {
		return nil, apperrors.ErrTokenInvalid
	}
	if s.config.TokenIssuer != "" && claims.Issuer != s.config.TokenIssuer {
		return nil, apperrors.ErrTokenInvalid
	}

	return claims, nil
}

// ExtractBearerToken pulls the raw token out of an Authorization header value
func ExtractBearerToken(header string) (string, error) {
	if header == "" {
		return "", apperrors.ErrTokenInvalid
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", apperrors.ErrTokenInvalid
	}
	return strings.TrimSpace(parts[1]), nil
}

// MintToken signs a short-lived token. Intended for dev seeding and tests,
// production tokens come from the identity service.
func (s *JWTService) MintToken(subjectID int64, role string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		SubjectID: subjectID,
		Role:      role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    s.config.TokenIssuer,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.SecretKey))
}
