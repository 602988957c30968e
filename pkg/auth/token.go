package auth

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cinebase/cinebase-backend/pkg/config"
	"github.com/golang-jwt/jwt/v5"
)

// signingMethodFor resolves the configured algorithm name to an HMAC method.
func signingMethodFor(cfg config.JWTConfig) (*jwt.SigningMethodHMAC, error) {
	switch strings.ToUpper(strings.TrimSpace(cfg.Algorithm)) {
	case "", "HS256":
		return jwt.SigningMethodHS256, nil
	case "HS384":
		return jwt.SigningMethodHS384, nil
	case "HS512":
		return jwt.SigningMethodHS512, nil
	default:
		return nil, fmt.Errorf("unsupported signing algorithm %q", cfg.Algorithm)
	}
}

// MintAccessToken issues a signed JWT whose subject is the user id, expiring
// after the configured number of minutes.
func MintAccessToken(cfg config.JWTConfig, now time.Time, userID int64) (string, error) {
	if cfg.Secret == "" {
		return "", fmt.Errorf("jwt secret is required")
	}
	if cfg.ExpirationMinutes <= 0 {
		return "", fmt.Errorf("jwt expiration minutes must be positive")
	}

	method, err := signingMethodFor(cfg)
	if err != nil {
		return "", err
	}

	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(cfg.TTL())),
	}

	token := jwt.NewWithClaims(method, claims)
	signed, err := token.SignedString([]byte(cfg.Secret))
	if err != nil {
		return "", fmt.Errorf("signing jwt: %w", err)
	}
	return signed, nil
}

// ParseAccessToken validates the JWT string and returns the subject user id.
// Invalid signatures, expired tokens, and missing or unparsable subjects all
// fail the same way.
func ParseAccessToken(cfg config.JWTConfig, tokenString string) (int64, error) {
	if cfg.Secret == "" {
		return 0, fmt.Errorf("jwt secret is required")
	}

	method, err := signingMethodFor(cfg)
	if err != nil {
		return 0, err
	}

	claims := &jwt.RegisteredClaims{}
	_, err = jwt.ParseWithClaims(
		tokenString,
		claims,
		func(token *jwt.Token) (interface{}, error) {
			if token.Method != method {
				return nil, fmt.Errorf("unexpected signing method %s", token.Header["alg"])
			}
			return []byte(cfg.Secret), nil
		},
		jwt.WithValidMethods([]string{method.Alg()}),
	)
	if err != nil {
		return 0, err
	}

	subject := strings.TrimSpace(claims.Subject)
	if subject == "" {
		return 0, fmt.Errorf("token subject is missing")
	}
	userID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("token subject is not a user id: %w", err)
	}
	return userID, nil
}
