package utils

import (
	"errors"
	"time"

	"historicgems/config"

	"github.com/golang-jwt/jwt"
)

// TokenTTL matches the cookie lifetime: credentials are long-lived by design.
const TokenTTL = 365 * 24 * time.Hour

// GenerateJWT signs an identity assertion for the given email.
func GenerateJWT(email string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": email,
		"exp":   time.Now().Add(TokenTTL).Unix(),
	})
	return token.SignedString([]byte(config.AppConfig.Jwt.Secret))
}

// ParseJWT verifies signature and expiry and returns the embedded email.
// Pure function of (token, secret): no I/O, no shared state.
func ParseJWT(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(config.AppConfig.Jwt.Secret), nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid token claims")
	}

	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return "", errors.New("token carries no email")
	}
	return email, nil
}
