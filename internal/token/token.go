package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const TTL = time.Hour

// Service signs and verifies the bearer tokens issued by login. All session
// state lives inside the token itself.
type Service struct {
	Secret []byte
}

func (s *Service) Sign(userID string) (string, error) {
	exp := time.Now().Add(TTL)
	claims := jwt.MapClaims{
		"sub": userID,
		"exp": exp.Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.Secret)
}

// Verify checks signature and expiry and returns the embedded user id.
func (s *Service) Verify(rawToken string) (string, error) {
	t, err := jwt.Parse(rawToken, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signature method: %v", t.Header["alg"])
		}
		return s.Secret, nil
	})
	if err != nil || !t.Valid {
		return "", fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := t.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("cannot parse claims")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", fmt.Errorf("token missing sub claim")
	}

	return sub, nil
}
