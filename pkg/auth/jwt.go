package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"taskhub/internal/core/apperr"
)

// TokenTTL is how long a minted token stays valid.
const TokenTTL = 30 * 24 * time.Hour

type JWT struct {
	Secret string
	TTL    time.Duration
}

func NewJWT(secret string) *JWT {
	return &JWT{Secret: secret, TTL: TokenTTL}
}

func (j *JWT) Create(userUUID string) (string, error) {
	now := time.Now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userUUID,
		"iat":     now.Unix(),
		"exp":     now.Add(j.TTL).Unix(),
	})

	return token.SignedString([]byte(j.Secret))
}

// Verify checks signature and expiry and returns the embedded user
// identifier. Expired tokens are reported distinctly from malformed or
// tampered ones.
func (j *JWT) Verify(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}

		return []byte(j.Secret), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", apperr.ExpiredToken()
		}

		return "", apperr.InvalidToken()
	}

	claims, ok := token.Claims.(jwt.MapClaims)

	if !ok || !token.Valid {
		return "", apperr.InvalidToken()
	}

	userUUID, ok := claims["user_id"].(string)

	if !ok || userUUID == "" {
		return "", apperr.InvalidToken()
	}

	return userUUID, nil
}
