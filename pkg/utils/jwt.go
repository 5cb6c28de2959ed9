package utils

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// jwtKey reads the secret at use time, not package init, so a secret loaded
// from .env after startup is picked up instead of silently signing with an
// empty key.
func jwtKey() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

// TokenGrants are the boolean claims baked into a session token. They are a
// snapshot: claim changes are invisible to the holder until re-login, which is
// why every claim mutation revokes outstanding sessions.
type TokenGrants struct {
	Admin        bool `json:"admin,omitempty"`
	Nutritionist bool `json:"nutritionist,omitempty"`
	Approved     bool `json:"approved,omitempty"`
	Rejected     bool `json:"rejected,omitempty"`
}

type Claims struct {
	UserID string      `json:"user_id"`
	Role   string      `json:"role"`
	Grants TokenGrants `json:"grants"`
	jwt.RegisteredClaims
}

func CreateToken(userId uuid.UUID, role string, grants TokenGrants) (string, error) {
	claims := &Claims{
		UserID: userId.String(),
		Role:   role,
		Grants: grants,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute * 60)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey())
}

// ValidateToken distinguishes an expired token from a garbled one so the
// caller can prompt re-login rather than re-auth.
func ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return jwtKey(), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
