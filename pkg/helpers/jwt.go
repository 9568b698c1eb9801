package helpers

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// JWTManager verifies access tokens issued by the identity provider.
// This service never mints tokens; it only checks the HS256 signature and
// extracts the uid/sid claims the auth middleware pairs with the Redis
// session record.
type JWTManager struct {
	AccessSecret []byte
}

var defaultManager *JWTManager

func NewJWTManager(accessSecret string) *JWTManager {
	m := &JWTManager{AccessSecret: []byte(accessSecret)}
	defaultManager = m
	return m
}

// DefaultJWT returns the last constructed JWTManager (used for auto-wiring routes)
func DefaultJWT() *JWTManager { return defaultManager }

type Claims struct {
	UserID    string `json:"uid"`
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

func (m *JWTManager) ParseAccessToken(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.AccessSecret, nil
	})
	if err != nil {
		return nil, err
	}
	if !tkn.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
