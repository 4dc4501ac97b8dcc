package auth

import (
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
)

// sessionClaims carries the Session inside a signed token.
type sessionClaims struct {
	Name  string `json:"name"`
	Admin bool   `json:"admin"`
	jwt.StandardClaims
}

// TokenIssuer signs and parses session tokens.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}
}

func (t *TokenIssuer) Issue(s *Session) (string, error) {
	claims := &sessionClaims{
		Name:  s.Name,
		Admin: s.Admin,
		StandardClaims: jwt.StandardClaims{
			Subject:   s.Email,
			ExpiresAt: time.Now().Add(t.ttl).Unix(),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

func (t *TokenIssuer) Parse(tokenString string) (*Session, error) {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(tok *jwt.Token) (interface{}, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", tok.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid session token")
	}
	return &Session{Name: claims.Name, Email: claims.Subject, Admin: claims.Admin}, nil
}
