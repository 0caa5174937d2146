package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/conferential/conferential/database"
)

// ErrInvalidToken is returned for any missing, malformed or expired credential.
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims are the token claims attached to authenticated requests. They carry
// everything the role predicates need so no database lookup happens in the
// middleware path.
type Claims struct {
	jwt.RegisteredClaims
	UserID    uint `json:"id"`
	IsAdmin   bool `json:"isAdmin"`
	IsSponsor bool `json:"isSponsor"`
}

// Authenticator issues and verifies signed access tokens.
type Authenticator struct {
	secret []byte
	ttl    time.Duration
}

// New creates an Authenticator signing tokens with the given secret.
func New(secret string, ttl time.Duration) *Authenticator {
	return &Authenticator{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// IssueToken signs a token for the given user.
func (a *Authenticator) IssueToken(user *database.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(a.ttl)),
		},
		UserID:    user.ID,
		IsAdmin:   user.IsAdmin,
		IsSponsor: user.IsSponsor,
	})
	return token.SignedString(a.secret)
}

// ParseToken verifies the signature and expiry of a token and returns its claims.
func (a *Authenticator) ParseToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return a.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, ErrInvalidToken
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
