/**
* Name:         token.go
* Description:  JWT issuing and validation
* Workflow:     login -> Generate, bearer header / ws query -> Validate
 */

package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

const (
	issuer   = "stylelove-api"
	tokenTTL = 24 * time.Hour
)

var ErrInvalidToken = errors.New("invalid token")

// Claims carries the account identity; Subject is the user id.
type Claims struct {
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

func (c *Claims) UserID() string {
	return c.Subject
}

type Tokens struct {
	key []byte
	now func() time.Time
}

// NewTokens returns an HS256 issuer/validator. An empty secret is rejected so
// a misconfigured server never signs with a guessable key.
func NewTokens(secret string) (*Tokens, error) {
	if secret == "" {
		return nil, errors.New("NewTokens(): JWT secret is empty")
	}
	return &Tokens{key: []byte(secret), now: time.Now}, nil
}

func (t *Tokens) Generate(userID, email, name string) (string, error) {
	now := t.now()
	claims := &Claims{
		Email: email,
		Name:  name,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    issuer,
			Subject:   userID,
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.key)
}

func (t *Tokens) Validate(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return t.key, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.Subject == "" || claims.Issuer != issuer {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// IsExpired reports whether err came from an expired token.
func IsExpired(err error) bool {
	var ve *jwt.ValidationError
	return errors.As(err, &ve) && ve.Errors&jwt.ValidationErrorExpired != 0
}
