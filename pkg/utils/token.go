package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// OperatorClaims is the payload of an operator bearer token. The token id
// (jti) is the session token, so a token dies with its session.
type OperatorClaims struct {
	Role  string `json:"role"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

func IssueOperatorToken(secret string, operatorID, sessionToken uuid.UUID, role, email string, expiresAt time.Time) (string, error) {
	claims := OperatorClaims{
		Role:  role,
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   operatorID.String(),
			ID:        sessionToken.String(),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("sign operator token: %w", err)
	}

	return signed, nil
}

func ParseOperatorToken(secret, tokenString string) (*OperatorClaims, error) {
	claims := &OperatorClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("parse operator token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid operator token")
	}

	return claims, nil
}

// OperatorIDs extracts the operator id and session token from verified claims
func (c *OperatorClaims) OperatorIDs() (operatorID, sessionToken uuid.UUID, err error) {
	operatorID, err = uuid.Parse(c.Subject)
	if err != nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("invalid token subject: %w", err)
	}

	sessionToken, err = uuid.Parse(c.ID)
	if err != nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("invalid token id: %w", err)
	}

	return operatorID, sessionToken, nil
}
