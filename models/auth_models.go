package models

import "github.com/golang-jwt/jwt/v4"

// JwtClaims are the claims issued by the platform backend. The AI service
// only verifies them; it never issues tokens.
type JwtClaims struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}
