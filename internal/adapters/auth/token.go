package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"eventboard/internal/domain"
)

type jwtClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

type jwtSigner struct {
	secret []byte
}

// NewJWTSigner returns a combined TokenIssuer and TokenVerifier that signs
// and validates HS256 JWTs with the given secret. The token subject is the
// user ID.
func NewJWTSigner(secret string) *jwtSigner {
	return &jwtSigner{secret: []byte(secret)}
}

var _ domain.TokenIssuer = (*jwtSigner)(nil)
var _ domain.TokenVerifier = (*jwtSigner)(nil)

func (s *jwtSigner) Issue(userID, email string, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := jwtClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
		},
		Email: email,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

func (s *jwtSigner) Verify(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwtClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to parse token: %w", err)
	}
	claims, ok := token.Claims.(*jwtClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", fmt.Errorf("invalid token")
	}
	return claims.Subject, nil
}
