package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "membrostotal"

var (
	secret []byte
	ttl    time.Duration
)

// Claims carried by every access token: the user id and the profile name
// used by the role middleware.
type Claims struct {
	UserID  uint   `json:"uid"`
	Profile string `json:"profile"`
	jwt.RegisteredClaims
}

// Init configures the signing secret and token lifetime. Must be called
// once at startup before any token is issued or parsed.
func Init(jwtSecret string, ttlMinutes int) {
	secret = []byte(jwtSecret)
	ttl = time.Duration(ttlMinutes) * time.Minute
}

// GenerateToken issues an HS256 token for the given user.
func GenerateToken(userID uint, profile string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:  userID,
		Profile: profile,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ParseToken validates signature, issuer and expiry.
func ParseToken(tokenStr string) (*Claims, error) {
	t, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	}, jwt.WithIssuer(issuer), jwt.WithLeeway(60*time.Second))

	if err != nil {
		return nil, err
	}
	if claims, ok := t.Claims.(*Claims); ok && t.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}
