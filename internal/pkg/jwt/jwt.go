package jwt

import (
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// Service verifies and issues operator tokens. Token lifecycle (login,
// refresh, revocation) is owned by the identity service in front of this one;
// here we only need enough to guard the back-office API.
type Service interface {
	GenerateOperatorToken(operatorID string, role string, ttl time.Duration) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	tokenAuth *jwtauth.JWTAuth
}

func NewJWTService(secretKey string) Service {
	return &JWTService{
		tokenAuth: jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) GenerateOperatorToken(operatorID string, role string, ttl time.Duration) (string, int64, error) {
	expiresAt := time.Now().Add(ttl).Unix()
	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"operator_id": operatorID,
		"role":        role,
		"type":        "access",
		"exp":         expiresAt,
	})
	return tokenString, expiresAt, err
}
