package jwt

import (
	"context"
	"errors"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"

	"github.com/andeshr/hrms-backend-go/internal/domain/employee"
)

type Service interface {
	// GenerateAccessToken issues a short-lived token carrying the employee
	// identity and role used by the attendance and payroll endpoints.
	GenerateAccessToken(employeeID string, email string, role employee.Role) (token string, expiresAt int64, err error)
	GenerateRefreshToken(employeeID string) (token string, expiresAt int64, err error)
	// VerifyRefreshToken checks signature, expiry and the refresh type claim,
	// returning the employee the token was issued to.
	VerifyRefreshToken(tokenString string) (employeeID string, err error)
	JWTAuth() *jwtauth.JWTAuth
}

var (
	ErrInvalidToken  = errors.New("jwt: invalid token")
	ErrWrongTokenUse = errors.New("jwt: token is not a refresh token")
)

type JWTService struct {
	secretKey                  string
	accessTokenExpirationTime  string
	refreshTokenExpirationTime string
	tokenAuth                  *jwtauth.JWTAuth
}

func NewJWTService(secretKey string, accessTokenExpirationTime string, refreshTokenExpirationTime string) Service {
	return &JWTService{
		secretKey:                  secretKey,
		accessTokenExpirationTime:  accessTokenExpirationTime,
		refreshTokenExpirationTime: refreshTokenExpirationTime,
		tokenAuth:                  jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) GenerateAccessToken(employeeID string, email string, role employee.Role) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.accessTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()

	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"employee_id": employeeID,
		"email":       email,
		"role":        string(role),
		"type":        "access",
		"exp":         expiresAt,
	})
	return tokenString, expiresAt, err
}

func (j *JWTService) VerifyRefreshToken(tokenString string) (string, error) {
	token, err := j.tokenAuth.Decode(tokenString)
	if err != nil {
		return "", ErrInvalidToken
	}
	if err := jwt.Validate(token, jwt.WithAcceptableSkew(30*time.Second)); err != nil {
		return "", ErrInvalidToken
	}

	claims, err := token.AsMap(context.Background())
	if err != nil {
		return "", ErrInvalidToken
	}
	if tokenType, _ := claims["type"].(string); tokenType != "refresh" {
		return "", ErrWrongTokenUse
	}
	employeeID, _ := claims["employee_id"].(string)
	if employeeID == "" {
		return "", ErrInvalidToken
	}
	return employeeID, nil
}

func (j *JWTService) GenerateRefreshToken(employeeID string) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.refreshTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()

	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"employee_id": employeeID,
		"type":        "refresh",
		"exp":         expiresAt,
	})
	return tokenString, expiresAt, err
}
