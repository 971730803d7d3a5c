package service

import (
	"context"
	"time"

	"admin-api/internal/config/env"
	"admin-api/internal/utils/errcode"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

type Claims struct {
	UUID string `json:"uuid"`
	jwt.RegisteredClaims
}

// JwtService verifies caller credentials. Token issuance lives with the
// external identity provider; GenerateAccessToken exists for seed tooling
// and tests only.
type JwtService struct {
	log    *logrus.Logger
	config *env.Config
	tracer trace.Tracer
}

func NewJwtService(log *logrus.Logger, config *env.Config) *JwtService {
	return &JwtService{log, config, otel.Tracer("JwtService")}
}

// GenerateAccessToken creates a short-lived JWT access token
func (j *JwtService) GenerateAccessToken(ctx context.Context, uuid string) (string, error) {
	_, span := j.tracer.Start(ctx, "GenerateAccessToken")
	defer span.End()

	claims := Claims{
		UUID: uuid,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(j.config.GetAccessTokenExpiration())),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.config.JWT.Secret))
}

// ValidateAccessToken verifies a JWT token and returns the claims if valid
func (j *JwtService) ValidateAccessToken(ctx context.Context, tokenString string) (*Claims, error) {
	spanCtx, span := j.tracer.Start(ctx, "ValidateAccessToken")
	defer span.End()

	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			j.log.WithContext(spanCtx).Error("Token method not match")
			return nil, errcode.ErrUnexpectedSignMethod
		}
		return []byte(j.config.JWT.Secret), nil
	})

	if err != nil {
		j.log.WithContext(spanCtx).WithError(err).Error("Failed to parse with claims")
		return nil, err
	}

	if !token.Valid {
		j.log.WithContext(spanCtx).Error("Token invalid")
		return nil, errcode.ErrInvalidToken
	}

	return claims, nil
}
