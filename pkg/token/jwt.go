package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"hotel-booking/internal/data/entity"
)

var ErrInvalidToken = errors.New("invalid or expired token")

type Claims struct {
	UserID string          `json:"userId"`
	Role   entity.UserRole `json:"role"`
	jwt.RegisteredClaims
}

// Identity converts verified claims into the caller identity.
func (c *Claims) Identity() (entity.Identity, error) {
	id, err := uuid.Parse(c.UserID)
	if err != nil {
		return entity.Identity{}, ErrInvalidToken
	}
	if !c.Role.Valid() {
		return entity.Identity{}, ErrInvalidToken
	}
	return entity.Identity{UserID: id, Role: c.Role}, nil
}

type Manager interface {
	Issue(userID uuid.UUID, role entity.UserRole) (string, time.Time, error)
	Parse(tokenString string) (*Claims, error)
}

type JWT struct {
	secret []byte
	expiry time.Duration
	now    func() time.Time
}

func NewJWT(secret string, expiry time.Duration) *JWT {
	if expiry <= 0 {
		expiry = time.Hour
	}
	return &JWT{
		secret: []byte(secret),
		expiry: expiry,
		now:    time.Now,
	}
}

func (j *JWT) Issue(userID uuid.UUID, role entity.UserRole) (string, time.Time, error) {
	now := j.now()
	expiresAt := now.Add(j.expiry)

	claims := Claims{
		UserID: userID.String(),
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}

	return signed, expiresAt, nil
}

func (j *JWT) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return j.secret, nil
	}, jwt.WithTimeFunc(j.now), jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
