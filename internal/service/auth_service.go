package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const defaultTokenTTL = time.Hour

// Domain errors for device auth flows.
var (
	ErrAuthDisabled  = errors.New("device auth is disabled")
	ErrUnknownDevice = errors.New("unknown device")
	ErrInvalidKey    = errors.New("invalid device key")
	ErrInvalidToken  = errors.New("invalid token")
)

// AuthConfig holds device credentials. Devices maps a device id to the
// bcrypt hash of its key.
type AuthConfig struct {
	Enabled    bool
	SigningKey string
	TokenTTL   time.Duration
	Devices    map[string]string
}

// AuthService exchanges device keys for short-lived JWTs.
type AuthService struct {
	cfg AuthConfig
	now func() time.Time
}

func NewAuthService(cfg AuthConfig) *AuthService {
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = defaultTokenTTL
	}
	return &AuthService{cfg: cfg, now: time.Now}
}

// Enabled reports whether analysis endpoints require a bearer token.
func (s *AuthService) Enabled() bool {
	return s.cfg.Enabled
}

// Claims defines JWT claims; the subject is the device id.
type Claims struct {
	jwt.RegisteredClaims
}

// GenerateToken validates the device key and returns a signed JWT.
func (s *AuthService) GenerateToken(deviceID, key string) (string, error) {
	if !s.cfg.Enabled {
		return "", ErrAuthDisabled
	}
	deviceID = strings.TrimSpace(deviceID)
	hash, ok := s.cfg.Devices[deviceID]
	if !ok || deviceID == "" {
		return "", ErrUnknownDevice
	}
	if err := verifyKey(hash, key); err != nil {
		return "", ErrInvalidKey
	}
	return s.issueToken(deviceID)
}

// ParseToken verifies an HS256 token and returns the device id it was issued to.
func (s *AuthService) ParseToken(accessToken string) (string, error) {
	token, err := jwt.ParseWithClaims(accessToken, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.SigningKey), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}

func (s *AuthService) issueToken(deviceID string) (string, error) {
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   deviceID,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	})
	return token.SignedString([]byte(s.cfg.SigningKey))
}

// HashKey produces the bcrypt hash stored under auth.devices in config.
func HashKey(key string) (string, error) {
	if strings.TrimSpace(key) == "" {
		return "", errors.New("device key is empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash device key: %w", err)
	}
	return string(hash), nil
}

func verifyKey(hash, key string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(key))
}
