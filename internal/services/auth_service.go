package services

import (
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"dukatrack-backend/internal/models"
)

// AuthService issues and validates the JWT session tokens that replace the
// old string-sentinel session flags in the store.
type AuthService struct {
	jwtSecret     string
	jwtExpiration time.Duration
	// In-memory blacklist for revoked tokens
	blacklistedTokens map[string]time.Time
	blacklistMutex    sync.RWMutex
}

// NewAuthService creates a new auth service
func NewAuthService(jwtSecret string, jwtExpirationSeconds int) *AuthService {
	return &AuthService{
		jwtSecret:         jwtSecret,
		jwtExpiration:     time.Duration(jwtExpirationSeconds) * time.Second,
		blacklistedTokens: make(map[string]time.Time),
	}
}

// SessionClaims represents JWT token claims for owner and salesman sessions
type SessionClaims struct {
	SubjectID string `json:"subjectId"`
	Role      string `json:"role"`
	ShopID    string `json:"shopId,omitempty"`
	jwt.RegisteredClaims
}

// GenerateOwnerToken generates a session token for the shop owner
func (s *AuthService) GenerateOwnerToken(owner *models.Owner) (string, error) {
	return s.generateToken(owner.ID, models.RoleOwner, "")
}

// GenerateSalesmanToken generates a session token scoped to the salesman's shop
func (s *AuthService) GenerateSalesmanToken(salesman *models.Salesman) (string, error) {
	return s.generateToken(salesman.ID, models.RoleSalesman, salesman.ShopID)
}

func (s *AuthService) generateToken(subjectID, role, shopID string) (string, error) {
	now := time.Now()
	claims := &SessionClaims{
		SubjectID: subjectID,
		Role:      role,
		ShopID:    shopID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.jwtExpiration)),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "dukatrack",
			Subject:   subjectID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken validates a JWT token and returns the claims
func (s *AuthService) ValidateToken(tokenString string) (*SessionClaims, error) {
	if s.IsTokenBlacklisted(tokenString) {
		return nil, fmt.Errorf("token has been revoked")
	}

	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}
	return claims, nil
}

// BlacklistToken invalidates a token until its natural expiry (logout).
func (s *AuthService) BlacklistToken(tokenString string) {
	s.blacklistMutex.Lock()
	defer s.blacklistMutex.Unlock()

	s.blacklistedTokens[tokenString] = time.Now().Add(s.jwtExpiration)

	// Drop entries whose tokens have expired anyway
	now := time.Now()
	for token, expiry := range s.blacklistedTokens {
		if now.After(expiry) {
			delete(s.blacklistedTokens, token)
		}
	}
}

// IsTokenBlacklisted checks whether a token has been revoked
func (s *AuthService) IsTokenBlacklisted(tokenString string) bool {
	s.blacklistMutex.RLock()
	defer s.blacklistMutex.RUnlock()

	expiry, exists := s.blacklistedTokens[tokenString]
	if !exists {
		return false
	}
	return time.Now().Before(expiry)
}
