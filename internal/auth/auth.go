// Package auth issues and verifies the JWT access/refresh token pair and
// provides the HTTP middleware that guards protected routes.
package auth

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// RefreshCookieName is the cookie carrying the refresh token
const RefreshCookieName = "refreshToken"

type contextKey int

const claimsKey contextKey = 0

// Claims is the payload carried by both token types. Refresh tokens
// omit the role; it is re-read from storage on refresh.
type Claims struct {
	UserID string `json:"userId"`
	RoleID int    `json:"roleId,omitempty"`
	jwt.RegisteredClaims
}

// Manager signs and verifies tokens
type Manager struct {
	secret        []byte
	refreshSecret []byte
	expiry        time.Duration
	refreshExpiry time.Duration
	secureCookies bool
}

// New creates a token Manager
func New(secret, refreshSecret string, expiry, refreshExpiry time.Duration, secureCookies bool) *Manager {
	return &Manager{
		secret:        []byte(secret),
		refreshSecret: []byte(refreshSecret),
		expiry:        expiry,
		refreshExpiry: refreshExpiry,
		secureCookies: secureCookies,
	}
}

// GenerateAccessToken creates a short-lived token carrying the user ID and role
func (m *Manager) GenerateAccessToken(userID string, roleID int) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		RoleID: roleID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.expiry)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// GenerateRefreshToken creates a long-lived token carrying only the user ID
func (m *Manager) GenerateRefreshToken(userID string) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.refreshExpiry)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.refreshSecret)
}

// ParseAccessToken verifies an access token and returns its claims
func (m *Manager) ParseAccessToken(token string) (*Claims, error) {
	return m.parse(token, m.secret)
}

// ParseRefreshToken verifies a refresh token and returns its claims
func (m *Manager) ParseRefreshToken(token string) (*Claims, error) {
	return m.parse(token, m.refreshSecret)
}

func (m *Manager) parse(token string, key []byte) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	return claims, nil
}

// SetRefreshCookie sets the refresh token cookie on the response
func (m *Manager) SetRefreshCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     RefreshCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   m.secureCookies,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(m.refreshExpiry.Seconds()),
	})
}

// ClearRefreshCookie removes the refresh token cookie
func (m *Manager) ClearRefreshCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     RefreshCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   m.secureCookies,
		MaxAge:   -1,
	})
}

// RequireAuth verifies the Bearer access token and stores its claims on
// the request context. Returns 401 on missing or invalid tokens.
func (m *Manager) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			unauthorized(w, "Unauthorized - please log in")
			return
		}

		claims, err := m.ParseAccessToken(token)
		if err != nil {
			unauthorized(w, "Invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole allows the request through only when the authenticated
// user holds one of the given roles. Must run after RequireAuth.
func RequireRole(roleIDs ...int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFrom(r.Context())
			if !ok {
				unauthorized(w, "Unauthorized - please log in")
				return
			}
			for _, id := range roleIDs {
				if claims.RoleID == id {
					next.ServeHTTP(w, r)
					return
				}
			}
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte(`{"status":"error","code":"FORBIDDEN","message":"User does not have required authority"}`))
		})
	}
}

// ClaimsFrom extracts verified claims from a request context
func ClaimsFrom(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*Claims)
	return claims, ok
}

func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"status":"error","code":"UNAUTHORIZED","message":"` + msg + `"}`))
}

// HashPassword hashes a plaintext password with bcrypt
func HashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether the plaintext password matches the hash
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
