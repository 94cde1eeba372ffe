package middleware

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	apierrors "github.com/sorel-labs/sorel/internal/api/shared/errors"
	"github.com/sorel-labs/sorel/internal/logger"
)

type contextKey string

const (
	AUTH_TYPE_KEY    contextKey = "auth_type"
	AUTH_SUBJECT_KEY contextKey = "auth_subject"
	JWT_CLAIMS_KEY   contextKey = "jwt_claims"

	AUTH_TYPE_JWT    = "jwt"
	AUTH_TYPE_APIKEY = "apikey"
)

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTPublicKey string // RSA public key in PEM format
	APIKeys      []string
}

// Enabled reports whether any credential is configured
func (c AuthConfig) Enabled() bool {
	if c.JWTPublicKey != "" {
		return true
	}
	for _, key := range c.APIKeys {
		if key != "" {
			return true
		}
	}
	return false
}

// AuthResult holds the result of authentication
type AuthResult struct {
	AuthType    string
	Claims      *jwt.RegisteredClaims
	AuthSubject string
}

// Authenticator validates Authorization headers against a parsed AuthConfig
type Authenticator struct {
	publicKey *rsa.PublicKey
	apiKeys   map[string]struct{}
}

// NewAuthenticator parses the configured public key once so requests only verify signatures
func NewAuthenticator(cfg AuthConfig) (*Authenticator, error) {
	a := &Authenticator{apiKeys: make(map[string]struct{})}
	for _, key := range cfg.APIKeys {
		if key != "" {
			a.apiKeys[key] = struct{}{}
		}
	}

	if cfg.JWTPublicKey != "" {
		publicKey, err := parseRSAPublicKey(cfg.JWTPublicKey)
		if err != nil {
			return nil, fmt.Errorf("failed to parse RSA public key: %w", err)
		}
		a.publicKey = publicKey
	}

	return a, nil
}

// Authenticate validates the Authorization header, either "Bearer <jwt>" or "ApiKey <key>"
func (a *Authenticator) Authenticate(authHeader string) (*AuthResult, error) {
	if authHeader == "" {
		return nil, errors.New("missing Authorization header")
	}

	authType, credentials, ok := strings.Cut(authHeader, " ")
	if !ok || credentials == "" {
		return nil, errors.New("invalid Authorization header format")
	}

	switch strings.ToLower(authType) {
	case "bearer":
		claims, err := a.validateJWT(credentials)
		if err != nil {
			return nil, err
		}
		return &AuthResult{AuthType: AUTH_TYPE_JWT, Claims: claims, AuthSubject: claims.Subject}, nil

	case "apikey":
		if len(a.apiKeys) == 0 {
			return nil, errors.New("no API keys configured")
		}
		if _, ok := a.apiKeys[credentials]; !ok {
			return nil, errors.New("invalid API key")
		}
		return &AuthResult{AuthType: AUTH_TYPE_APIKEY}, nil

	default:
		return nil, fmt.Errorf("unsupported authorization type: %s", authType)
	}
}

// validateJWT verifies an RS256/384/512 signed token, expiry and not-before included
func (a *Authenticator) validateJWT(tokenString string) (*jwt.RegisteredClaims, error) {
	if a.publicKey == nil {
		return nil, errors.New("JWT public key not configured")
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return a.publicKey, nil
	}, jwt.WithValidMethods([]string{"RS256", "RS384", "RS512"}))
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

// Auth returns a gin middleware for authentication.
// With no credentials configured the routes it guards stay open.
func Auth(cfg AuthConfig) (gin.HandlerFunc, error) {
	if !cfg.Enabled() {
		return func(c *gin.Context) { c.Next() }, nil
	}

	authenticator, err := NewAuthenticator(cfg)
	if err != nil {
		return nil, err
	}

	return func(c *gin.Context) {
		result, err := authenticator.Authenticate(c.GetHeader("Authorization"))
		if err != nil {
			logger.WarnCtx(c.Request.Context(), "Authentication failed",
				zap.Error(err),
				zap.String("path", c.Request.URL.Path),
				zap.String("client_ip", c.ClientIP()),
			)
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierrors.NewUnauthorizedError("Authentication failed", err.Error()))
			return
		}

		c.Set(string(AUTH_TYPE_KEY), result.AuthType)
		if result.Claims != nil {
			c.Set(string(JWT_CLAIMS_KEY), result.Claims)
		}
		if result.AuthSubject != "" {
			c.Set(string(AUTH_SUBJECT_KEY), result.AuthSubject)
		}

		logger.DebugCtx(c.Request.Context(), "Authentication successful",
			zap.String("auth_type", result.AuthType),
			zap.String("path", c.Request.URL.Path),
		)

		c.Next()
	}, nil
}

// parseRSAPublicKey parses an RSA public key in PKIX or PKCS1 PEM format
func parseRSAPublicKey(publicKeyPEM string) (*rsa.PublicKey, error) {
	block, _ := pem.Decode([]byte(publicKeyPEM))
	if block == nil {
		return nil, errors.New("failed to parse PEM block containing public key")
	}

	pub, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return x509.ParsePKCS1PublicKey(block.Bytes)
	}

	rsaKey, ok := pub.(*rsa.PublicKey)
	if !ok {
		return nil, errors.New("public key is not an RSA key")
	}

	return rsaKey, nil
}
