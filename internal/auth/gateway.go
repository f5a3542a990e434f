// Package auth supplies bearer tokens to the sync engine.
//
// The engine never performs the OAuth dance itself; a companion sign-in
// flow maintains a token file and this package only reads it. Absence of a
// usable token is an expected state, reported as a boolean rather than an
// error, so background operations can no-op quietly.
package auth

import (
	"context"
	"encoding/json"
	"os"
	"strings"
	"time"

	"github.com/MKhiriev/brain-sync/internal/config"
	"github.com/MKhiriev/brain-sync/internal/logger"
	"github.com/golang-jwt/jwt/v5"
)

//go:generate mockgen -source=gateway.go -destination=../mock/auth_mock.go -package=mock

// TokenGateway yields access tokens for remote API calls.
type TokenGateway interface {
	// AccessToken returns a currently valid bearer token, or ("", false)
	// when none is available. It never returns an error: missing auth is
	// a normal state for background sync.
	AccessToken(ctx context.Context) (string, bool)

	// SignInInteractive triggers an interactive sign-in where the host
	// supports one and reports whether it succeeded.
	SignInInteractive(ctx context.Context) bool
}

// expirySkew is subtracted from the token expiry so a token about to lapse
// mid-operation is treated as already expired.
const expirySkew = 30 * time.Second

type storedToken struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at,omitzero"`
}

type fileTokenGateway struct {
	path   string
	now    func() time.Time
	logger *logger.Logger
}

// NewFileTokenGateway returns a [TokenGateway] backed by the JSON token
// file written by the companion sign-in flow.
func NewFileTokenGateway(cfg config.Auth, log *logger.Logger) TokenGateway {
	return &fileTokenGateway{
		path:   cfg.TokenFile,
		now:    time.Now,
		logger: log,
	}
}

// AccessToken implements [TokenGateway]. Every failure path (missing file,
// malformed JSON, expired token) degrades to ("", false).
func (g *fileTokenGateway) AccessToken(_ context.Context) (string, bool) {
	if g.path == "" {
		return "", false
	}

	raw, err := os.ReadFile(g.path)
	if err != nil {
		g.logger.Debug().Err(err).Str("path", g.path).Msg("token file not readable")
		return "", false
	}

	var tok storedToken
	if err := json.Unmarshal(raw, &tok); err != nil {
		g.logger.Warn().Err(err).Str("path", g.path).Msg("token file is not valid JSON")
		return "", false
	}

	tok.AccessToken = strings.TrimSpace(tok.AccessToken)
	if tok.AccessToken == "" {
		return "", false
	}

	expiry := tok.ExpiresAt
	if expiry.IsZero() {
		expiry = jwtExpiry(tok.AccessToken)
	}
	if !expiry.IsZero() && !g.now().Add(expirySkew).Before(expiry) {
		g.logger.Debug().Time("expires_at", expiry).Msg("stored token expired")
		return "", false
	}

	return tok.AccessToken, true
}

// SignInInteractive implements [TokenGateway]. The daemon has no browser to
// drive; sign-in belongs to the companion flow that owns the token file.
func (g *fileTokenGateway) SignInInteractive(_ context.Context) bool {
	g.logger.Info().Msg("interactive sign-in requested; run the companion sign-in flow to refresh the token file")
	return false
}

// jwtExpiry recovers the expiry of a JWT access token from its unverified
// "exp" claim. Opaque (non-JWT) tokens yield a zero time, which callers
// treat as "no known expiry".
func jwtExpiry(token string) time.Time {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}
	}

	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}

	return exp.Time
}
