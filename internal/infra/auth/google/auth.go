// Package google verifies Google Sign-In ID tokens.
package google

import (
	"context"
	"log/slog"

	"printshop/config"
	"printshop/internal/domain/service"

	"github.com/pkg/errors"
	"google.golang.org/api/idtoken"
)

var validIssuers = map[string]bool{
	"https://accounts.google.com": true,
	"accounts.google.com":         true,
}

// ValidateFunc validates a token against an audience; idtoken.Validate in production.
type ValidateFunc func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)

type verifier struct {
	clientID string
	validate ValidateFunc
	logger   *slog.Logger
}

// NewIdentityVerifier creates a verifier bound to the configured OAuth client id.
func NewIdentityVerifier(cfg *config.Config, logger *slog.Logger) service.IdentityVerifier {
	clientID := ""
	if cfg.GoogleOAuth != nil {
		clientID = cfg.GoogleOAuth.ClientID
	}

	return newVerifier(clientID, idtoken.Validate, logger)
}

func newVerifier(clientID string, validate ValidateFunc, logger *slog.Logger) *verifier {
	return &verifier{clientID: clientID, validate: validate, logger: logger}
}

// VerifyIDToken checks signature, audience and issuer and extracts the identity.
func (v *verifier) VerifyIDToken(ctx context.Context, idToken string) (*service.FederatedIdentity, error) {
	if v.clientID == "" {
		return nil, errors.New("google client id is not configured")
	}

	payload, err := v.validate(ctx, idToken, v.clientID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid ID token")
	}

	if !validIssuers[payload.Issuer] {
		return nil, errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	identity := &service.FederatedIdentity{
		Subject:       payload.Subject,
		Email:         stringClaim(payload.Claims, "email"),
		Name:          stringClaim(payload.Claims, "name"),
		EmailVerified: boolClaim(payload.Claims, "email_verified"),
	}

	v.logger.DebugContext(ctx, "Google ID token verified", slog.String("subject", identity.Subject))

	return identity, nil
}

func stringClaim(claims map[string]any, key string) string {
	s, _ := claims[key].(string)

	return s
}

func boolClaim(claims map[string]any, key string) bool {
	switch v := claims[key].(type) {
	case bool:
		return v
	case string:
		return v == "true"
	default:
		return false
	}
}
