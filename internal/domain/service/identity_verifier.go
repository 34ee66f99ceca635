package service

import "context"

// FederatedIdentity is the verified subject of a Google ID token.
type FederatedIdentity struct {
	Subject       string
	Email         string
	Name          string
	EmailVerified bool
}

// IdentityVerifier verifies ID tokens issued by the federated identity provider.
type IdentityVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*FederatedIdentity, error)
}
