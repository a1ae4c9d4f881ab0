// Package token verifies bearer credentials issued by the identity provider.
package token

import "context"

//go:generate mockgen -destination=mocks/mock_verifier.go -package=mocks teamsync/pkg/token Verifier

// Identity is the verified content of a credential. Subject is the identity
// provider's stable identifier for the principal; Email and Name come from
// the provider's profile claims.
type Identity struct {
	Subject string
	Email   string
	Name    string
}

// Verifier checks a raw bearer credential and returns the identity it proves.
type Verifier interface {
	// Verify validates the credential's signature and expiry.
	Verify(ctx context.Context, credential string) (*Identity, error)
}
