// Package identity resolves bearer credentials into application users.
package identity

import (
	"context"
	"log"
	"strings"
	"time"

	apperrors "teamsync/internal/errors"
	"teamsync/internal/models"
	"teamsync/internal/repository"
	"teamsync/pkg/token"
)

// defaultSyncTimeout bounds the detached profile sync write.
const defaultSyncTimeout = 5 * time.Second

// Resolver turns verified credentials into users, provisioning unknown
// principals on first contact.
type Resolver struct {
	verifier    token.Verifier
	users       repository.UserRepository
	syncTimeout time.Duration
}

// NewResolver creates a new Resolver.
func NewResolver(verifier token.Verifier, users repository.UserRepository) *Resolver {
	return &Resolver{
		verifier:    verifier,
		users:       users,
		syncTimeout: defaultSyncTimeout,
	}
}

// Resolve verifies a credential and returns the matching user, creating one
// if the principal has never been seen. Resolution is idempotent: repeated
// calls with credentials for the same subject yield the same user.
func (r *Resolver) Resolve(ctx context.Context, credential string) (*models.User, error) {
	if credential == "" {
		return nil, apperrors.ErrMissingCredential
	}

	identity, err := r.verifier.Verify(ctx, credential)
	if err != nil {
		return nil, apperrors.ErrInvalidCredential
	}

	user, err := r.users.FindBySubject(ctx, identity.Subject)
	if err == nil {
		r.syncName(user, identity)
		return user, nil
	}
	if err != apperrors.ErrUserNotFound {
		return nil, err
	}

	// The subject is new, but the email may predate provider login
	// (for example an invited user who has never signed in). Link the
	// subject to the existing account instead of creating a duplicate.
	email := strings.ToLower(identity.Email)
	user, err = r.users.FindByEmail(ctx, email)
	if err == nil {
		if linkErr := r.users.LinkSubject(ctx, user.ID, identity.Subject); linkErr != nil {
			return nil, linkErr
		}
		user.SubjectID = identity.Subject
		r.syncName(user, identity)
		return user, nil
	}
	if err != apperrors.ErrUserNotFound {
		return nil, err
	}

	user = &models.User{
		SubjectID: identity.Subject,
		Email:     email,
		Name:      displayName(identity),
		Role:      models.RoleMember,
	}
	if err := r.users.Create(ctx, user); err != nil {
		// A concurrent first request may have provisioned the same
		// principal; fall back to reading their row.
		if err == apperrors.ErrUserAlreadyExists {
			return r.users.FindBySubject(ctx, identity.Subject)
		}
		return nil, err
	}

	return user, nil
}

// Identify verifies a credential and returns the existing user without
// provisioning. Used by the realtime gateway, where an unknown principal is
// a protocol error rather than a signup.
func (r *Resolver) Identify(ctx context.Context, credential string) (*models.User, error) {
	if credential == "" {
		return nil, apperrors.ErrMissingCredential
	}

	identity, err := r.verifier.Verify(ctx, credential)
	if err != nil {
		return nil, apperrors.ErrInvalidCredential
	}

	return r.users.FindBySubject(ctx, identity.Subject)
}

// syncName writes provider name drift back to the user record off the
// request path. Failures are logged, never surfaced.
func (r *Resolver) syncName(user *models.User, identity *token.Identity) {
	if identity.Name == "" || identity.Name == user.Name {
		return
	}

	user.Name = identity.Name

	id := user.ID
	name := identity.Name
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), r.syncTimeout)
		defer cancel()

		if err := r.users.UpdateName(ctx, id, name); err != nil {
			log.Printf("Failed to sync name for user %s: %v", id.Hex(), err)
		}
	}()
}

// displayName picks a name for a new user, falling back to the email local
// part when the provider sends none.
func displayName(identity *token.Identity) string {
	if identity.Name != "" {
		return identity.Name
	}
	local, _, found := strings.Cut(identity.Email, "@")
	if found && local != "" {
		return local
	}
	return identity.Email
}
