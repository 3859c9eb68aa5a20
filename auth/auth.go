// Package auth supplies the identity collaborator: login and signup
// resolve after a short simulated delay the way a remote backend would,
// and a small file store stands in for browser session storage. No
// credential checking happens here; any non-empty email and password
// are accepted.
package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"storefront/domain"
)

// DefaultDelay approximates the latency of a real identity backend.
const DefaultDelay = 500 * time.Millisecond

// Authenticator mints users for the requested role.
type Authenticator struct {
	delay time.Duration
}

// NewAuthenticator constructs an Authenticator with the given simulated
// delay. A non-positive delay resolves immediately, which tests rely on.
func NewAuthenticator(delay time.Duration) *Authenticator {
	return &Authenticator{delay: delay}
}

// Login validates the supplied fields and mints a user after the
// simulated delay. The display name is derived from the email local
// part. Nothing is mutated on failure.
func (a *Authenticator) Login(ctx context.Context, email, password string, role domain.Role) (domain.User, error) {
	if email == "" || password == "" {
		return domain.User{}, domain.NewCredentialsError("email and password are required")
	}
	if err := a.wait(ctx); err != nil {
		return domain.User{}, err
	}

	name := email
	if i := strings.Index(email, "@"); i > 0 {
		name = email[:i]
	}
	return domain.User{
		ID:    uuid.NewString(),
		Email: email,
		Name:  name,
		Role:  role,
	}, nil
}

// Signup registers a new identity after the simulated delay. All three
// fields are required.
func (a *Authenticator) Signup(ctx context.Context, name, email, password string, role domain.Role) (domain.User, error) {
	if name == "" || email == "" || password == "" {
		return domain.User{}, domain.NewCredentialsError("name, email and password are required")
	}
	if err := a.wait(ctx); err != nil {
		return domain.User{}, err
	}

	return domain.User{
		ID:    uuid.NewString(),
		Email: email,
		Name:  name,
		Role:  role,
	}, nil
}

func (a *Authenticator) wait(ctx context.Context) error {
	if a.delay <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(a.delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
