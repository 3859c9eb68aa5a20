// Package app wires the stores into one explicit application context.
// Everything is constructed once at startup and passed by reference;
// there is no package-level mutable state.
package app

import (
	"context"
	"time"

	"storefront/auth"
	"storefront/domain"
	"storefront/store"
)

// Config carries the startup settings for the application context.
type Config struct {
	// Seed loads the demo catalog and sample purchase history.
	Seed bool
	// LowStockThreshold overrides the default threshold when positive.
	LowStockThreshold int
	// SessionFile is where the signed-in user is persisted.
	SessionFile string
	// TaxRate is the checkout surcharge applied at display time only.
	TaxRate float64
	// LoginDelay simulates the latency of a real identity backend.
	LoginDelay time.Duration
}

// App bundles the stores and collaborators for the presentation layer.
// The stores never mutate each other; all cross-store effects run
// through App methods.
type App struct {
	Catalog  *store.Catalog
	Cart     *store.Cart
	Ledger   *store.Ledger
	Auth     *auth.Authenticator
	Sessions *auth.SessionStore
	TaxRate  float64
}

// New constructs the application context and, when configured, seeds it
// with the demo data. A persisted customer session binds the cart.
func New(cfg Config) (*App, error) {
	threshold := cfg.LowStockThreshold
	if threshold <= 0 {
		threshold = store.DefaultLowStockThreshold
	}

	a := &App{
		Catalog:  store.NewCatalogWithThreshold(threshold),
		Cart:     store.NewCart(),
		Auth:     auth.NewAuthenticator(cfg.LoginDelay),
		Sessions: auth.NewSessionStore(cfg.SessionFile),
		TaxRate:  cfg.TaxRate,
	}

	if cfg.Seed {
		ctx := context.Background()
		for _, p := range SeedProducts() {
			if err := a.Catalog.Create(ctx, p); err != nil {
				return nil, err
			}
		}
		a.Ledger = store.NewLedger(SeedPurchases()...)
	} else {
		a.Ledger = store.NewLedger()
	}

	if user, ok, err := a.Sessions.Load(); err == nil && ok && user.Role == domain.RoleCustomer {
		a.Cart.SetCustomer(user.ID)
	}

	return a, nil
}

// Checkout turns the current cart into exactly one ledger entry and
// then clears the cart. An empty cart fails and leaves both stores
// untouched; a ledger failure leaves the cart intact, so no partial
// completion is ever observable.
func (a *App) Checkout(ctx context.Context, user domain.User) (domain.Purchase, error) {
	items := a.Cart.Items()
	if len(items) == 0 {
		return domain.Purchase{}, domain.NewEmptyCartError(user.ID)
	}
	purchase, err := a.Ledger.Add(ctx, user.Email, user.ID, items)
	if err != nil {
		return domain.Purchase{}, err
	}
	a.Cart.Clear()
	return purchase, nil
}

// Login authenticates, persists the session and binds the cart when the
// signed-in user is a customer.
func (a *App) Login(ctx context.Context, email, password string, role domain.Role) (domain.User, error) {
	user, err := a.Auth.Login(ctx, email, password, role)
	if err != nil {
		return domain.User{}, err
	}
	if err := a.Sessions.Save(user); err != nil {
		return domain.User{}, err
	}
	if user.Role == domain.RoleCustomer {
		a.Cart.SetCustomer(user.ID)
	}
	return user, nil
}

// Signup registers a new identity; otherwise identical to Login.
func (a *App) Signup(ctx context.Context, name, email, password string, role domain.Role) (domain.User, error) {
	user, err := a.Auth.Signup(ctx, name, email, password, role)
	if err != nil {
		return domain.User{}, err
	}
	if err := a.Sessions.Save(user); err != nil {
		return domain.User{}, err
	}
	if user.Role == domain.RoleCustomer {
		a.Cart.SetCustomer(user.ID)
	}
	return user, nil
}

// Logout drops the persisted session and unbinds the cart.
func (a *App) Logout() error {
	if err := a.Sessions.Clear(); err != nil {
		return err
	}
	a.Cart.SetCustomer("")
	return nil
}
