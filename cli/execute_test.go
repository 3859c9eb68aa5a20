package cli

import (
	"context"
	"path/filepath"
	"testing"

	"storefront/domain"
)

func TestExecuteWrapper(t *testing.T) {
	// leave shop nil so PersistentPreRunE builds the app from flags
	defer resetCLI()
	shop = nil

	session := filepath.Join(t.TempDir(), "session.json")
	rootCmd.PersistentFlags().Set("session-file", session)
	rootCmd.PersistentFlags().Set("login-delay", "0")
	rootCmd.SetArgs([]string{
		"--session-file", session,
		"--login-delay", "0",
		"list",
	})
	if err := Execute(); err != nil {
		t.Fatalf("Execute wrapper failed: %v", err)
	}
	if shop == nil {
		t.Fatalf("expected the app to be constructed")
	}
	products, err := shop.Catalog.List(context.Background(), domain.ListFilter{})
	if err != nil || len(products) == 0 {
		t.Fatalf("expected the seeded catalog, got %d products (%v)", len(products), err)
	}
}
