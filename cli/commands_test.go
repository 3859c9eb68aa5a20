package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"storefront/app"
	"storefront/domain"
)

// capture stdout during cobra execution
func captureOutput(f func() error) (string, error) {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	err := f()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	return buf.String(), err
}

// reset cobra + injected state between tests
func resetCLI() {
	rootCmd.SetArgs(nil)
	resetFlags(rootCmd)
	shop = nil
}

// restore any flags changed during a test to their default values
func resetFlags(c *cobra.Command) {
	c.Flags().Visit(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func injectApp(t *testing.T, seed bool) *app.App {
	t.Helper()
	a, err := app.New(app.Config{
		Seed:        seed,
		SessionFile: filepath.Join(t.TempDir(), "session.json"),
		TaxRate:     0.10,
	})
	if err != nil {
		t.Fatalf("app setup failed: %v", err)
	}
	shop = a
	return a
}

func loginAsCustomer(t *testing.T, a *app.App) domain.User {
	t.Helper()
	user := domain.User{ID: "c100", Email: "buyer@example.com", Name: "buyer", Role: domain.RoleCustomer}
	if err := a.Sessions.Save(user); err != nil {
		t.Fatalf("session setup failed: %v", err)
	}
	a.Cart.SetCustomer(user.ID)
	return user
}

func TestCreateGetListUpdateDelete(t *testing.T) {
	defer resetCLI()
	injectApp(t, false)

	// CREATE
	out, err := captureOutput(func() error {
		rootCmd.SetArgs([]string{
			"create",
			"--name", "TestProd",
			"--price", "5.5",
			"--quantity", "2",
		})
		return rootCmd.Execute()
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	var created domain.Product
	if err := json.Unmarshal([]byte(out), &created); err != nil {
		t.Fatalf("invalid create output: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected a generated id")
	}

	// GET
	out, err = captureOutput(func() error {
		rootCmd.SetArgs([]string{"get", created.ID})
		return rootCmd.Execute()
	})
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}

	// LIST
	out, err = captureOutput(func() error {
		rootCmd.SetArgs([]string{"list"})
		return rootCmd.Execute()
	})
	if err != nil || out == "" {
		t.Fatalf("list failed")
	}

	// UPDATE
	out, err = captureOutput(func() error {
		rootCmd.SetArgs([]string{
			"update", created.ID,
			"--price", "7.75",
		})
		return rootCmd.Execute()
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	var updated domain.Product
	_ = json.Unmarshal([]byte(out), &updated)
	if updated.Price != 7.75 {
		t.Fatalf("price not updated")
	}
	if updated.Name != "TestProd" {
		t.Fatalf("unset fields must be preserved")
	}

	// DELETE
	_, err = captureOutput(func() error {
		rootCmd.SetArgs([]string{"delete", "--force", created.ID})
		return rootCmd.Execute()
	})
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	_, err = shop.Catalog.Get(context.Background(), created.ID)
	if err == nil {
		t.Fatalf("expected product to be deleted")
	}
}

func TestCartAndCheckoutFlow(t *testing.T) {
	defer resetCLI()
	a := injectApp(t, true)
	loginAsCustomer(t, a)

	// add twice to exercise the merge
	_, err := captureOutput(func() error {
		rootCmd.SetArgs([]string{"cart", "add", "P001", "--quantity", "2"})
		return rootCmd.Execute()
	})
	if err != nil {
		t.Fatalf("cart add failed: %v", err)
	}
	_, err = captureOutput(func() error {
		rootCmd.SetArgs([]string{"cart", "add", "P001", "--quantity", "3"})
		return rootCmd.Execute()
	})
	if err != nil {
		t.Fatalf("second cart add failed: %v", err)
	}

	if a.Cart.Len() != 1 || a.Cart.Items()[0].Quantity != 5 {
		t.Fatalf("expected merged cart item with quantity 5, got %+v", a.Cart.Items())
	}

	out, err := captureOutput(func() error {
		rootCmd.SetArgs([]string{"cart", "show"})
		return rootCmd.Execute()
	})
	if err != nil || out == "" {
		t.Fatalf("cart show failed: %v", err)
	}

	before := a.Ledger.Len()
	out, err = captureOutput(func() error {
		rootCmd.SetArgs([]string{"checkout"})
		return rootCmd.Execute()
	})
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	var purchase domain.Purchase
	if err := json.Unmarshal([]byte(out), &purchase); err != nil {
		t.Fatalf("invalid checkout output: %v", err)
	}
	if purchase.CustomerID != "c100" {
		t.Fatalf("unexpected purchaser: %+v", purchase)
	}
	if a.Ledger.Len() != before+1 {
		t.Fatalf("expected one new ledger entry")
	}
	if a.Cart.Len() != 0 {
		t.Fatalf("cart must clear after checkout")
	}
}

func TestCheckoutWritesReceipt(t *testing.T) {
	defer resetCLI()
	a := injectApp(t, true)
	loginAsCustomer(t, a)

	_, err := captureOutput(func() error {
		rootCmd.SetArgs([]string{"cart", "add", "P003", "--quantity", "1"})
		return rootCmd.Execute()
	})
	if err != nil {
		t.Fatalf("cart add failed: %v", err)
	}

	receipt := filepath.Join(t.TempDir(), "receipt.pdf")
	_, err = captureOutput(func() error {
		rootCmd.SetArgs([]string{"checkout", "--receipt", receipt})
		return rootCmd.Execute()
	})
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	b, err := os.ReadFile(receipt)
	if err != nil {
		t.Fatalf("receipt not written: %v", err)
	}
	if !bytes.HasPrefix(b, []byte("%PDF")) {
		t.Fatalf("receipt is not a PDF")
	}
}

func TestPurchasesAndSuggest(t *testing.T) {
	defer resetCLI()
	a := injectApp(t, true)
	loginAsCustomer(t, a)

	out, err := captureOutput(func() error {
		rootCmd.SetArgs([]string{"purchases", "--customer", "c001"})
		return rootCmd.Execute()
	})
	if err != nil {
		t.Fatalf("purchases failed: %v", err)
	}
	var purchases []domain.Purchase
	if err := json.Unmarshal([]byte(out), &purchases); err != nil {
		t.Fatalf("invalid purchases output: %v", err)
	}
	if len(purchases) != 2 {
		t.Fatalf("expected 2 purchases for c001, got %d", len(purchases))
	}

	// fresh customer, no history: suggestions fall back to stocked products
	out, err = captureOutput(func() error {
		rootCmd.SetArgs([]string{"suggest"})
		return rootCmd.Execute()
	})
	if err != nil || out == "" {
		t.Fatalf("suggest failed: %v", err)
	}
}

func TestSearchAndLowStock(t *testing.T) {
	defer resetCLI()
	injectApp(t, true)

	out, err := captureOutput(func() error {
		rootCmd.SetArgs([]string{"search", "lap"})
		return rootCmd.Execute()
	})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if !bytes.Contains([]byte(out), []byte("Laptop")) {
		t.Fatalf("search output missing match: %q", out)
	}
	if shop.Catalog.SearchTerm() != "lap" {
		t.Fatalf("search term not stored on the catalog")
	}

	out, err = captureOutput(func() error {
		rootCmd.SetArgs([]string{"low-stock"})
		return rootCmd.Execute()
	})
	if err != nil {
		t.Fatalf("low-stock failed: %v", err)
	}
	// seed data has Keyboard (4) and Mouse (3) under the threshold of 5
	if !bytes.Contains([]byte(out), []byte("Keyboard")) || !bytes.Contains([]byte(out), []byte("Mouse")) {
		t.Fatalf("unexpected low-stock output: %q", out)
	}
}

func TestLoginLogoutWhoami(t *testing.T) {
	defer resetCLI()
	a := injectApp(t, false)

	out, err := captureOutput(func() error {
		rootCmd.SetArgs([]string{"login", "--email", "jane@example.com", "--password", "secret"})
		return rootCmd.Execute()
	})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	var user domain.User
	if err := json.Unmarshal([]byte(out), &user); err != nil {
		t.Fatalf("invalid login output: %v", err)
	}
	if user.Name != "jane" || user.Role != domain.RoleCustomer {
		t.Fatalf("unexpected user: %+v", user)
	}
	if a.Cart.CustomerID() != user.ID {
		t.Fatalf("customer login must bind the cart")
	}

	out, err = captureOutput(func() error {
		rootCmd.SetArgs([]string{"whoami"})
		return rootCmd.Execute()
	})
	if err != nil || !bytes.Contains([]byte(out), []byte("jane@example.com")) {
		t.Fatalf("whoami failed: %v %q", err, out)
	}

	_, err = captureOutput(func() error {
		rootCmd.SetArgs([]string{"logout"})
		return rootCmd.Execute()
	})
	if err != nil {
		t.Fatalf("logout failed: %v", err)
	}

	out, _ = captureOutput(func() error {
		rootCmd.SetArgs([]string{"whoami"})
		return rootCmd.Execute()
	})
	if !bytes.Contains([]byte(out), []byte("not logged in")) {
		t.Fatalf("expected cleared session, got %q", out)
	}
}

func TestReportCommand(t *testing.T) {
	defer resetCLI()
	injectApp(t, true)

	file := filepath.Join(t.TempDir(), "inventory.pdf")
	_, err := captureOutput(func() error {
		rootCmd.SetArgs([]string{"report", "--file", file})
		return rootCmd.Execute()
	})
	if err != nil {
		t.Fatalf("report failed: %v", err)
	}

	b, err := os.ReadFile(file)
	if err != nil {
		t.Fatalf("report not written: %v", err)
	}
	if !bytes.HasPrefix(b, []byte("%PDF")) {
		t.Fatalf("report is not a PDF")
	}
}

func TestImageCommand(t *testing.T) {
	defer resetCLI()
	injectApp(t, true)

	out, err := captureOutput(func() error {
		rootCmd.SetArgs([]string{"image", "P001"})
		return rootCmd.Execute()
	})
	if err != nil {
		t.Fatalf("image failed: %v", err)
	}
	if !bytes.Contains([]byte(out), []byte("images.unsplash.com")) {
		t.Fatalf("expected the laptop stock photo, got %q", out)
	}

	// unknown names fall back to the synthesized glyph
	out, err = captureOutput(func() error {
		rootCmd.SetArgs([]string{"image", "Mystery Box"})
		return rootCmd.Execute()
	})
	if err != nil {
		t.Fatalf("image fallback failed: %v", err)
	}
	if !bytes.Contains([]byte(out), []byte("data:image/svg+xml;base64,")) {
		t.Fatalf("expected a data URI fallback, got %q", out)
	}
}
