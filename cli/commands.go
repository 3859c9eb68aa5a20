// Package cli provides the Cobra-based CLI for storefront.
package cli

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"storefront/app"
	"storefront/auth"
	"storefront/domain"
	"storefront/recommend"
	"storefront/report"
	"storefront/util"
)

var (
	rootCmd = &cobra.Command{
		Use:   "storefront",
		Short: "An inventory and storefront system",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// IMPORTANT: allow tests to inject the app
			if shop != nil {
				return nil
			}

			if cfg := viper.GetString("config"); cfg != "" {
				viper.SetConfigFile(cfg)
				if err := viper.ReadInConfig(); err != nil {
					return err
				}
			}

			lvlStr := strings.ToLower(viper.GetString("log-level"))
			lvl := slog.LevelInfo
			switch lvlStr {
			case "debug":
				lvl = slog.LevelDebug
			case "warn", "warning":
				lvl = slog.LevelWarn
			case "error":
				lvl = slog.LevelError
			}
			slog.SetDefault(slog.New(
				slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}),
			))

			var err error
			shop, err = app.New(app.Config{
				Seed:              viper.GetBool("seed"),
				LowStockThreshold: viper.GetInt("low-stock-threshold"),
				SessionFile:       viper.GetString("session-file"),
				TaxRate:           viper.GetFloat64("tax-rate"),
				LoginDelay:        viper.GetDuration("login-delay"),
			})
			return err
		},
	}

	shop *app.App
)

func currentUser() (domain.User, error) {
	user, ok, err := shop.Sessions.Load()
	if err != nil {
		return domain.User{}, err
	}
	if !ok {
		return domain.User{}, errors.New("not logged in")
	}
	return user, nil
}

// requireCustomer gates the cart-facing commands behind a customer session.
func requireCustomer() (domain.User, error) {
	user, err := currentUser()
	if err != nil {
		return domain.User{}, err
	}
	if user.Role != domain.RoleCustomer {
		return domain.User{}, fmt.Errorf("requires a customer login, current role is %s", user.Role)
	}
	return user, nil
}

// rejectCustomer blocks catalog management for customer sessions. With
// no session at all the command is allowed, as local admin tooling.
func rejectCustomer(action string) error {
	user, ok, err := shop.Sessions.Load()
	if err != nil {
		return err
	}
	if ok && !user.Role.Staff() {
		return fmt.Errorf("%s requires a cashier or owner login", action)
	}
	return nil
}

func printJSON(v interface{}) {
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(b))
}

func printProducts(products []domain.Product) {
	for _, p := range products {
		fmt.Printf("%s | %s | %.2f | %d\n", p.ID, p.Name, p.Price, p.Quantity)
	}
}

func init() {
	// shell
	shellCmd := &cobra.Command{
		Use:   "shell",
		Short: "Interactive shell mode",
		RunE: func(cmd *cobra.Command, args []string) error {
			r := bufio.NewReader(os.Stdin)
			for {
				fmt.Print("storefront> ")
				line, err := r.ReadString('\n')
				if err != nil {
					return nil
				}
				line = strings.TrimSpace(line)
				if line == "" {
					continue
				}
				if line == "exit" || line == "quit" {
					return nil
				}
				rootCmd.SetArgs(strings.Fields(line))
				if err := rootCmd.Execute(); err != nil {
					fmt.Fprintln(os.Stderr, err)
				}
				rootCmd.SetArgs(nil)
			}
		},
	}
	rootCmd.AddCommand(shellCmd)

	rootCmd.PersistentFlags().String("config", "", "config file")
	rootCmd.PersistentFlags().String("log-level", "info", "log level")
	rootCmd.PersistentFlags().Bool("seed", true, "load the demo catalog and history")
	rootCmd.PersistentFlags().String("session-file", "data/session.json", "session file path")
	rootCmd.PersistentFlags().Float64("tax-rate", 0.10, "checkout tax rate")
	rootCmd.PersistentFlags().Int("low-stock-threshold", 5, "low stock threshold")
	rootCmd.PersistentFlags().Duration("login-delay", auth.DefaultDelay, "simulated login delay")

	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("seed", rootCmd.PersistentFlags().Lookup("seed"))
	viper.BindPFlag("session-file", rootCmd.PersistentFlags().Lookup("session-file"))
	viper.BindPFlag("tax-rate", rootCmd.PersistentFlags().Lookup("tax-rate"))
	viper.BindPFlag("low-stock-threshold", rootCmd.PersistentFlags().Lookup("low-stock-threshold"))
	viper.BindPFlag("login-delay", rootCmd.PersistentFlags().Lookup("login-delay"))
	viper.SetEnvPrefix("STOREFRONT")
	viper.AutomaticEnv()

	// create
	var cID, cName string
	var cPrice float64
	var cQuantity int
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a product",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := rejectCustomer("create"); err != nil {
				return err
			}
			if cName == "" {
				return errors.New("name required")
			}
			id := cID
			if id == "" {
				id = uuid.NewString()
			}
			if !shop.Catalog.IsIDUnique(id, "") {
				return domain.NewDuplicateProductError(id)
			}
			p := domain.Product{ID: id, Name: cName, Price: cPrice, Quantity: cQuantity}
			start := time.Now()
			if err := shop.Catalog.Create(context.Background(), p); err != nil {
				slog.Error("create failed", "product_id", id, "error", err)
				return err
			}
			slog.Info("product created", "product_id", id, "duration_ms", time.Since(start).Milliseconds())
			printJSON(p)
			return nil
		},
	}
	createCmd.Flags().StringVar(&cID, "id", "", "product id (generated when empty)")
	createCmd.Flags().StringVar(&cName, "name", "", "name")
	createCmd.Flags().Float64Var(&cPrice, "price", 0, "price")
	createCmd.Flags().IntVar(&cQuantity, "quantity", 0, "quantity")
	rootCmd.AddCommand(createCmd)

	// get
	getCmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Get product by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := shop.Catalog.Get(context.Background(), args[0])
			if err != nil {
				if domain.IsProductNotFoundError(err) {
					fmt.Fprintln(os.Stderr, err)
					return nil
				}
				return err
			}
			printJSON(p)
			return nil
		},
	}
	rootCmd.AddCommand(getCmd)

	// update
	var uID, uName string
	var uPrice float64
	var uQuantity int
	updateCmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := rejectCustomer("update"); err != nil {
				return err
			}
			id := args[0]

			var patch domain.ProductPatch
			if cmd.Flags().Changed("id") {
				patch.ID = &uID
			}
			if cmd.Flags().Changed("name") {
				patch.Name = &uName
			}
			if cmd.Flags().Changed("price") {
				patch.Price = &uPrice
			}
			if cmd.Flags().Changed("quantity") {
				patch.Quantity = &uQuantity
			}

			start := time.Now()
			p, err := shop.Catalog.Update(context.Background(), id, patch)
			if err != nil {
				slog.Error("update failed", "product_id", id, "error", err)
				return err
			}

			slog.Info(
				"product updated",
				"product_id", p.ID,
				"duration_ms", time.Since(start).Milliseconds(),
			)
			printJSON(p)
			return nil
		},
	}
	updateCmd.Flags().StringVar(&uID, "id", "", "new id (rekey)")
	updateCmd.Flags().StringVar(&uName, "name", "", "name")
	updateCmd.Flags().Float64Var(&uPrice, "price", 0, "price")
	updateCmd.Flags().IntVar(&uQuantity, "quantity", 0, "quantity")
	rootCmd.AddCommand(updateCmd)

	// stock
	var sQuantity int
	stockCmd := &cobra.Command{
		Use:   "stock <id>",
		Short: "Set product stock quantity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := rejectCustomer("stock"); err != nil {
				return err
			}
			if err := shop.Catalog.UpdateQuantity(context.Background(), args[0], sQuantity); err != nil {
				return err
			}
			p, err := shop.Catalog.Get(context.Background(), args[0])
			if err != nil {
				return err
			}
			printJSON(p)
			return nil
		},
	}
	stockCmd.Flags().IntVar(&sQuantity, "quantity", 0, "new quantity")
	rootCmd.AddCommand(stockCmd)

	// list
	var lSearch, lSort, lOrder, lOutput string
	var lMin, lMax float64
	var lInStock bool
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List products",
		RunE: func(cmd *cobra.Command, args []string) error {
			var minPtr, maxPtr *float64
			if cmd.Flags().Changed("min-price") {
				minPtr = &lMin
			}
			if cmd.Flags().Changed("max-price") {
				maxPtr = &lMax
			}
			search := lSearch
			if !cmd.Flags().Changed("search") {
				search = shop.Catalog.SearchTerm()
			}
			out, err := shop.Catalog.List(context.Background(), domain.ListFilter{
				Search:   search,
				MinPrice: minPtr,
				MaxPrice: maxPtr,
				InStock:  lInStock,
				SortBy:   lSort,
				Order:    lOrder,
			})
			if err != nil {
				return err
			}
			if lOutput == "json" {
				printJSON(out)
				return nil
			}
			printProducts(out)
			return nil
		},
	}
	listCmd.Flags().StringVar(&lSearch, "search", "", "substring filter over id and name")
	listCmd.Flags().Float64Var(&lMin, "min-price", 0, "min price")
	listCmd.Flags().Float64Var(&lMax, "max-price", 0, "max price")
	listCmd.Flags().BoolVar(&lInStock, "in-stock", false, "only in-stock products")
	listCmd.Flags().StringVar(&lSort, "sort-by", "", "sort field")
	listCmd.Flags().StringVar(&lOrder, "order", "asc", "sort order")
	listCmd.Flags().StringVar(&lOutput, "output", "", "output format")
	rootCmd.AddCommand(listCmd)

	// search
	searchCmd := &cobra.Command{
		Use:   "search [term]",
		Short: "Set the shared search term and list matches",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				fmt.Printf("search term: %q\n", shop.Catalog.SearchTerm())
				return nil
			}
			shop.Catalog.SetSearchTerm(args[0])
			out, err := shop.Catalog.List(context.Background(), domain.ListFilter{Search: args[0]})
			if err != nil {
				return err
			}
			printProducts(out)
			return nil
		},
	}
	rootCmd.AddCommand(searchCmd)

	// low-stock
	lowStockCmd := &cobra.Command{
		Use:   "low-stock",
		Short: "List products below the low stock threshold",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := shop.Catalog.LowStock(context.Background())
			if err != nil {
				return err
			}
			if len(out) == 0 {
				fmt.Println("no products below threshold")
				return nil
			}
			printProducts(out)
			return nil
		},
	}
	rootCmd.AddCommand(lowStockCmd)

	// delete
	var force bool
	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := rejectCustomer("delete"); err != nil {
				return err
			}
			if !force {
				fmt.Printf("Delete %s? (y/N): ", args[0])
				var resp string
				if _, err := fmt.Scanln(&resp); err != nil || (resp != "y" && resp != "Y") {
					fmt.Println("aborted")
					return nil
				}
			}
			if err := shop.Catalog.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Println("deleted")
			return nil
		},
	}
	deleteCmd.Flags().BoolVar(&force, "force", false, "skip confirmation")
	rootCmd.AddCommand(deleteCmd)

	// import (supports JSON array and NDJSON)
	var importFile string
	importCmd := &cobra.Command{
		Use:   "import --file <file>",
		Short: "Import products from JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := rejectCustomer("import"); err != nil {
				return err
			}
			if importFile == "" {
				return errors.New("--file required")
			}

			b, err := os.ReadFile(importFile)
			if err != nil {
				return err
			}

			btrim := bytes.TrimSpace(b)
			if len(btrim) == 0 {
				return errors.New("empty file")
			}

			var products []domain.Product

			// JSON array
			if btrim[0] == '[' {
				if err := json.Unmarshal(btrim, &products); err != nil {
					return err
				}
			} else {
				// NDJSON or single JSON object
				scanner := bufio.NewScanner(bytes.NewReader(btrim))
				for scanner.Scan() {
					line := bytes.TrimSpace(scanner.Bytes())
					if len(line) == 0 {
						continue
					}
					var p domain.Product
					if err := json.Unmarshal(line, &p); err != nil {
						return err
					}
					products = append(products, p)
				}
				if err := scanner.Err(); err != nil {
					return err
				}
			}

			return shop.Catalog.BulkImport(context.Background(), products)
		},
	}
	importCmd.Flags().StringVar(&importFile, "file", "", "input file")
	rootCmd.AddCommand(importCmd)

	// export
	var exportFile, exportSearch string
	exportCmd := &cobra.Command{
		Use:   "export --file <file>",
		Short: "Export products to JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			if exportFile == "" {
				return errors.New("--file required")
			}
			out, err := shop.Catalog.List(context.Background(), domain.ListFilter{
				Search: exportSearch,
			})
			if err != nil {
				return err
			}
			b, _ := json.MarshalIndent(out, "", "  ")
			return os.WriteFile(exportFile, b, 0o644)
		},
	}
	exportCmd.Flags().StringVar(&exportFile, "file", "", "output file")
	exportCmd.Flags().StringVar(&exportSearch, "search", "", "substring filter")
	rootCmd.AddCommand(exportCmd)

	// image
	imageCmd := &cobra.Command{
		Use:   "image <id-or-name>",
		Short: "Resolve the display image for a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if p, err := shop.Catalog.Get(context.Background(), args[0]); err == nil {
				name = p.Name
			}
			fmt.Println(util.ProductImage(name))
			return nil
		},
	}
	rootCmd.AddCommand(imageCmd)

	rootCmd.AddCommand(newCartCmd())
	rootCmd.AddCommand(newCheckoutCmd())
	rootCmd.AddCommand(newPurchasesCmd())
	rootCmd.AddCommand(newSuggestCmd())
	rootCmd.AddCommand(newReportCmd())
	addAuthCommands(rootCmd)
}

func newCartCmd() *cobra.Command {
	cartCmd := &cobra.Command{
		Use:   "cart",
		Short: "Manage the shopping cart",
	}

	var addQuantity int
	addCmd := &cobra.Command{
		Use:   "add <product-id>",
		Short: "Add a product to the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireCustomer(); err != nil {
				return err
			}
			p, err := shop.Catalog.Get(context.Background(), args[0])
			if err != nil {
				return err
			}
			if err := shop.Cart.Add(context.Background(), p, addQuantity); err != nil {
				return err
			}
			slog.Info("added to cart", "product_id", p.ID, "quantity", addQuantity)
			fmt.Printf("added %d x %s\n", addQuantity, p.Name)
			return nil
		},
	}
	addCmd.Flags().IntVar(&addQuantity, "quantity", 1, "quantity")
	cartCmd.AddCommand(addCmd)

	removeCmd := &cobra.Command{
		Use:   "remove <product-id>",
		Short: "Remove a product from the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireCustomer(); err != nil {
				return err
			}
			shop.Cart.Remove(args[0])
			fmt.Println("removed")
			return nil
		},
	}
	cartCmd.AddCommand(removeCmd)

	var updQuantity int
	updateCmd := &cobra.Command{
		Use:   "update <product-id>",
		Short: "Set the quantity of a cart item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireCustomer(); err != nil {
				return err
			}
			if err := shop.Cart.UpdateQuantity(context.Background(), args[0], updQuantity); err != nil {
				return err
			}
			fmt.Println("updated")
			return nil
		},
	}
	updateCmd.Flags().IntVar(&updQuantity, "quantity", 0, "new quantity (0 removes)")
	cartCmd.AddCommand(updateCmd)

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the cart contents",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireCustomer(); err != nil {
				return err
			}
			items := shop.Cart.Items()
			if len(items) == 0 {
				fmt.Println("cart is empty")
				return nil
			}
			for _, item := range items {
				fmt.Printf("%s | %s | %.2f x %d = %.2f\n",
					item.ProductID, item.ProductName, item.Price, item.Quantity, item.Subtotal())
			}
			subtotal := shop.Cart.Total()
			tax := subtotal * shop.TaxRate
			fmt.Printf("subtotal: %.2f\n", subtotal)
			fmt.Printf("tax (%.0f%%): %.2f\n", shop.TaxRate*100, tax)
			fmt.Printf("total: %.2f\n", subtotal+tax)
			return nil
		},
	}
	cartCmd.AddCommand(showCmd)

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Empty the cart",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireCustomer(); err != nil {
				return err
			}
			shop.Cart.Clear()
			fmt.Println("cart cleared")
			return nil
		},
	}
	cartCmd.AddCommand(clearCmd)

	return cartCmd
}

func newCheckoutCmd() *cobra.Command {
	var receiptFile string
	checkoutCmd := &cobra.Command{
		Use:   "checkout",
		Short: "Turn the cart into a recorded purchase",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := requireCustomer()
			if err != nil {
				return err
			}
			purchase, err := shop.Checkout(context.Background(), user)
			if err != nil {
				return err
			}
			slog.Info("checkout complete",
				"purchase_id", purchase.ID,
				"customer_id", purchase.CustomerID,
				"total", purchase.TotalAmount,
			)
			printJSON(purchase)

			if receiptFile != "" {
				f, err := os.Create(receiptFile)
				if err != nil {
					return err
				}
				defer f.Close()
				if err := report.Receipt(f, purchase, shop.TaxRate); err != nil {
					return err
				}
				fmt.Printf("receipt written to %s\n", receiptFile)
			}
			return nil
		},
	}
	checkoutCmd.Flags().StringVar(&receiptFile, "receipt", "", "write a PDF receipt to this path")
	return checkoutCmd
}

func newPurchasesCmd() *cobra.Command {
	var customerID string
	var mine bool
	purchasesCmd := &cobra.Command{
		Use:   "purchases",
		Short: "Show purchase history",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			switch {
			case mine:
				user, err := requireCustomer()
				if err != nil {
					return err
				}
				out, err := shop.Ledger.ByCustomer(ctx, user.ID)
				if err != nil {
					return err
				}
				printJSON(out)
			case customerID != "":
				out, err := shop.Ledger.ByCustomer(ctx, customerID)
				if err != nil {
					return err
				}
				printJSON(out)
			default:
				out, err := shop.Ledger.All(ctx)
				if err != nil {
					return err
				}
				printJSON(out)
			}
			return nil
		},
	}
	purchasesCmd.Flags().StringVar(&customerID, "customer", "", "filter by customer id")
	purchasesCmd.Flags().BoolVar(&mine, "mine", false, "show the logged-in customer's purchases")
	return purchasesCmd
}

func newSuggestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "suggest",
		Short: "Suggest products from purchase history",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := requireCustomer()
			if err != nil {
				return err
			}
			ctx := context.Background()
			history, err := shop.Ledger.ByCustomer(ctx, user.ID)
			if err != nil {
				return err
			}
			products, err := shop.Catalog.List(ctx, domain.ListFilter{})
			if err != nil {
				return err
			}
			suggestions := recommend.Suggestions(history, products)
			if len(suggestions) == 0 {
				fmt.Println("no suggestions right now")
				return nil
			}
			printProducts(suggestions)
			return nil
		},
	}
}

func newReportCmd() *cobra.Command {
	var reportFile string
	reportCmd := &cobra.Command{
		Use:   "report --file <file>",
		Short: "Write a PDF inventory status report",
		RunE: func(cmd *cobra.Command, args []string) error {
			if reportFile == "" {
				return errors.New("--file required")
			}
			products, err := shop.Catalog.List(context.Background(), domain.ListFilter{})
			if err != nil {
				return err
			}
			f, err := os.Create(reportFile)
			if err != nil {
				return err
			}
			defer f.Close()
			if err := report.Inventory(f, products, shop.Catalog.LowStockThreshold()); err != nil {
				return err
			}
			fmt.Printf("report written to %s\n", reportFile)
			return nil
		},
	}
	reportCmd.Flags().StringVar(&reportFile, "file", "", "output file")
	return reportCmd
}

func addAuthCommands(root *cobra.Command) {
	var liEmail, liPassword, liRole string
	loginCmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and persist the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			role, err := domain.ParseRole(liRole)
			if err != nil {
				return err
			}
			user, err := shop.Login(context.Background(), liEmail, liPassword, role)
			if err != nil {
				return err
			}
			slog.Info("logged in", "user_id", user.ID, "role", user.Role)
			printJSON(user)
			return nil
		},
	}
	loginCmd.Flags().StringVar(&liEmail, "email", "", "email")
	loginCmd.Flags().StringVar(&liPassword, "password", "", "password")
	loginCmd.Flags().StringVar(&liRole, "role", "customer", "role: customer|cashier|owner")
	root.AddCommand(loginCmd)

	var suName, suEmail, suPassword, suRole string
	signupCmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an account and persist the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			role, err := domain.ParseRole(suRole)
			if err != nil {
				return err
			}
			user, err := shop.Signup(context.Background(), suName, suEmail, suPassword, role)
			if err != nil {
				return err
			}
			slog.Info("signed up", "user_id", user.ID, "role", user.Role)
			printJSON(user)
			return nil
		},
	}
	signupCmd.Flags().StringVar(&suName, "name", "", "display name")
	signupCmd.Flags().StringVar(&suEmail, "email", "", "email")
	signupCmd.Flags().StringVar(&suPassword, "password", "", "password")
	signupCmd.Flags().StringVar(&suRole, "role", "customer", "role: customer|cashier|owner")
	root.AddCommand(signupCmd)

	logoutCmd := &cobra.Command{
		Use:   "logout",
		Short: "Drop the persisted session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := shop.Logout(); err != nil {
				return err
			}
			fmt.Println("logged out")
			return nil
		},
	}
	root.AddCommand(logoutCmd)

	whoamiCmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, ok, err := shop.Sessions.Load()
			if err != nil {
				return err
			}
			if !ok {
				fmt.Println("not logged in")
				return nil
			}
			printJSON(user)
			return nil
		},
	}
	root.AddCommand(whoamiCmd)
}

func Execute() error {
	return rootCmd.Execute()
}
