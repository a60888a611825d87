// Package cli provides the Cobra-based CLI for storectl, the terminal
// counterpart of the catalog's product form. It validates input the same
// way the API does before submitting, so a well-formed request never
// bounces off the server.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/text/language"

	"github.com/angularstore/catalog/internal/client"
	apihttp "github.com/angularstore/catalog/internal/http"
	"github.com/angularstore/catalog/pkg/money"
)

// catalogAPI is the surface of client.Client the commands use.
type catalogAPI interface {
	List(ctx context.Context) ([]apihttp.ProductResponse, error)
	Get(ctx context.Context, id int64) (apihttp.ProductResponse, error)
	Create(ctx context.Context, params client.ProductParams) (apihttp.ProductResponse, error)
	Update(ctx context.Context, id int64, params client.ProductParams) error
	Delete(ctx context.Context, id int64) error
	Healthy(ctx context.Context) error
}

var (
	rootCmd = &cobra.Command{
		Use:   "storectl",
		Short: "Manage the product catalog from the terminal",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// IMPORTANT: allow tests to inject the api
			if api != nil {
				return nil
			}

			tag, err := language.Parse(viper.GetString("locale"))
			if err != nil {
				return fmt.Errorf("invalid locale %q: %w", viper.GetString("locale"), err)
			}
			priceParams = money.ParamsFor(tag)

			api = client.New(viper.GetString("server"))
			return nil
		},
	}

	api         catalogAPI
	priceParams money.Params
)

func init() {
	rootCmd.PersistentFlags().String("server", "http://localhost:8000", "catalog API base URL")
	rootCmd.PersistentFlags().String("locale", "en-US", "locale for price entry and display")

	viper.BindPFlag("server", rootCmd.PersistentFlags().Lookup("server"))
	viper.BindPFlag("locale", rootCmd.PersistentFlags().Lookup("locale"))
	viper.SetEnvPrefix("STORECTL")
	viper.AutomaticEnv()

	// list
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all products",
		RunE: func(cmd *cobra.Command, args []string) error {
			products, err := api.List(cmd.Context())
			if err != nil {
				return friendly(err)
			}
			for _, p := range products {
				fmt.Printf("%d | %s | %s | %d\n",
					p.ID, p.Name, money.Format(priceParams, p.Price), p.Stock)
			}
			return nil
		},
	}
	rootCmd.AddCommand(listCmd)

	// get
	getCmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Show a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			p, err := api.Get(cmd.Context(), id)
			if err != nil {
				return friendly(err)
			}
			printProduct(p)
			return nil
		},
	}
	rootCmd.AddCommand(getCmd)

	// create
	var cName, cDescription, cPrice string
	var cStock int
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a product",
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := formParams(cName, cDescription, cPrice, cStock)
			if err != nil {
				return err
			}
			p, err := api.Create(cmd.Context(), params)
			if err != nil {
				return friendly(err)
			}
			fmt.Printf("created product %d\n", p.ID)
			printProduct(p)
			return nil
		},
	}
	createCmd.Flags().StringVar(&cName, "name", "", "product name")
	createCmd.Flags().StringVar(&cDescription, "description", "", "product description")
	createCmd.Flags().StringVar(&cPrice, "price", "", "price in the configured locale, e.g. 2.500,00 for pt-BR")
	createCmd.Flags().IntVar(&cStock, "stock", 0, "units in stock")
	createCmd.MarkFlagRequired("name")
	createCmd.MarkFlagRequired("price")
	createCmd.MarkFlagRequired("stock")
	rootCmd.AddCommand(createCmd)

	// update
	var uName, uDescription, uPrice string
	var uStock int
	updateCmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Overwrite a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			params, err := formParams(uName, uDescription, uPrice, uStock)
			if err != nil {
				return err
			}
			if err := api.Update(cmd.Context(), id, params); err != nil {
				return friendly(err)
			}
			fmt.Printf("updated product %d\n", id)
			return nil
		},
	}
	updateCmd.Flags().StringVar(&uName, "name", "", "product name")
	updateCmd.Flags().StringVar(&uDescription, "description", "", "product description")
	updateCmd.Flags().StringVar(&uPrice, "price", "", "price in the configured locale")
	updateCmd.Flags().IntVar(&uStock, "stock", 0, "units in stock")
	updateCmd.MarkFlagRequired("name")
	updateCmd.MarkFlagRequired("price")
	updateCmd.MarkFlagRequired("stock")
	rootCmd.AddCommand(updateCmd)

	// delete
	var force bool
	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if !force {
				fmt.Printf("Delete product %d? (y/N): ", id)
				var resp string
				if _, err := fmt.Scanln(&resp); err != nil || (resp != "y" && resp != "Y") {
					fmt.Println("aborted")
					return nil
				}
			}
			if err := api.Delete(cmd.Context(), id); err != nil {
				return friendly(err)
			}
			fmt.Println("deleted")
			return nil
		},
	}
	deleteCmd.Flags().BoolVar(&force, "force", false, "skip confirmation")
	rootCmd.AddCommand(deleteCmd)

	// health
	healthCmd := &cobra.Command{
		Use:   "health",
		Short: "Check whether the catalog API is up",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := api.Healthy(cmd.Context()); err != nil {
				return friendly(err)
			}
			fmt.Println("ok")
			return nil
		},
	}
	rootCmd.AddCommand(healthCmd)
}

// formParams validates the form fields with the same rules the API applies
// and collects every violation into one error, so a partial fix does not get
// bounced twice.
func formParams(name, description, price string, stock int) (client.ProductParams, error) {
	var violations []string

	if strings.TrimSpace(name) == "" {
		violations = append(violations, "name is required")
	} else if len([]rune(name)) > 100 {
		violations = append(violations, "name must be at most 100 characters")
	}
	if len([]rune(description)) > 500 {
		violations = append(violations, "description must be at most 500 characters")
	}

	value, err := readPrice(price)
	if err != nil {
		violations = append(violations, "price is not a valid amount")
	} else if value <= 0 {
		violations = append(violations, "price must be greater than 0")
	}

	if stock <= 0 {
		violations = append(violations, "stock must be greater than 0")
	}

	if len(violations) > 0 {
		return client.ProductParams{}, errors.New(strings.Join(violations, ", "))
	}

	return client.ProductParams{
		Name:        strings.TrimSpace(name),
		Description: description,
		Price:       value,
		Stock:       stock,
	}, nil
}

// readPrice runs the raw input through the same per-rune filter the form's
// price field applies while typing, then parses what survived.
func readPrice(raw string) (float64, error) {
	var b strings.Builder
	for _, r := range raw {
		if money.AcceptRune(priceParams, b.String(), r) {
			b.WriteRune(r)
		}
	}
	return money.Parse(priceParams, b.String())
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid product id %q", arg)
	}
	return id, nil
}

func printProduct(p apihttp.ProductResponse) {
	fmt.Printf("id:          %d\n", p.ID)
	fmt.Printf("name:        %s\n", p.Name)
	fmt.Printf("description: %s\n", p.Description)
	fmt.Printf("price:       %s\n", money.Format(priceParams, p.Price))
	fmt.Printf("stock:       %d\n", p.Stock)
	fmt.Printf("created at:  %s\n", p.CreatedAt.Format("2006-01-02 15:04:05"))
}

// friendly rewrites transport errors for terminal users.
func friendly(err error) error {
	if errors.Is(err, client.ErrBackendUnavailable) {
		fmt.Fprintln(os.Stderr, "cannot reach the catalog API, is the server running?")
		return err
	}
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		return errors.New(apiErr.Message)
	}
	return err
}

func Execute() error {
	return rootCmd.Execute()
}
