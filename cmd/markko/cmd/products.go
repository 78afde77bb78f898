package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/markkohq/markko-go/pkg/markko"
)

func productsCmd() *cobra.Command {
	productsRoot := &cobra.Command{
		Use:   "products",
		Short: "Browse marketplace products",
		Long: "Browse and inspect products across the marketplace, with\n" +
			"pagination, sorting, and relationship eager-loading.",
	}

	productsRoot.AddCommand(
		productsListCmd(),
		productsGetCmd(),
		productsCountCmd(),
	)

	return productsRoot
}

// listFlags binds the shared collection query flags on cmd.
func listFlags(cmd *cobra.Command, opts *markko.ListOptions) {
	cmd.Flags().IntVar(&opts.Page, "page", 0, "result page, starting at 1")
	cmd.Flags().IntVar(&opts.Paginate, "paginate", 0, "page size (0 lets the server decide)")
	cmd.Flags().StringVar(&opts.Sort, "sort", "", `sort order, e.g. "created_at,desc"`)
	cmd.Flags().StringVar(&opts.With, "with", "", "relationships to eager-load, comma-separated")
	cmd.Flags().StringVar(&opts.Search, "search", "", "server-side search term")
}

func productsListCmd() *cobra.Command {
	var opts markko.ListOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List products",
		Example: `  # List the first page of products
  markko products list

  # Search with pagination and eager-loaded vendors
  markko products list --search mug --paginate 20 --with vendor`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			oauth, err := loadToken()
			if err != nil {
				return err
			}

			env, err := c.Products.List(context.Background(), opts, oauth)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputRawJSON(env.Data)
			}

			var products []productRow
			if err := env.Decode(&products); err != nil {
				return err
			}
			if len(products) == 0 {
				fmt.Println("No products found.")
				return nil
			}
			return printProductsTable(products)
		},
	}
	listFlags(cmd, &opts)

	return cmd
}

func productsGetCmd() *cobra.Command {
	var with string

	cmd := &cobra.Command{
		Use:     "get <vendor-slug> <product-slug>",
		Short:   "Show product details",
		Example: `  markko products get pottery-barn stoneware-mug --with images,variants`,
		Args:    cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			oauth, err := loadToken()
			if err != nil {
				return err
			}

			env, err := c.Products.Get(context.Background(), args[0], args[1], markko.GetOptions{With: with}, oauth)
			if err != nil {
				return err
			}
			return outputRawJSON(env.Data)
		},
	}
	cmd.Flags().StringVar(&with, "with", "", "relationships to eager-load, comma-separated")

	return cmd
}

func productsCountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "count",
		Short: "Show the total product count",
		RunE: func(_ *cobra.Command, _ []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			oauth, err := loadToken()
			if err != nil {
				return err
			}

			env, err := c.Products.Count(context.Background(), oauth)
			if err != nil {
				return err
			}
			return outputRawJSON(env.Data)
		},
	}
}
