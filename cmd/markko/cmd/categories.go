package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/markkohq/markko-go/pkg/markko"
)

func categoriesCmd() *cobra.Command {
	var (
		opts   markko.ListOptions
		nested bool
	)

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List product categories",
		Example: `  # Flat category list
  markko categories

  # Full category tree as JSON
  markko categories --nested --output json`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			oauth, err := loadToken()
			if err != nil {
				return err
			}

			ctx := context.Background()
			var env *markko.Envelope
			if nested {
				env, err = c.Categories.ListNested(ctx, opts, oauth)
			} else {
				env, err = c.Categories.List(ctx, opts, oauth)
			}
			if err != nil {
				return err
			}

			if jsonOutput() || nested {
				return outputRawJSON(env.Data)
			}

			var categories []categoryRow
			if err := env.Decode(&categories); err != nil {
				return err
			}
			if len(categories) == 0 {
				fmt.Println("No categories found.")
				return nil
			}
			return printCategoriesTable(categories)
		},
	}
	listFlags(cmd, &opts)
	cmd.Flags().BoolVar(&nested, "nested", false, "return the full category tree")

	return cmd
}
