package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/markkohq/markko-go/pkg/markko"
)

func vendorsCmd() *cobra.Command {
	vendorsRoot := &cobra.Command{
		Use:   "vendors",
		Short: "Browse marketplace vendors",
	}

	vendorsRoot.AddCommand(
		vendorsListCmd(),
		vendorsGetCmd(),
	)

	return vendorsRoot
}

func vendorsListCmd() *cobra.Command {
	var (
		opts     markko.ListOptions
		postcode string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List vendors",
		Example: `  # List vendors sorted by store name
  markko vendors list --sort store_name,asc

  # Vendors delivering to a postcode
  markko vendors list --postcode "EC1A 1BB"`,
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
			if postcode != "" {
				env, err = c.Vendors.ListByPostcode(ctx, postcode, opts, oauth)
			} else {
				env, err = c.Vendors.List(ctx, opts, oauth)
			}
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputRawJSON(env.Data)
			}

			var vendors []vendorRow
			if err := env.Decode(&vendors); err != nil {
				return err
			}
			if len(vendors) == 0 {
				fmt.Println("No vendors found.")
				return nil
			}
			return printVendorsTable(vendors)
		},
	}
	listFlags(cmd, &opts)
	cmd.Flags().StringVar(&postcode, "postcode", "", "filter to vendors delivering to a postcode")

	return cmd
}

func vendorsGetCmd() *cobra.Command {
	var with string

	cmd := &cobra.Command{
		Use:     "get <slug>",
		Short:   "Show vendor details",
		Example: `  markko vendors get pottery-barn --with products`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			oauth, err := loadToken()
			if err != nil {
				return err
			}

			env, err := c.Vendors.GetBySlug(context.Background(), args[0], markko.GetOptions{With: with}, oauth)
			if err != nil {
				return err
			}
			return outputRawJSON(env.Data)
		},
	}
	cmd.Flags().StringVar(&with, "with", "", "relationships to eager-load, comma-separated")

	return cmd
}
