package cmd

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/markkohq/markko-go/pkg/markko"
)

func cartCmd() *cobra.Command {
	cartRoot := &cobra.Command{
		Use:   "cart",
		Short: "Inspect and modify a user's cart",
		Long: "Inspect and modify the cart of the user identified by\n" +
			"--token-file. Cart operations act on the authenticated user's\n" +
			"server-side cart.",
	}

	cartRoot.AddCommand(
		cartGetCmd(),
		cartAddCmd(),
		cartRemoveCmd(),
		cartCouponCmd(),
	)

	return cartRoot
}

func cartGetCmd() *cobra.Command {
	var with string

	cmd := &cobra.Command{
		Use:     "get",
		Short:   "Show the cart",
		Example: `  markko cart get --token-file token.json --with items.product`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			oauth, err := loadToken()
			if err != nil {
				return err
			}

			env, err := c.Carts.Get(context.Background(), markko.GetOptions{With: with}, oauth)
			if err != nil {
				return err
			}
			return outputRawJSON(env.Data)
		},
	}
	cmd.Flags().StringVar(&with, "with", "", "relationships to eager-load, comma-separated")

	return cmd
}

func cartAddCmd() *cobra.Command {
	var (
		variantID int
		quantity  int
	)

	cmd := &cobra.Command{
		Use:     "add <product-id>",
		Short:   "Add a product to the cart",
		Example: `  markko cart add 42 --variant 7 --quantity 2 --token-file token.json`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			productID, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}

			c, err := newClient()
			if err != nil {
				return err
			}
			oauth, err := loadToken()
			if err != nil {
				return err
			}

			env, err := c.Carts.Add(context.Background(), markko.CartItemParams{
				ProductID: productID,
				VariantID: variantID,
				Quantity:  quantity,
			}, oauth)
			if err != nil {
				return err
			}
			return outputRawJSON(env.Data)
		},
	}
	cmd.Flags().IntVar(&variantID, "variant", 0, "product variant to add")
	cmd.Flags().IntVar(&quantity, "quantity", 1, "number of units to add")

	return cmd
}

func cartRemoveCmd() *cobra.Command {
	var variantID int

	cmd := &cobra.Command{
		Use:     "remove <product-id>",
		Short:   "Remove a product from the cart",
		Example: `  markko cart remove 42 --token-file token.json`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			productID, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}

			c, err := newClient()
			if err != nil {
				return err
			}
			oauth, err := loadToken()
			if err != nil {
				return err
			}

			env, err := c.Carts.Remove(context.Background(), markko.CartItemParams{
				ProductID: productID,
				VariantID: variantID,
			}, oauth)
			if err != nil {
				return err
			}
			return outputRawJSON(env.Data)
		},
	}
	cmd.Flags().IntVar(&variantID, "variant", 0, "product variant to remove")

	return cmd
}

func cartCouponCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "coupon <code>",
		Short:   "Apply a coupon code to the cart",
		Example: `  markko cart coupon SAVE10 --token-file token.json`,
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

			env, err := c.Carts.ApplyCoupon(context.Background(), args[0], oauth)
			if err != nil {
				return err
			}
			return outputRawJSON(env.Data)
		},
	}
}
