package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func tokenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "token",
		Short: "Print a client-credentials access token",
		Long: "Resolve a client-credentials access token from the shared cache,\n" +
			"acquiring a fresh one from the token endpoint when needed.",
		Example: `  curl -H "Authorization: Bearer $(markko token)" ...`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}

			token, err := c.Token(context.Background())
			if err != nil {
				return err
			}
			fmt.Println(token)
			return nil
		},
	}
}
