package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func loginCmd() *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "login <email>",
		Short: "Obtain a user token via the password grant",
		Long: "Log in with a marketplace user account and print the resulting\n" +
			"token record as JSON. Save it to a file and pass it to other\n" +
			"commands with --token-file to act as that user.",
		Example: `  # Prompt for the password
  markko login alice@example.com > token.json

  # Use the saved token
  markko cart get --token-file token.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if password == "" {
				fmt.Fprint(os.Stderr, "Password: ")
				line, err := bufio.NewReader(os.Stdin).ReadString('\n')
				if err != nil {
					return fmt.Errorf("reading password: %w", err)
				}
				password = strings.TrimSpace(line)
			}

			c, err := newClient()
			if err != nil {
				return err
			}

			rec, err := c.Auth.Login(context.Background(), args[0], password)
			if err != nil {
				return err
			}
			return outputJSON(rec)
		},
	}
	cmd.Flags().StringVar(&password, "password", "", "password (prompted when omitted)")

	return cmd
}
