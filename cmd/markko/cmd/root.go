// Package cmd implements the markko CLI commands.
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/markkohq/markko-go/internal/config"
	"github.com/markkohq/markko-go/pkg/logger"
	"github.com/markkohq/markko-go/pkg/markko"
	"github.com/markkohq/markko-go/pkg/markko/auth"
)

var (
	cfgFile   string
	tokenFile string
	rootCmd   = &cobra.Command{
		Use:   "markko",
		Short: "CLI client for the Markko marketplace API",
		Long: "markko is a command-line client for the Markko marketplace API.\n" +
			"It lets you browse products, vendors, and categories, inspect a\n" +
			"cart, and manage OAuth tokens from the terminal.",
	}
)

// Root returns the root cobra command for documentation generation.
func Root() *cobra.Command {
	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().
		StringVar(&cfgFile, "config", "", "config file (default $HOME/.markko.yaml)")
	rootCmd.PersistentFlags().
		String("output", "table", "output format (table, json)")
	rootCmd.PersistentFlags().
		StringVar(&tokenFile, "token-file", "", "JSON token file from 'markko login' for per-user calls")

	cobra.CheckErr(viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output")))

	rootCmd.AddCommand(versionCmd())
	rootCmd.AddCommand(loginCmd())
	rootCmd.AddCommand(tokenCmd())
	rootCmd.AddCommand(productsCmd())
	rootCmd.AddCommand(vendorsCmd())
	rootCmd.AddCommand(categoriesCmd())
	rootCmd.AddCommand(cartCmd())
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".markko")
	}

	viper.SetEnvPrefix("MARKKO")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// newClient builds an SDK client from the loaded config file, falling
// back to MARKKO_* environment variables when no file is in use.
func newClient() (*markko.Client, error) {
	if path := viper.ConfigFileUsed(); path != "" {
		cfg, err := config.Load(path)
		if err != nil {
			return nil, err
		}

		opts := []markko.Option{
			markko.WithLogger(logger.New(cfg.Logging.Level, cfg.Logging.Format)),
		}
		if cfg.RateLimit.Enabled {
			opts = append(opts, markko.WithRateLimiter(markko.NewRateLimiter(
				cfg.RateLimit.PerSecond,
				cfg.RateLimit.Burst,
				cfg.RateLimit.DailyLimit,
			)))
		}
		return markko.New(cfg.SDKConfig(), opts...)
	}

	return markko.New(markko.Config{
		Origin:                 viper.GetString("origin"),
		APIBasePath:            viper.GetString("base_path"),
		ClientCredentialKey:    viper.GetString("client_credential_key"),
		ClientCredentialSecret: viper.GetString("client_credential_secret"),
		PasswordKey:            viper.GetString("password_key"),
		PasswordSecret:         viper.GetString("password_secret"),
		IsDevelopment:          viper.GetBool("is_development"),
	}, markko.WithLogger(logger.New("info", "text")))
}

// loadToken reads the per-user token record named by --token-file.
// Returns nil when the flag is unset, letting calls fall back to the
// client-credentials token.
func loadToken() (*auth.TokenRecord, error) {
	if tokenFile == "" {
		return nil, nil
	}

	data, err := os.ReadFile(tokenFile) //nolint:gosec // path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading token file: %w", err)
	}

	rec := &auth.TokenRecord{}
	if err := json.Unmarshal(data, rec); err != nil {
		return nil, fmt.Errorf("parsing token file: %w", err)
	}
	return rec, nil
}

func jsonOutput() bool {
	return viper.GetString("output") == "json"
}
