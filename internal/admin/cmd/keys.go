package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"taskmaster/internal/server/config"
	"taskmaster/internal/server/store"
	"taskmaster/internal/shared/token"
)

// newKeysCmd groups the credential minting commands. Both read the same
// env config the server does, so a key minted here verifies there.
func newKeysCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "keys", Short: "Mint and store credentials"}
	cmd.AddCommand(newMintAPIKeyCmd())
	cmd.AddCommand(newMintClientTokenCmd())
	return cmd
}

func newMintAPIKeyCmd() *cobra.Command {
	var print bool
	cmd := &cobra.Command{
		Use:   "mint-api",
		Short: "Sign a new API key and store it in the keys collection",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			key, err := token.Sign([]byte(cfg.Secret), cfg.AuthSubject, 0)
			if err != nil {
				return err
			}
			gateway := store.New(cfg.StoreDSN, nil)
			defer gateway.Close()
			if !gateway.Connected() {
				return errors.New("store unavailable")
			}
			if err := gateway.PutAPIKey(context.Background(), cfg.AuthSubject, key); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "API key stored for subject %q\n", cfg.AuthSubject)
			if print {
				fmt.Fprintln(cmd.OutOrStdout(), key)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&print, "print", false, "Also print the signed key")
	return cmd
}

func newMintClientTokenCmd() *cobra.Command {
	var ttl time.Duration
	cmd := &cobra.Command{
		Use:   "mint-client",
		Short: "Sign a client access token and print it",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			tok, err := token.Sign([]byte(cfg.ClientSecret), cfg.AuthSubject, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tok)
			return nil
		},
	}
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "Token lifetime, 0 for no expiry")
	return cmd
}
