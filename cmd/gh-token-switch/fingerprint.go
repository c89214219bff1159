package main

import (
	"fmt"
	"os"

	"github.com/benaskins/gh-token-switch/internal/alias"
	"github.com/benaskins/gh-token-switch/internal/keychain"
	"github.com/spf13/cobra"
)

var fingerprintCmd = &cobra.Command{
	Use:   "fingerprint",
	Short: "Print the fingerprint of a token read from stdin",
	Long: `Print the short fingerprint recorded for a token. Compare it with the
fingerprints in the config file to see which alias a token belongs to, e.g.

  gh auth token | gh-token-switch fingerprint`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		token, err := readToken(os.Stdin, os.Stderr)
		if err != nil {
			return err
		}
		if token == "" {
			return keychain.ErrEmptyToken
		}
		fmt.Println(alias.Fingerprint(token))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fingerprintCmd)
}
