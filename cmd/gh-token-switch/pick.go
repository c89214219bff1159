package main

import (
	"fmt"
	"os"

	"github.com/benaskins/gh-token-switch/internal/audit"
	"github.com/benaskins/gh-token-switch/internal/picker"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Choose an alias interactively",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return errors.WithHint(errors.New("pick needs an interactive terminal"), "use 'gh-token-switch use <alias>' instead")
		}

		svc, done, err := openService()
		if err != nil {
			return err
		}
		defer done()

		ctx := cmd.Context()
		current := svc.Current(ctx)
		name, err := picker.Pick(svc.Config().Aliases, current)
		if err != nil {
			return err
		}
		if name == current {
			fmt.Println(name)
			return nil
		}

		res, err := svc.SwitchTo(ctx, name, audit.TriggerPick)
		if err != nil {
			return err
		}
		fmt.Println(res.Alias)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pickCmd)
}
