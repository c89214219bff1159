package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	activeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

var setCmd = &cobra.Command{
	Use:   "set <alias>",
	Short: "Store or update the token for an alias",
	Long:  "Store a token under an alias. Prompts without echo, or reads stdin when piped.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		token, err := readToken(os.Stdin, os.Stderr)
		if err != nil {
			return err
		}

		svc, done, err := openService()
		if err != nil {
			return err
		}
		defer done()

		if err := svc.Set(args[0], token); err != nil {
			return err
		}
		fmt.Printf("stored token for alias %q\n", args[0])
		return nil
	},
}

var useCmd = &cobra.Command{
	Use:   "use [alias]",
	Short: "Switch to an alias, or cycle to the next one when omitted",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runUse,
}

func runUse(cmd *cobra.Command, args []string) error {
	svc, done, err := openService()
	if err != nil {
		return err
	}
	defer done()

	var name string
	if len(args) > 0 {
		name = args[0]
	}
	res, err := svc.Use(cmd.Context(), name)
	if err != nil {
		return err
	}
	fmt.Println(res.Alias)
	return nil
}

var currentCmd = &cobra.Command{
	Use:   "current",
	Short: "Show the alias gh is currently using",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, done, err := openService()
		if err != nil {
			return err
		}
		defer done()

		name := svc.Current(cmd.Context())
		if name == "" {
			name = "unknown"
		}
		fmt.Println(name)
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:     "list",
	Short:   "List aliases in cycle order",
	Aliases: []string{"ls"},
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, done, err := openService()
		if err != nil {
			return err
		}
		defer done()

		entries := svc.List(cmd.Context())
		if len(entries) == 0 {
			fmt.Fprintln(os.Stderr, "No aliases; add one with 'gh-token-switch set <alias>'")
			return nil
		}
		for _, e := range entries {
			line := e.String()
			if e.Active {
				line = activeStyle.Render(line)
			}
			if !e.Tracked {
				line += " " + dimStyle.Render("(no fingerprint)")
			}
			fmt.Println(line)
		}
		return nil
	},
}

var renameCmd = &cobra.Command{
	Use:   "rename <old> <new>",
	Short: "Rename an alias in the keychain and config",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, done, err := openService()
		if err != nil {
			return err
		}
		defer done()

		if err := svc.Rename(args[0], args[1]); err != nil {
			return err
		}
		fmt.Printf("renamed %q -> %q\n", args[0], args[1])
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:     "delete <alias>",
	Short:   "Delete an alias from the keychain and config",
	Aliases: []string{"rm"},
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, done, err := openService()
		if err != nil {
			return err
		}
		defer done()

		if err := svc.Delete(args[0]); err != nil {
			return err
		}
		fmt.Printf("deleted %q\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(useCmd)
	rootCmd.AddCommand(currentCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(renameCmd)
	rootCmd.AddCommand(deleteCmd)
}
