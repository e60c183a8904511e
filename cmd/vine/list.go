package main

import (
	"fmt"
	"os"

	"github.com/aretw0/vine/internal/cli"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available demos",
	Run: func(cmd *cobra.Command, args []string) {
		rendered := term.IsTerminal(int(os.Stdout.Fd()))
		if err := cli.List(os.Stdout, rendered); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
