package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "vine",
	Short: "Vine runs console programs described as data",
	Long: `Vine is a playground for the vine DSL: interactive console programs are
built as plain values and interpreted on demand. Called without arguments it
plays the whole demo gallery.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
