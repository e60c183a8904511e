package main

import (
	"fmt"
	"os"

	"github.com/aretw0/vine/internal/cli"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [demo...]",
	Short: "Run demos from the gallery",
	Long: `Interprets the named demos in order, reading answers from stdin.
With no names, the whole gallery runs.`,
	Run: func(cmd *cobra.Command, args []string) {
		debug, _ := cmd.Flags().GetBool("debug")
		plain, _ := cmd.Flags().GetBool("plain")

		opts := cli.RunOptions{
			Names:  args,
			Debug:  debug,
			Banner: !plain && term.IsTerminal(int(os.Stdout.Fd())),
			Input:  os.Stdin,
			Output: os.Stdout,
		}
		if err := cli.Execute(opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Bool("debug", false, "Log every interpreted step to stderr")
	runCmd.Flags().Bool("plain", false, "Skip the banner even on a terminal")

	// Bare 'vine' plays the whole gallery.
	rootCmd.Run = runCmd.Run
}
