package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mongouri/cmd/check"
	"mongouri/cmd/completion"
	"mongouri/cmd/inspect"
	"mongouri/cmd/normalize"
	"mongouri/cmd/ping"
	"mongouri/cmd/version"
)

var rootCmd = &cobra.Command{
	Use:   "mongouri",
	Short: "CLI tool to normalize and inspect MongoDB connection strings",
	Long: `A command-line tool to sanitize, normalize, and inspect MongoDB-style
connection strings (mongodb:// and mongodb+srv://), including ones with
URL-reserved characters in credentials or query parameter values.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(check.CheckCmd)
	rootCmd.AddCommand(normalize.NormalizeCmd)
	rootCmd.AddCommand(inspect.InspectCmd)
	rootCmd.AddCommand(ping.PingCmd)
	rootCmd.AddCommand(version.VersionCmd)
	rootCmd.AddCommand(completion.CompletionCmd)
}
