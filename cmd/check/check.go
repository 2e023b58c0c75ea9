package check

import (
	"fmt"

	"github.com/spf13/cobra"

	"mongouri/internal/config"
	"mongouri/internal/connstring"
	"mongouri/internal/flags"
)

// CheckCmd represents the check command.
var CheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Show what normalization would change",
	Long: `Parse a connection string and report what normalization would change,
without emitting the normalized form. This command makes no changes.`,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, _ []string) error {
	// Create config.
	cfg := &config.Config{}

	// Get flag values.
	cfg.URI, _ = cmd.Flags().GetString("uri")

	// Load configuration from environment variables.
	if err := cfg.Load(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	cs, err := connstring.Parse(cfg.GetURI())
	if err != nil {
		return err
	}

	fmt.Printf("Connection string: %s\n", cs.Redacted())
	if cs.HasDuplicateParameters() {
		fmt.Println("Found duplicate query parameters.")
	}

	normalized := connstring.Normalize(cfg.GetURI())
	if normalized == cfg.GetURI() {
		fmt.Println("Already normalized, nothing to change.")
		return nil
	}
	fmt.Println("Normalization would rewrite this connection string. Run 'mongouri normalize' to apply.")
	return nil
}

func init() {
	// Add flags.
	flags.AddURIFlags(CheckCmd)
}
