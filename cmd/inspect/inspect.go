package inspect

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"mongouri/internal/config"
	"mongouri/internal/connstring"
	"mongouri/internal/flags"
)

// InspectCmd represents the inspect command.
var InspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Show the components of a connection string",
	Long: `Parse a connection string and print its components: scheme, hosts,
credentials (password masked), database, and ordered query parameters.`,
	RunE: runInspect,
}

func runInspect(cmd *cobra.Command, _ []string) error {
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
	cs.SetWarningHandler(func(format string, args ...any) {
		fmt.Printf("warning: "+format+"\n", args...)
	})

	fmt.Printf("Scheme:   %s\n", cs.Scheme())
	fmt.Printf("Hosts:    %s\n", strings.Join(cs.Hosts(), ", "))
	if username := cs.Username(); username != "" {
		fmt.Printf("Username: %s\n", username)
	}
	if cs.Password() != "" {
		fmt.Printf("Password: ***\n")
	}
	if db := cs.Database(); db != "" {
		fmt.Printf("Database: %s\n", db)
	}

	params := cs.Params()
	if len(params) == 0 {
		return nil
	}
	fmt.Println("Parameters:")
	for _, p := range params {
		fmt.Printf("  %s = %s\n", p.Key, p.Value)
	}
	if cs.HasDuplicateParameters() {
		fmt.Println("Found duplicate query parameters; run 'mongouri normalize' to collapse them.")
	}
	return nil
}

func init() {
	// Add flags.
	flags.AddURIFlags(InspectCmd)
}
