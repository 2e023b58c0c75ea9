package ping

import (
	"fmt"

	"github.com/spf13/cobra"

	"mongouri/internal/config"
	"mongouri/internal/connstring"
	"mongouri/internal/flags"
	"mongouri/internal/mongo"
	"mongouri/internal/retry"
)

// PingCmd represents the ping command.
var PingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Verify that the target cluster is reachable",
	Long: `Normalize the connection string, connect to the target cluster with
retries, and report whether it is reachable.`,
	RunE: runPing,
}

func runPing(cmd *cobra.Command, _ []string) error {
	// Create config.
	cfg := &config.Config{}

	// Get flag values.
	cfg.URI, _ = cmd.Flags().GetString("uri")
	cfg.ConnectTimeout, _ = cmd.Flags().GetDuration("connect-timeout")
	cfg.MaxRetries, _ = cmd.Flags().GetInt("max-retries")

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
	fmt.Printf("Pinging %s ...\n", cs.Redacted())

	retryCfg := retry.NewConfig().WithMaxRetries(cfg.GetMaxRetries())
	err = retry.DoWithConfig(cmd.Context(), retryCfg, func() error {
		client, err := mongo.Connect(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		return client.Disconnect(cmd.Context())
	})
	if err != nil {
		return fmt.Errorf("cluster is not reachable: %w", err)
	}

	fmt.Println("Cluster is reachable.")
	return nil
}

func init() {
	// Add flags.
	flags.AddURIFlags(PingCmd)
	flags.AddConnectFlags(PingCmd)
}
