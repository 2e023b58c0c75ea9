package flags

import (
	"github.com/spf13/cobra"
)

// AddURIFlags adds connection-string related flags to the command.
func AddURIFlags(cmd *cobra.Command) {
	cmd.Flags().String("uri", "", "MongoDB connection string (mongodb:// or mongodb+srv://).")
}

// AddBulkFlags adds bulk-mode flags to the command.
func AddBulkFlags(cmd *cobra.Command) {
	cmd.Flags().String("input", "", "File with one connection string per line.")
	cmd.Flags().String("output", "", "Destination file for normalized output (default: stdout).")
	cmd.Flags().Bool("auto-approve", false, "Overwrite the output file without asking.")
	cmd.Flags().String("metrics-addr", "", "Address to expose Prometheus metrics on (e.g. :9090).")
}

// AddConnectFlags adds connection-check flags to the command.
func AddConnectFlags(cmd *cobra.Command) {
	cmd.Flags().Duration("connect-timeout", 0, "Timeout for a single connection attempt.")
	cmd.Flags().Int("max-retries", 0, "Maximum number of connection attempts.")
}
