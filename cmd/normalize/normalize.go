package normalize

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mongouri/internal/common"
	"mongouri/internal/config"
	"mongouri/internal/connstring"
	"mongouri/internal/flags"
	"mongouri/internal/metrics"
	"mongouri/internal/normalizer"
)

// NormalizeCmd represents the normalize command.
var NormalizeCmd = &cobra.Command{
	Use:   "normalize",
	Short: "Normalize connection strings",
	Long: `Normalize a connection string: sanitize reserved characters in query
parameter values, collapse duplicate query parameters, and re-encode the
result. With --input, every line of the file is normalized in one pass.`,
	RunE: runNormalize,
}

func runNormalize(cmd *cobra.Command, _ []string) error {
	// Create config.
	cfg := &config.Config{}

	// Get flag values.
	cfg.URI, _ = cmd.Flags().GetString("uri")
	cfg.InputFile, _ = cmd.Flags().GetString("input")
	cfg.OutputFile, _ = cmd.Flags().GetString("output")
	cfg.AutoApprove, _ = cmd.Flags().GetBool("auto-approve")
	cfg.MetricsAddr, _ = cmd.Flags().GetString("metrics-addr")

	// Load configuration from environment variables.
	if err := cfg.Load(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if cfg.GetInputFile() == "" {
		fmt.Println(connstring.Normalize(cfg.GetURI()))
		return nil
	}

	return runBulk(cmd.Context(), cfg)
}

func runBulk(ctx context.Context, cfg *config.Config) error {
	input, err := os.Open(cfg.GetInputFile())
	if err != nil {
		return &common.FileIOError{Op: "open input file", Reason: err.Error(), Err: err}
	}
	defer input.Close()

	output := os.Stdout
	if cfg.GetOutputFile() != "" {
		if _, err := os.Stat(cfg.GetOutputFile()); err == nil && !cfg.GetAutoApprove() {
			prompt := fmt.Sprintf("Output file '%s' exists. Overwrite? (y/N) ", cfg.GetOutputFile())
			if !common.Confirm(prompt) {
				return nil
			}
		}
		output, err = os.Create(cfg.GetOutputFile())
		if err != nil {
			return &common.FileIOError{Op: "create output file", Reason: err.Error(), Err: err}
		}
		defer output.Close()
	}

	var m *metrics.Metrics
	if cfg.GetMetricsAddr() != "" {
		m = metrics.NewMetrics()
		serverCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		go func() {
			if err := m.StartMetricsServer(serverCtx, cfg.GetMetricsAddr()); err != nil {
				fmt.Fprintf(os.Stderr, "metrics server error: %v\n", err)
			}
		}()
	}

	service := normalizer.NewService(m, false)
	report, err := service.Run(ctx, input, output)
	if err != nil {
		return fmt.Errorf("normalization failed: %w", err)
	}

	fmt.Fprintln(os.Stderr, report)
	return nil
}

func init() {
	// Add flags.
	flags.AddURIFlags(NormalizeCmd)
	flags.AddBulkFlags(NormalizeCmd)
}
