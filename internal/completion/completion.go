package completion

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// GetSupportedShells returns the shells completion can be generated for.
func GetSupportedShells() []string {
	return []string{"bash", "zsh", "fish", "powershell"}
}

// GenerateCompletion writes the completion script for the given shell to stdout.
func GenerateCompletion(cmd *cobra.Command, shell string) error {
	switch shell {
	case "bash":
		return cmd.Root().GenBashCompletion(os.Stdout)
	case "zsh":
		return cmd.Root().GenZshCompletion(os.Stdout)
	case "fish":
		return cmd.Root().GenFishCompletion(os.Stdout, true)
	case "powershell":
		return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
	default:
		return fmt.Errorf("unsupported shell: %s", shell)
	}
}
