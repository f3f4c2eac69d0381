// Package cli wires the schedgroup commands: verification of the
// group-theoretic scheduling claims, schedule classification and coset
// decomposition.
package cli

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"schedgroup/internal/config"
	"schedgroup/internal/logging"
)

var (
	verbosity  int
	configPath string

	cfg *config.Configuration
)

var rootCmd = &cobra.Command{
	Use:   "schedgroup",
	Short: "Verify the symmetric-group model of OS scheduling",
	Long: `schedgroup models the scheduling space of n processes as the symmetric
group S_n and verifies the algebra behind three synchronization claims:
mutual exclusion is a stabilizer subgroup, round-robin is a cyclic subgroup
and deadlock is the identity element.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logging.SetupLogger(verbosity)

		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		if cfg.NoColor {
			color.NoColor = true
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase logging verbosity (repeatable)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a JSON configuration file")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
