package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"schedgroup/internal/group"
	"schedgroup/internal/scheduler"
)

var classifyProcesses uint64

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify every schedule in S_n",
	Long: `Prints, for each of the n! schedules, whether it is the deadlock state,
mutex-admissible on the critical slot, or a round-robin rotation.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if classifyProcesses > cfg.MaxDegree {
			return fmt.Errorf("%w: n = %v exceeds the configured ceiling of %v", group.ErrInvalidInput, classifyProcesses, cfg.MaxDegree)
		}

		model, err := scheduler.New(classifyProcesses)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, model.Summary())
		fmt.Fprintf(out, "\nClassification of all schedules in S_%v:\n", classifyProcesses)
		renderClassification(out, model.ClassifyAll())
		return nil
	},
}

func init() {
	classifyCmd.Flags().Uint64VarP(&classifyProcesses, "processes", "n", 3, "number of processes (degree of the symmetric group)")
	rootCmd.AddCommand(classifyCmd)
}
