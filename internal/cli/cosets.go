package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"schedgroup/internal/group"
)

var (
	cosetsProcesses uint64
	cosetsFixed     uint64
)

var cosetsCmd = &cobra.Command{
	Use:   "cosets",
	Short: "Print the coset decomposition of S_n by Stab(x)",
	Long: `Decomposes the scheduling space into the left cosets of the stabilizer of
x. Each coset collects the schedules that send x to one particular slot; the
subgroup itself is the mutex-admissible coset.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		n := cosetsProcesses
		fixed := cosetsFixed
		if fixed == 0 {
			fixed = cfg.CriticalSlot
		}
		if n > cfg.MaxDegree {
			return fmt.Errorf("%w: n = %v exceeds the configured ceiling of %v", group.ErrInvalidInput, n, cfg.MaxDegree)
		}

		symmetricGroup, err := group.Generate(n)
		if err != nil {
			return err
		}
		stabilizer, err := group.Stabilizer(n, fixed)
		if err != nil {
			return err
		}

		cosets := group.CosetDecomposition(symmetricGroup, stabilizer)
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Left cosets of Stab(%v) in S_%v: %v cosets of %v elements\n", fixed, n, len(cosets), len(stabilizer))
		renderCosets(out, cosets, fixed)
		return nil
	},
}

func init() {
	cosetsCmd.Flags().Uint64VarP(&cosetsProcesses, "processes", "n", 3, "number of processes (degree of the symmetric group)")
	cosetsCmd.Flags().Uint64VarP(&cosetsFixed, "fix", "x", 0, "element fixed by the stabilizer (defaults to the configured critical slot)")
	rootCmd.AddCommand(cosetsCmd)
}
