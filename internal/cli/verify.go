package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"schedgroup/internal/group"
	"schedgroup/internal/logging"
	"schedgroup/internal/scheduler"
)

var (
	verifyProcesses uint64
	verifyFixed     uint64
	verifyScenario  string
	verifySweep     bool
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Run the full group-theoretic verification suite",
	Long: `Verifies, by exhaustive enumeration of S_n, that the stabilizer of the
critical slot and the rotation subgroup satisfy the subgroup axioms and the
counting identities (Lagrange, orbit-stabilizer, coset partition). A scenario
file may supply additional candidate subsets to test.

Exit code is 0 only when every check passes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := logging.GetLogger("verify")

		n := verifyProcesses
		fixed := verifyFixed
		if fixed == 0 {
			fixed = cfg.CriticalSlot
		}

		var candidates []scheduler.Candidate
		var scenario scheduler.Scenario
		if verifyScenario != "" {
			loaded, err := scheduler.ScenarioFromJson(verifyScenario)
			if err != nil {
				return fmt.Errorf("cannot parse scenario file: %w", err)
			}
			scenario = loaded
			n = scenario.Processes
			fixed = scenario.CriticalSlot
			candidates = scenario.Candidates
		}

		if n > cfg.MaxDegree {
			return fmt.Errorf("%w: n = %v exceeds the configured ceiling of %v", group.ErrInvalidInput, n, cfg.MaxDegree)
		}

		degrees := []uint64{n}
		if verifySweep {
			if n < 2 {
				return fmt.Errorf("%w: a sweep needs n >= 2, got %v", group.ErrInvalidInput, n)
			}
			degrees = degrees[:0]
			for degree := uint64(2); degree <= n; degree++ {
				degrees = append(degrees, degree)
			}
		}

		out := cmd.OutOrStdout()
		failed := 0
		for _, degree := range degrees {
			logger.Debug().Uint64("n", degree).Uint64("fixed", fixed).Msg("enumerating the scheduling space")

			groupChecks, err := group.VerifyGroup(degree)
			if err != nil {
				return err
			}
			stabilizerChecks, err := group.VerifyStabilizer(degree, fixed)
			if err != nil {
				return err
			}
			cyclicChecks, err := group.VerifyCyclic(degree)
			if err != nil {
				return err
			}

			failed += renderChecks(out, fmt.Sprintf("Group verification - n = %v", degree), groupChecks)
			failed += renderChecks(out, fmt.Sprintf("Stabilizer verification - n = %v, x = %v", degree, fixed), stabilizerChecks)
			failed += renderChecks(out, fmt.Sprintf("Cyclic subgroup verification - n = %v", degree), cyclicChecks)
		}

		for _, candidate := range candidates {
			checks, err := scenario.VerifyCandidate(candidate)
			if err != nil {
				return err
			}
			failed += renderChecks(out, fmt.Sprintf("Candidate %q", candidate.Name), checks)
		}

		if failed > 0 {
			return fmt.Errorf("%v checks failed", failed)
		}
		fmt.Fprintln(out, "all checks passed")
		return nil
	},
}

func init() {
	verifyCmd.Flags().Uint64VarP(&verifyProcesses, "processes", "n", 3, "number of processes (degree of the symmetric group)")
	verifyCmd.Flags().Uint64VarP(&verifyFixed, "fix", "x", 0, "element fixed by the stabilizer (defaults to the configured critical slot)")
	verifyCmd.Flags().StringVar(&verifyScenario, "file", "", "path to a JSON scenario file with candidate subsets")
	verifyCmd.Flags().BoolVar(&verifySweep, "sweep", false, "verify every degree from 2 up to the requested one")
	rootCmd.AddCommand(verifyCmd)
}
