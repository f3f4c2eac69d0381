package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/samber/lo"

	"schedgroup/internal/group"
	"schedgroup/internal/scheduler"
)

// renderChecks prints one line per check and returns the number of failures.
func renderChecks(out io.Writer, heading string, checks []group.Check) int {
	fmt.Fprintf(out, "%v\n", heading)
	failed := 0
	for _, check := range checks {
		mark := color.GreenString("✓")
		if !check.Pass {
			mark = color.RedString("✗")
			failed++
		}
		fmt.Fprintf(out, "  [%v] %v  (%v)\n", mark, check.Name, check.Detail)
	}
	return failed
}

// renderClassification prints the table classifying every schedule.
func renderClassification(out io.Writer, classifications []scheduler.Classification) {
	fmt.Fprintf(out, "  %-20v %-10v %-10v %v\n", "Schedule", "Deadlock", "Mutex", "Round-Robin")
	fmt.Fprintf(out, "  %v %v %v %v\n", strings.Repeat("-", 20), strings.Repeat("-", 10), strings.Repeat("-", 10), strings.Repeat("-", 11))
	for _, classification := range classifications {
		fmt.Fprintf(out, "  %-20v %-10v %-10v %v\n",
			classification.Schedule,
			yesOrDash(classification.Deadlock),
			yesOrDash(classification.Mutex),
			yesOrDash(classification.RoundRobin))
	}
}

// renderCosets prints each coset on one line, elements in cycle notation,
// with its scheduling interpretation. Every member of a left coset σ·Stab(x)
// sends x to the same slot, so the representative decides the whole coset.
func renderCosets(out io.Writer, cosets [][]group.Permutation, fixed uint64) {
	for i, coset := range cosets {
		elements := lo.Map(coset, func(sigma group.Permutation, _ int) string {
			return sigma.String()
		})
		occupant := coset[0].Apply(fixed)
		label := "coset"
		interpretation := fmt.Sprintf("process %v takes slot %v, violates mutex", occupant, fixed)
		if occupant == fixed {
			label = "subgroup"
			interpretation = fmt.Sprintf("slot %v keeps process %v, mutex-admissible", fixed, fixed)
		}
		fmt.Fprintf(out, "  %v %v (%v): { %v }\n", label, i, interpretation, strings.Join(elements, ", "))
	}
}

func yesOrDash(value bool) string {
	if value {
		return "yes"
	}
	return "-"
}
