package cli

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"schedgroup/internal/group"
	"schedgroup/internal/scheduler"
)

func init() {
	color.NoColor = true
}

func TestRenderChecks(t *testing.T) {
	var out strings.Builder
	checks := []group.Check{
		{Name: "first", Pass: true, Detail: "ok"},
		{Name: "second", Pass: false, Detail: "broken"},
	}

	failed := renderChecks(&out, "Suite", checks)

	assert.Equal(t, 1, failed)
	assert.Contains(t, out.String(), "Suite")
	assert.Contains(t, out.String(), "first")
	assert.Contains(t, out.String(), "(broken)")
}

func TestRenderClassification(t *testing.T) {
	var out strings.Builder

	renderClassification(&out, []scheduler.Classification{
		{Schedule: "e", Deadlock: true, Mutex: true, RoundRobin: true},
		{Schedule: "(1 2)", Deadlock: false, Mutex: false, RoundRobin: false},
	})

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	assert.Len(t, lines, 4)
	assert.Contains(t, lines[2], "yes")
	assert.Contains(t, lines[3], "(1 2)")
	assert.NotContains(t, lines[3], "yes")
}

func TestRenderCosets(t *testing.T) {
	symmetricGroup, _ := group.Generate(3)
	stabilizer, _ := group.Stabilizer(3, 1)

	var out strings.Builder
	renderCosets(&out, group.CosetDecomposition(symmetricGroup, stabilizer), 1)

	assert.Contains(t, out.String(), "subgroup 0")
	assert.Contains(t, out.String(), "mutex-admissible")
	assert.Contains(t, out.String(), "coset 1")
	assert.Contains(t, out.String(), "coset 2")
	assert.Contains(t, out.String(), "e")

	// Each non-subgroup coset names the process its members move into slot 1
	assert.Contains(t, out.String(), "process 2 takes slot 1, violates mutex")
	assert.Contains(t, out.String(), "process 3 takes slot 1, violates mutex")
}
