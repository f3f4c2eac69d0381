package scheduler

import (
	"encoding/json"
	"fmt"
	"os"

	"schedgroup/internal/group"

	"github.com/mitchellh/mapstructure"
)

// Candidate is a named subset of S_n supplied by a scenario file, to be
// tested against the subgroup axioms and Lagrange's theorem.
type Candidate struct {
	Name         string
	Permutations [][]uint64
}

// Scenario is the external description of a verification run.
type Scenario struct {
	Processes    uint64 `mapstructure:"processes"`
	CriticalSlot uint64 `mapstructure:"criticalSlot"`
	Candidates   []Candidate
}

// ScenarioFromJson reads a scenario from a JSON file.
func ScenarioFromJson(file string) (Scenario, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return Scenario{}, err
	}

	var scenarioJson map[string]any
	if err := json.Unmarshal(bytes, &scenarioJson); err != nil {
		return Scenario{}, err
	}

	var scenario Scenario
	if err := mapstructure.Decode(scenarioJson, &scenario); err != nil {
		return Scenario{}, err
	}
	if scenario.CriticalSlot == 0 {
		scenario.CriticalSlot = CriticalSlot
	}
	return scenario, nil
}

// VerifyCandidate checks a scenario candidate: every sequence must be a valid
// permutation of the scenario's degree, then the set is judged as a subgroup
// and against Lagrange. A candidate failing the axioms is a false result; a
// malformed sequence is an InvalidInput error.
func (scenario Scenario) VerifyCandidate(candidate Candidate) ([]group.Check, error) {
	permutations := make([]group.Permutation, 0, len(candidate.Permutations))
	for _, values := range candidate.Permutations {
		sigma, err := group.New(values)
		if err != nil {
			return nil, fmt.Errorf("candidate %q: %w", candidate.Name, err)
		} else if sigma.Degree() != scenario.Processes {
			return nil, fmt.Errorf("%w: candidate %q holds a permutation of degree %v, scenario degree is %v",
				group.ErrInvalidInput, candidate.Name, sigma.Degree(), scenario.Processes)
		}
		permutations = append(permutations, sigma)
	}

	divides, err := group.VerifyLagrange(uint64(len(permutations)), scenario.Processes)
	if err != nil {
		return nil, fmt.Errorf("candidate %q: %w", candidate.Name, err)
	}

	return []group.Check{
		{
			Name:   fmt.Sprintf("%v is a subgroup of S_%v", candidate.Name, scenario.Processes),
			Pass:   group.IsSubgroup(permutations, scenario.Processes),
			Detail: fmt.Sprintf("%v elements checked for identity, closure and inverses", len(permutations)),
		},
		{
			Name:   fmt.Sprintf("Lagrange: |%v| divides %v!", candidate.Name, scenario.Processes),
			Pass:   divides,
			Detail: fmt.Sprintf("%v divides %v", len(permutations), group.Factorial(scenario.Processes)),
		},
	}, nil
}
