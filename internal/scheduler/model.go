package scheduler

import (
	"fmt"
	"strings"

	"schedgroup/internal/group"

	"github.com/samber/lo"
)

// Model represents the scheduling space of n processes as the symmetric group
// S_n, together with the subgroups that encode synchronization constraints:
//
//   - mutual exclusion on a slot  ↔ the stabilizer of that slot
//   - round-robin rotation        ↔ the cyclic subgroup ⟨(1 2 ... n)⟩
//   - deadlock                    ↔ the identity permutation
//
// The model is immutable after construction.
type Model struct {
	n          uint64
	schedules  []group.Permutation
	stabilizer []group.Permutation
	cyclic     []group.Permutation
	identity   group.Permutation
	indexer    group.Indexer
	cyclicSet  map[uint64]bool
}

// CriticalSlot is the resource slot protected by mutual exclusion unless a
// caller asks for another one.
const CriticalSlot uint64 = 1

// New materializes the scheduling space for n processes. At least two
// processes are required for the model to be meaningful.
func New(n uint64) (*Model, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: a scheduling model needs at least 2 processes, got %v", group.ErrInvalidInput, n)
	}

	schedules, err := group.Generate(n)
	if err != nil {
		return nil, err
	}
	stabilizer, err := group.Stabilizer(n, CriticalSlot)
	if err != nil {
		return nil, err
	}
	cycle, err := group.NCycle(n)
	if err != nil {
		return nil, err
	}

	cyclic := group.CyclicSubgroup(cycle)
	indexer := group.NewIndexer(n)
	cyclicSet := make(map[uint64]bool, len(cyclic))
	for _, rotation := range cyclic {
		cyclicSet[indexer.Index(rotation)] = true
	}

	return &Model{
		n:          n,
		schedules:  schedules,
		stabilizer: stabilizer,
		cyclic:     cyclic,
		identity:   group.Identity(n),
		indexer:    indexer,
		cyclicSet:  cyclicSet,
	}, nil
}

// Processes returns n.
func (model *Model) Processes() uint64 {
	return model.n
}

// SpaceSize returns |S_n| = n!, the number of schedules.
func (model *Model) SpaceSize() uint64 {
	return uint64(len(model.schedules))
}

// Schedules returns every schedule of the space.
func (model *Model) Schedules() []group.Permutation {
	return model.schedules
}

// IsMutexAdmissible reports whether the schedule respects mutual exclusion on
// the given slot: the process holding the critical slot must not change, i.e.
// σ(slot) = slot. A slot outside [1..n] or a schedule of the wrong degree is
// not admissible.
func (model *Model) IsMutexAdmissible(sigma group.Permutation, slot uint64) bool {
	if slot < 1 || slot > model.n || sigma.Degree() != model.n {
		return false
	}
	return sigma.Apply(slot) == slot
}

// MutexAdmissible returns every schedule admissible under mutual exclusion on
// the given slot, that is, the stabilizer of the slot.
func (model *Model) MutexAdmissible(slot uint64) ([]group.Permutation, error) {
	if slot < 1 || slot > model.n {
		return nil, fmt.Errorf("%w: slot %v is outside [1..%v]", group.ErrInvalidInput, slot, model.n)
	}
	return lo.Filter(model.schedules, func(sigma group.Permutation, _ int) bool {
		return model.IsMutexAdmissible(sigma, slot)
	}), nil
}

// IsRoundRobin reports whether the schedule is a rotation of the process
// queue, that is, a member of ⟨(1 2 ... n)⟩.
func (model *Model) IsRoundRobin(sigma group.Permutation) bool {
	return sigma.Degree() == model.n && model.cyclicSet[model.indexer.Index(sigma)]
}

// RoundRobin returns the n round-robin schedules.
func (model *Model) RoundRobin() []group.Permutation {
	return model.cyclic
}

// IsDeadlock reports whether the schedule makes no forward progress at all:
// σ is the identity, every process keeps its slot.
func (model *Model) IsDeadlock(sigma group.Permutation) bool {
	return sigma.IsIdentity() && sigma.Degree() == model.n
}

// DeadlockState returns the deadlock schedule, the identity permutation.
func (model *Model) DeadlockState() group.Permutation {
	return model.identity
}

// Classification records which constraints a single schedule satisfies.
type Classification struct {
	Schedule   string
	Deadlock   bool
	Mutex      bool
	RoundRobin bool
}

// Classify classifies a schedule against all three constraints. Mutex is
// judged on the default critical slot.
func (model *Model) Classify(sigma group.Permutation) Classification {
	return Classification{
		Schedule:   sigma.String(),
		Deadlock:   model.IsDeadlock(sigma),
		Mutex:      model.IsMutexAdmissible(sigma, CriticalSlot),
		RoundRobin: model.IsRoundRobin(sigma),
	}
}

// ClassifyAll classifies every schedule in the space.
func (model *Model) ClassifyAll() []Classification {
	return lo.Map(model.schedules, func(sigma group.Permutation, _ int) Classification {
		return model.Classify(sigma)
	})
}

// Summary renders the structural summary of the model: the sizes of the full
// space and of each constraint subgroup, with the counting identities spelled
// out.
func (model *Model) Summary() string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "Scheduling model for %v processes\n", model.n)
	fmt.Fprintf(&builder, "  full space  S_%v     : %v schedules (%v!)\n", model.n, len(model.schedules), model.n)
	fmt.Fprintf(&builder, "  mutex       Stab(%v) : %v schedules ((%v-1)!)\n", CriticalSlot, len(model.stabilizer), model.n)
	fmt.Fprintf(&builder, "  round-robin ⟨c⟩     : %v schedules\n", len(model.cyclic))
	fmt.Fprintf(&builder, "  deadlock    {e}     : 1 schedule\n")
	fmt.Fprintf(&builder, "  subgroup chains: {e} ≤ ⟨c⟩ ≤ S_%v and {e} ≤ Stab(%v) ≤ S_%v", model.n, CriticalSlot, model.n)
	return builder.String()
}
