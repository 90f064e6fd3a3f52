package core

import "errors"

// TaskID is the stable, externally-assigned identity of a Task.
type TaskID int

// VmID is the stable, externally-assigned identity of a VM.
type VmID int

// VmIndex is the dense, contiguous 0-based position of a VM. It is the key
// used by the schedule and timing tables; never confuse it with VmID.
type VmIndex int

// Sentinel errors for core graph construction and queries.
var (
	// ErrCycleDetected indicates the task graph is not a DAG.
	ErrCycleDetected = errors.New("core: cycle detected in task graph")

	// ErrNoExitTask indicates the graph has no task with an empty successor
	// set (empty graph, or every task is part of a cycle).
	ErrNoExitTask = errors.New("core: no exit task found")

	// ErrTaskNotFound indicates a reference to an unknown TaskID.
	ErrTaskNotFound = errors.New("core: task not found")

	// ErrVmNotFound indicates a reference to an unknown VmIndex.
	ErrVmNotFound = errors.New("core: vm not found")

	// ErrAsymmetricEdge indicates u lists v as a successor but v does not
	// list u as a predecessor (or vice versa).
	ErrAsymmetricEdge = errors.New("core: asymmetric predecessor/successor relation")

	// ErrInvalidCapacity indicates a VM reports non-positive processing
	// capacity.
	ErrInvalidCapacity = errors.New("core: vm processing capacity must be positive")

	// ErrInvalidSize indicates a task reports non-positive computational
	// size.
	ErrInvalidSize = errors.New("core: task size must be positive")

	// ErrMissingBandwidth indicates a VM's bandwidth map omits an entry for
	// another VM's peer id.
	ErrMissingBandwidth = errors.New("core: missing bandwidth entry for vm pair")

	// ErrDuplicateTaskID indicates two tasks were given the same id.
	ErrDuplicateTaskID = errors.New("core: duplicate task id")

	// ErrDuplicateVmIndex indicates two VMs were given the same index.
	ErrDuplicateVmIndex = errors.New("core: duplicate vm index")
)

// Task is an immutable computational task in the workflow DAG.
//
// Predecessors and Successors are stored sorted by Id (not de-duplicated) so
// that iteration order is deterministic (tie-breaking by task id ascending,
// per the engine's global tie-break convention).
type Task struct {
	// ID is this task's stable identity.
	ID TaskID

	// Size is the computational size (positive real); ExecutionTime on a VM
	// is Size/Capacity.
	Size float64

	// Predecessors lists the ids of tasks that must finish (or deliver a
	// duplicate) before this task may start.
	Predecessors []TaskID

	// Successors lists the ids of tasks that depend on this task's output.
	Successors []TaskID

	// Level is 0 for entry tasks, and 1+max(level of predecessors)
	// otherwise. Populated by NewGraph; -1 before leveling.
	Level int
}

// IsEntry reports whether t has no predecessors.
func (t *Task) IsEntry() bool { return len(t.Predecessors) == 0 }

// IsExit reports whether t has no successors.
func (t *Task) IsExit() bool { return len(t.Successors) == 0 }

// VM is an immutable virtual machine in the execution pool.
type VM struct {
	// ID is this VM's stable external identity (used only for bandwidth
	// lookups against other VMs).
	ID VmID

	// Index is the dense 0-based schedule/timing-table key for this VM.
	Index VmIndex

	// Capacity is the VM's processing capacity (positive real);
	// ExecutionTime of a task on this VM is task.Size/Capacity.
	Capacity float64

	// Bandwidth maps a peer VM's ID to the pairwise bandwidth between this
	// VM and that peer. Bandwidth[ID] (self) is conventionally absent or 0
	// and never consulted: same-VM communication cost is always zero.
	Bandwidth map[VmID]float64
}

// Graph is the immutable input bundle the scheduling engine consumes: a
// task DAG plus a VM pool. It is built once by NewGraph and never mutated.
type Graph struct {
	tasks   []Task         // dense, in input order; look up by TaskID via taskIdx
	taskIdx map[TaskID]int // TaskID -> index into tasks, for defensive lookups
	vms     []VM           // dense, indexed by VmIndex
	vmByID  map[VmID]int   // VmID -> index into vms

	levels map[int][]TaskID // level -> sorted task ids at that level
	maxLvl int
}
