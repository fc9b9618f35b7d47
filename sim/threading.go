package sim

import (
	"fmt"
)

// ThreadingModel determines how many kernel execution contexts back the
// simulated user threads.
type ThreadingModel string

const (
	// ModelOneToOne assigns a fresh kernel thread per user thread.
	ModelOneToOne ThreadingModel = "one-to-one"
	// ModelManyToOne multiplexes every user thread onto kernel thread 1.
	ModelManyToOne ThreadingModel = "many-to-one"
	// ModelManyToMany spreads user threads across core-count kernel threads.
	ModelManyToMany ThreadingModel = "many-to-many"
)

// validThreadingModels maps accepted threading model names.
var validThreadingModels = map[ThreadingModel]bool{
	"":              true, // empty defaults to one-to-one
	ModelOneToOne:   true,
	ModelManyToOne:  true,
	ModelManyToMany: true,
}

// IsValidThreadingModel returns true if the given name is a recognized
// threading model.
func IsValidThreadingModel(name string) bool {
	return validThreadingModels[ThreadingModel(name)]
}

// KernelMapper assigns kernel thread ids to user threads at admission,
// according to the configured threading model. The kernel thread count
// grows only as higher ids are first used.
type KernelMapper struct {
	Model     ThreadingModel
	CoreCount int

	UserThreads   int // user threads mapped so far
	KernelThreads int // distinct kernel contexts in use
}

// NewKernelMapper constructs a mapper for the given model and core count.
// Empty model defaults to one-to-one.
func NewKernelMapper(model ThreadingModel, coreCount int) *KernelMapper {
	if !IsValidThreadingModel(string(model)) {
		panic(fmt.Sprintf("unknown threading model %q", model))
	}
	if model == "" {
		model = ModelOneToOne
	}
	return &KernelMapper{Model: model, CoreCount: coreCount}
}

// Map records one user thread admission and returns the kernel thread id
// backing it. One-to-one ids are strictly increasing; many-to-one pins the
// kernel thread count at 1; many-to-many cycles ids 1..CoreCount.
func (km *KernelMapper) Map() int {
	km.UserThreads++
	switch km.Model {
	case ModelManyToOne:
		km.KernelThreads = 1
		return 1
	case ModelManyToMany:
		id := (km.UserThreads-1)%km.CoreCount + 1
		if id > km.KernelThreads {
			km.KernelThreads = id
		}
		return id
	default: // one-to-one
		km.KernelThreads = km.UserThreads
		return km.UserThreads
	}
}

// Reset clears the mapping counters, as after Engine.Reset.
func (km *KernelMapper) Reset() {
	km.UserThreads = 0
	km.KernelThreads = 0
}
