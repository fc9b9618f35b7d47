package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKernelMapper_OneToOne_FreshIncreasingIDs(t *testing.T) {
	km := NewKernelMapper(ModelOneToOne, 4)

	assert.Equal(t, 1, km.Map())
	assert.Equal(t, 2, km.Map())
	assert.Equal(t, 3, km.Map())
	assert.Equal(t, 3, km.KernelThreads)
	assert.Equal(t, 3, km.UserThreads)
}

func TestKernelMapper_ManyToOne_PinsKernelThreadAtOne(t *testing.T) {
	km := NewKernelMapper(ModelManyToOne, 4)

	for i := 0; i < 5; i++ {
		assert.Equal(t, 1, km.Map())
	}
	assert.Equal(t, 1, km.KernelThreads)
	assert.Equal(t, 5, km.UserThreads)
}

func TestKernelMapper_ManyToMany_CyclesAcrossCores(t *testing.T) {
	km := NewKernelMapper(ModelManyToMany, 2)

	assert.Equal(t, 1, km.Map())
	assert.Equal(t, 2, km.Map())
	assert.Equal(t, 1, km.Map())
	assert.Equal(t, 2, km.Map())
	assert.Equal(t, 1, km.Map())
	assert.Equal(t, 2, km.KernelThreads)
	assert.Equal(t, 5, km.UserThreads)
}

func TestKernelMapper_ManyToMany_KernelCountGrowsOnFirstUse(t *testing.T) {
	km := NewKernelMapper(ModelManyToMany, 3)

	km.Map()
	assert.Equal(t, 1, km.KernelThreads)
	km.Map()
	assert.Equal(t, 2, km.KernelThreads)
	km.Map()
	assert.Equal(t, 3, km.KernelThreads)
	km.Map() // wraps to id 1, count stays
	assert.Equal(t, 3, km.KernelThreads)
}

func TestKernelMapper_EmptyModel_DefaultsToOneToOne(t *testing.T) {
	km := NewKernelMapper("", 2)
	assert.Equal(t, ModelOneToOne, km.Model)
}

func TestKernelMapper_Reset_ClearsCounters(t *testing.T) {
	km := NewKernelMapper(ModelOneToOne, 2)
	km.Map()
	km.Map()
	km.Reset()

	assert.Equal(t, 0, km.UserThreads)
	assert.Equal(t, 0, km.KernelThreads)
	assert.Equal(t, 1, km.Map())
}

func TestIsValidThreadingModel(t *testing.T) {
	assert.True(t, IsValidThreadingModel("one-to-one"))
	assert.True(t, IsValidThreadingModel("many-to-one"))
	assert.True(t, IsValidThreadingModel("many-to-many"))
	assert.True(t, IsValidThreadingModel(""))
	assert.False(t, IsValidThreadingModel("two-level"))
}
