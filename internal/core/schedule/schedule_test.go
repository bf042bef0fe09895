package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const kindNotice Kind = "notice"

func TestRegistry_Schedule(t *testing.T) {
	r := NewRegistry()

	a := r.Schedule(kindNotice, 5*time.Second)
	b := r.Schedule(kindNotice, 5*time.Second)

	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, kindNotice, a.Kind)
	assert.Equal(t, 5*time.Second, a.Delay)
	assert.Equal(t, 2, r.Pending(kindNotice))
	assert.Equal(t, 0, r.Pending("flash"))
}

func TestRegistry_Fire(t *testing.T) {
	r := NewRegistry()
	task := r.Schedule(kindNotice, time.Second)

	got, ok := r.Fire(task.ID)
	require.True(t, ok)
	assert.Equal(t, task, got)

	_, ok = r.Fire(task.ID)
	assert.False(t, ok, "a task fires once")
	assert.Equal(t, 0, r.Pending(kindNotice))
}

func TestRegistry_OverlappingTasksFireIndependently(t *testing.T) {
	r := NewRegistry()
	first := r.Schedule(kindNotice, time.Second)
	second := r.Schedule(kindNotice, time.Second)

	_, ok := r.Fire(first.ID)
	assert.True(t, ok)
	assert.Equal(t, 1, r.Pending(kindNotice))

	_, ok = r.Fire(second.ID)
	assert.True(t, ok)
}

func TestRegistry_CancelAll(t *testing.T) {
	r := NewRegistry()
	task := r.Schedule(kindNotice, time.Second)
	r.Schedule("flash", time.Second)

	r.CancelAll()

	assert.Equal(t, 0, r.Pending(kindNotice))
	assert.Equal(t, 0, r.Pending("flash"))

	_, ok := r.Fire(task.ID)
	assert.False(t, ok, "cancelled task must not fire")

	next := r.Schedule(kindNotice, time.Second)
	assert.Greater(t, next.ID, task.ID, "ids are not reused after cancel")
}
