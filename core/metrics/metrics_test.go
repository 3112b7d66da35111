package metrics

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	r.Register(Metric{Name: "pushes", Type: Counter, Description: "pushes"})
	r.Register(Metric{Name: "len", Type: Gauge, Description: "length"})

	t.Run("counter accumulates", func(t *testing.T) {
		r.RecordCounter("pushes", 1)
		r.RecordCounter("pushes", 2)
		v, ok := r.Value("pushes")
		require.True(t, ok)
		assert.Equal(t, 3.0, v)
	})

	t.Run("gauge keeps last value", func(t *testing.T) {
		r.RecordGauge("len", 10)
		r.RecordGauge("len", 4)
		v, ok := r.Value("len")
		require.True(t, ok)
		assert.Equal(t, 4.0, v)
	})

	t.Run("type mismatch is ignored", func(t *testing.T) {
		r.RecordGauge("pushes", 100)
		r.RecordCounter("len", 100)
		assert.Equal(t, map[string]float64{"pushes": 3, "len": 4}, r.GetMetrics())
	})

	t.Run("unregistered name is dropped", func(t *testing.T) {
		r.RecordCounter("missing", 1)
		_, ok := r.Value("missing")
		assert.False(t, ok)
	})

	t.Run("re-register keeps value", func(t *testing.T) {
		r.Register(Metric{Name: "pushes", Type: Counter, Description: "again"})
		v, _ := r.Value("pushes")
		assert.Equal(t, 3.0, v)
		m, ok := r.Describe("pushes")
		require.True(t, ok)
		assert.Equal(t, "again", m.Description)
		assert.Equal(t, "counter", m.Type.String())
	})
}

func TestRegistryConcurrentCounters(t *testing.T) {
	r := NewRegistry()
	r.Register(Metric{Name: "hits", Type: Counter})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				r.RecordCounter("hits", 1)
			}
		}()
	}
	wg.Wait()

	v, _ := r.Value("hits")
	assert.Equal(t, 8000.0, v)
}
