package status

import (
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestMetricMapGetIsStable(t *testing.T) {
	m := NewMetricMap[atomic.Int64]()
	a := m.Get("frames")
	a.Add(3)
	assert.Same(t, a, m.Get("frames"))
	assert.Equal(t, int64(3), m.Get("frames").Load())
	assert.Equal(t, 1, m.Len())
}

func TestMetricMapConcurrentGet(t *testing.T) {
	m := NewMetricMap[atomic.Int64]()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				m.Get("shared").Add(1)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, int64(5000), m.Get("shared").Load())
}

func TestRegistryFieldsOrder(t *testing.T) {
	r := NewRegistry()
	r.Strings.Get("phase").Store("Kinetic")
	r.Floats.Get("fps").Store(59.5)
	r.Ints.Get("frames").Store(10)
	r.Ints.Get("dots").Store(42)

	assert.Equal(t, 4, r.Len())
	assert.Equal(t, []zap.Field{
		zap.Int64("dots", 42),
		zap.Int64("frames", 10),
		zap.Float64("fps", 59.5),
		zap.String("phase", "Kinetic"),
	}, r.Fields())
}

func TestAtomicFloat(t *testing.T) {
	var f AtomicFloat
	assert.Zero(t, f.Load())
	f.Store(-2.25)
	assert.Equal(t, -2.25, f.Load())
}

func TestAtomicStringTruncatesOnRuneBoundary(t *testing.T) {
	var s AtomicString
	assert.Empty(t, s.Load())

	s.Store("short")
	assert.Equal(t, "short", s.Load())

	long := strings.Repeat("a", MaxStringLen-1) + "é"
	s.Store(long)
	assert.Equal(t, strings.Repeat("a", MaxStringLen-1), s.Load())
}
