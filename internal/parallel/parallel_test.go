package parallel

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parallelConfig() Config {
	return Config{Enabled: true, NumWorkers: 4, MinChunkSize: 8, Threshold: 100}
}

func TestRangeCoversEveryIndexOnce(t *testing.T) {
	n := 10_003
	hits := make([]int32, n)

	Range(n, 4, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			atomic.AddInt32(&hits[i], 1)
		}
	}, parallelConfig())

	for i, h := range hits {
		require.Equal(t, int32(1), h, "index %d", i)
	}
}

func TestRangeChunksAreAligned(t *testing.T) {
	var mu sync.Mutex
	var bounds [][2]int

	Range(1001, 8, func(lo, hi int) {
		mu.Lock()
		bounds = append(bounds, [2]int{lo, hi})
		mu.Unlock()
	}, parallelConfig())

	require.Greater(t, len(bounds), 1)
	for _, b := range bounds {
		assert.Zero(t, b[0]%8, "chunk start %d", b[0])
		if b[1] != 1001 {
			assert.Zero(t, b[1]%8, "chunk end %d", b[1])
		}
	}
}

func TestRange_Sequential(t *testing.T) {
	calls := 0
	Range(100_000, 4, func(lo, hi int) {
		calls++
		assert.Equal(t, 0, lo)
		assert.Equal(t, 100_000, hi)
	}, Sequential())
	assert.Equal(t, 1, calls)
}

func TestRange_BelowThreshold(t *testing.T) {
	// Small work units fall back to a single call.
	var calls atomic.Int32
	Range(100, 4, func(_, _ int) { calls.Add(1) }, parallelConfig())
	assert.Equal(t, int32(1), calls.Load())
}

func TestRange_Empty(t *testing.T) {
	Range(0, 4, func(_, _ int) { t.Fatal("called for empty range") }, parallelConfig())
}

func TestChunkSize(t *testing.T) {
	cfg := Config{NumWorkers: 4, MinChunkSize: 8}
	assert.Equal(t, 252, ChunkSize(1001, 4, cfg))
	assert.Equal(t, 256, ChunkSize(1001, 8, cfg))
	assert.Equal(t, 8, ChunkSize(10, 1, cfg))
}

func TestDefaultConfig(t *testing.T) {
	t.Setenv(WorkersEnvVar, "3")
	cfg := DefaultConfig()
	assert.Equal(t, 3, cfg.NumWorkers)
	assert.True(t, cfg.Enabled)
	assert.Equal(t, 1000, cfg.Threshold)

	t.Setenv(WorkersEnvVar, "1")
	assert.False(t, DefaultConfig().Enabled)
}

func BenchmarkRange(b *testing.B) {
	data := make([]float64, 1<<16)
	cfg := DefaultConfig()
	b.ResetTimer()
	for b.Loop() {
		Range(len(data), 4, func(lo, hi int) {
			for i := lo; i < hi; i++ {
				data[i] += 1
			}
		}, cfg)
	}
}
