package simd

import (
	"os"
	"strconv"
	"sync/atomic"
	"unsafe"
)

// Level is the vector instruction set the engine sizes its lane blocks for.
type Level int

const (
	// Scalar means no vector unit: every type has a lane width of 1.
	Scalar Level = iota
	// SSE2 is the x86-64 baseline, 128-bit registers.
	SSE2
	// AVX covers AVX and AVX2, 256-bit registers.
	AVX
	// AVX512 is 512-bit registers.
	AVX512
	// NEON is ARM ASIMD, 128-bit registers.
	NEON
)

// String returns the lower-case name of the level.
func (l Level) String() string {
	switch l {
	case Scalar:
		return "scalar"
	case SSE2:
		return "sse2"
	case AVX:
		return "avx"
	case AVX512:
		return "avx512"
	case NEON:
		return "neon"
	default:
		return "unknown"
	}
}

// MinAlignment is the smallest buffer alignment handed out, in bytes.
const MinAlignment = 32

// MaxVectorBytes bounds the register width of every supported level.
const MaxVectorBytes = 64

// NoSimdEnvVar disables vector lane blocks when set to a true value.
const NoSimdEnvVar = "NUMCORE_NO_SIMD"

type target struct {
	level Level
	bytes int
}

var (
	detected target
	current  atomic.Pointer[target]
)

func init() {
	detected = detect()
	if NoSimdEnv() {
		detected = target{level: Scalar}
	}
	t := detected
	current.Store(&t)
}

// NoSimdEnv reports whether NUMCORE_NO_SIMD asks for scalar mode.
// Any non-empty value that does not parse as false counts as set.
func NoSimdEnv() bool {
	val := os.Getenv(NoSimdEnvVar)
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// CurrentLevel returns the active instruction set.
func CurrentLevel() Level {
	return current.Load().level
}

// VectorBytes returns the active register width in bytes, 0 in scalar mode.
func VectorBytes() int {
	return current.Load().bytes
}

// Alignment returns the byte alignment owning buffers are allocated with.
func Alignment() int {
	return max(VectorBytes(), MinAlignment)
}

// Width returns the number of T elements processed per vector block.
// In scalar mode it returns 1.
//
// With AVX (32 bytes):
//   - float32: 8 lanes
//   - float64: 4 lanes
//   - int8: 32 lanes
func Width[T Lanes]() int {
	var zero T
	size := int(unsafe.Sizeof(zero))
	bytes := VectorBytes()
	if bytes < size {
		return 1
	}
	return bytes / size
}

// Force switches the lane width to the given level and register size until
// the returned restore function is called. It is meant for tests and the
// benchmark command, which compare the vector and scalar paths.
func Force(level Level, bytes int) (restore func()) {
	if bytes < 0 || bytes > MaxVectorBytes {
		panic("simd: vector width out of range")
	}
	prev := current.Load()
	current.Store(&target{level: level, bytes: bytes})
	return func() { current.Store(prev) }
}

// Detected returns the level found on this CPU, ignoring Force.
func Detected() Level {
	return detected.level
}
