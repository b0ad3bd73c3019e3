// Package simd is the vector capability layer of numcore.
//
// It reports how many elements of a given type fit in one vector register on
// the running CPU and provides the lane-block primitives (broadcast, load,
// store) the materializer is written against. Lane blocks are plain slices of
// length Width[T](); the per-lane loops are kept simple so the compiler can
// unroll them, and every caller also has a scalar path for the tail.
// Lane blocks are a blocking and unrolling scheme in plain Go, not hardware
// vector instructions: the detected level only sizes the blocks.
package simd

// Floats is a constraint for floating-point element types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer element types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer element types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer element types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in vector lanes.
type Lanes interface {
	Floats | Integers
}
