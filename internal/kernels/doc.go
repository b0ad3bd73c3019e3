// Package kernels provides element-wise numeric functors for ndarray
// expressions: sine and cosine over a Cody-Waite π/2 reduction, the natural
// exponential, square root and absolute value.
//
// Each functor implements ndarray.UnaryOp, so it plugs into ndarray.Apply,
// and each has a builder that does that directly:
//
//	y := ndarray.Materialize(kernels.Sin(ndarray.MulScalar(x, 2)))
//
// The polynomials are evaluated in float64 for every element type. Sine and
// cosine arguments larger than MaxReducible in magnitude are handed to
// math.Sin and math.Cos.
package kernels
